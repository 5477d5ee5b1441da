// internal/ui/info_panel.go
package ui

import (
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/types"
	"crown-defense/internal/utils"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelMargin    = 6
	animationSpeed = 12.0
	lineHeight     = 15
)

// InfoPanel выезжает справа и показывает параметры башни под курсором.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	lib          *defs.Library
	face         text.Face
	currentX     float64
	targetX      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(lib *defs.Library, face text.Face) *InfoPanel {
	return &InfoPanel{
		lib:      lib,
		face:     face,
		currentX: config.ScreenWidth,
		targetX:  config.ScreenWidth,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetX = config.ScreenWidth - config.InfoPanelWidth - panelMargin
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	p.currentX = utils.Approach(p.currentX, p.targetX, animationSpeed)
	if p.currentX >= config.ScreenWidth {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *snapshot.Snapshot) {
	if !p.IsVisible && p.currentX >= config.ScreenWidth {
		return
	}

	x := float32(p.currentX)
	y := float32(config.ScreenHeight - config.ShopBarHeight - config.InfoPanelHeight - panelMargin)
	w, h := float32(config.InfoPanelWidth), float32(config.InfoPanelHeight)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, true)

	tower, ok := snap.Tower(p.TargetEntity)
	if !ok {
		return
	}
	p.drawTowerInfo(screen, tower, snap.Money, float64(x)+12, float64(y)+14)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, t snapshot.Tower, money int, x, y float64) {
	name := string(t.Type)
	if def, ok := p.lib.Tower(t.Type); ok {
		name = def.Name
	}
	lines := []string{
		fmt.Sprintf("%s  (level %d)", name, t.Level),
		fmt.Sprintf("Damage:   %.1f", t.Damage),
		fmt.Sprintf("Range:    %.0f", t.Range),
		fmt.Sprintf("Cooldown: %.1f ticks", t.Cooldown),
	}
	for i, line := range lines {
		drawText(screen, line, p.face, x, y+float64(i*lineHeight), config.TextLightColor, text.AlignStart)
	}

	upgrade := fmt.Sprintf("Click to upgrade: $%d", t.UpgradeCost)
	clr := config.OkColor
	if money < t.UpgradeCost {
		clr = config.ErrorColor
	}
	drawText(screen, upgrade, p.face, x, y+float64(len(lines)*lineHeight)+8, clr, text.AlignStart)
}
