package render

import (
	"crown-defense/internal/snapshot"
	"crown-defense/internal/types"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hpBarHeight = 4
	hpBarOffset = 6

	defaultBulletSize = 3
)

// EntityRenderer рисует башни, врагов и снаряды из снимка сессии.
// Порядок отрисовки совпадает с порядком в снимке, цвета берутся из снимка.
type EntityRenderer struct {
	colors      EntityColors
	face        text.Face
	towerHalf   float32
	strokeWidth float32
}

func NewEntityRenderer(colors EntityColors, face text.Face, towerHalf, strokeWidth float32) *EntityRenderer {
	return &EntityRenderer{
		colors:      colors,
		face:        face,
		towerHalf:   towerHalf,
		strokeWidth: strokeWidth,
	}
}

// Draw рисует все сущности. highlight — башня, для которой показывается радиус.
func (r *EntityRenderer) Draw(screen *ebiten.Image, snap *snapshot.Snapshot, highlight types.EntityID) {
	for _, t := range snap.Towers {
		if t.ID == highlight {
			vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Range), r.colors.Range, true)
		}
	}
	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		size := p.Radius
		if size <= 0 {
			size = defaultBulletSize
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), size, p.Color, true)
	}
}

func (r *EntityRenderer) drawTower(screen *ebiten.Image, t snapshot.Tower) {
	h := r.towerHalf
	x, y := float32(t.X)-h, float32(t.Y)-h
	fill := t.Color
	vector.DrawFilledRect(screen, x, y, 2*h, 2*h, fill, true)
	vector.StrokeRect(screen, x, y, 2*h, 2*h, r.strokeWidth, LightenColor(fill, 60), true)

	if t.Level > 1 && r.face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X, t.Y)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(r.colors.TextColor)
		text.Draw(screen, fmt.Sprint(t.Level), r.face, op)
	}
}

func (r *EntityRenderer) drawEnemy(screen *ebiten.Image, e snapshot.Enemy) {
	fill := e.Color
	if e.Flash {
		fill = r.colors.Flash
	}
	cx, cy, rad := float32(e.X), float32(e.Y), float32(e.Radius)
	vector.DrawFilledCircle(screen, cx, cy, rad, fill, true)
	vector.StrokeCircle(screen, cx, cy, rad, r.strokeWidth, r.colors.EnemyStroke, true)

	if e.MaxHP <= 0 || e.HP >= e.MaxHP {
		return
	}
	w := 2 * rad
	top := cy - rad - hpBarOffset
	vector.DrawFilledRect(screen, cx-rad, top, w, hpBarHeight, r.colors.HPBack, false)
	vector.DrawFilledRect(screen, cx-rad, top, w*float32(e.HP/e.MaxHP), hpBarHeight, r.colors.HPFront, false)
}
