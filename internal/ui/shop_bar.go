package ui

import (
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	shopButtonWidth = 150
	shopPadding     = 6
	waveButtonWidth = 160
)

// ShopBar — нижняя панель: товары (башни) и кнопка следующей волны.
type ShopBar struct {
	Items      []defs.TowerType
	buttons    []*Button
	WaveButton *Button
	top        int
}

func NewShopBar(lib *defs.Library, face text.Face) *ShopBar {
	top := config.ScreenHeight - config.ShopBarHeight
	bar := &ShopBar{top: top}

	for i, t := range lib.TowerOrder {
		def, _ := lib.Tower(t)
		x := shopPadding + i*(shopButtonWidth+shopPadding)
		rect := image.Rect(x, top+shopPadding, x+shopButtonWidth, config.ScreenHeight-shopPadding)
		label := fmt.Sprintf("[%d] %s $%d", i+1, def.Name, def.Cost)
		bar.Items = append(bar.Items, t)
		bar.buttons = append(bar.buttons, NewButton(rect, label, face))
	}

	waveRect := image.Rect(config.ScreenWidth-waveButtonWidth-shopPadding, top+shopPadding,
		config.ScreenWidth-shopPadding, config.ScreenHeight-shopPadding)
	bar.WaveButton = NewButton(waveRect, "START WAVE [Space]", face)
	return bar
}

// Contains — точка внутри панели магазина.
func (b *ShopBar) Contains(y int) bool {
	return y >= b.top
}

// ItemAt возвращает тип башни под курсором.
func (b *ShopBar) ItemAt(x, y int) (defs.TowerType, bool) {
	for i, btn := range b.buttons {
		if btn.IsClicked(x, y) {
			return b.Items[i], true
		}
	}
	return defs.TowerNone, false
}

// Sync подсвечивает выбранный товар, недоступные по цене и состояние кнопки волны.
func (b *ShopBar) Sync(selection defs.TowerType, money int, costs map[defs.TowerType]int, waveActive bool) {
	for i, btn := range b.buttons {
		btn.Selected = b.Items[i] == selection
		btn.TextColor = config.TextLightColor
		if money < costs[b.Items[i]] {
			btn.TextColor = config.ErrorColor
		}
	}
	b.WaveButton.Disabled = waveActive
	if waveActive {
		b.WaveButton.Text = "DEFEND!"
	} else {
		b.WaveButton.Text = "START WAVE [Space]"
	}
}

func (b *ShopBar) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, 0, float32(b.top), config.ScreenWidth, config.ShopBarHeight, config.PanelColor, false)
	for _, btn := range b.buttons {
		btn.Draw(screen, cursorX, cursorY)
	}
	b.WaveButton.Draw(screen, cursorX, cursorY)
}
