// internal/ui/menu_button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuButton — кнопка стартового экрана: крупный текст и горячая клавиша.
type MenuButton struct {
	*Button
	Key ebiten.Key
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect image.Rectangle, label string, key ebiten.Key, face text.Face) *MenuButton {
	return &MenuButton{Button: NewButton(rect, label, face), Key: key}
}

// Triggered — кнопку нажали мышью или горячей клавишей.
func (b *MenuButton) Triggered(clicked bool, x, y int, keyPressed func(ebiten.Key) bool) bool {
	if b.Disabled {
		return false
	}
	return (clicked && b.Contains(x, y)) || keyPressed(b.Key)
}
