// internal/ui/button.go
package ui

import (
	"crown-defense/internal/config"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Face       text.Face
	Selected   bool // подсвечивается рамкой (выбранный товар в магазине)
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face text.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		Face:       face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked — клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку. cursorX/cursorY нужны для подсветки при наведении.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = config.ButtonDisabled
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)

	border := color.Color(config.IndicatorStroke)
	if b.Selected {
		border = config.SelectedColor
	}
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, border, true)

	center := b.Rect.Min.Add(b.Rect.Size().Div(2))
	drawText(screen, b.Text, b.Face, float64(center.X), float64(center.Y), b.TextColor, text.AlignCenter)
}
