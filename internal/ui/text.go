package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText рисует строку, вертикально центрированную по y.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextScaled — то же, но с увеличением (для заголовков растровым шрифтом).
func drawTextScaled(dst *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawTitle рисует крупный текст по центру точки (x, y).
func DrawTitle(dst *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color) {
	drawTextScaled(dst, s, face, x, y, scale, clr)
}

// DrawLabel рисует обычный текст по центру точки (x, y).
func DrawLabel(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	drawText(dst, s, face, x, y, clr, text.AlignCenter)
}
