package ui

import (
	"crown-defense/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Toast — короткое сообщение над магазином, плавно гаснет.
type Toast struct {
	X, Y    float64
	face    text.Face
	message string
	color   color.RGBA
	fade    *gween.Tween
	alpha   float32
}

func NewToast(x, y float64, face text.Face) *Toast {
	return &Toast{X: x, Y: y, face: face}
}

// Show заменяет текущее сообщение и перезапускает затухание.
func (t *Toast) Show(message string, clr color.RGBA) {
	t.message = message
	t.color = clr
	t.alpha = 1
	t.fade = gween.New(1, 0, config.ToastDuration, ease.InQuad)
}

// Message возвращает видимое сообщение или пустую строку.
func (t *Toast) Message() string {
	if t.alpha <= 0 {
		return ""
	}
	return t.message
}

func (t *Toast) Update(deltaTime float64) {
	if t.fade == nil {
		return
	}
	alpha, finished := t.fade.Update(float32(deltaTime))
	t.alpha = alpha
	if finished {
		t.fade = nil
		t.alpha = 0
	}
}

func (t *Toast) Draw(screen *ebiten.Image) {
	if t.alpha <= 0 || t.message == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(t.color)
	op.ColorScale.ScaleAlpha(t.alpha)
	text.Draw(screen, t.message, t.face, op)
}
