package ui

import (
	"crown-defense/internal/config"
	"crown-defense/internal/utils"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Scale        float64
	Color        color.Color
	ActiveColor  color.Color
	OutlineColor color.Color
	Outline      float64
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, scale float64) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Scale:        scale,
		Color:        config.IdleStateColor,
		ActiveColor:  config.WaveStateColor,
		OutlineColor: color.White,
		Outline:      1,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, active bool, face text.Face) {
	label := utils.ToRoman(waveNumber)
	if label == "" {
		return
	}

	textColor := i.Color
	if active {
		textColor = i.ActiveColor
	}

	// Обводка: тот же текст со смещениями
	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawTextScaled(screen, label, face, i.X+d[0]*i.Outline, i.Y+d[1]*i.Outline, i.Scale, i.OutlineColor)
	}
	drawTextScaled(screen, label, face, i.X, i.Y, i.Scale, textColor)
}
