// internal/ui/player_health_indicator.go
package ui

import (
	"crown-defense/internal/config"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCells         = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает жизни короны: ряд кружков и число.
// Каждый кружок — десятая часть запаса; в режиме одного удара кружок один.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// FilledCells returns how many of cells circles are lit for the given lives.
func FilledCells(lives, maxLives, cells int) int {
	if lives <= 0 || maxLives <= 0 {
		return 0
	}
	if lives >= maxLives {
		return cells
	}
	n := (lives*cells + maxLives - 1) / maxLives // вверх: пока жив, хоть один кружок горит
	return n
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, lives, maxLives int, face text.Face) {
	cells := HealthCells
	if maxLives < cells {
		cells = maxLives
	}
	filled := FilledCells(lives, maxLives, cells)

	for j := 0; j < cells; j++ {
		cx := i.X + HealthCircleRadius + float32(j)*(HealthCircleRadius*2+HealthCircleSpacing)
		var clr color.Color = color.Black
		if j < filled {
			clr = config.ErrorColor
			if lives*2 > maxLives {
				clr = config.OkColor
			}
		}
		vector.DrawFilledCircle(screen, cx, i.Y, HealthCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, i.Y, HealthCircleRadius, 1, color.White, true)
	}

	textX := i.X + float32(cells)*(HealthCircleRadius*2+HealthCircleSpacing) + 4
	drawText(screen, fmt.Sprintf("%d/%d", lives, maxLives), face, float64(textX), float64(i.Y), config.TextLightColor, text.AlignStart)
}
