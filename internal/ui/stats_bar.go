package ui

import (
	"crown-defense/internal/config"
	"crown-defense/internal/snapshot"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatsBar — верхняя панель: жизни, деньги, волна и очередь.
type StatsBar struct {
	face   text.Face
	health *PlayerHealthIndicator
	wave   *WaveIndicator
}

func NewStatsBar(face text.Face) *StatsBar {
	return &StatsBar{
		face:   face,
		health: NewPlayerHealthIndicator(10, config.ControlsY),
		wave:   NewWaveIndicator(config.ScreenWidth/2, config.ControlsY, 2),
	}
}

func (b *StatsBar) Draw(screen *ebiten.Image, snap *snapshot.Snapshot, maxLives int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.StatsBarHeight, config.PanelColor, false)

	b.health.Draw(screen, snap.Lives, maxLives, b.face)
	drawText(screen, fmt.Sprintf("$%d", snap.Money), b.face, 220, config.ControlsY, config.SelectedColor, text.AlignStart)
	b.wave.Draw(screen, snap.Wave, snap.WaveActive, b.face)
	if snap.WaveActive {
		drawText(screen, fmt.Sprintf("left: %d", snap.QueueLen+len(snap.Enemies)), b.face,
			config.ScreenWidth/2+40, config.ControlsY, config.TextLightColor, text.AlignStart)
	}
}
