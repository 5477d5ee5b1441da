// internal/state/menu_state.go
package state

import (
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/ui"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

const (
	menuButtonW = 160
	menuButtonH = 40
)

// MenuState — стартовый экран: выбор сложности и режима здоровья.
type MenuState struct {
	sm         *StateMachine
	ctx        *Context
	difficulty defs.Difficulty
	healthMode *bool

	difficultyButtons map[defs.Difficulty]*ui.MenuButton
	fullHPButton      *ui.MenuButton
	oneHitButton      *ui.MenuButton
	startButton       *ui.MenuButton
	lastError         string
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	face := ctx.Fonts.Regular()
	row := func(i, n, y int) image.Rectangle {
		total := n*menuButtonW + (n-1)*20
		x := (config.ScreenWidth-total)/2 + i*(menuButtonW+20)
		return image.Rect(x, y, x+menuButtonW, y+menuButtonH)
	}

	m := &MenuState{
		sm:                sm,
		ctx:               ctx,
		difficultyButtons: make(map[defs.Difficulty]*ui.MenuButton),
	}
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, d := range []defs.Difficulty{defs.DifficultyEasy, defs.DifficultyNormal, defs.DifficultyHard} {
		def, _ := ctx.Library.Difficulty(d)
		label := fmt.Sprintf("[%d] %s ($%d)", i+1, d, def.StartingMoney)
		m.difficultyButtons[d] = ui.NewMenuButton(row(i, 3, 220), label, keys[i], face)
	}
	m.fullHPButton = ui.NewMenuButton(row(0, 2, 320), "[H] 100 HP", ebiten.KeyH, face)
	m.oneHitButton = ui.NewMenuButton(row(1, 2, 320), "[K] 1 Hit KO", ebiten.KeyK, face)
	m.startButton = ui.NewMenuButton(row(0, 1, 420), "[Enter] START", ebiten.KeyEnter, face)
	m.startButton.Disabled = true
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()

	for d, btn := range m.difficultyButtons {
		if btn.Triggered(clicked, x, y, inpututil.IsKeyJustPressed) {
			m.difficulty = d
		}
	}
	if m.fullHPButton.Triggered(clicked, x, y, inpututil.IsKeyJustPressed) {
		v := true
		m.healthMode = &v
	}
	if m.oneHitButton.Triggered(clicked, x, y, inpututil.IsKeyJustPressed) {
		v := false
		m.healthMode = &v
	}
	m.sync()

	if m.startButton.Triggered(clicked, x, y, inpututil.IsKeyJustPressed) {
		if err := StartSession(m.sm, m.ctx, m.difficulty, *m.healthMode); err != nil {
			log.WithError(err).Warn("Cannot start session")
			m.lastError = err.Error()
		}
	}
}

// sync подсвечивает выбранные варианты и разрешает старт, когда выбраны оба.
func (m *MenuState) sync() {
	for d, btn := range m.difficultyButtons {
		btn.Selected = d == m.difficulty
	}
	m.fullHPButton.Selected = m.healthMode != nil && *m.healthMode
	m.oneHitButton.Selected = m.healthMode != nil && !*m.healthMode
	m.startButton.Disabled = m.difficulty == "" || m.healthMode == nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.ctx.Fonts.Regular()
	x, y := ebiten.CursorPosition()

	ui.DrawTitle(screen, "CROWN DEFENSE", face, config.ScreenWidth/2, 120, 4, config.CrownColor)
	ui.DrawLabel(screen, "Difficulty", face, config.ScreenWidth/2, 200, config.TextLightColor)
	for _, btn := range m.difficultyButtons {
		btn.Draw(screen, x, y)
	}
	ui.DrawLabel(screen, "Health mode", face, config.ScreenWidth/2, 300, config.TextLightColor)
	m.fullHPButton.Draw(screen, x, y)
	m.oneHitButton.Draw(screen, x, y)
	m.startButton.Draw(screen, x, y)

	if m.lastError != "" {
		ui.DrawLabel(screen, m.lastError, face, config.ScreenWidth/2, 490, config.ErrorColor)
	}
}

func (m *MenuState) Exit() {}
