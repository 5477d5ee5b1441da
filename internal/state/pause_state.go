// internal/state/pause_state.go
package state

import (
	"crown-defense/internal/config"
	"crown-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: тики не идут, поверх игры — затемнение.
type PauseState struct {
	stateMachine *StateMachine
	gameState    *GameState
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{
		stateMachine: sm,
		gameState:    gs,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.gameState.pauseButton.IsClicked(x, y)
	}

	if unpause {
		// При выходе из паузы «отжимаем» кнопку в самом игровом состоянии
		s.gameState.pauseButton.TogglePause()
		s.stateMachine.SetState(s.gameState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	face := s.gameState.ctx.Fonts.Regular()
	ui.DrawTitle(screen, "PAUSED", face, config.ScreenWidth/2, config.ScreenHeight/2-20, 4, config.TextLightColor)
	ui.DrawLabel(screen, "press P to continue", face, config.ScreenWidth/2, config.ScreenHeight/2+30, config.TextLightColor)
	s.gameState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
