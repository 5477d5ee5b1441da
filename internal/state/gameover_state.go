package state

import (
	"crown-defense/internal/config"
	"crown-defense/internal/ui"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог поверх последнего кадра. R или клик — в меню.
type GameOverState struct {
	sm        *StateMachine
	ctx       *Context
	gameState *GameState
}

func NewGameOverState(sm *StateMachine, ctx *Context, gs *GameState) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx, gameState: gs}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.gameState.toast.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	face := s.ctx.Fonts.Regular()
	snap := s.gameState.snap
	ui.DrawTitle(screen, "GAME OVER", face, config.ScreenWidth/2, config.ScreenHeight/2-40, 5, config.ErrorColor)
	ui.DrawLabel(screen, fmt.Sprintf("The crown fell on wave %d", snap.Wave), face,
		config.ScreenWidth/2, config.ScreenHeight/2+20, config.TextLightColor)
	ui.DrawLabel(screen, "press R to play again", face, config.ScreenWidth/2, config.ScreenHeight/2+45, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
