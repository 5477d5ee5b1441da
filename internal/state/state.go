// internal/state/state.go
package state

import (
	game "crown-defense/internal/app"
	"crown-defense/internal/assets"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Hooks — внешние наблюдатели сессии (звук, трансляция).
type Hooks struct {
	OnSession func(g *game.Game)            // создана новая сессия
	OnFrame   func(snap *snapshot.Snapshot) // снимок после тиков кадра
}

// Context — общие зависимости всех состояний.
type Context struct {
	Library *defs.Library
	Policy  config.Policy
	Seed    int64
	Fonts   *assets.FontManager
	Hooks   Hooks
}

// StartSession создаёт, настраивает и запускает сессию, затем переключает машину в GameState.
func StartSession(sm *StateMachine, ctx *Context, difficulty defs.Difficulty, healthMode bool) error {
	rng := utils.NewPRNGService(ctx.Seed)
	g := game.NewGame(ctx.Library, rng, ctx.Policy)
	if err := g.ConfigureSession(difficulty, healthMode); err != nil {
		return err
	}
	if err := g.StartSession(); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"seed":       rng.Seed(),
		"difficulty": difficulty,
		"hp":         healthMode,
	}).Info("New session")

	if ctx.Hooks.OnSession != nil {
		ctx.Hooks.OnSession(g)
	}
	sm.SetState(NewGameState(sm, ctx, g, defs.StartingLives(healthMode)))
	return nil
}
