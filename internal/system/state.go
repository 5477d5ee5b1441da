// internal/system/state.go
package system

import (
	"crown-defense/internal/component"
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"crown-defense/internal/interfaces"

	log "github.com/sirupsen/logrus"
)

// StateSystem переключает фазы сессии: подготовка -> игра -> конец игры.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
}

// NewStateSystem subscribes to EnemyReachedCrown. Subscribe it after the
// listener that deducts lives, so it sees the updated count.
func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyReachedCrown, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyReachedCrown && s.gameContext.Lives() <= 0 {
		s.SwitchToGameOver()
	}
}

func (s *StateSystem) SwitchToRunning() {
	s.ecs.Phase = component.RunningPhase
	log.Info("Session started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionStarted})
}

func (s *StateSystem) SwitchToGameOver() {
	if s.ecs.Phase == component.GameOverPhase {
		return
	}
	s.ecs.Phase = component.GameOverPhase
	log.WithField("wave", s.ecs.Wave.Number).Info("Game over")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.ecs.Wave.Number})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
