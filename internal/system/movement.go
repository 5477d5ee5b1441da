// internal/system/movement.go
package system

import (
	"crown-defense/internal/component"
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"crown-defense/pkg/geometry"
	"math"
)

// MovementSystem ведёт врагов по дороге от точки к точке.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *geometry.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *geometry.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

// Update moves every enemy one tick along the path. An enemy that reaches the
// final waypoint gets hp 0 and an EnemyReachedCrown event. Processing stops as
// soon as the session is over, so no arrival goes uncounted. Enemies after the
// one that ended the game keep their pre-tick positions, and the final
// snapshot shows them exactly where this tick stopped.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs {
		if s.ecs.Phase == component.GameOverPhase {
			return
		}
		health, ok := s.ecs.Healths[id]
		if !ok || !health.Alive() {
			continue
		}
		pos := s.ecs.Positions[id]
		wp := s.ecs.Waypoints[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || wp == nil || vel == nil || vel.Speed <= 0 {
			continue
		}

		target, ok := s.path.At(wp.Index + 1)
		if !ok {
			continue // нет следующей точки: враг инертен до фильтрации
		}

		dx := target.X - pos.X
		dy := target.Y - pos.Y
		dist := math.Hypot(dx, dy)

		if dist < vel.Speed {
			pos.X = target.X
			pos.Y = target.Y
			wp.Index++

			if wp.Index >= s.path.LastIndex() {
				health.Value = 0
				enemy := s.ecs.Enemies[id]
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedCrown, Data: event.EnemyEvent{
					ID: id, Tier: enemy.Tier, X: pos.X, Y: pos.Y,
				}})
			}
			continue
		}

		pos.X += dx / dist * vel.Speed
		pos.Y += dy / dist * vel.Speed
	}
}
