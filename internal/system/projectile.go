// internal/system/projectile.go
package system

import (
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"math"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update moves projectiles toward their targets. A projectile whose target is
// gone (or already dead) is spent without effect. Projectiles fired this tick
// wait until the next one.
func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs {
		proj := s.ecs.Projectiles[id]
		if proj == nil || proj.Hit {
			continue
		}
		if proj.Fresh {
			proj.Fresh = false
			continue
		}

		pos := s.ecs.Positions[id]
		enemy, _, targetPos, alive := s.ecs.LiveEnemy(proj.TargetID)
		if pos == nil || !alive {
			// Цель пропала: снаряд просто исчезает
			proj.Hit = true
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Hypot(dx, dy)

		if dist < proj.Speed {
			if killed := ApplyDamage(s.ecs, proj.TargetID, proj.Damage); killed {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyEvent{
					ID: proj.TargetID, Tier: enemy.Tier, Reward: enemy.Reward, X: targetPos.X, Y: targetPos.Y,
				}})
			}
			proj.Hit = true
			continue
		}

		pos.X += dx / dist * proj.Speed
		pos.Y += dy / dist * proj.Speed
	}
}
