package system

import (
	"crown-defense/internal/component"
	"crown-defense/internal/defs"
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"crown-defense/internal/types"
	"math"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, lib: lib, eventDispatcher: eventDispatcher}
}

// Update ticks every tower in placement order. A tower on cooldown only counts
// down; a ready tower fires at the first enemy in range and restarts its cooldown.
func (s *CombatSystem) Update() {
	for _, id := range s.ecs.TowerIDs {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		if combat.Timer > 0 {
			combat.Timer--
			continue
		}

		towerPos := s.ecs.Positions[id]
		targetID, found := s.findFirstEnemyInRange(towerPos, combat.Range)
		if !found {
			continue
		}

		s.createProjectile(id, targetID, combat)
		combat.Timer = combat.Cooldown
	}
}

// findFirstEnemyInRange returns the first live enemy in spawn order within range.
// Ближайшего не ищем: порядок появления — и есть правило выбора цели.
func (s *CombatSystem) findFirstEnemyInRange(from *component.Position, rangeRadius float64) (types.EntityID, bool) {
	for _, enemyID := range s.ecs.EnemyIDs {
		_, _, pos, alive := s.ecs.LiveEnemy(enemyID)
		if !alive {
			continue
		}
		if math.Hypot(pos.X-from.X, pos.Y-from.Y) <= rangeRadius {
			return enemyID, true
		}
	}
	return 0, false
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, combat *component.Combat) {
	tower := s.ecs.Towers[towerID]
	towerPos := s.ecs.Positions[towerID]
	def, _ := s.lib.Tower(tower.Type)

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  def.ProjectileColor,
		Radius: def.ProjectileSize,
	}
	s.ecs.AddProjectile(projID, &component.Projectile{
		TargetID:  enemyID,
		Speed:     def.ProjectileSpeed,
		Damage:    combat.Damage,
		TowerType: tower.Type,
		Fresh:     true,
	})

	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.TowerEvent{
		ID: towerID, Type: tower.Type, Level: tower.Level, X: towerPos.X, Y: towerPos.Y,
	}})
}
