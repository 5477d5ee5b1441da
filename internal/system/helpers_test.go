package system

import (
	"testing"

	"crown-defense/internal/component"
	"crown-defense/internal/defs"
	"crown-defense/internal/entity"
	"crown-defense/internal/event"
	"crown-defense/internal/types"
	"crown-defense/pkg/geometry"
)

// testWorld собирает ECS, диспетчер и короткую дорогу для тестов систем.
type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	lib        *defs.Library
	path       *geometry.Path
	events     map[event.EventType][]event.Event
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		lib:        defs.DefaultLibrary(),
		path:       geometry.MustPath(50, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100)),
		events:     make(map[event.EventType][]event.Event),
	}
	w.ecs.Phase = component.RunningPhase
	for _, et := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.EnemyReachedCrown,
		event.TowerFired, event.WaveStarted, event.WaveEnded,
	} {
		w.dispatcher.Subscribe(et, event.ListenerFunc(func(e event.Event) {
			w.events[e.Type] = append(w.events[e.Type], e)
		}))
	}
	return w
}

func (w *testWorld) addEnemy(x, y float64, waypoint int, hp, speed float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	w.ecs.Waypoints[id] = &component.Waypoint{Index: waypoint}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.AddEnemy(id, &component.Enemy{Tier: 0, Radius: 12, Reward: 15})
	return id
}

func (w *testWorld) addTower(x, y float64, towerType defs.TowerType) types.EntityID {
	def, _ := w.lib.Tower(towerType)
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Combats[id] = &component.Combat{Damage: def.Damage, Range: def.Range, Cooldown: def.Cooldown}
	w.ecs.AddTower(id, &component.Tower{Type: towerType, Level: 1, BaseCost: def.Cost, UpgradeCost: def.UpgradeCost})
	return id
}

func (w *testWorld) addProjectile(x, y float64, target types.EntityID, damage, speed float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.AddProjectile(id, &component.Projectile{TargetID: target, Damage: damage, Speed: speed, TowerType: defs.TowerBasic})
	return id
}
