package app

import (
	"crown-defense/internal/component"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/types"
)

func (g *Game) look(id types.EntityID) component.Renderable {
	if r, ok := g.ECS.Renderables[id]; ok {
		return *r
	}
	return component.Renderable{}
}

// Snapshot copies the visible state of the session. Dead enemies waiting for
// the next filter pass and spent projectiles are left out.
func (g *Game) Snapshot() snapshot.Snapshot {
	ecs := g.ECS
	s := snapshot.Snapshot{
		Phase:       ecs.Phase,
		Frame:       ecs.Tick,
		Money:       g.money,
		Lives:       g.lives,
		Wave:        ecs.Wave.Number,
		WaveActive:  ecs.Wave.Active,
		QueueLen:    len(ecs.Wave.SpawnQueue),
		Selection:   g.selection,
		Difficulty:  g.difficulty,
		Enemies:     make([]snapshot.Enemy, 0, len(ecs.EnemyIDs)),
		Towers:      make([]snapshot.Tower, 0, len(ecs.TowerIDs)),
		Projectiles: make([]snapshot.Projectile, 0, len(ecs.ProjectileIDs)),
	}

	for _, id := range ecs.EnemyIDs {
		enemy, health, pos, alive := ecs.LiveEnemy(id)
		if !alive {
			continue
		}
		_, flashing := ecs.DamageFlashes[id]
		s.Enemies = append(s.Enemies, snapshot.Enemy{
			ID: id, Tier: enemy.Tier, X: pos.X, Y: pos.Y,
			HP: health.Value, MaxHP: health.Max, Radius: enemy.Radius, Flash: flashing,
			Color: g.look(id).Color,
		})
	}

	for _, id := range ecs.TowerIDs {
		tower := ecs.Towers[id]
		pos := ecs.Positions[id]
		combat := ecs.Combats[id]
		s.Towers = append(s.Towers, snapshot.Tower{
			ID: id, Type: tower.Type, X: pos.X, Y: pos.Y, Level: tower.Level,
			Damage: combat.Damage, Range: combat.Range, Cooldown: combat.Cooldown,
			UpgradeCost: tower.UpgradeCost, Color: g.look(id).Color,
		})
	}

	for _, id := range ecs.ProjectileIDs {
		proj := ecs.Projectiles[id]
		if proj.Hit {
			continue
		}
		pos := ecs.Positions[id]
		look := g.look(id)
		s.Projectiles = append(s.Projectiles, snapshot.Projectile{
			X: pos.X, Y: pos.Y, Type: proj.TowerType, Radius: look.Radius, Color: look.Color,
		})
	}
	return s
}
