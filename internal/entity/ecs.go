// internal/entity/ecs.go
package entity

import (
	"crown-defense/internal/component"
	"crown-defense/internal/types"
)

// ECS хранит компоненты по ID сущности. Списки EnemyIDs, TowerIDs и
// ProjectileIDs держат порядок создания: системы обходят сущности только по ним,
// поэтому порядок обхода (и выбор первой цели) детерминирован.
type ECS struct {
	Tick          uint64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Waypoints     map[types.EntityID]*component.Waypoint
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash

	EnemyIDs      []types.EntityID
	TowerIDs      []types.EntityID
	ProjectileIDs []types.EntityID

	Wave  *component.Wave
	Phase component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Waypoints:     make(map[types.EntityID]*component.Waypoint),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Wave:          &component.Wave{Number: 1},
		Phase:         component.SetupPhase,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers id in spawn order. Components are set by the caller.
func (ecs *ECS) AddEnemy(id types.EntityID, enemy *component.Enemy) {
	ecs.Enemies[id] = enemy
	ecs.EnemyIDs = append(ecs.EnemyIDs, id)
}

// AddTower registers id in placement order.
func (ecs *ECS) AddTower(id types.EntityID, tower *component.Tower) {
	ecs.Towers[id] = tower
	ecs.TowerIDs = append(ecs.TowerIDs, id)
}

// AddProjectile registers id in firing order.
func (ecs *ECS) AddProjectile(id types.EntityID, proj *component.Projectile) {
	ecs.Projectiles[id] = proj
	ecs.ProjectileIDs = append(ecs.ProjectileIDs, id)
}

// LiveEnemy returns the enemy only if it is still in the collection and has hp left.
// Это единственный способ разыменовать слабую ссылку снаряда.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Enemy, *component.Health, *component.Position, bool) {
	enemy, ok := ecs.Enemies[id]
	if !ok {
		return nil, nil, nil, false
	}
	health, ok := ecs.Healths[id]
	if !ok || !health.Alive() {
		return nil, nil, nil, false
	}
	pos, ok := ecs.Positions[id]
	if !ok {
		return nil, nil, nil, false
	}
	return enemy, health, pos, true
}

// RemoveDeadEnemies drops every enemy with hp <= 0, keeping spawn order.
// Returns the number removed.
func (ecs *ECS) RemoveDeadEnemies() int {
	kept := ecs.EnemyIDs[:0]
	removed := 0
	for _, id := range ecs.EnemyIDs {
		if health, ok := ecs.Healths[id]; ok && health.Alive() {
			kept = append(kept, id)
			continue
		}
		ecs.deleteEnemy(id)
		removed++
	}
	ecs.EnemyIDs = kept
	return removed
}

// RemoveSpentProjectiles drops every projectile marked hit.
func (ecs *ECS) RemoveSpentProjectiles() {
	kept := ecs.ProjectileIDs[:0]
	for _, id := range ecs.ProjectileIDs {
		if proj, ok := ecs.Projectiles[id]; ok && !proj.Hit {
			kept = append(kept, id)
			continue
		}
		delete(ecs.Positions, id)
		delete(ecs.Projectiles, id)
		delete(ecs.Renderables, id)
	}
	ecs.ProjectileIDs = kept
}

// ClearEnemies removes all enemies and projectiles.
func (ecs *ECS) ClearEnemies() {
	for _, id := range ecs.EnemyIDs {
		ecs.deleteEnemy(id)
	}
	ecs.EnemyIDs = ecs.EnemyIDs[:0]
	for _, id := range ecs.ProjectileIDs {
		delete(ecs.Positions, id)
		delete(ecs.Projectiles, id)
		delete(ecs.Renderables, id)
	}
	ecs.ProjectileIDs = ecs.ProjectileIDs[:0]
}

func (ecs *ECS) deleteEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Waypoints, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.DamageFlashes, id)
}
