// internal/system/utils.go
package system

import (
	"crown-defense/internal/component"
	"crown-defense/internal/entity"
	"crown-defense/internal/types"
)

// DamageFlashTicks — длительность вспышки урона в тиках.
const DamageFlashTicks = 6

// ApplyDamage наносит урон сущности. Возвращает true, только если этот удар убил цель:
// по уже мёртвой цели урон не проходит, поэтому награда не начислится дважды.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || !health.Alive() || damage <= 0 {
		return false
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	if _, isEnemy := ecs.Enemies[entityID]; isEnemy {
		ecs.DamageFlashes[entityID] = &component.DamageFlash{TicksLeft: DamageFlashTicks}
	}
	return !health.Alive()
}
