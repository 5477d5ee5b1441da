package system

import (
	"testing"

	"crown-defense/internal/component"
	"crown-defense/internal/defs"
	"crown-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileHomesOnTarget(t *testing.T) {
	w := newTestWorld(t)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	enemy := w.addEnemy(0, 100, 0, 20, 1)
	proj := w.addProjectile(0, 0, enemy, 10, 6)

	ps.Update()

	assert.Equal(t, component.Position{X: 0, Y: 6}, *w.ecs.Positions[proj])
	assert.False(t, w.ecs.Projectiles[proj].Hit)
}

func TestFreshProjectileWaitsOneTick(t *testing.T) {
	w := newTestWorld(t)
	cs := NewCombatSystem(w.ecs, w.lib, w.dispatcher)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	w.addTower(50, 60, defs.TowerBasic)
	w.addEnemy(50, 10, 0, 20, 1)

	cs.Update()
	ps.Update()

	require.Len(t, w.ecs.ProjectileIDs, 1)
	id := w.ecs.ProjectileIDs[0]
	assert.Equal(t, component.Position{X: 50, Y: 60}, *w.ecs.Positions[id])
	assert.False(t, w.ecs.Projectiles[id].Fresh)

	ps.Update()
	assert.InDelta(t, 54.0, w.ecs.Positions[id].Y, 1e-9)
}

func TestProjectileWithMissingTargetIsSpent(t *testing.T) {
	w := newTestWorld(t)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	enemy := w.addEnemy(0, 100, 0, 20, 1)
	proj := w.addProjectile(0, 0, enemy, 10, 6)

	w.ecs.Healths[enemy].Value = 0
	w.ecs.RemoveDeadEnemies()
	ps.Update()

	assert.True(t, w.ecs.Projectiles[proj].Hit)
	assert.Equal(t, component.Position{X: 0, Y: 0}, *w.ecs.Positions[proj])
	assert.Empty(t, w.events[event.EnemyKilled])

	w.ecs.RemoveSpentProjectiles()
	assert.Empty(t, w.ecs.ProjectileIDs)
}

func TestProjectileNonLethalHit(t *testing.T) {
	w := newTestWorld(t)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	enemy := w.addEnemy(0, 3, 0, 20, 1)
	proj := w.addProjectile(0, 0, enemy, 10, 6)

	ps.Update()

	assert.True(t, w.ecs.Projectiles[proj].Hit)
	assert.Equal(t, 10.0, w.ecs.Healths[enemy].Value)
	assert.Contains(t, w.ecs.DamageFlashes, enemy)
	assert.Empty(t, w.events[event.EnemyKilled])
}

func TestDoubleHitCreditsRewardOnce(t *testing.T) {
	w := newTestWorld(t)
	ps := NewProjectileSystem(w.ecs, w.dispatcher)
	enemy := w.addEnemy(0, 3, 0, 20, 1)
	first := w.addProjectile(0, 0, enemy, 25, 6)
	second := w.addProjectile(0, 1, enemy, 25, 6)

	ps.Update()

	assert.True(t, w.ecs.Projectiles[first].Hit)
	assert.True(t, w.ecs.Projectiles[second].Hit)
	assert.Zero(t, w.ecs.Healths[enemy].Value)
	require.Len(t, w.events[event.EnemyKilled], 1)
	assert.Equal(t, 15, w.events[event.EnemyKilled][0].Data.(event.EnemyEvent).Reward)

	assert.Equal(t, 1, w.ecs.RemoveDeadEnemies())
}

func TestApplyDamage(t *testing.T) {
	w := newTestWorld(t)
	enemy := w.addEnemy(0, 0, 0, 20, 1)

	assert.False(t, ApplyDamage(w.ecs, enemy, 5))
	assert.False(t, ApplyDamage(w.ecs, enemy, 0))
	assert.True(t, ApplyDamage(w.ecs, enemy, 100))
	assert.Zero(t, w.ecs.Healths[enemy].Value, "hp is clamped at zero")
	assert.False(t, ApplyDamage(w.ecs, enemy, 100), "a dead enemy cannot be killed again")
	assert.False(t, ApplyDamage(w.ecs, 12345, 10))
}

func TestVisualEffectExpiresFlash(t *testing.T) {
	w := newTestWorld(t)
	vs := NewVisualEffectSystem(w.ecs)
	enemy := w.addEnemy(0, 0, 0, 20, 1)
	ApplyDamage(w.ecs, enemy, 1)

	for i := 0; i < DamageFlashTicks-1; i++ {
		vs.Update()
	}
	assert.Contains(t, w.ecs.DamageFlashes, enemy)
	vs.Update()
	assert.NotContains(t, w.ecs.DamageFlashes, enemy)
}

func TestNewHitRestartsFlash(t *testing.T) {
	w := newTestWorld(t)
	vs := NewVisualEffectSystem(w.ecs)
	enemy := w.addEnemy(0, 0, 0, 20, 1)
	ApplyDamage(w.ecs, enemy, 1)

	for i := 0; i < DamageFlashTicks-1; i++ {
		vs.Update()
	}
	ApplyDamage(w.ecs, enemy, 1)
	vs.Update()
	assert.Contains(t, w.ecs.DamageFlashes, enemy)
	assert.Equal(t, DamageFlashTicks-1, w.ecs.DamageFlashes[enemy].TicksLeft)
}
