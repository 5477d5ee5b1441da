package system

import (
	"testing"

	"crown-defense/internal/defs"
	"crown-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatTargetsFirstEnemyInSpawnOrder(t *testing.T) {
	w := newTestWorld(t)
	cs := NewCombatSystem(w.ecs, w.lib, w.dispatcher)
	tower := w.addTower(50, 60, defs.TowerBasic)
	far := w.addEnemy(0, 0, 0, 20, 1)    // ~78 px
	near := w.addEnemy(50, 10, 0, 20, 1) // 50 px

	cs.Update()

	require.Len(t, w.ecs.ProjectileIDs, 1)
	proj := w.ecs.Projectiles[w.ecs.ProjectileIDs[0]]
	assert.Equal(t, far, proj.TargetID, "first match in spawn order, not nearest")
	assert.NotEqual(t, near, proj.TargetID)
	assert.True(t, proj.Fresh)
	assert.Equal(t, 10.0, proj.Damage)
	assert.Equal(t, 6.0, proj.Speed)
	assert.Equal(t, 40.0, w.ecs.Combats[tower].Timer)
	assert.Len(t, w.events[event.TowerFired], 1)
}

func TestCombatCooldownCountsDown(t *testing.T) {
	w := newTestWorld(t)
	cs := NewCombatSystem(w.ecs, w.lib, w.dispatcher)
	tower := w.addTower(50, 60, defs.TowerBasic)
	w.addEnemy(50, 10, 0, 1000, 1)

	cs.Update()
	for i := 0; i < 40; i++ {
		cs.Update()
	}
	assert.Len(t, w.ecs.ProjectileIDs, 1, "still cooling down")
	assert.Zero(t, w.ecs.Combats[tower].Timer)

	cs.Update()
	assert.Len(t, w.ecs.ProjectileIDs, 2)
}

func TestCombatRangeIsInclusive(t *testing.T) {
	w := newTestWorld(t)
	cs := NewCombatSystem(w.ecs, w.lib, w.dispatcher)
	w.addTower(0, 130, defs.TowerBasic)
	w.addEnemy(0, 0, 0, 20, 1)

	cs.Update()
	assert.Len(t, w.ecs.ProjectileIDs, 1)
}

func TestCombatIgnoresOutOfRangeAndDeadEnemies(t *testing.T) {
	w := newTestWorld(t)
	cs := NewCombatSystem(w.ecs, w.lib, w.dispatcher)
	tower := w.addTower(0, 200, defs.TowerBasic)
	w.addEnemy(0, 0, 0, 20, 1)
	dead := w.addEnemy(0, 150, 0, 20, 1)
	w.ecs.Healths[dead].Value = 0

	cs.Update()

	assert.Empty(t, w.ecs.ProjectileIDs)
	assert.Zero(t, w.ecs.Combats[tower].Timer, "a tower with no target stays ready")
}
