package system

import (
	"sort"
	"testing"

	"crown-defense/internal/config"
	"crown-defense/internal/event"
	"crown-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWaveSystem(w *testWorld, seed int64) *WaveSystem {
	return NewWaveSystem(w.ecs, w.lib, w.path, utils.NewPRNGService(seed), w.dispatcher)
}

func TestGenerateWaveFirstWave(t *testing.T) {
	ws := newWaveSystem(newTestWorld(t), 7)

	queue := ws.GenerateWave(1)

	require.Len(t, queue, 7)
	for _, tier := range queue {
		assert.Equal(t, 0, tier)
	}
	assert.True(t, sort.IntsAreSorted(queue))
}

func TestGenerateWaveLaterWavesStaySortedAndBounded(t *testing.T) {
	ws := newWaveSystem(newTestWorld(t), 11)

	for wave := 1; wave <= 20; wave++ {
		queue := ws.GenerateWave(wave)
		assert.Len(t, queue, 5+2*wave, "wave %d", wave)
		assert.True(t, sort.IntsAreSorted(queue), "wave %d", wave)
		for _, tier := range queue {
			assert.GreaterOrEqual(t, tier, 0)
			assert.LessOrEqual(t, tier, ws.lib.Waves.HighestTier(wave))
		}
	}
}

func TestGenerateWaveIsDeterministicForSeed(t *testing.T) {
	a := newWaveSystem(newTestWorld(t), 99)
	b := newWaveSystem(newTestWorld(t), 99)
	assert.Equal(t, a.GenerateWave(9), b.GenerateWave(9))
}

func TestStartWaveIsNoOpWhileActive(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w, 3)

	require.True(t, ws.StartWave())
	queue := append([]int(nil), w.ecs.Wave.SpawnQueue...)
	w.ecs.Wave.SpawnTimer = 17

	assert.False(t, ws.StartWave())
	assert.Equal(t, queue, w.ecs.Wave.SpawnQueue)
	assert.Equal(t, 1, w.ecs.Wave.Number)
	assert.True(t, w.ecs.Wave.Active)
	assert.Equal(t, 17, w.ecs.Wave.SpawnTimer)
	assert.Len(t, w.events[event.WaveStarted], 1)
}

func TestUpdateSpawnsOnePerInterval(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w, 3)
	require.True(t, ws.StartWave())

	for i := 0; i < config.SpawnIntervalTicks-1; i++ {
		ws.Update()
	}
	assert.Empty(t, w.ecs.EnemyIDs)

	ws.Update()
	require.Len(t, w.ecs.EnemyIDs, 1)
	assert.Len(t, w.ecs.Wave.SpawnQueue, 6)

	id := w.ecs.EnemyIDs[0]
	assert.Equal(t, 0.0, w.ecs.Positions[id].X)
	assert.Equal(t, 0.0, w.ecs.Positions[id].Y)
	assert.Equal(t, 0, w.ecs.Waypoints[id].Index)
	assert.Equal(t, 20.0, w.ecs.Healths[id].Value)
	assert.Equal(t, 12.0, w.ecs.Enemies[id].Radius)
}

func TestSpawnAppliesHealthMultiplier(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w, 3)
	ws.SetHealthMultiplier(1.5)
	require.True(t, ws.StartWave())

	for i := 0; i < config.SpawnIntervalTicks; i++ {
		ws.Update()
	}
	require.Len(t, w.ecs.EnemyIDs, 1)
	h := w.ecs.Healths[w.ecs.EnemyIDs[0]]
	assert.Equal(t, 30.0, h.Value)
	assert.Equal(t, 30.0, h.Max)
}

func TestUpdateDoesNothingWhenIdle(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w, 3)
	for i := 0; i < 3*config.SpawnIntervalTicks; i++ {
		ws.Update()
	}
	assert.Empty(t, w.ecs.EnemyIDs)
}

func TestCheckWaveEnd(t *testing.T) {
	w := newTestWorld(t)
	ws := newWaveSystem(w, 3)
	require.True(t, ws.StartWave())

	assert.False(t, ws.CheckWaveEnd(), "queue still has enemies")

	w.ecs.Wave.SpawnQueue = nil
	id := w.addEnemy(0, 0, 0, 10, 1)
	assert.False(t, ws.CheckWaveEnd(), "an enemy is still alive")

	w.ecs.Healths[id].Value = 0
	w.ecs.RemoveDeadEnemies()
	assert.True(t, ws.CheckWaveEnd())
	assert.False(t, w.ecs.Wave.Active)
	assert.Equal(t, 2, w.ecs.Wave.Number)
	require.Len(t, w.events[event.WaveEnded], 1)
	assert.Equal(t, 1, w.events[event.WaveEnded][0].Data)

	assert.False(t, ws.CheckWaveEnd(), "idle wave does not end twice")
}
