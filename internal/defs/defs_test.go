package defs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveRulesDefaults(t *testing.T) {
	r := DefaultWaveRules()

	assert.Equal(t, 7, r.Count(1))
	assert.Equal(t, 9, r.Count(2))
	assert.Equal(t, 25, r.Count(10))

	assert.Equal(t, 0, r.HighestTier(1))
	assert.Equal(t, 0, r.HighestTier(2))
	assert.Equal(t, 1, r.HighestTier(3))
	assert.Equal(t, 5, r.HighestTier(12))
	assert.Equal(t, 6, r.HighestTier(13))
	assert.Equal(t, MaxTier, r.HighestTier(100))
}

func TestWaveRulesHighestTierIsMonotonic(t *testing.T) {
	r := DefaultWaveRules()
	prev := r.HighestTier(1)
	for w := 2; w <= 40; w++ {
		cur := r.HighestTier(w)
		assert.GreaterOrEqual(t, cur, prev, "wave %d", w)
		prev = cur
	}
}

func TestWaveRulesCountNeverBelowOne(t *testing.T) {
	r := WaveRules{BaseCount: -10, CountPerWave: 0, TierUnlockStep: 0}
	assert.Equal(t, 1, r.Count(1))
	assert.Equal(t, 0, r.HighestTier(1))
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()

	require.Len(t, lib.Enemies, MaxTier+1)
	for i, e := range lib.Enemies {
		assert.Equal(t, i, e.Tier)
	}
	assert.Equal(t, []TowerType{TowerBasic, TowerSniper}, lib.TowerOrder)

	basic, ok := lib.Tower(TowerBasic)
	require.True(t, ok)
	assert.Equal(t, 50, basic.Cost)
	assert.Equal(t, 100, basic.UpgradeCost)

	hard, ok := lib.Difficulty(DifficultyHard)
	require.True(t, ok)
	assert.Equal(t, 100, hard.StartingMoney)
	assert.InDelta(t, 1.5, hard.HealthMultiplier, 1e-9)

	assert.Equal(t, lib.Enemies[0], lib.Enemy(-3))
	assert.Equal(t, lib.Enemies[MaxTier], lib.Enemy(42))
}

func TestLoadLibraryOverridesSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.json")
	body := `{
		"towers": [{"type": "basic", "name": "Cheap", "cost": 10, "upgrade_cost": 20, "damage": 5, "range": 100, "cooldown": 30, "projectile_speed": 6}],
		"waves": {"base_count": 3, "count_per_wave": 1, "tier_unlock_step": 3}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)

	assert.Equal(t, []TowerType{TowerBasic}, lib.TowerOrder)
	assert.Equal(t, 10, lib.Towers[TowerBasic].Cost)
	_, hasSniper := lib.Tower(TowerSniper)
	assert.False(t, hasSniper)

	assert.Equal(t, 4, lib.Waves.Count(1))
	assert.Len(t, lib.Enemies, MaxTier+1, "enemy table keeps built-in values")
}

func TestLoadLibraryErrors(t *testing.T) {
	_, err := LoadLibrary(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"enemies": [{"tier": 0}]}`), 0o644))
	_, err = LoadLibrary(path)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func enemyTable(mutate func(i int, e *EnemyDefinition)) string {
	parts := make([]string, 0, MaxTier+1)
	for i, e := range DefaultEnemies() {
		mutate(i, &e)
		parts = append(parts, fmt.Sprintf(`{"tier": %d, "health": %g, "speed": %g, "reward": %d}`, e.Tier, e.Health, e.Speed, e.Reward))
	}
	return `{"enemies": [` + strings.Join(parts, ",") + `]}`
}

func TestLoadLibraryRejectsBrokenValues(t *testing.T) {
	tower := func(fields string) string {
		return `{"towers": [{"type": "basic", "cost": 50, "upgrade_cost": 100, "damage": 10, "range": 130, "cooldown": 40, "projectile_speed": 6` + fields + `}]}`
	}
	cases := map[string]string{
		"negative starting money": `{"difficulties": [{"difficulty": "easy", "starting_money": -10, "health_multiplier": 1}]}`,
		"zero health multiplier":  `{"difficulties": [{"difficulty": "hard", "starting_money": 100, "health_multiplier": 0}]}`,
		"zero projectile speed":   tower(`, "projectile_speed": 0`),
		"negative cost":           tower(`, "cost": -50`),
		"negative upgrade cost":   tower(`, "upgrade_cost": -1`),
		"zero damage":             tower(`, "damage": 0`),
		"negative cooldown":       tower(`, "cooldown": -5`),
		"untyped tower":           `{"towers": [{"cost": 50, "damage": 10, "range": 130, "projectile_speed": 6}]}`,
		"zero enemy speed":        enemyTable(func(i int, e *EnemyDefinition) { e.Speed = 0 }),
		"negative enemy speed":    enemyTable(func(i int, e *EnemyDefinition) { e.Speed = -1 }),
		"dead on spawn":           enemyTable(func(i int, e *EnemyDefinition) { e.Health = 0 }),
		"negative reward":         enemyTable(func(i int, e *EnemyDefinition) { e.Reward = -15 }),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "defs.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			lib, err := LoadLibrary(path)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
			assert.Nil(t, lib)
		})
	}
}

func TestLoadLibraryAcceptsValidEnemyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.json")
	body := enemyTable(func(i int, e *EnemyDefinition) { e.Health *= 2 })
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.InDelta(t, 40, lib.Enemy(0).Health, 1e-9)
}

func TestDefaultLibraryIsValid(t *testing.T) {
	assert.NoError(t, DefaultLibrary().validate())
}

func TestStartingLives(t *testing.T) {
	assert.Equal(t, 100, StartingLives(true))
	assert.Equal(t, 1, StartingLives(false))
}
