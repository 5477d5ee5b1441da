// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidDefinition — значение в файле определений нарушает правила игры.
var ErrInvalidDefinition = errors.New("invalid definition")

// Library holds every definition table used by a session.
type Library struct {
	Enemies      []EnemyDefinition // индекс == уровень
	Towers       map[TowerType]TowerDefinition
	TowerOrder   []TowerType // порядок в магазине
	Difficulties map[Difficulty]DifficultyDefinition
	Waves        WaveRules
}

// libraryFile is the on-disk shape of a definitions override file.
// Missing sections keep their built-in values.
type libraryFile struct {
	Enemies      []EnemyDefinition      `json:"enemies,omitempty"`
	Towers       []TowerDefinition      `json:"towers,omitempty"`
	Difficulties []DifficultyDefinition `json:"difficulties,omitempty"`
	Waves        *WaveRules             `json:"waves,omitempty"`
}

// DefaultLibrary returns the built-in definitions.
func DefaultLibrary() *Library {
	lib := &Library{Waves: DefaultWaveRules()}
	lib.setEnemies(DefaultEnemies())
	lib.setTowers(DefaultTowers())
	lib.setDifficulties(DefaultDifficulties())
	return lib
}

// LoadLibrary reads a JSON definitions file on top of the built-in library.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	var raw libraryFile
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := DefaultLibrary()
	if len(raw.Enemies) > 0 {
		if err := lib.setEnemiesChecked(raw.Enemies); err != nil {
			return nil, err
		}
	}
	if len(raw.Towers) > 0 {
		lib.setTowers(raw.Towers)
	}
	if len(raw.Difficulties) > 0 {
		lib.setDifficulties(raw.Difficulties)
	}
	if raw.Waves != nil {
		lib.Waves = *raw.Waves
	}
	if err := lib.validate(); err != nil {
		return nil, fmt.Errorf("definitions %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"enemies": len(lib.Enemies),
		"towers":  len(lib.Towers),
		"path":    path,
	}).Info("Loaded definitions")
	return lib, nil
}

// Enemy returns the definition of a tier, clamped into the table.
func (l *Library) Enemy(tier int) EnemyDefinition {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(l.Enemies) {
		tier = len(l.Enemies) - 1
	}
	return l.Enemies[tier]
}

// Tower returns the definition of a tower type.
func (l *Library) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := l.Towers[t]
	return def, ok
}

// Difficulty returns the definition of a difficulty level.
func (l *Library) Difficulty(d Difficulty) (DifficultyDefinition, bool) {
	def, ok := l.Difficulties[d]
	return def, ok
}

func (l *Library) setEnemiesChecked(enemies []EnemyDefinition) error {
	if len(enemies) != MaxTier+1 {
		return fmt.Errorf("%w: enemy table must define %d tiers, got %d", ErrInvalidDefinition, MaxTier+1, len(enemies))
	}
	l.setEnemies(enemies)
	for i, e := range l.Enemies {
		if e.Tier != i {
			return fmt.Errorf("%w: enemy tiers must be 0..%d without gaps, found %d at position %d", ErrInvalidDefinition, MaxTier, e.Tier, i)
		}
	}
	return nil
}

func (l *Library) setEnemies(enemies []EnemyDefinition) {
	l.Enemies = append([]EnemyDefinition(nil), enemies...)
	sort.SliceStable(l.Enemies, func(i, j int) bool { return l.Enemies[i].Tier < l.Enemies[j].Tier })
}

func (l *Library) setTowers(towers []TowerDefinition) {
	l.Towers = make(map[TowerType]TowerDefinition, len(towers))
	l.TowerOrder = l.TowerOrder[:0]
	for _, def := range towers {
		if _, dup := l.Towers[def.Type]; !dup {
			l.TowerOrder = append(l.TowerOrder, def.Type)
		}
		l.Towers[def.Type] = def
	}
}

func (l *Library) setDifficulties(diffs []DifficultyDefinition) {
	l.Difficulties = make(map[Difficulty]DifficultyDefinition, len(diffs))
	for _, def := range diffs {
		l.Difficulties[def.Difficulty] = def
	}
}

// validate проверяет, что таблицы не ломают экономику и симуляцию:
// деньги не уходят в минус, враги доходят до короны, снаряды долетают.
func (l *Library) validate() error {
	for _, e := range l.Enemies {
		switch {
		case e.Health <= 0:
			return fmt.Errorf("%w: enemy tier %d: health must be positive", ErrInvalidDefinition, e.Tier)
		case e.Speed <= 0:
			return fmt.Errorf("%w: enemy tier %d: speed must be positive", ErrInvalidDefinition, e.Tier)
		case e.Reward < 0:
			return fmt.Errorf("%w: enemy tier %d: reward must not be negative", ErrInvalidDefinition, e.Tier)
		}
	}

	if len(l.TowerOrder) == 0 {
		return fmt.Errorf("%w: no tower types", ErrInvalidDefinition)
	}
	for _, t := range l.TowerOrder {
		def := l.Towers[t]
		switch {
		case t == TowerNone:
			return fmt.Errorf("%w: tower without type", ErrInvalidDefinition)
		case def.Cost < 0 || def.UpgradeCost < 0:
			return fmt.Errorf("%w: tower %q: costs must not be negative", ErrInvalidDefinition, t)
		case def.Damage <= 0 || def.Range <= 0:
			return fmt.Errorf("%w: tower %q: damage and range must be positive", ErrInvalidDefinition, t)
		case def.Cooldown < 0:
			return fmt.Errorf("%w: tower %q: cooldown must not be negative", ErrInvalidDefinition, t)
		case def.ProjectileSpeed <= 0:
			return fmt.Errorf("%w: tower %q: projectile speed must be positive", ErrInvalidDefinition, t)
		}
	}

	for d, def := range l.Difficulties {
		switch {
		case def.StartingMoney < 0:
			return fmt.Errorf("%w: difficulty %q: starting money must not be negative", ErrInvalidDefinition, d)
		case def.HealthMultiplier <= 0:
			return fmt.Errorf("%w: difficulty %q: health multiplier must be positive", ErrInvalidDefinition, d)
		}
	}
	return nil
}
