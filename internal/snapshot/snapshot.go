// Package snapshot holds the read-only view of a session that front-ends draw from.
// A Snapshot shares no memory with the live session.
package snapshot

import (
	"image/color"

	"crown-defense/internal/component"
	"crown-defense/internal/defs"
	"crown-defense/internal/types"
)

type Snapshot struct {
	Phase       component.Phase `json:"phase" msgpack:"phase"`
	Frame       uint64          `json:"frame" msgpack:"frame"`
	Money       int             `json:"money" msgpack:"money"`
	Lives       int             `json:"lives" msgpack:"lives"`
	Wave        int             `json:"wave" msgpack:"wave"`
	WaveActive  bool            `json:"wave_active" msgpack:"wave_active"`
	QueueLen    int             `json:"queue_len" msgpack:"queue_len"`
	Selection   defs.TowerType  `json:"selection" msgpack:"selection"`
	Difficulty  defs.Difficulty `json:"difficulty" msgpack:"difficulty"`
	Enemies     []Enemy         `json:"enemies" msgpack:"enemies"`
	Towers      []Tower         `json:"towers" msgpack:"towers"`
	Projectiles []Projectile    `json:"projectiles" msgpack:"projectiles"`
}

type Enemy struct {
	ID     types.EntityID `json:"id" msgpack:"id"`
	Tier   int            `json:"tier" msgpack:"tier"`
	X      float64        `json:"x" msgpack:"x"`
	Y      float64        `json:"y" msgpack:"y"`
	HP     float64        `json:"hp" msgpack:"hp"`
	MaxHP  float64        `json:"max_hp" msgpack:"max_hp"`
	Radius float64        `json:"radius" msgpack:"radius"`
	Flash  bool           `json:"flash" msgpack:"flash"` // недавно получил урон
	Color  color.RGBA     `json:"color" msgpack:"color"`
}

type Tower struct {
	ID          types.EntityID `json:"id" msgpack:"id"`
	Type        defs.TowerType `json:"type" msgpack:"type"`
	X           float64        `json:"x" msgpack:"x"`
	Y           float64        `json:"y" msgpack:"y"`
	Level       int            `json:"level" msgpack:"level"`
	Damage      float64        `json:"damage" msgpack:"damage"`
	Range       float64        `json:"range" msgpack:"range"`
	Cooldown    float64        `json:"cooldown" msgpack:"cooldown"`
	UpgradeCost int            `json:"upgrade_cost" msgpack:"upgrade_cost"`
	Color       color.RGBA     `json:"color" msgpack:"color"`
}

type Projectile struct {
	X      float64        `json:"x" msgpack:"x"`
	Y      float64        `json:"y" msgpack:"y"`
	Type   defs.TowerType `json:"type" msgpack:"type"`
	Radius float32        `json:"radius" msgpack:"radius"`
	Color  color.RGBA     `json:"color" msgpack:"color"`
}

// Tower returns the tower with the given id.
func (s *Snapshot) Tower(id types.EntityID) (Tower, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return Tower{}, false
}
