// internal/defs/towers.go
package defs

import "image/color"

// TowerType defines the category of a tower.
type TowerType string

const (
	TowerNone   TowerType = ""
	TowerBasic  TowerType = "basic"  // short range, cheap
	TowerSniper TowerType = "sniper" // long range, expensive
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type            TowerType  `json:"type"`
	Name            string     `json:"name"`
	Cost            int        `json:"cost"`
	UpgradeCost     int        `json:"upgrade_cost"`
	Damage          float64    `json:"damage"`
	Range           float64    `json:"range"`
	Cooldown        float64    `json:"cooldown"` // тиков между выстрелами
	ProjectileSpeed float64    `json:"projectile_speed"`
	ProjectileSize  float32    `json:"projectile_size"`
	ProjectileColor color.RGBA `json:"projectile_color"`
	Visuals         Visuals    `json:"visuals"`
}

// DefaultTowers returns the built-in tower types in shop order.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			Type: TowerBasic, Name: "Basic", Cost: 50, UpgradeCost: 100,
			Damage: 10, Range: 130, Cooldown: 40,
			ProjectileSpeed: 6, ProjectileSize: 3,
			Visuals:         Visuals{Color: color.RGBA{9, 132, 227, 255}, Symbol: 'T'},
			ProjectileColor: color.RGBA{0, 255, 255, 255},
		},
		{
			Type: TowerSniper, Name: "Sniper", Cost: 500, UpgradeCost: 500,
			Damage: 80, Range: 300, Cooldown: 120,
			ProjectileSpeed: 12, ProjectileSize: 6,
			Visuals:         Visuals{Color: color.RGBA{253, 203, 110, 255}, Symbol: 'S'},
			ProjectileColor: color.RGBA{255, 255, 0, 255},
		},
	}
}
