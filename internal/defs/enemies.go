// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for one enemy tier.
type EnemyDefinition struct {
	Tier    int     `json:"tier"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"` // пикселей за тик
	Reward  int     `json:"reward"`
	Visuals Visuals `json:"visuals"`
}

// DefaultEnemies — семь уровней врагов, от слабого к сильному.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{Tier: 0, Name: "Red", Health: 20, Speed: 2.5, Reward: 15, Visuals: Visuals{Color: color.RGBA{255, 118, 117, 255}, Symbol: 'r'}},
		{Tier: 1, Name: "Yellow", Health: 40, Speed: 3.0, Reward: 20, Visuals: Visuals{Color: color.RGBA{255, 234, 167, 255}, Symbol: 'y'}},
		{Tier: 2, Name: "Green", Health: 90, Speed: 2.0, Reward: 25, Visuals: Visuals{Color: color.RGBA{85, 239, 196, 255}, Symbol: 'g'}},
		{Tier: 3, Name: "Purple", Health: 150, Speed: 3.5, Reward: 35, Visuals: Visuals{Color: color.RGBA{162, 155, 254, 255}, Symbol: 'p'}},
		{Tier: 4, Name: "Brown", Health: 300, Speed: 1.5, Reward: 45, Visuals: Visuals{Color: color.RGBA{211, 84, 0, 255}, Symbol: 'B'}},
		{Tier: 5, Name: "Grey", Health: 600, Speed: 1.8, Reward: 60, Visuals: Visuals{Color: color.RGBA{99, 110, 114, 255}, Symbol: 'G'}},
		{Tier: 6, Name: "Black", Health: 1200, Speed: 1.0, Reward: 100, Visuals: Visuals{Color: color.RGBA{0, 0, 0, 255}, Symbol: 'K'}},
	}
}
