package interfaces

import (
	"crown-defense/internal/defs"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/types"
)

// Game is the command surface that front-ends drive. Everything a front-end
// draws comes from Snapshot; every change goes through these commands.
type Game interface {
	ConfigureSession(difficulty defs.Difficulty, healthMode bool) error
	StartSession() error
	SelectTowerType(t defs.TowerType) error
	ClearSelection()
	PlaceTower(x, y float64) (types.EntityID, error)
	UpgradeTower(id types.EntityID) error
	TowerAt(x, y float64) (types.EntityID, bool)
	RequestNextWave() bool
	Tick()
	Snapshot() snapshot.Snapshot
	Library() *defs.Library
}
