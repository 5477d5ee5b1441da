// internal/event/types.go
package event

import (
	"crown-defense/internal/defs"
	"crown-defense/internal/types"
)

const (
	SessionStarted    EventType = "SessionStarted"
	WaveStarted       EventType = "WaveStarted"       // Data: int (номер волны)
	WaveEnded         EventType = "WaveEnded"         // Data: int (номер завершённой волны)
	EnemySpawned      EventType = "EnemySpawned"      // Data: EnemyEvent
	EnemyKilled       EventType = "EnemyKilled"       // Data: EnemyEvent (с наградой)
	EnemyReachedCrown EventType = "EnemyReachedCrown" // Data: EnemyEvent
	TowerPlaced       EventType = "TowerPlaced"       // Data: TowerEvent
	TowerUpgraded     EventType = "TowerUpgraded"     // Data: TowerEvent
	TowerFired        EventType = "TowerFired"        // Data: TowerEvent
	CommandRejected   EventType = "CommandRejected"   // Data: error
	GameOver          EventType = "GameOver"          // Data: int (номер волны)
)

// EnemyEvent describes an enemy at the moment of the event.
type EnemyEvent struct {
	ID     types.EntityID
	Tier   int
	Reward int
	X, Y   float64
}

// TowerEvent describes a tower at the moment of the event.
type TowerEvent struct {
	ID    types.EntityID
	Type  defs.TowerType
	Level int
	X, Y  float64
}
