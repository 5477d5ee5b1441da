// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно знать о сессии помимо ECS.
type GameContext interface {
	Lives() int
}
