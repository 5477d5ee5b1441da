// internal/defs/difficulty.go
package defs

// Difficulty — уровень сложности, выбранный на стартовом экране.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyDefinition sets the starting purse and enemy toughness.
type DifficultyDefinition struct {
	Difficulty       Difficulty `json:"difficulty"`
	StartingMoney    int        `json:"starting_money"`
	HealthMultiplier float64    `json:"health_multiplier"`
}

func DefaultDifficulties() []DifficultyDefinition {
	return []DifficultyDefinition{
		{Difficulty: DifficultyEasy, StartingMoney: 250, HealthMultiplier: 1},
		{Difficulty: DifficultyNormal, StartingMoney: 150, HealthMultiplier: 1},
		{Difficulty: DifficultyHard, StartingMoney: 100, HealthMultiplier: 1.5},
	}
}

const (
	FullHealthLives = 100 // режим «100 HP»
	OneHitLives     = 1   // режим «1 Hit KO»
)

// StartingLives returns the life pool for the chosen health mode.
func StartingLives(healthMode bool) int {
	if healthMode {
		return FullHealthLives
	}
	return OneHitLives
}
