package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Tier   int
	Radius float64
	Reward int
}
