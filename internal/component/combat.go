package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Alive reports whether the entity still has hit points.
func (h *Health) Alive() bool {
	return h.Value > 0
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage   float64
	Range    float64
	Cooldown float64 // тиков между выстрелами, уменьшается с уровнем
	Timer    float64 // оставшиеся тики до следующего выстрела
}
