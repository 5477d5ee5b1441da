// internal/component/projectile.go
package component

import (
	"crown-defense/internal/defs"
	"crown-defense/internal/types"
)

// Projectile представляет летящий снаряд.
// TargetID — слабая ссылка: цель ищется в ECS на каждом тике.
type Projectile struct {
	TargetID  types.EntityID
	Speed     float64
	Damage    float64
	TowerType defs.TowerType
	Hit       bool // снаряд израсходован и будет удалён в конце тика
	Fresh     bool // создан в текущем тике, ещё не двигался
}
