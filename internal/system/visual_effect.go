// internal/system/visual_effect.go
package system

import (
	"crown-defense/internal/entity"
)

// VisualEffectSystem отсчитывает вспышки урона. Новый удар перезапускает отсчёт.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update снимает вспышки, у которых истёк срок, и вспышки уже удалённых врагов.
func (s *VisualEffectSystem) Update() {
	for id, flash := range s.ecs.DamageFlashes {
		flash.TicksLeft--
		if _, alive := s.ecs.Enemies[id]; flash.TicksLeft <= 0 || !alive {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
