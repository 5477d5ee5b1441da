// internal/app/tower_management.go
package app

import (
	"crown-defense/internal/component"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/event"
	"crown-defense/internal/types"
	"crown-defense/pkg/geometry"
	"fmt"
	"math"
)

// SelectTowerType chooses the tower type for the next PlaceTower.
func (g *Game) SelectTowerType(t defs.TowerType) error {
	if _, ok := g.lib.Tower(t); !ok {
		return g.reject(fmt.Errorf("%w: %q", ErrUnknownTowerType, t))
	}
	g.selection = t
	return nil
}

// ClearSelection снимает выбор типа башни. Всегда успешно.
func (g *Game) ClearSelection() {
	g.selection = defs.TowerNone
}

// PlaceTower attempts to place the selected tower at (x, y).
// On success money is debited and the selection is cleared.
func (g *Game) PlaceTower(x, y float64) (types.EntityID, error) {
	if g.ECS.Phase != component.RunningPhase {
		return 0, g.reject(ErrNotRunning)
	}
	def, ok := g.lib.Tower(g.selection)
	if !ok {
		return 0, g.reject(ErrNoTowerSelected)
	}
	if !g.Policy.BuildDuringWave && g.ECS.Wave.Active {
		return 0, g.reject(ErrBuildLocked)
	}
	if g.money < def.Cost {
		return 0, g.reject(ErrInsufficientFunds)
	}
	p := geometry.Pt(x, y)
	if err := g.Validator.Validate(p, g.towerPositions()); err != nil {
		return 0, g.reject(err)
	}

	g.money -= def.Cost
	id := g.createTowerEntity(p, def)
	g.selection = defs.TowerNone

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerEvent{
		ID: id, Type: def.Type, Level: 1, X: x, Y: y,
	}})
	return id, nil
}

// UpgradeTower raises a tower one level if the player can pay for it.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.ECS.Phase != component.RunningPhase {
		return g.reject(ErrNotRunning)
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return g.reject(ErrUnknownTower)
	}
	if !g.Policy.UpgradeDuringWave && g.ECS.Wave.Active {
		return g.reject(ErrWaveActive)
	}
	if g.money < tower.UpgradeCost {
		return g.reject(ErrInsufficientFunds)
	}

	g.money -= tower.UpgradeCost
	tower.Level++

	combat := g.ECS.Combats[id]
	combat.Damage *= config.UpgradeDamageMultiplier
	combat.Range += config.UpgradeRangeIncrement
	combat.Cooldown = math.Max(combat.Cooldown*config.UpgradeCooldownMultiplier, config.MinTowerCooldown)

	pos := g.ECS.Positions[id]
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerEvent{
		ID: id, Type: tower.Type, Level: tower.Level, X: pos.X, Y: pos.Y,
	}})
	return nil
}

// TowerAt returns the first tower whose centre is within the pick radius of (x, y).
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	for _, id := range g.ECS.TowerIDs {
		pos := g.ECS.Positions[id]
		if math.Hypot(pos.X-x, pos.Y-y) < config.TowerPickRadius {
			return id, true
		}
	}
	return 0, false
}

func (g *Game) towerPositions() []geometry.Point {
	pts := make([]geometry.Point, 0, len(g.ECS.TowerIDs))
	for _, id := range g.ECS.TowerIDs {
		pos := g.ECS.Positions[id]
		pts = append(pts, geometry.Pt(pos.X, pos.Y))
	}
	return pts
}

func (g *Game) createTowerEntity(p geometry.Point, def defs.TowerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	g.ECS.Combats[id] = &component.Combat{
		Damage:   def.Damage,
		Range:    def.Range,
		Cooldown: def.Cooldown,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: config.TowerDrawHalfSize,
	}
	g.ECS.AddTower(id, &component.Tower{
		Type:        def.Type,
		Level:       1,
		BaseCost:    def.Cost,
		UpgradeCost: def.UpgradeCost,
	})
	return id
}
