// component/tower.go
package component

import "crown-defense/internal/defs"

type Tower struct {
	Type        defs.TowerType
	Level       int
	BaseCost    int
	UpgradeCost int
}
