// internal/component/visual.go
package component

// DamageFlash — враг недавно получил урон и рисуется белым, пока TicksLeft > 0.
type DamageFlash struct {
	TicksLeft int
}
