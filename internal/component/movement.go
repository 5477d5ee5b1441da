// component/movement.go
package component

// Position — компонент позиции (пиксели игрового поля)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пикселей за тик)
type Velocity struct {
	Speed float64
}

// Waypoint — прогресс врага по дороге: индекс последней достигнутой точки
type Waypoint struct {
	Index int
}
