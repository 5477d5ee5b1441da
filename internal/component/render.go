// internal/component/render.go
package component

import "image/color"

// Renderable — внешний вид сущности, как его видят фронтенды через снимок.
type Renderable struct {
	Color  color.RGBA
	Radius float32 // для башен — половина стороны квадрата
}
