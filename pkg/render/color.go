// pkg/render/color.go
package render

import "image/color"

// FieldColors holds all the color definitions needed to render the static field background.
type FieldColors struct {
	BackgroundColor  color.RGBA
	RoadColor        color.RGBA
	CrownColor       color.RGBA
	CrownStrokeColor color.RGBA
	StrokeWidth      float32
}

// EntityColors — цвета динамических сущностей, не зависящие от определений.
type EntityColors struct {
	EnemyStroke color.RGBA
	Flash       color.RGBA
	HPBack      color.RGBA
	HPFront     color.RGBA
	Range       color.RGBA
	TextColor   color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor raises every channel by delta, saturating at 255.
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
