// pkg/geometry/path.go
package geometry

import (
	"errors"
	"math"
)

// ErrShortPath is returned when a path has fewer than two waypoints.
var ErrShortPath = errors.New("path needs at least two waypoints")

// Path — ломаная, по которой идут враги. Width — полная ширина дороги.
type Path struct {
	points []Point
	Width  float64
}

// NewPath copies the waypoints so later changes to the caller's slice
// never reach the path.
func NewPath(width float64, points ...Point) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrShortPath
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Path{points: cp, Width: width}, nil
}

// MustPath is NewPath for static tables; it panics on a short path.
func MustPath(width float64, points ...Point) *Path {
	p, err := NewPath(width, points...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.points)
}

// LastIndex returns the index of the final waypoint.
func (p *Path) LastIndex() int {
	return len(p.points) - 1
}

// At returns waypoint i. ok is false past either end.
func (p *Path) At(i int) (Point, bool) {
	if i < 0 || i >= len(p.points) {
		return Point{}, false
	}
	return p.points[i], true
}

// Start возвращает первую точку пути (точку появления врагов)
func (p *Path) Start() Point {
	return p.points[0]
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// DistanceTo returns the minimal distance from pt to any segment of the path.
func (p *Path) DistanceTo(pt Point) float64 {
	best := math.Inf(1)
	for i := 0; i < len(p.points)-1; i++ {
		if d := DistanceToSegment(pt, p.points[i], p.points[i+1]); d < best {
			best = d
		}
	}
	return best
}
