package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceToSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above the middle", Pt(5, 3), 3},
		{"on the segment", Pt(7, 0), 0},
		{"before the start clamps to a", Pt(-3, 4), 5},
		{"past the end clamps to b", Pt(13, 4), 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DistanceToSegment(tc.p, a, b), 1e-9)
		})
	}
}

func TestDistanceToSegmentDegenerate(t *testing.T) {
	a := Pt(2, 2)
	d := DistanceToSegment(Pt(5, 6), a, a)
	assert.InDelta(t, 5.0, d, 1e-9)
	assert.False(t, math.IsNaN(d))
}

func TestPathDistanceToPicksNearestSegment(t *testing.T) {
	p := MustPath(50, Pt(0, 100), Pt(200, 100), Pt(200, 400))

	assert.InDelta(t, 20.0, p.DistanceTo(Pt(100, 80)), 1e-9)
	assert.InDelta(t, 30.0, p.DistanceTo(Pt(230, 300)), 1e-9)
	assert.InDelta(t, 0.0, p.DistanceTo(Pt(200, 100)), 1e-9)
}

func TestNewPathRejectsShortPaths(t *testing.T) {
	_, err := NewPath(10, Pt(0, 0))
	require.ErrorIs(t, err, ErrShortPath)
}

func TestNewPathCopiesWaypoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	p, err := NewPath(10, pts...)
	require.NoError(t, err)

	pts[1] = Pt(99, 99)
	last, ok := p.At(p.LastIndex())
	require.True(t, ok)
	assert.Equal(t, Pt(10, 0), last)

	_, ok = p.At(2)
	assert.False(t, ok)
}

func TestRectExpandAndContains(t *testing.T) {
	crown := Rect{X: 680, Y: 480, W: 40, H: 40}
	grown := crown.Expand(20)

	assert.Equal(t, Rect{X: 660, Y: 460, W: 80, H: 80}, grown)
	assert.True(t, grown.ContainsStrict(Pt(665, 470)))
	assert.False(t, grown.ContainsStrict(Pt(660, 470)), "border is outside")
	assert.Equal(t, Pt(700, 500), crown.Center())
}
