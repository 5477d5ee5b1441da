// internal/placement/validator.go
package placement

import (
	"crown-defense/internal/config"
	"crown-defense/pkg/geometry"
	"fmt"
	"math"
)

// Reason — причина отказа в размещении башни
type Reason int

const (
	OutOfBounds Reason = iota + 1
	OnObjective
	Overlap
	OnPath
)

func (r Reason) String() string {
	switch r {
	case OutOfBounds:
		return "out of bounds"
	case OnObjective:
		return "on objective"
	case Overlap:
		return "overlaps another tower"
	case OnPath:
		return "on path"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Error is returned by Validate for an inadmissible position.
type Error struct {
	Reason Reason
	At     geometry.Point
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid placement at (%.0f, %.0f): %s", e.At.X, e.At.Y, e.Reason)
}

// Is lets errors.Is match on the reason alone: errors.Is(err, &placement.Error{Reason: placement.OnPath}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}

// Validator проверяет позицию башни против границ поля, короны, других башен и дороги.
type Validator struct {
	Width, Height   float64
	Objective       geometry.Rect
	Path            *geometry.Path
	FootprintRadius float64
}

// NewValidator builds a validator for the standard playfield.
func NewValidator() *Validator {
	return &Validator{
		Width:           config.FieldWidth,
		Height:          config.FieldHeight,
		Objective:       config.Crown,
		Path:            config.Path,
		FootprintRadius: config.TowerFootprintRadius,
	}
}

// Validate returns nil when p is admissible. Rules run in order and the
// first failing one wins: bounds, objective, overlap, path.
func (v *Validator) Validate(p geometry.Point, existing []geometry.Point) error {
	r := v.FootprintRadius

	if !finite(p.X) || !finite(p.Y) {
		return &Error{Reason: OutOfBounds, At: p}
	}
	if p.X < r || p.X > v.Width-r || p.Y < r || p.Y > v.Height-r {
		return &Error{Reason: OutOfBounds, At: p}
	}

	if v.Objective.Expand(r).ContainsStrict(p) {
		return &Error{Reason: OnObjective, At: p}
	}

	minSep := 2 * r
	for _, t := range existing {
		if geometry.Dist(p, t) < minSep {
			return &Error{Reason: Overlap, At: p}
		}
	}

	if v.Path != nil && v.Path.DistanceTo(p) < v.Path.Width/2+r {
		return &Error{Reason: OnPath, At: p}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
