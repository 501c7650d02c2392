package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned when a CircleSpec violates its invariants.
// Callers should test for it with errors.Is.
var ErrInvalidSpec = errors.New("model: invalid circle spec")

// PointStyle controls how the placed points are drawn
type PointStyle struct {
	Color Color
	Size  int // marker diameter in points, >= 1
}

// CircleSpec holds everything needed to place and draw one circle.
// It is a plain value: build one per request and pass it by value.
type CircleSpec struct {
	Center     Point
	Radius     float64 // >= 0
	Count      int     // >= 1
	StartAngle float64 // degrees, any finite value
	Units      string  // axis unit label, may be empty
	Style      PointStyle
	ShowGrid   bool
}

// DefaultSpec returns the parameters the input form starts with.
func DefaultSpec() CircleSpec {
	return CircleSpec{
		Center:     Point{X: 0, Y: 0},
		Radius:     50,
		Count:      12,
		StartAngle: 0,
		Units:      "m",
		Style: PointStyle{
			Color: Color{R: 0xff, G: 0x57, B: 0x22},
			Size:  6,
		},
		ShowGrid: true,
	}
}

// Validate checks the spec invariants. The returned error wraps ErrInvalidSpec
// and names the offending field.
func (s CircleSpec) Validate() error {
	switch {
	case !s.Center.IsFinite():
		return fmt.Errorf("%w: center (%g, %g) is not finite", ErrInvalidSpec, s.Center.X, s.Center.Y)
	case !isFinite(s.Radius):
		return fmt.Errorf("%w: radius %g is not finite", ErrInvalidSpec, s.Radius)
	case s.Radius < 0:
		return fmt.Errorf("%w: radius %g is negative", ErrInvalidSpec, s.Radius)
	case s.Count < 1:
		return fmt.Errorf("%w: point count %d is less than 1", ErrInvalidSpec, s.Count)
	case !isFinite(s.StartAngle):
		return fmt.Errorf("%w: start angle %g is not finite", ErrInvalidSpec, s.StartAngle)
	case s.Style.Size < 1:
		return fmt.Errorf("%w: point size %d is less than 1", ErrInvalidSpec, s.Style.Size)
	}
	return nil
}

// AxisLabel returns the caption for an axis, e.g. "x [m]" or "x" without units.
func (s CircleSpec) AxisLabel(axis string) string {
	if s.Units == "" {
		return axis
	}
	return axis + " [" + s.Units + "]"
}

// WithUnits formats a value label with the spec's units appended, if any.
func (s CircleSpec) WithUnits(value string) string {
	if s.Units == "" {
		return value
	}
	return value + " " + s.Units
}
