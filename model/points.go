package model

import (
	"math"
	"strconv"
)

// PlacedPoint is one computed point on the circle. Index is 1-based.
type PlacedPoint struct {
	Index int
	X, Y  float64
}

// Point returns the coordinates as a Point
func (p PlacedPoint) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// PointSet is the ordered result of PlacePoints
type PointSet []PlacedPoint

// PlacePoints distributes spec.Count points evenly around the circle,
// starting at spec.StartAngle (degrees, counter-clockwise from +x).
//
// Point i (0-indexed) sits at angle start + i*2π/count. The function is pure:
// identical specs produce bit-identical results.
func PlacePoints(spec CircleSpec) (PointSet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	start := DegreesToRadians(spec.StartAngle)
	step := 2 * math.Pi / float64(spec.Count)

	points := make(PointSet, spec.Count)
	for i := 0; i < spec.Count; i++ {
		angle := start + float64(i)*step
		points[i] = PlacedPoint{
			Index: i + 1,
			X:     spec.Center.X + spec.Radius*math.Cos(angle),
			Y:     spec.Center.Y + spec.Radius*math.Sin(angle),
		}
	}

	return points, nil
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FormatNumber formats v in the shortest form that round-trips, e.g. 50, 2.5, 1e-07.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Table returns the coordinate listing for the point set,
// with coordinates rounded to six decimal places.
func (ps PointSet) Table() *CoordinateTable {
	t := &CoordinateTable{
		Header: [3]string{"index", "x", "y"},
		Rows:   make([]CoordinateRow, len(ps)),
	}
	for i, p := range ps {
		t.Rows[i] = CoordinateRow{
			Index: p.Index,
			X:     roundTo(p.X, 6),
			Y:     roundTo(p.Y, 6),
		}
	}
	return t
}

// roundTo rounds v to the given number of decimal places.
// Negative zero is normalised so that tiny negative values print as "0".
func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
