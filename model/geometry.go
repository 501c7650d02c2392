package model

import "math"

// Point is a position in data or canvas units
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether neither coordinate is NaN or infinite
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// BBox is an axis-aligned rectangle stored as its minimum corner plus size.
// It carries no orientation: "Bottom" is simply the smaller Y, which is the
// visual top on a y-down canvas.
type BBox struct {
	X, Y          float64
	Width, Height float64
}

// NewBBox creates a box from its minimum corner and size
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints returns the smallest box spanning two corners given in any order
func NewBBoxFromPoints(a, b Point) BBox {
	return BBox{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

func (b BBox) Left() float64   { return b.X }
func (b BBox) Right() float64  { return b.X + b.Width }
func (b BBox) Bottom() float64 { return b.Y }
func (b BBox) Top() float64    { return b.Y + b.Height }

// Center returns the midpoint of the box
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains reports whether p lies inside the box, edges included
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Expand grows the box by margin on every side; a negative margin shrinks it
func (b BBox) Expand(margin float64) BBox {
	return NewBBox(b.X-margin, b.Y-margin, b.Width+2*margin, b.Height+2*margin)
}

// IsValid reports whether the box has a positive area
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Matrix is a 2D affine transform [a b c d e f], mapping (x, y) to
// (a·x + c·y + e, b·x + d·y + f), the same layout PDF uses.
type Matrix [6]float64

// Transform maps p through m
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns the transform that applies m first and then n
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// Translate returns a transform that shifts by (tx, ty)
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a transform that scales the axes independently
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
