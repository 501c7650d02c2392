package diagram

import (
	"math"

	"github.com/tsawler/circlepoints/model"
)

// PathSegmentType defines the type of path segment
type PathSegmentType int

const (
	// PathMoveTo starts a new subpath
	PathMoveTo PathSegmentType = iota
	// PathLineTo draws a line to a point
	PathLineTo
	// PathCurveTo draws a cubic Bézier curve
	PathCurveTo
	// PathClosePath closes the current subpath
	PathClosePath
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with one cubic Bézier.
const kappa = 0.5522847498307936

// PathSegment represents a single segment of a path
type PathSegment struct {
	Type PathSegmentType

	// For MoveTo and LineTo: single point
	// For CurveTo: control point 1, control point 2, end point
	Points []model.Point
}

// Path is an outline built from straight and cubic segments. The raster
// encoder fills paths with the nonzero rule, so strokes are expressed as
// closed outlines (see StrokeLine and Ring).
type Path struct {
	Segments []PathSegment

	current      model.Point
	subpathStart model.Point
	hasCurrent   bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{Segments: make([]PathSegment, 0)}
}

// MoveTo starts a new subpath at the specified point
func (p *Path) MoveTo(x, y float64) *Path {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Type: PathMoveTo, Points: []model.Point{pt}})
	p.current = pt
	p.subpathStart = pt
	p.hasCurrent = true
	return p
}

// LineTo appends a line segment from the current point to (x, y)
func (p *Path) LineTo(x, y float64) *Path {
	if !p.hasCurrent {
		return p.MoveTo(x, y)
	}
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Type: PathLineTo, Points: []model.Point{pt}})
	p.current = pt
	return p
}

// CurveTo appends a cubic Bézier with control points (x1, y1), (x2, y2)
// ending at (x3, y3)
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) *Path {
	if !p.hasCurrent {
		p.MoveTo(x1, y1)
	}
	p.Segments = append(p.Segments, PathSegment{
		Type: PathCurveTo,
		Points: []model.Point{
			{X: x1, Y: y1},
			{X: x2, Y: y2},
			{X: x3, Y: y3},
		},
	})
	p.current = model.Point{X: x3, Y: y3}
	return p
}

// ClosePath closes the current subpath
func (p *Path) ClosePath() *Path {
	if !p.hasCurrent {
		return p
	}
	p.Segments = append(p.Segments, PathSegment{Type: PathClosePath})
	p.current = p.subpathStart
	return p
}

// Rectangle appends a rectangle as a complete subpath
func (p *Path) Rectangle(b model.BBox) *Path {
	return p.MoveTo(b.Left(), b.Bottom()).
		LineTo(b.Right(), b.Bottom()).
		LineTo(b.Right(), b.Top()).
		LineTo(b.Left(), b.Top()).
		ClosePath()
}

// Circle appends a full circle as four Bézier quarter arcs. reverse flips
// the winding direction.
func (p *Path) Circle(c model.Point, r float64, reverse bool) *Path {
	k := r * kappa
	s := 1.0
	if reverse {
		s = -1
	}
	p.MoveTo(c.X+r, c.Y)
	p.CurveTo(c.X+r, c.Y+s*k, c.X+k, c.Y+s*r, c.X, c.Y+s*r)
	p.CurveTo(c.X-k, c.Y+s*r, c.X-r, c.Y+s*k, c.X-r, c.Y)
	p.CurveTo(c.X-r, c.Y-s*k, c.X-k, c.Y-s*r, c.X, c.Y-s*r)
	p.CurveTo(c.X+k, c.Y-s*r, c.X+r, c.Y-s*k, c.X+r, c.Y)
	return p.ClosePath()
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Transform returns a copy of the path with every point mapped through m
func (p *Path) Transform(m model.Matrix) *Path {
	out := &Path{Segments: make([]PathSegment, len(p.Segments))}
	for i, seg := range p.Segments {
		pts := make([]model.Point, len(seg.Points))
		for j, pt := range seg.Points {
			pts[j] = m.Transform(pt)
		}
		out.Segments[i] = PathSegment{Type: seg.Type, Points: pts}
	}
	out.current = m.Transform(p.current)
	out.subpathStart = m.Transform(p.subpathStart)
	out.hasCurrent = p.hasCurrent
	return out
}

// Bounds returns the bounding box of all path points, control points included
func (p *Path) Bounds() model.BBox {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range p.Segments {
		for _, pt := range seg.Points {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return model.BBox{}
	}
	return model.NewBBoxFromPoints(model.Point{X: minX, Y: minY}, model.Point{X: maxX, Y: maxY})
}

// StrokeLine returns the outline of a straight stroke of the given width
// with butt caps.
func StrokeLine(from, to model.Point, width float64) *Path {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	p := NewPath()
	if length == 0 || width <= 0 {
		return p
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	return p.MoveTo(from.X+nx, from.Y+ny).
		LineTo(to.X+nx, to.Y+ny).
		LineTo(to.X-nx, to.Y-ny).
		LineTo(from.X-nx, from.Y-ny).
		ClosePath()
}

// Frame returns the outline of a rectangle stroked with the given width:
// the box grown by half the width, minus the box shrunk by half the width.
func Frame(b model.BBox, width float64) *Path {
	p := NewPath()
	if width <= 0 {
		return p
	}
	outer := b.Expand(width / 2)
	p.Rectangle(outer)
	inner := b.Expand(-width / 2)
	if !inner.IsValid() {
		return p
	}
	// inner subpath runs the other way round to cut the hole
	return p.MoveTo(inner.Left(), inner.Bottom()).
		LineTo(inner.Left(), inner.Top()).
		LineTo(inner.Right(), inner.Top()).
		LineTo(inner.Right(), inner.Bottom()).
		ClosePath()
}

// Ring returns the outline of a circle stroked with the given width: an
// outer circle and an inner circle of opposite winding.
func Ring(c model.Point, r, width float64) *Path {
	p := NewPath()
	if width <= 0 {
		return p
	}
	p.Circle(c, r+width/2, false)
	if inner := r - width/2; inner > 0 {
		p.Circle(c, inner, true)
	}
	return p
}

// Disc returns a filled circle outline
func Disc(c model.Point, r float64) *Path {
	p := NewPath()
	if r <= 0 {
		return p
	}
	return p.Circle(c, r, false)
}

// Dashes splits the line from-to into the "on" pieces of an on/off dash
// pattern. An empty pattern returns the whole line.
func Dashes(from, to model.Point, pattern []float64) [][2]model.Point {
	length := from.Distance(to)
	if len(pattern) == 0 || length == 0 {
		return [][2]model.Point{{from, to}}
	}

	var period float64
	for _, v := range pattern {
		period += v
	}
	if period <= 0 {
		return [][2]model.Point{{from, to}}
	}

	at := func(t float64) model.Point {
		f := t / length
		return model.Point{X: from.X + (to.X-from.X)*f, Y: from.Y + (to.Y-from.Y)*f}
	}

	var out [][2]model.Point
	pos := 0.0
	for i := 0; pos < length; i++ {
		step := pattern[i%len(pattern)]
		end := math.Min(pos+step, length)
		if i%2 == 0 && end > pos {
			out = append(out, [2]model.Point{at(pos), at(end)})
		}
		pos = end
	}
	return out
}
