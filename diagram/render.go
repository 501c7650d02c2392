package diagram

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/tsawler/circlepoints/model"
)

// Nominal canvas size: 8×6 inches at 72 points per inch.
const (
	Width  = 576.0
	Height = 432.0
)

// Gutters around the plot area holding title, tick labels and captions
const (
	gutterLeft   = 78.0
	gutterRight  = 18.0
	gutterTop    = 36.0
	gutterBottom = 50.0
)

// Title is the fixed diagram heading
const Title = "Circle and evenly placed points"

var (
	circleColor = model.MustParseColor("#0b1220")
	axisColor   = model.MustParseColor("#64748b")
	gridColor   = model.MustParseColor("#b0b0b0")
	frameColor  = model.Black
	textColor   = model.Black
)

// Drawing order, low to high
const (
	zBackground = iota
	zGrid
	zAxes
	zCircle
	zMarkers
	zLabels
	zFrame
)

const (
	indexFontSize   = 9.0
	tickFontSize    = 8.0
	captionFontSize = 10.0
	titleFontSize   = 12.0
	tickLength      = 3.5
)

// Tick is an axis tick position in data units and its label
type Tick struct {
	Value float64
	Label string
}

// Diagram is a rendered circle diagram: a fixed-size canvas described by an
// ordered display list plus the geometry used to build it. A Diagram is not
// modified after Render returns.
type Diagram struct {
	Width, Height float64

	// Bounds is the visible data range
	Bounds model.BBox

	// Plot is the plot area in canvas coordinates (Y is the top edge)
	Plot model.BBox

	// Transform maps data coordinates to canvas coordinates
	Transform model.Matrix

	XTicks, YTicks []Tick

	Title, XLabel, YLabel string

	// Elements sorted by ZIndex, insertion order kept within a layer
	Elements []Element
}

// ToCanvas maps a data point to canvas coordinates
func (d *Diagram) ToCanvas(p model.Point) model.Point {
	return d.Transform.Transform(p)
}

// Scale returns canvas points per data unit
func (d *Diagram) Scale() float64 {
	return d.Transform[0]
}

// Render lays out the circle, its points and the axes on a fixed-size canvas.
// points must be the PointSet placed for spec.
func Render(spec model.CircleSpec, points model.PointSet) (*Diagram, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(points) != spec.Count {
		return nil, fmt.Errorf("%w: got %d points for count %d", model.ErrInvalidSpec, len(points), spec.Count)
	}

	bounds := ViewBounds(spec)
	d := &Diagram{
		Width:  Width,
		Height: Height,
		Bounds: bounds,
		Title:  Title,
		XLabel: spec.AxisLabel("x"),
		YLabel: spec.AxisLabel("y"),
		XTicks: Ticks(bounds.Left(), bounds.Right(), spec.Units),
		YTicks: Ticks(bounds.Bottom(), bounds.Top(), spec.Units),
	}
	d.Plot, d.Transform = fitPlot(bounds)

	d.add(&Rect{
		Box:    model.NewBBox(0, 0, Width, Height),
		Fill:   model.White,
		Filled: true,
		ZOrder: zBackground,
	})

	if spec.ShowGrid {
		d.addGrid()
	}
	d.addAxes()

	scale := d.Scale()
	d.add(&Circle{
		Center: d.ToCanvas(spec.Center),
		Radius: spec.Radius * scale,
		Color:  circleColor,
		Width:  1,
		ZOrder: zCircle,
	})

	size := float64(spec.Style.Size)
	for _, pt := range points {
		d.add(&Marker{
			Index:        pt.Index,
			Center:       d.ToCanvas(pt.Point()),
			Radius:       size / 2,
			Fill:         spec.Style.Color,
			Outline:      model.Black,
			OutlineWidth: 0.4,
			ZOrder:       zMarkers,
		})
		// Offset is in data units, as the label belongs to the data point.
		d.add(&Text{
			At:     d.ToCanvas(model.Point{X: pt.X + 0.8*size, Y: pt.Y + 0.3*size}),
			Text:   strconv.Itoa(pt.Index),
			Size:   indexFontSize,
			Color:  textColor,
			ZOrder: zLabels,
		})
	}

	d.addFrame()

	sort.SliceStable(d.Elements, func(i, j int) bool {
		return d.Elements[i].ZIndex() < d.Elements[j].ZIndex()
	})
	return d, nil
}

func (d *Diagram) add(e Element) {
	d.Elements = append(d.Elements, e)
}

// ViewBounds returns the visible data range for spec: the circle and its
// center, padded by max(20, 0.2·r) on every side.
func ViewBounds(spec model.CircleSpec) model.BBox {
	cx, cy, r := spec.Center.X, spec.Center.Y, spec.Radius
	margin := math.Max(20, 0.2*r)

	xMin := math.Min(cx-r, cx) - margin
	xMax := math.Max(cx+r, cx) + margin
	yMin := math.Min(cy-r, cy) - margin
	yMax := math.Max(cy+r, cy) + margin

	return model.NewBBoxFromPoints(model.Point{X: xMin, Y: yMin}, model.Point{X: xMax, Y: yMax})
}

// fitPlot chooses one scale for both axes so the data range fits the space
// left by the gutters, and centers the resulting plot area in that space.
func fitPlot(bounds model.BBox) (model.BBox, model.Matrix) {
	availW := Width - gutterLeft - gutterRight
	availH := Height - gutterTop - gutterBottom
	s := math.Min(availW/bounds.Width, availH/bounds.Height)

	plotW, plotH := bounds.Width*s, bounds.Height*s
	plotArea := model.NewBBox(
		gutterLeft+(availW-plotW)/2,
		gutterTop+(availH-plotH)/2,
		plotW,
		plotH,
	)

	// Data y grows upward, canvas y downward: data yMin lands on the
	// canvas edge with the larger y.
	m := model.Translate(-bounds.Left(), -bounds.Bottom()).
		Multiply(model.Scale(s, -s)).
		Multiply(model.Translate(plotArea.X, plotArea.Y+plotArea.Height))
	return plotArea, m
}

// Ticks picks round-number major tick positions within [lo, hi] and labels
// them, appending units when present.
func Ticks(lo, hi float64, units string) []Tick {
	var ticks []Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.Label == "" {
			continue
		}
		// Reparse the label to drop accumulated float error from the step.
		v, err := strconv.ParseFloat(t.Label, 64)
		if err != nil {
			v = t.Value
		}
		if v < lo || v > hi {
			continue
		}
		if v == 0 {
			v = 0 // normalize -0
		}
		label := model.FormatNumber(v)
		if units != "" {
			label += " " + units
		}
		ticks = append(ticks, Tick{Value: v, Label: label})
	}
	return ticks
}

func (d *Diagram) addGrid() {
	dash := []float64{3.7, 1.6}
	for _, t := range d.XTicks {
		x := d.ToCanvas(model.Point{X: t.Value}).X
		d.add(&Line{
			From:   model.Point{X: x, Y: d.Plot.Y},
			To:     model.Point{X: x, Y: d.Plot.Y + d.Plot.Height},
			Color:  gridColor,
			Width:  0.6,
			Dash:   dash,
			ZOrder: zGrid,
		})
	}
	for _, t := range d.YTicks {
		y := d.ToCanvas(model.Point{Y: t.Value}).Y
		d.add(&Line{
			From:   model.Point{X: d.Plot.Left(), Y: y},
			To:     model.Point{X: d.Plot.Right(), Y: y},
			Color:  gridColor,
			Width:  0.6,
			Dash:   dash,
			ZOrder: zGrid,
		})
	}
}

// addAxes draws the reference lines x=0 and y=0 across the full plot.
// A line whose zero lies outside the view bounds is not drawn.
func (d *Diagram) addAxes() {
	origin := d.ToCanvas(model.Point{})
	if d.Bounds.Contains(model.Point{X: d.Bounds.X, Y: 0}) {
		d.add(&Line{
			From:   model.Point{X: d.Plot.Left(), Y: origin.Y},
			To:     model.Point{X: d.Plot.Right(), Y: origin.Y},
			Color:  axisColor,
			Width:  1,
			ZOrder: zAxes,
		})
	}
	if d.Bounds.Contains(model.Point{X: 0, Y: d.Bounds.Y}) {
		d.add(&Line{
			From:   model.Point{X: origin.X, Y: d.Plot.Y},
			To:     model.Point{X: origin.X, Y: d.Plot.Y + d.Plot.Height},
			Color:  axisColor,
			Width:  1,
			ZOrder: zAxes,
		})
	}
}

// addFrame draws the plot border, tick marks, tick labels, captions and title
func (d *Diagram) addFrame() {
	p := d.Plot
	top, bottom := p.Y, p.Y+p.Height
	d.add(&Rect{Box: p, Stroke: frameColor, StrokeWidth: 0.8, ZOrder: zFrame})

	for _, t := range d.XTicks {
		x := d.ToCanvas(model.Point{X: t.Value}).X
		d.add(&Line{
			From:   model.Point{X: x, Y: bottom},
			To:     model.Point{X: x, Y: bottom + tickLength},
			Color:  frameColor,
			Width:  0.8,
			ZOrder: zFrame,
		})
		d.add(&Text{
			At:     model.Point{X: x, Y: bottom + tickLength + 2},
			Text:   t.Label,
			Size:   tickFontSize,
			Color:  textColor,
			Align:  AlignCenter,
			VAlign: AlignTop,
			ZOrder: zFrame,
		})
	}
	for _, t := range d.YTicks {
		y := d.ToCanvas(model.Point{Y: t.Value}).Y
		d.add(&Line{
			From:   model.Point{X: p.Left(), Y: y},
			To:     model.Point{X: p.Left() - tickLength, Y: y},
			Color:  frameColor,
			Width:  0.8,
			ZOrder: zFrame,
		})
		d.add(&Text{
			At:     model.Point{X: p.Left() - tickLength - 2, Y: y},
			Text:   t.Label,
			Size:   tickFontSize,
			Color:  textColor,
			Align:  AlignEnd,
			VAlign: AlignMiddle,
			ZOrder: zFrame,
		})
	}

	d.add(&Text{
		At:     model.Point{X: p.Center().X, Y: bottom + tickLength + 16},
		Text:   d.XLabel,
		Size:   captionFontSize,
		Color:  textColor,
		Align:  AlignCenter,
		VAlign: AlignTop,
		ZOrder: zFrame,
	})
	d.add(&Text{
		At:       model.Point{X: p.Left() - 62, Y: p.Center().Y},
		Text:     d.YLabel,
		Size:     captionFontSize,
		Color:    textColor,
		Align:    AlignCenter,
		VAlign:   AlignBottom,
		Rotation: 90,
		ZOrder:   zFrame,
	})
	d.add(&Text{
		At:     model.Point{X: p.Center().X, Y: top - 8},
		Text:   d.Title,
		Size:   titleFontSize,
		Color:  textColor,
		Align:  AlignCenter,
		ZOrder: zFrame,
	})
}
