package diagram

import "github.com/tsawler/circlepoints/model"

// ElementType identifies the kind of a display list element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeRect
	ElementTypeLine
	ElementTypeCircle
	ElementTypeMarker
	ElementTypeText
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeRect:
		return "Rect"
	case ElementTypeLine:
		return "Line"
	case ElementTypeCircle:
		return "Circle"
	case ElementTypeMarker:
		return "Marker"
	case ElementTypeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Element is one drawable item of a Diagram. All coordinates are canvas
// coordinates in points, origin top-left, y growing downward.
type Element interface {
	Type() ElementType
	ZIndex() int
}

// Rect is an axis-aligned rectangle. StrokeWidth 0 means no outline.
type Rect struct {
	Box         model.BBox
	Fill        model.Color
	Filled      bool
	Stroke      model.Color
	StrokeWidth float64
	ZOrder      int
}

func (r *Rect) Type() ElementType { return ElementTypeRect }
func (r *Rect) ZIndex() int       { return r.ZOrder }

// Line is a straight stroke, optionally dashed with an on/off pattern in points
type Line struct {
	From, To model.Point
	Color    model.Color
	Width    float64
	Dash     []float64
	ZOrder   int
}

func (l *Line) Type() ElementType { return ElementTypeLine }
func (l *Line) ZIndex() int       { return l.ZOrder }

// Dashed reports whether the line has a dash pattern
func (l *Line) Dashed() bool { return len(l.Dash) > 0 }

// Circle is an unfilled circle outline
type Circle struct {
	Center model.Point
	Radius float64
	Color  model.Color
	Width  float64
	ZOrder int
}

func (c *Circle) Type() ElementType { return ElementTypeCircle }
func (c *Circle) ZIndex() int       { return c.ZOrder }

// Marker is a filled dot with an outline marking one placed point
type Marker struct {
	Index        int
	Center       model.Point
	Radius       float64
	Fill         model.Color
	Outline      model.Color
	OutlineWidth float64
	ZOrder       int
}

func (m *Marker) Type() ElementType { return ElementTypeMarker }
func (m *Marker) ZIndex() int       { return m.ZOrder }

// HAlign is horizontal text alignment relative to the anchor point
type HAlign int

const (
	AlignStart HAlign = iota
	AlignCenter
	AlignEnd
)

// VAlign is vertical text alignment relative to the anchor point
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignMiddle
	AlignTop
	AlignBottom
)

// Text is a single line of text. Rotation is in degrees counterclockwise
// around the anchor point.
type Text struct {
	At       model.Point
	Text     string
	Size     float64
	Color    model.Color
	Align    HAlign
	VAlign   VAlign
	Rotation float64
	ZOrder   int
}

func (t *Text) Type() ElementType { return ElementTypeText }
func (t *Text) ZIndex() int       { return t.ZOrder }
