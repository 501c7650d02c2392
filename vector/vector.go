package vector

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/tsawler/circlepoints/diagram"
	"github.com/tsawler/circlepoints/model"
)

// ErrEncoding is returned when a diagram cannot be serialized as SVG
var ErrEncoding = errors.New("vector: encoding failed")

// unit is the number of user units per point. svgo works in integers, so
// coordinates are written in hundredths of a point.
const unit = 100

const fontFamily = "Helvetica,Arial,sans-serif"

// Encode serializes d as a standalone SVG document sized in points
func Encode(d *diagram.Diagram) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil diagram", ErrEncoding)
	}
	if !(d.Width > 0) || !(d.Height > 0) {
		return nil, fmt.Errorf("%w: empty canvas %gx%g", ErrEncoding, d.Width, d.Height)
	}

	var buf bytes.Buffer
	s := svg.New(&buf)
	w, h := int(math.Round(d.Width)), int(math.Round(d.Height))
	s.StartviewUnit(w, h, "pt", 0, 0, u(d.Width), u(d.Height))
	s.Title(d.Title)

	for _, e := range d.Elements {
		if err := writeElement(s, e); err != nil {
			return nil, err
		}
	}

	s.End()
	return buf.Bytes(), nil
}

// u converts points to integer user units
func u(v float64) int {
	return int(math.Round(v * unit))
}

func finite(pts ...model.Point) bool {
	for _, p := range pts {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

func writeElement(s *svg.SVG, e diagram.Element) error {
	switch e := e.(type) {
	case *diagram.Rect:
		style := "fill:none"
		if e.Filled {
			style = "fill:" + e.Fill.Hex()
		}
		if e.StrokeWidth > 0 {
			style += fmt.Sprintf(";stroke:%s;stroke-width:%d", e.Stroke.Hex(), u(e.StrokeWidth))
		}
		s.Rect(u(e.Box.X), u(e.Box.Y), u(e.Box.Width), u(e.Box.Height), style)

	case *diagram.Line:
		if !finite(e.From, e.To) {
			return fmt.Errorf("%w: line has non-finite coordinates", ErrEncoding)
		}
		style := fmt.Sprintf("stroke:%s;stroke-width:%d", e.Color.Hex(), u(e.Width))
		if e.Dashed() {
			dash := make([]string, len(e.Dash))
			for i, v := range e.Dash {
				dash[i] = fmt.Sprint(u(v))
			}
			style += ";stroke-dasharray:" + strings.Join(dash, ",")
		}
		s.Line(u(e.From.X), u(e.From.Y), u(e.To.X), u(e.To.Y), style)

	case *diagram.Circle:
		if !finite(e.Center) {
			return fmt.Errorf("%w: circle has non-finite center", ErrEncoding)
		}
		s.Circle(u(e.Center.X), u(e.Center.Y), u(e.Radius),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", e.Color.Hex(), u(e.Width)))

	case *diagram.Marker:
		if !finite(e.Center) {
			return fmt.Errorf("%w: marker %d has non-finite center", ErrEncoding, e.Index)
		}
		s.Circle(u(e.Center.X), u(e.Center.Y), u(e.Radius),
			`class="marker"`,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", e.Fill.Hex(), e.Outline.Hex(), u(e.OutlineWidth)))

	case *diagram.Text:
		writeText(s, e)

	default:
		return fmt.Errorf("%w: unsupported element %s", ErrEncoding, e.Type())
	}
	return nil
}

func writeText(s *svg.SVG, t *diagram.Text) {
	if t.Text == "" {
		return
	}

	style := fmt.Sprintf("font-family:%s;font-size:%d;fill:%s", fontFamily, u(t.Size), t.Color.Hex())
	switch t.Align {
	case diagram.AlignCenter:
		style += ";text-anchor:middle"
	case diagram.AlignEnd:
		style += ";text-anchor:end"
	}
	switch t.VAlign {
	case diagram.AlignMiddle:
		style += ";dominant-baseline:central"
	case diagram.AlignTop:
		style += ";dominant-baseline:text-before-edge"
	case diagram.AlignBottom:
		style += ";dominant-baseline:text-after-edge"
	}

	x, y := u(t.At.X), u(t.At.Y)
	if t.Rotation != 0 {
		// SVG angles are clockwise with y pointing down
		s.Text(x, y, t.Text, fmt.Sprintf(`transform="rotate(%g %d %d)"`, -t.Rotation, x, y), style)
		return
	}
	s.Text(x, y, t.Text, style)
}
