package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/tsawler/circlepoints/diagram"
	"github.com/tsawler/circlepoints/model"
)

// ErrEncoding is returned when a diagram cannot be rasterized or encoded
var ErrEncoding = errors.New("raster: encoding failed")

// DefaultDPI is the export resolution: 8×6 in becomes 1600×1200 px
const DefaultDPI = 200

// MaxDPI bounds the resolution so the canvas stays within 4800×3600 px
const MaxDPI = 600

// pointsPerInch relates diagram units to DPI
const pointsPerInch = 72.0

type options struct {
	dpi float64
}

// Option configures Encode
type Option func(*options)

// WithDPI sets the output resolution in dots per inch
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.dpi = dpi
	}
}

// Encode rasterizes d and returns it as PNG bytes
func Encode(d *diagram.Diagram, opts ...Option) ([]byte, error) {
	o := options{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&o)
	}

	img, err := Image(d, o.dpi)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// Image rasterizes d at the given resolution
func Image(d *diagram.Diagram, dpi float64) (*image.RGBA, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil diagram", ErrEncoding)
	}
	if !(dpi > 0) || dpi > MaxDPI {
		return nil, fmt.Errorf("%w: dpi %g outside (0, %d]", ErrEncoding, dpi, MaxDPI)
	}

	k := dpi / pointsPerInch
	w := int(math.Round(d.Width * k))
	h := int(math.Round(d.Height * k))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty canvas %dx%d", ErrEncoding, w, h)
	}

	ttf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: font: %v", ErrEncoding, err)
	}

	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: model.Scale(k, k),
		dpi:   dpi,
		font:  ttf,
		faces: make(map[float64]font.Face),
	}
	defer c.close()

	for _, e := range d.Elements {
		if err := c.draw(e); err != nil {
			return nil, err
		}
	}
	return c.img, nil
}

// canvas paints display list elements onto an RGBA image
type canvas struct {
	img   *image.RGBA
	scale model.Matrix
	dpi   float64
	font  *opentype.Font
	faces map[float64]font.Face
}

func (c *canvas) close() {
	for _, f := range c.faces {
		f.Close()
	}
}

func (c *canvas) draw(e diagram.Element) error {
	switch e := e.(type) {
	case *diagram.Rect:
		if e.Filled {
			c.fill(diagram.NewPath().Rectangle(e.Box), e.Fill)
		}
		c.fill(diagram.Frame(e.Box, e.StrokeWidth), e.Stroke)
	case *diagram.Line:
		for _, seg := range diagram.Dashes(e.From, e.To, e.Dash) {
			c.fill(diagram.StrokeLine(seg[0], seg[1], e.Width), e.Color)
		}
	case *diagram.Circle:
		c.fill(diagram.Ring(e.Center, e.Radius, e.Width), e.Color)
	case *diagram.Marker:
		c.fill(diagram.Disc(e.Center, e.Radius), e.Fill)
		c.fill(diagram.Ring(e.Center, e.Radius, e.OutlineWidth), e.Outline)
	case *diagram.Text:
		return c.text(e)
	default:
		return fmt.Errorf("%w: unsupported element %s", ErrEncoding, e.Type())
	}
	return nil
}

// fill rasterizes p into a coverage mask the size of its bounding box and
// composites col through it.
func (c *canvas) fill(p *diagram.Path, col model.Color) {
	if p.IsEmpty() {
		return
	}
	p = p.Transform(c.scale)

	b := p.Bounds()
	rect := image.Rect(
		int(math.Floor(b.Left())), int(math.Floor(b.Bottom())),
		int(math.Ceil(b.Right()))+1, int(math.Ceil(b.Top()))+1,
	).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	r := vector.NewRasterizer(rect.Dx(), rect.Dy())
	r.DrawOp = draw.Src
	for _, seg := range p.Segments {
		pts := seg.Points
		switch seg.Type {
		case diagram.PathMoveTo:
			r.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case diagram.PathLineTo:
			r.LineTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case diagram.PathCurveTo:
			r.CubeTo(
				float32(pts[0].X)-ox, float32(pts[0].Y)-oy,
				float32(pts[1].X)-ox, float32(pts[1].Y)-oy,
				float32(pts[2].X)-ox, float32(pts[2].Y)-oy,
			)
		case diagram.PathClosePath:
			r.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, rect, image.NewUniform(col.RGBA()), image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *canvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     c.dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face: %v", ErrEncoding, err)
	}
	c.faces[size] = f
	return f, nil
}

// text renders t into an alpha mask with the baseline at the ascent, turns
// the mask for rotated text, and composites it at the aligned position.
func (c *canvas) text(t *diagram.Text) error {
	if t.Text == "" {
		return nil
	}
	face, err := c.face(t.Size)
	if err != nil {
		return err
	}

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	tw := font.MeasureString(face, t.Text).Ceil()
	th := ascent + descent
	if tw <= 0 || th <= 0 {
		return nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, tw, th))
	dr := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(ascent)},
	}
	dr.DrawString(t.Text)

	var u, v int // anchor offset inside the unrotated mask
	switch t.Align {
	case diagram.AlignCenter:
		u = tw / 2
	case diagram.AlignEnd:
		u = tw
	}
	switch t.VAlign {
	case diagram.AlignBaseline:
		v = ascent
	case diagram.AlignMiddle:
		v = th / 2
	case diagram.AlignBottom:
		v = th
	}

	at := c.scale.Transform(t.At)
	ax, ay := int(math.Round(at.X)), int(math.Round(at.Y))

	var src image.Image = mask
	var origin image.Point
	switch rot := math.Mod(math.Mod(t.Rotation, 360)+360, 360); rot {
	case 0:
		origin = image.Pt(ax-u, ay-v)
	case 90:
		// counterclockwise quarter turn: text runs upward, its top faces left
		turned := image.NewAlpha(image.Rect(0, 0, th, tw))
		s2d := f64.Aff3{0, 1, 0, -1, 0, float64(tw)}
		draw.NearestNeighbor.Transform(turned, s2d, mask, mask.Bounds(), draw.Src, nil)
		src = turned
		origin = image.Pt(ax-v, ay-(tw-u))
	default:
		return fmt.Errorf("%w: unsupported text rotation %g", ErrEncoding, t.Rotation)
	}

	rect := src.Bounds().Add(origin)
	draw.DrawMask(c.img, rect, image.NewUniform(t.Color.RGBA()), image.Point{}, src, image.Point{}, draw.Over)
	return nil
}
