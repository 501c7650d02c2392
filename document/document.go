package document

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	"github.com/tsawler/circlepoints/contentstream"
	"github.com/tsawler/circlepoints/core"
	"github.com/tsawler/circlepoints/font"
	"github.com/tsawler/circlepoints/format"
	"github.com/tsawler/circlepoints/internal/filters"
	"github.com/tsawler/circlepoints/model"
	"github.com/tsawler/circlepoints/writer"
)

// ErrDocumentBuild is returned when the PDF cannot be assembled, for example
// because the image bytes do not decode.
var ErrDocumentBuild = errors.New("document: build failed")

// A4 landscape in points
const (
	A4Width  = 841.8897637795277
	A4Height = 595.2755905511812
)

// Fixed page texts
const (
	Title           = "Circle — point placement"
	ParametersTitle = "Parameters"
	Attribution     = "Note: file generated by circlepoints"
	Placeholder     = "—"
	Producer        = "circlepoints"
)

// MaxImageSize bounds either side of the embedded image, in pixels
const MaxImageSize = 8192

// Layout in points, measured from the page's lower-left corner
const (
	marginX       = 30.0
	entryX        = 40.0
	titleDrop     = 40.0
	bylineDrop    = 58.0
	entriesDrop   = 70.0
	entryStep     = 18.0
	closingGap    = 10.0
	imageMarginW  = 60.0
	imageMarginH  = 140.0
	imageShiftUp  = 20.0
	titleSize     = 14.0
	headingSize   = 12.0
	bodySize      = 10.0
	imageResource = "Im1"
)

type options struct {
	width, height float64
}

// Option configures Export
type Option func(*options)

// WithPageSize sets the page size in points. Both pages use it.
func WithPageSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// FitImage scales an imgW×imgH image uniformly to the largest size that fits
// in (pageW−60)×(pageH−140), centers it on the page and moves it up by 20.
// The returned box is in PDF user space (origin bottom-left).
func FitImage(imgW, imgH, pageW, pageH float64) (model.BBox, error) {
	maxW := pageW - imageMarginW
	maxH := pageH - imageMarginH
	if !(imgW > 0) || !(imgH > 0) || math.IsInf(imgW, 0) || math.IsInf(imgH, 0) {
		return model.BBox{}, fmt.Errorf("%w: invalid image size %gx%g", ErrDocumentBuild, imgW, imgH)
	}
	if !(maxW > 0) || !(maxH > 0) || math.IsInf(maxW, 0) || math.IsInf(maxH, 0) {
		return model.BBox{}, fmt.Errorf("%w: page %gx%g leaves no room for the image", ErrDocumentBuild, pageW, pageH)
	}

	ratio := math.Min(maxW/imgW, maxH/imgH)
	rw, rh := imgW*ratio, imgH*ratio
	return model.NewBBox((pageW-rw)/2, (pageH-rh)/2-imageShiftUp, rw, rh), nil
}

// Export builds a two-page PDF: the PNG image with a title and byline, then
// the parameter listing. No bytes are returned on error.
func Export(pngData []byte, params model.ExportParams, opts ...Option) ([]byte, error) {
	o := options{width: A4Width, height: A4Height}
	for _, opt := range opts {
		opt(&o)
	}

	if len(pngData) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrDocumentBuild)
	}
	switch f := format.DetectFromMagic(pngData); f {
	case format.PNG:
	case format.Unknown:
		return nil, fmt.Errorf("%w: image data is not PNG", ErrDocumentBuild)
	default:
		return nil, fmt.Errorf("%w: image data is %s, not PNG", ErrDocumentBuild, f)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image header: %v", ErrDocumentBuild, err)
	}
	if cfg.Width > MaxImageSize || cfg.Height > MaxImageSize {
		return nil, fmt.Errorf("%w: image %dx%d exceeds %d px", ErrDocumentBuild, cfg.Width, cfg.Height, MaxImageSize)
	}
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrDocumentBuild, err)
	}
	b := img.Bounds()
	placement, err := FitImage(float64(b.Dx()), float64(b.Dy()), o.width, o.height)
	if err != nil {
		return nil, err
	}

	xobj, err := imageXObject(img)
	if err != nil {
		return nil, err
	}

	regular := font.Helvetica("F1")
	bold := font.HelveticaBold("F2")

	doc := &writer.Document{Info: map[string]string{
		"Title":    Title,
		"Producer": Producer,
	}}
	if a := strings.TrimSpace(params.Author); a != "" {
		doc.Info["Author"] = a
	}

	W, H := o.width, o.height

	// Page 1: title, byline, image
	p1 := doc.AddPage(W, H)
	p1.Fonts = []*font.Standard{regular, bold}
	p1.Images[imageResource] = xobj
	c1 := contentstream.NewBuilder()
	text(c1, bold, titleSize, marginX, H-titleDrop, W-2*marginX, Title)
	text(c1, regular, bodySize, marginX, H-bylineDrop, W-2*marginX, Byline(params))
	c1.DrawImage(imageResource, placement)
	p1.Contents = c1.Bytes()

	// Page 2: parameter listing and attribution
	p2 := doc.AddPage(W, H)
	p2.Fonts = []*font.Standard{regular, bold}
	c2 := contentstream.NewBuilder()
	text(c2, bold, headingSize, marginX, H-titleDrop, W-2*marginX, ParametersTitle)
	y := H - entriesDrop
	for _, e := range params.Entries {
		text(c2, regular, bodySize, entryX, y, W-entryX-marginX, e.Label+": "+e.Value)
		y -= entryStep
	}
	text(c2, regular, bodySize, marginX, y-closingGap, W-2*marginX, Attribution)
	p2.Contents = c2.Bytes()

	var out bytes.Buffer
	if err := writer.New(&out).Write(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentBuild, err)
	}
	return out.Bytes(), nil
}

// Byline formats the author/contact line, with a dash for blank fields
func Byline(params model.ExportParams) string {
	return "Author: " + orPlaceholder(params.Author) + "    Contact: " + orPlaceholder(params.Contact)
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return Placeholder
	}
	return s
}

// text shows s truncated to maxWidth and encoded for the standard fonts
func text(b *contentstream.Builder, f *font.Standard, size, x, y, maxWidth float64, s string) {
	s = f.Truncate(font.NormalizeUnicode(s), size, maxWidth)
	b.Text(f.Resource, size, x, y, font.EncodeWinAnsi(s))
}

// imageXObject converts img to an 8-bit DeviceRGB image stream, compositing
// any transparency onto white.
func imageXObject(img image.Image) (*core.Stream, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgb := make([]byte, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rgb = append(rgb, overWhite(c.R, c.A), overWhite(c.G, c.A), overWhite(c.B, c.A))
		}
	}

	s, err := core.NewFlateStream(core.Dict{
		"Type":             core.Name("XObject"),
		"Subtype":          core.Name("Image"),
		"Width":            core.Int(w),
		"Height":           core.Int(h),
		"ColorSpace":       core.Name("DeviceRGB"),
		"BitsPerComponent": core.Int(8),
	}, rgb, core.Dict{
		"Predictor":        core.Int(filters.PredictorPNGUp),
		"Colors":           core.Int(3),
		"BitsPerComponent": core.Int(8),
		"Columns":          core.Int(w),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: image stream: %v", ErrDocumentBuild, err)
	}
	return s, nil
}

func overWhite(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 255*(255-uint32(a)) + 127) / 255)
}
