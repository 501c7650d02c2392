package circlepoints

import (
	"fmt"

	"github.com/tsawler/circlepoints/diagram"
	"github.com/tsawler/circlepoints/document"
	"github.com/tsawler/circlepoints/format"
	"github.com/tsawler/circlepoints/model"
	"github.com/tsawler/circlepoints/raster"
	"github.com/tsawler/circlepoints/vector"
)

// Pipeline carries a circle spec and export options through
// geometry, rendering and encoding. Configuration methods return a new
// Pipeline, so a value can be shared and specialised freely.
type Pipeline struct {
	spec    model.CircleSpec
	options ExportOptions

	// Accumulated error (fail-fast)
	err error
}

// Artifacts is everything one Export run produces. Byte slices for formats
// that were not requested are nil.
type Artifacts struct {
	Points  model.PointSet
	Table   *model.CoordinateTable
	Diagram *diagram.Diagram
	PNG     []byte
	SVG     []byte
	PDF     []byte
}

// Bytes returns the encoded artifact for f, or nil.
func (a *Artifacts) Bytes(f format.Format) []byte {
	switch f {
	case format.PNG:
		return a.PNG
	case format.SVG:
		return a.SVG
	case format.PDF:
		return a.PDF
	default:
		return nil
	}
}

// Formats lists the formats present in a, in format.All order.
func (a *Artifacts) Formats() []format.Format {
	var out []format.Format
	for _, f := range format.All {
		if a.Bytes(f) != nil {
			out = append(out, f)
		}
	}
	return out
}

// clone creates a copy of the Pipeline with a deep copy of options.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		spec:    p.spec,
		options: p.options.clone(),
		err:     p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// Spec returns the circle spec the pipeline renders
func (p *Pipeline) Spec() model.CircleSpec {
	return p.spec
}

// Author sets the author printed on the PDF's first page.
//
// Example:
//
//	pdf, err := circlepoints.Default().Author("Ada").PDF()
func (p *Pipeline) Author(author string) *Pipeline {
	newP := p.clone()
	newP.options.author = author
	return newP
}

// Contact sets the contact printed next to the author.
func (p *Pipeline) Contact(contact string) *Pipeline {
	newP := p.clone()
	newP.options.contact = contact
	return newP
}

// DPI sets the raster resolution, at most raster.MaxDPI. The PDF embeds
// the PNG at this resolution too.
//
// Example:
//
//	png, err := circlepoints.Default().DPI(72).PNG()
func (p *Pipeline) DPI(dpi float64) *Pipeline {
	newP := p.clone()
	if !(dpi > 0) || dpi > raster.MaxDPI {
		newP.setErr(&StageError{Stage: StageRaster, Err: fmt.Errorf("%w: dpi %g outside (0, %d]", raster.ErrEncoding, dpi, raster.MaxDPI)})
		return newP
	}
	newP.options.dpi = dpi
	return newP
}

// PageSize sets the PDF page size in points (default landscape A4).
func (p *Pipeline) PageSize(width, height float64) *Pipeline {
	newP := p.clone()
	newP.options.pageWidth = width
	newP.options.pageHeight = height
	return newP
}

// Formats restricts Export to the given formats. Multiple calls replace
// the selection.
//
// Example:
//
//	out, err := circlepoints.Default().Formats(format.SVG).Export()
func (p *Pipeline) Formats(formats ...format.Format) *Pipeline {
	newP := p.clone()
	newP.options.formats = make([]format.Format, 0, len(formats))
	for _, f := range formats {
		if f.Extension() == "" {
			newP.setErr(fmt.Errorf("circlepoints: unsupported format %v", f))
			return newP
		}
		newP.options.formats = append(newP.options.formats, f)
	}
	return newP
}

// setErr keeps the first error
func (p *Pipeline) setErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Params returns the strings printed on the PDF's parameter page.
func (p *Pipeline) Params() model.ExportParams {
	return model.NewExportParams(p.spec, p.options.author, p.options.contact)
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Points computes the point coordinates.
func (p *Pipeline) Points() (model.PointSet, error) {
	if p.err != nil {
		return nil, p.err
	}
	points, err := model.PlacePoints(p.spec)
	if err != nil {
		return nil, stageError(StageGeometry, err)
	}
	return points, nil
}

// Table returns the coordinate table, rounded to six decimals.
//
// Example:
//
//	table, err := circlepoints.Default().Table()
//	fmt.Print(table.ToMarkdown())
func (p *Pipeline) Table() (*model.CoordinateTable, error) {
	points, err := p.Points()
	if err != nil {
		return nil, err
	}
	return points.Table(), nil
}

// Diagram renders the circle, points and axes.
func (p *Pipeline) Diagram() (*diagram.Diagram, error) {
	points, err := p.Points()
	if err != nil {
		return nil, err
	}
	return p.render(points)
}

// PNG renders the diagram and encodes it as PNG.
func (p *Pipeline) PNG() ([]byte, error) {
	d, err := p.Diagram()
	if err != nil {
		return nil, err
	}
	return p.encodePNG(d)
}

// SVG renders the diagram and encodes it as SVG.
func (p *Pipeline) SVG() ([]byte, error) {
	d, err := p.Diagram()
	if err != nil {
		return nil, err
	}
	return p.encodeSVG(d)
}

// PDF renders the diagram and builds the two-page document around its PNG.
func (p *Pipeline) PDF() ([]byte, error) {
	pngData, err := p.PNG()
	if err != nil {
		return nil, err
	}
	return p.exportPDF(pngData)
}

// Export runs every stage once and returns the requested artifacts.
// The PNG is always rendered when PDF is requested, but is only returned
// when PNG was requested too.
//
// Example:
//
//	out, err := circlepoints.Default().Export()
//	os.WriteFile(format.PDF.FileName(), out.PDF, 0o644)
func (p *Pipeline) Export() (*Artifacts, error) {
	points, err := p.Points()
	if err != nil {
		return nil, err
	}
	d, err := p.render(points)
	if err != nil {
		return nil, err
	}

	out := &Artifacts{
		Points:  points,
		Table:   points.Table(),
		Diagram: d,
	}

	var pngData []byte
	if p.options.wants(format.PNG) || p.options.wants(format.PDF) {
		if pngData, err = p.encodePNG(d); err != nil {
			return nil, err
		}
	}
	if p.options.wants(format.PNG) {
		out.PNG = pngData
	}
	if p.options.wants(format.SVG) {
		if out.SVG, err = p.encodeSVG(d); err != nil {
			return nil, err
		}
	}
	if p.options.wants(format.PDF) {
		if out.PDF, err = p.exportPDF(pngData); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (p *Pipeline) render(points model.PointSet) (*diagram.Diagram, error) {
	d, err := diagram.Render(p.spec, points)
	if err != nil {
		return nil, stageError(StageRender, err)
	}
	return d, nil
}

func (p *Pipeline) encodePNG(d *diagram.Diagram) ([]byte, error) {
	data, err := raster.Encode(d, raster.WithDPI(p.options.dpi))
	if err != nil {
		return nil, stageError(StageRaster, err)
	}
	return data, nil
}

func (p *Pipeline) encodeSVG(d *diagram.Diagram) ([]byte, error) {
	data, err := vector.Encode(d)
	if err != nil {
		return nil, stageError(StageVector, err)
	}
	return data, nil
}

func (p *Pipeline) exportPDF(pngData []byte) ([]byte, error) {
	data, err := document.Export(pngData, p.Params(),
		document.WithPageSize(p.options.pageWidth, p.options.pageHeight))
	if err != nil {
		return nil, stageError(StageDocument, err)
	}
	return data, nil
}
