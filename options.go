package circlepoints

import (
	"github.com/tsawler/circlepoints/document"
	"github.com/tsawler/circlepoints/format"
	"github.com/tsawler/circlepoints/raster"
)

// ExportOptions holds the settings that do not change the geometry.
type ExportOptions struct {
	// Free text printed on the first PDF page
	author  string
	contact string

	// Raster resolution
	dpi float64

	// PDF page size in points
	pageWidth  float64
	pageHeight float64

	// Artifacts produced by Export
	formats []format.Format
}

// defaultOptions returns the default export options.
func defaultOptions() ExportOptions {
	return ExportOptions{
		dpi:        raster.DefaultDPI,
		pageWidth:  document.A4Width,
		pageHeight: document.A4Height,
		formats:    nil, // nil means format.All
	}
}

// clone creates a deep copy of ExportOptions.
func (o ExportOptions) clone() ExportOptions {
	newOpts := o
	if o.formats != nil {
		newOpts.formats = make([]format.Format, len(o.formats))
		copy(newOpts.formats, o.formats)
	}
	return newOpts
}

// wants reports whether Export should produce f.
func (o ExportOptions) wants(f format.Format) bool {
	if o.formats == nil {
		return true
	}
	for _, g := range o.formats {
		if g == f {
			return true
		}
	}
	return false
}
