// Package format enumerates the export formats and recognizes them from
// their leading bytes.
package format

import (
	"bytes"
	"fmt"
	"strings"
)

// BaseName is the file name stem shared by all exported artifacts
const BaseName = "kruznice_vykresleni"

// Format represents a supported export format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a raster image.
	PNG
	// SVG indicates a vector image.
	SVG
	// PDF indicates the two-page document.
	PDF
)

// All lists the export formats in the order they are produced
var All = []Format{PNG, SVG, PDF}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case SVG:
		return "SVG"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case SVG:
		return ".svg"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// MimeType returns the media type served for the format.
func (f Format) MimeType() string {
	switch f {
	case PNG:
		return "image/png"
	case SVG:
		return "image/svg+xml"
	case PDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the canonical download name, e.g. kruznice_vykresleni.png
func (f Format) FileName() string {
	if f == Unknown {
		return ""
	}
	return BaseName + f.Extension()
}

// Parse converts a format name such as "png" or ".PDF" to a Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	default:
		return Unknown, fmt.Errorf("format: unknown format %q", name)
	}
}

// ParseList parses a comma-separated list of format names, dropping
// duplicates and keeping the order of All.
func ParseList(list string) ([]Format, error) {
	seen := make(map[Format]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := Parse(part)
		if err != nil {
			return nil, err
		}
		seen[f] = true
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("format: no formats in %q", list)
	}

	var out []Format
	for _, f := range All {
		if seen[f] {
			out = append(out, f)
		}
	}
	return out, nil
}

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown if the format cannot be determined from them.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}
	if detectSVGMagic(data) {
		return SVG
	}
	return Unknown
}

// detectSVGMagic checks for an <svg root, optionally behind an XML
// declaration, comments or a doctype.
func detectSVGMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) > 1024 {
		data = data[:1024]
	}
	if bytes.HasPrefix(data, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(data, []byte("<?xml")) && bytes.Contains(data, []byte("<svg"))
}
