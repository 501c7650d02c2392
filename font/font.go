package font

import (
	"strings"

	"github.com/tsawler/circlepoints/core"
)

// Standard describes one of the Standard 14 Type1 fonts. Standard fonts need
// no embedding; every conforming PDF viewer supplies them.
type Standard struct {
	// Resource is the name the font is registered under in page resources (e.g. "F1")
	Resource string
	// BaseFont is the PostScript name (e.g. "Helvetica")
	BaseFont string

	widths *asciiWidths
}

// asciiWidths holds advances for the printable ASCII range
type asciiWidths [95]float64

func (w *asciiWidths) lookup(r rune) (float64, bool) {
	if r < ' ' || r > '~' {
		return 0, false
	}
	return w[r-' '], true
}

// Helvetica returns the regular Helvetica face registered as resource
func Helvetica(resource string) *Standard {
	return &Standard{Resource: resource, BaseFont: "Helvetica", widths: &helveticaWidths}
}

// HelveticaBold returns the bold Helvetica face registered as resource
func HelveticaBold(resource string) *Standard {
	return &Standard{Resource: resource, BaseFont: "Helvetica-Bold", widths: &helveticaBoldWidths}
}

// Dict returns the font dictionary for the page resources
func (f *Standard) Dict() core.Dict {
	return core.Dict{
		"Type":     core.Name("Font"),
		"Subtype":  core.Name("Type1"),
		"BaseFont": core.Name(f.BaseFont),
		"Encoding": core.Name("WinAnsiEncoding"),
	}
}

// GetWidth returns the width of a character (in 1000ths of em)
func (f *Standard) GetWidth(r rune) float64 {
	if w, ok := f.widths.lookup(r); ok {
		return w
	}
	if w, ok := sharedWidths[r]; ok {
		return w
	}

	// Default width if not found
	return 500.0
}

// GetStringWidth calculates the total width of a string in 1000ths of em
func (f *Standard) GetStringWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.GetWidth(r)
	}
	return total
}

// Measure returns the advance width of s in points at the given font size
func (f *Standard) Measure(s string, size float64) float64 {
	return f.GetStringWidth(s) * size / 1000
}

// Truncate shortens s so that it fits within maxWidth points at the given
// size, replacing the cut tail with an ellipsis. Text that already fits is
// returned unchanged.
func (f *Standard) Truncate(s string, size, maxWidth float64) string {
	if f.Measure(s, size) <= maxWidth {
		return s
	}

	const ellipsis = "…"
	budget := maxWidth - f.Measure(ellipsis, size)

	var sb strings.Builder
	used := 0.0
	for _, r := range s {
		w := f.GetWidth(r) * size / 1000
		if used+w > budget {
			break
		}
		used += w
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ") + ellipsis
}

// sharedWidths covers the non-ASCII WinAnsi characters this package emits;
// both Helvetica weights use the same advance for them.
var sharedWidths = map[rune]float64{
	'°': 400,
	'—': 1000,
	'…': 1000,
}

// Helvetica advance widths (1/1000 em), indexed by rune from ' ' to '~'
var helveticaWidths = asciiWidths{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

// Helvetica-Bold advance widths (1/1000 em), indexed by rune from ' ' to '~'
var helveticaBoldWidths = asciiWidths{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333, 584, 584, 584, 611,
	975, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 333, 278, 333, 584, 556,
	333, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}
