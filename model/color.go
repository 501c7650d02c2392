package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Common colors used by the renderer.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ParseColor parses a hex RGB color such as "#ff5722" or "#f52".
// The leading '#' is optional and case is ignored.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		// #rgb expands each nibble: f -> ff
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("%w: color %q is not #rrggbb", ErrInvalidSpec, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q is not #rrggbb", ErrInvalidSpec, s)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is intended for package-level color constants and tests.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lower-case #rrggbb form
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Components returns the color as three 0..1 floats (PDF rg/RG operands)
func (c Color) Components() [3]float64 {
	return [3]float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
}
