// Package raster paints a diagram.Diagram into an RGBA image and encodes it
// as PNG.
//
// Shapes are filled with golang.org/x/image/vector, one coverage mask per
// shape; strokes arrive as closed outlines built by the diagram package.
// Text is set in Go Regular through golang.org/x/image/font/opentype.
//
// At the default 200 DPI the 8×6 in canvas becomes a 1600×1200 pixel image:
//
//	png, err := raster.Encode(d)
//	png, err := raster.Encode(d, raster.WithDPI(96))
package raster
