// Package vector serializes a diagram.Diagram as an SVG document using
// github.com/ajstarks/svgo.
//
// The document is sized in points (width="576pt" height="432pt") and its
// viewBox counts hundredths of a point, which keeps svgo's integer
// coordinates precise enough for sub-point markers and strokes.
package vector
