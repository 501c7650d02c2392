// Package model provides the value types shared by every stage of the
// circle diagram pipeline, and the geometry engine that places the points.
//
// # Circle Specification
//
// A [CircleSpec] describes one diagram: center, radius, number of points,
// start angle, axis units, point style and grid visibility. Specs are plain
// values and are validated with [CircleSpec.Validate]; violations wrap
// [ErrInvalidSpec]:
//
//	spec := model.DefaultSpec()
//	spec.Count = 8
//	if err := spec.Validate(); err != nil {
//	    // errors.Is(err, model.ErrInvalidSpec)
//	}
//
// # Point Placement
//
// [PlacePoints] computes the evenly spaced points:
//
//	points, err := model.PlacePoints(spec)
//	for _, p := range points {
//	    fmt.Println(p.Index, p.X, p.Y)
//	}
//
// The resulting [PointSet] can be projected into a [CoordinateTable] with
// coordinates rounded to six decimals, and exported as Markdown, CSV or HTML.
//
// # Geometry
//
// Geometric primitives support layout calculations:
//
//   - [Point] - 2D point
//   - [BBox] - axis-aligned rectangle
//   - [Matrix] - 2D affine transformation
//
// # Export Parameters
//
// [ExportParams] holds the label/value lines printed on the parameter page
// of the exported document, plus free-text author and contact.
package model
