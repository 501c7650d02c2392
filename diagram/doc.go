// Package diagram lays out a circle, its placed points and the surrounding
// axes as a display list on a fixed 576×432 pt canvas.
//
// Render does all layout work once; the raster and vector encoders only walk
// the resulting elements:
//
//	points, err := model.PlacePoints(spec)
//	d, err := diagram.Render(spec, points)
//	for _, e := range d.Elements {
//	    switch e := e.(type) {
//	    case *diagram.Marker:
//	        // draw e.Center, e.Radius ...
//	    }
//	}
//
// # Coordinates
//
// Elements use canvas coordinates: points, origin at the top-left corner, y
// growing downward. Data coordinates map onto the plot area through
// [Diagram.Transform], which applies the same scale to both axes so circles
// stay round.
//
// # View bounds
//
// The visible data range always contains the circle, its center and the
// origin, plus a margin of max(20, 0.2·radius) on each side. Tick positions
// are chosen by gonum/plot's tick algorithm and are a pure function of the
// bounds, so re-rendering the same spec yields the same ticks.
//
// # Paths
//
// [Path] and the helpers [StrokeLine], [Ring], [Disc] and [Dashes] turn
// strokes into closed outlines for encoders that can only fill shapes.
package diagram
