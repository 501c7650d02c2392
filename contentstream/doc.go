// Package contentstream builds PDF content streams.
//
// Content streams contain the instructions for rendering page content,
// including text display and image placement.
//
// # Building Operations
//
// A [Builder] records operators and their operands in order:
//
//	cs := contentstream.NewBuilder().
//	    FillColor(model.Black).
//	    Text("F2", 14, 30, 555.28, "Title").
//	    DrawImage("Im1", model.NewBBox(117, 50, 607, 455))
//	data := cs.Bytes()
//
// # Operators Used
//
// Text operators:
//   - BT, ET - Begin/end text object
//   - Tf - Set font and size
//   - Td - Move text position
//   - Tj - Show text
//
// Graphics state operators:
//   - q, Q - Save/restore graphics state
//   - cm - Modify CTM (current transformation matrix)
//   - rg - Set fill color
//
// XObject operators:
//   - Do - Paint an image XObject
package contentstream
