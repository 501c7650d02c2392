// Package core provides the PDF object types used to build documents.
//
// All eight PDF object types (null, boolean, integer, real, string, name,
// array, and dictionary) are implemented as types satisfying the [Object]
// interface, together with [Stream] and [IndirectRef]:
//
//   - [Null] - the PDF null object
//   - [Bool] - PDF boolean values (true/false)
//   - [Int] - PDF integers
//   - [Real] - PDF real numbers, written in fixed notation
//   - [String] - PDF literal strings
//   - [Name] - PDF name objects (e.g., /Type, /Font)
//   - [Array] - PDF arrays
//   - [Dict] - PDF dictionaries
//
// # Serialization
//
// Every object implements AppendPDF, which appends its PDF syntax to a byte
// slice. Dictionaries are written with sorted keys so the same object graph
// always produces the same bytes:
//
//	page := core.Dict{
//	    "Type":     core.Name("Page"),
//	    "MediaBox": core.Array{core.Int(0), core.Int(0), core.Real(841.89), core.Real(595.28)},
//	}
//	out := page.AppendPDF(nil)
//
// # Streams
//
// [NewFlateStream] compresses stream data and records /Filter and
// /DecodeParms so readers can undo the predictor.
//
// # Cross-Reference Tables
//
// [XRefTable] records the byte offset of every indirect object and writes
// the classic xref section that precedes the trailer.
package core
