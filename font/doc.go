// Package font provides the Standard 14 fonts used when writing PDF text.
//
// Only Helvetica and Helvetica-Bold are needed. They are referenced by name
// and never embedded, so the package carries just their advance widths:
//
//	f := font.Helvetica("F1")
//	w := f.Measure("Parameters", 12)          // width in points
//	s := f.Truncate(longAuthor, 10, 780)       // fit a line to the page
//
// # Encoding
//
// Standard fonts are declared with WinAnsiEncoding. [EncodeWinAnsi]
// normalizes text to NFC and converts it to Windows-1252 bytes, replacing
// characters the code page cannot represent with '?'.
package font
