package font

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode converts text to NFC so that decomposed input such as
// "e" + combining acute maps onto a single WinAnsi code point.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// EncodeWinAnsi converts UTF-8 text to WinAnsiEncoding (Windows-1252), the
// encoding declared for the standard fonts. Characters outside the code page,
// and invalid UTF-8, are replaced with '?'.
func EncodeWinAnsi(s string) string {
	normalized := NormalizeUnicode(s)
	out := make([]byte, 0, len(normalized))
	for _, r := range normalized {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
