package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Object represents a PDF object
type Object interface {
	Type() ObjectType
	String() string

	// AppendPDF appends the object's PDF syntax to b and returns the extended slice.
	AppendPDF(b []byte) []byte
}

// ObjectType represents the type of PDF object
type ObjectType int

const (
	ObjNull ObjectType = iota
	ObjBool
	ObjInt
	ObjReal
	ObjString
	ObjName
	ObjArray
	ObjDict
	ObjStream
	ObjIndirect
)

var objectTypeNames = [...]string{
	ObjNull:     "Null",
	ObjBool:     "Bool",
	ObjInt:      "Int",
	ObjReal:     "Real",
	ObjString:   "String",
	ObjName:     "Name",
	ObjArray:    "Array",
	ObjDict:     "Dict",
	ObjStream:   "Stream",
	ObjIndirect: "IndirectRef",
}

func (t ObjectType) String() string {
	if t < 0 || int(t) >= len(objectTypeNames) {
		return "Unknown"
	}
	return objectTypeNames[t]
}

// Null represents a PDF null object
type Null struct{}

func (n Null) Type() ObjectType          { return ObjNull }
func (n Null) String() string            { return "null" }
func (n Null) AppendPDF(b []byte) []byte { return append(b, "null"...) }

// Bool represents a PDF boolean
type Bool bool

func (v Bool) Type() ObjectType { return ObjBool }
func (v Bool) String() string   { return string(v.AppendPDF(nil)) }
func (v Bool) AppendPDF(b []byte) []byte {
	return strconv.AppendBool(b, bool(v))
}

// Int represents a PDF integer
type Int int64

func (i Int) Type() ObjectType          { return ObjInt }
func (i Int) String() string            { return strconv.FormatInt(int64(i), 10) }
func (i Int) AppendPDF(b []byte) []byte { return strconv.AppendInt(b, int64(i), 10) }

// Real represents a PDF real number.
// PDF has no exponent syntax, so reals are written in fixed notation with at
// most five fractional digits.
type Real float64

func (r Real) Type() ObjectType { return ObjReal }
func (r Real) String() string   { return string(r.AppendPDF(nil)) }
func (r Real) AppendPDF(b []byte) []byte {
	v := float64(r)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(b, '0')
	}
	v = math.Round(v*1e5) / 1e5
	if v == 0 {
		// avoid "-0"
		return append(b, '0')
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

// String represents a PDF string. Its content is raw bytes in the target
// encoding; AppendPDF writes it as a literal string with escapes.
type String string

func (s String) Type() ObjectType { return ObjString }
func (s String) String() string   { return string(s) }
func (s String) AppendPDF(b []byte) []byte {
	b = append(b, '(')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', ')', '\\':
			b = append(b, '\\', c)
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		default:
			b = append(b, c)
		}
	}
	return append(b, ')')
}

// Name represents a PDF name
type Name string

func (n Name) Type() ObjectType { return ObjName }
func (n Name) String() string   { return "/" + string(n) }
func (n Name) AppendPDF(b []byte) []byte {
	b = append(b, '/')
	for i := 0; i < len(n); i++ {
		c := n[i]
		if c < '!' || c > '~' || isDelimiter(c) || c == '#' {
			b = append(b, fmt.Sprintf("#%02X", c)...)
			continue
		}
		b = append(b, c)
	}
	return b
}

// Array represents a PDF array
type Array []Object

func (a Array) Type() ObjectType { return ObjArray }
func (a Array) String() string   { return string(a.AppendPDF(nil)) }
func (a Array) AppendPDF(b []byte) []byte {
	b = append(b, '[')
	for i, obj := range a {
		if i > 0 {
			b = append(b, ' ')
		}
		b = obj.AppendPDF(b)
	}
	return append(b, ']')
}

// Dict represents a PDF dictionary
type Dict map[string]Object

func (d Dict) Type() ObjectType { return ObjDict }
func (d Dict) String() string   { return string(d.AppendPDF(nil)) }

// AppendPDF writes the dictionary with its keys in sorted order so that
// identical dictionaries always serialize to identical bytes.
func (d Dict) AppendPDF(b []byte) []byte {
	b = append(b, "<<"...)
	for _, key := range d.Keys() {
		b = Name(key).AppendPDF(b)
		b = append(b, ' ')
		b = d[key].AppendPDF(b)
		b = append(b, ' ')
	}
	if len(d) > 0 {
		b = b[:len(b)-1]
	}
	return append(b, ">>"...)
}

// Get retrieves a value from the dictionary
func (d Dict) Get(key string) Object {
	return d[key]
}

// Set sets a value in the dictionary
func (d Dict) Set(key string, value Object) {
	d[key] = value
}

// Keys returns all keys in the dictionary in sorted order
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stream represents a PDF stream object
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) Type() ObjectType { return ObjStream }
func (s *Stream) String() string {
	return fmt.Sprintf("stream %s (%d bytes)", s.Dict.String(), len(s.Data))
}

// AppendPDF writes the stream dictionary (with an up-to-date /Length) followed
// by the raw data.
func (s *Stream) AppendPDF(b []byte) []byte {
	dict := make(Dict, len(s.Dict)+1)
	for k, v := range s.Dict {
		dict[k] = v
	}
	dict["Length"] = Int(len(s.Data))

	b = dict.AppendPDF(b)
	b = append(b, "\nstream\n"...)
	b = append(b, s.Data...)
	return append(b, "\nendstream"...)
}

// IndirectRef represents an indirect object reference
type IndirectRef struct {
	Number     int
	Generation int
}

func (r IndirectRef) Type() ObjectType { return ObjIndirect }
func (r IndirectRef) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}
func (r IndirectRef) AppendPDF(b []byte) []byte {
	return append(b, r.String()...)
}

// IndirectObject represents an indirect object with its reference
type IndirectObject struct {
	Ref    IndirectRef
	Object Object
}

// AppendPDF writes the "n g obj ... endobj" definition
func (o IndirectObject) AppendPDF(b []byte) []byte {
	b = strconv.AppendInt(b, int64(o.Ref.Number), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(o.Ref.Generation), 10)
	b = append(b, " obj\n"...)
	b = o.Object.AppendPDF(b)
	return append(b, "\nendobj\n"...)
}

// isDelimiter reports whether c is a PDF delimiter character
func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
