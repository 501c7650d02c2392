package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsawler/circlepoints/internal/filters"
)

func TestObjectSerialization(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want string
	}{
		{"null", Null{}, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(-42), "-42"},
		{"real", Real(595.2755905511812), "595.27559"},
		{"real integral", Real(30), "30"},
		{"real negative zero", Real(-0.000001), "0"},
		{"string plain", String("Parameters"), "(Parameters)"},
		{"string escapes", String(`a(b)c\d`), `(a\(b\)c\\d)`},
		{"string newline", String("x\ny"), `(x\ny)`},
		{"name", Name("Type"), "/Type"},
		{"name escapes", Name("A B#"), "/A#20B#23"},
		{"array", Array{Int(0), Int(0), Real(841.89), Real(595.28)}, "[0 0 841.89 595.28]"},
		{"empty array", Array{}, "[]"},
		{"empty dict", Dict{}, "<<>>"},
		{"ref", IndirectRef{Number: 3, Generation: 0}, "3 0 R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(tt.obj.AppendPDF(nil))
			if got != tt.want {
				t.Errorf("AppendPDF() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDictSerializationIsSorted(t *testing.T) {
	d := Dict{
		"Type":   Name("Page"),
		"Parent": IndirectRef{Number: 2},
		"Contents": Array{
			IndirectRef{Number: 5},
		},
	}

	want := "<</Contents [5 0 R] /Parent 2 0 R /Type /Page>>"
	for i := 0; i < 10; i++ {
		if got := d.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestDictSetGet(t *testing.T) {
	d := Dict{}
	d.Set("Count", Int(2))
	d.Set("Type", Name("Pages"))

	if got := d.Get("Count"); got != Int(2) {
		t.Errorf("Get(Count) = %v, want 2", got)
	}
	if got := d.Get("Kids"); got != nil {
		t.Errorf("Get(Kids) = %v, want nil", got)
	}
	if got := d.String(); got != "<</Count 2 /Type /Pages>>" {
		t.Errorf("String() = %q", got)
	}
}

func TestStreamSerialization(t *testing.T) {
	s := NewStream(nil, []byte("q Q"))
	got := string(s.AppendPDF(nil))
	want := "<</Length 3>>\nstream\nq Q\nendstream"
	if got != want {
		t.Errorf("AppendPDF() = %q, want %q", got, want)
	}
	if _, ok := s.Dict["Length"]; ok {
		t.Error("AppendPDF() must not mutate the stream dictionary")
	}
}

func TestFlateStreamRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte{200, 100, 50}, 64)
	params := Dict{"Predictor": Int(12), "Colors": Int(3), "Columns": Int(8)}

	s, err := NewFlateStream(Dict{"Type": Name("XObject")}, data, params)
	if err != nil {
		t.Fatalf("NewFlateStream() error: %v", err)
	}
	if name := s.Dict.Get("Filter"); name != Name("FlateDecode") {
		t.Errorf("Filter = %v, want FlateDecode", name)
	}

	decoded, err := filters.FlateDecode(s.Data, dictToParams(s.Dict.Get("DecodeParms").(Dict)))
	if err != nil {
		t.Fatalf("FlateDecode() error: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Error("decoded stream does not match input")
	}
}

func TestIndirectObject(t *testing.T) {
	obj := IndirectObject{Ref: IndirectRef{Number: 1}, Object: Dict{"Type": Name("Catalog")}}
	got := string(obj.AppendPDF(nil))
	want := "1 0 obj\n<</Type /Catalog>>\nendobj\n"
	if got != want {
		t.Errorf("AppendPDF() = %q, want %q", got, want)
	}
}

func TestXRefTable(t *testing.T) {
	x := NewXRefTable()
	x.Set(1, &XRefEntry{Offset: 15, InUse: true})
	x.Set(2, &XRefEntry{Offset: 1234, InUse: true})

	out, err := x.AppendPDF(nil)
	if err != nil {
		t.Fatalf("AppendPDF() error: %v", err)
	}

	lines := strings.SplitAfter(string(out), "\n")
	if lines[0] != "xref\n" || lines[1] != "0 3\n" {
		t.Fatalf("unexpected header: %q", lines[:2])
	}
	entries := lines[2:5]
	want := []string{
		"0000000000 65535 f \n",
		"0000000015 00000 n \n",
		"0000001234 00000 n \n",
	}
	for i, e := range entries {
		if len(e) != 20 {
			t.Errorf("entry %d is %d bytes, want 20", i, len(e))
		}
		if e != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e, want[i])
		}
	}
}

func TestXRefTableGap(t *testing.T) {
	x := NewXRefTable()
	x.Set(2, &XRefEntry{Offset: 10, InUse: true})
	if _, err := x.AppendPDF(nil); err == nil {
		t.Error("expected error for non-contiguous object numbers")
	}
}
