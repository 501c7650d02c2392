package writer

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/tsawler/circlepoints/core"
	"github.com/tsawler/circlepoints/font"
)

func sampleDocument() *Document {
	doc := &Document{Info: map[string]string{"Producer": "circlepoints", "Author": "Jiří"}}

	f1 := font.Helvetica("F1")
	p1 := doc.AddPage(841.89, 595.28)
	p1.Fonts = []*font.Standard{f1}
	p1.Contents = []byte("BT /F1 10 Tf 30 30 Td (one) Tj ET\n")
	p1.Images["Im1"] = core.NewStream(core.Dict{
		"Type":    core.Name("XObject"),
		"Subtype": core.Name("Image"),
	}, []byte{1, 2, 3})

	p2 := doc.AddPage(841.89, 595.28)
	p2.Fonts = []*font.Standard{f1, font.HelveticaBold("F2")}
	p2.Contents = []byte("BT /F2 12 Tf 30 30 Td (two) Tj ET\n")

	return doc
}

func writeSample(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := New(&buf).Write(sampleDocument()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	return buf.Bytes()
}

func TestWriteStructure(t *testing.T) {
	out := writeSample(t)

	if !bytes.HasPrefix(out, []byte("%PDF-1.4\n")) {
		t.Errorf("missing PDF header: %q", out[:16])
	}
	if !bytes.HasSuffix(out, []byte("%%EOF\n")) {
		t.Errorf("missing %%%%EOF marker")
	}

	s := string(out)
	for _, want := range []string{
		"/Type /Catalog",
		"/Count 2",
		"/Type /Pages",
		"/MediaBox [0 0 841.89 595.28]",
		"/BaseFont /Helvetica-Bold",
		"/Subtype /Image",
		"/Filter /FlateDecode",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Helvetica is used on both pages but must be written once
	if n := strings.Count(s, "/BaseFont /Helvetica "); n != 1 {
		t.Errorf("Helvetica font object written %d times, want 1", n)
	}
}

func TestWriteXRefOffsets(t *testing.T) {
	out := writeSample(t)
	s := string(out)

	m := regexp.MustCompile(`startxref\n(\d+)\n`).FindStringSubmatch(s)
	if m == nil {
		t.Fatal("startxref not found")
	}
	start, _ := strconv.Atoi(m[1])
	if !strings.HasPrefix(s[start:], "xref\n") {
		t.Fatalf("startxref %d does not point at the xref section", start)
	}

	entries := regexp.MustCompile(`(\d{10}) 00000 n \n`).FindAllStringSubmatch(s[start:], -1)
	if len(entries) == 0 {
		t.Fatal("no in-use xref entries")
	}
	for i, e := range entries {
		off, _ := strconv.Atoi(e[1])
		want := strconv.Itoa(i+1) + " 0 obj\n"
		if !strings.HasPrefix(s[off:], want) {
			t.Errorf("xref entry %d points at %q, want %q", i+1, s[off:off+len(want)], want)
		}
	}

	size := regexp.MustCompile(`/Size (\d+)`).FindStringSubmatch(s)
	if size == nil || size[1] != strconv.Itoa(len(entries)+1) {
		t.Errorf("trailer /Size = %v, want %d", size, len(entries)+1)
	}
}

func TestWriteDeterministic(t *testing.T) {
	a := writeSample(t)
	b := writeSample(t)
	if !bytes.Equal(a, b) {
		t.Error("Write() output differs between runs")
	}
}

func TestWriteRejectsEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Write(&Document{}); err == nil {
		t.Error("expected error for document without pages")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}

func TestWriteRejectsBadPageSize(t *testing.T) {
	doc := &Document{}
	doc.AddPage(0, 100)
	if err := New(&bytes.Buffer{}).Write(doc); err == nil {
		t.Error("expected error for zero-width page")
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("plain"); got != "plain" {
		t.Errorf("TextString(plain) = %q", got)
	}
	got := TextString("ř")
	want := core.String("\xfe\xff\x01\x59")
	if got != want {
		t.Errorf("TextString(ř) = %q, want %q", got, want)
	}
}
