package writer

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf16"

	"github.com/tsawler/circlepoints/core"
	"github.com/tsawler/circlepoints/font"
)

// header is the PDF version line followed by a binary comment so that
// transfer tools treat the file as binary.
const header = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"

// Page is one page to be written
type Page struct {
	Width, Height float64

	// Contents is the uncompressed content stream
	Contents []byte

	// Fonts used by the content stream, keyed by their Resource name
	Fonts []*font.Standard

	// Images maps XObject resource names (e.g. "Im1") to image streams
	Images map[string]*core.Stream
}

// Document is an ordered list of pages plus document information
type Document struct {
	Pages []*Page

	// Info entries (Title, Author, Producer, ...) written to the Info dictionary
	Info map[string]string
}

// AddPage appends a page and returns it
func (d *Document) AddPage(width, height float64) *Page {
	p := &Page{Width: width, Height: height, Images: make(map[string]*core.Stream)}
	d.Pages = append(d.Pages, p)
	return p
}

// Writer serializes a Document as a complete PDF file
type Writer struct {
	w io.Writer

	buf     []byte
	xref    *core.XRefTable
	objects []core.Object
}

// New creates a writer that emits to w
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write serializes doc. Object numbering and dictionary key order are fixed,
// so the same Document always produces the same bytes.
func (w *Writer) Write(doc *Document) error {
	if doc == nil || len(doc.Pages) == 0 {
		return fmt.Errorf("writer: document has no pages")
	}

	w.buf = w.buf[:0]
	w.objects = w.objects[:0]
	w.xref = core.NewXRefTable()

	catalog := w.reserve()
	pagesRef := w.reserve()

	// Fonts are shared across pages; allocate each resource name once.
	fontRefs := make(map[string]core.IndirectRef)
	var kids core.Array

	for i, page := range doc.Pages {
		if page.Width <= 0 || page.Height <= 0 {
			return fmt.Errorf("writer: page %d has invalid size %gx%g", i+1, page.Width, page.Height)
		}

		fonts := core.Dict{}
		for _, f := range page.Fonts {
			ref, ok := fontRefs[f.Resource]
			if !ok {
				ref = w.add(f.Dict())
				fontRefs[f.Resource] = ref
			}
			fonts[f.Resource] = ref
		}

		xobjects := core.Dict{}
		names := make([]string, 0, len(page.Images))
		for name := range page.Images {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			xobjects[name] = w.add(page.Images[name])
		}

		contents, err := core.NewFlateStream(nil, page.Contents, nil)
		if err != nil {
			return fmt.Errorf("writer: page %d contents: %w", i+1, err)
		}
		contentsRef := w.add(contents)

		resources := core.Dict{
			"ProcSet": core.Array{core.Name("PDF"), core.Name("Text"), core.Name("ImageC")},
		}
		if len(fonts) > 0 {
			resources["Font"] = fonts
		}
		if len(xobjects) > 0 {
			resources["XObject"] = xobjects
		}

		kids = append(kids, w.add(core.Dict{
			"Type":      core.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  core.Array{core.Int(0), core.Int(0), core.Real(page.Width), core.Real(page.Height)},
			"Resources": resources,
			"Contents":  contentsRef,
		}))
	}

	w.set(pagesRef, core.Dict{
		"Type":  core.Name("Pages"),
		"Kids":  kids,
		"Count": core.Int(len(kids)),
	})
	w.set(catalog, core.Dict{
		"Type":  core.Name("Catalog"),
		"Pages": pagesRef,
	})

	trailer := core.Dict{"Root": catalog}
	if len(doc.Info) > 0 {
		info := core.Dict{}
		for k, v := range doc.Info {
			info[k] = TextString(v)
		}
		trailer["Info"] = w.add(info)
	}
	trailer["Size"] = core.Int(len(w.objects) + 1)

	return w.flush(trailer)
}

// reserve allocates an object number whose value is filled in later with set
func (w *Writer) reserve() core.IndirectRef {
	w.objects = append(w.objects, nil)
	return core.IndirectRef{Number: len(w.objects)}
}

// add allocates an object number for obj
func (w *Writer) add(obj core.Object) core.IndirectRef {
	w.objects = append(w.objects, obj)
	return core.IndirectRef{Number: len(w.objects)}
}

func (w *Writer) set(ref core.IndirectRef, obj core.Object) {
	w.objects[ref.Number-1] = obj
}

// flush lays out header, objects, xref and trailer and writes them in one call
func (w *Writer) flush(trailer core.Dict) error {
	w.buf = append(w.buf, header...)

	for i, obj := range w.objects {
		if obj == nil {
			return fmt.Errorf("writer: object %d was reserved but never set", i+1)
		}
		num := i + 1
		w.xref.Set(num, &core.XRefEntry{Offset: int64(len(w.buf)), InUse: true})
		w.buf = core.IndirectObject{Ref: core.IndirectRef{Number: num}, Object: obj}.AppendPDF(w.buf)
	}

	startxref := len(w.buf)
	var err error
	w.buf, err = w.xref.AppendPDF(w.buf)
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}

	w.buf = append(w.buf, "trailer\n"...)
	w.buf = trailer.AppendPDF(w.buf)
	w.buf = append(w.buf, fmt.Sprintf("\nstartxref\n%d\n%%%%EOF\n", startxref)...)

	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	return nil
}

// TextString encodes s as a PDF text string: plain bytes when s is ASCII,
// otherwise UTF-16BE with a byte order mark.
func TextString(s string) core.String {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return core.String(s)
	}

	units := utf16.Encode([]rune(s))
	b := make([]byte, 2, 2+2*len(units))
	b[0], b[1] = 0xfe, 0xff
	for _, u := range units {
		b = append(b, byte(u>>8), byte(u))
	}
	return core.String(b)
}
