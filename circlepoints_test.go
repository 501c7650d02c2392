package circlepoints

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tsawler/circlepoints/diagram"
	"github.com/tsawler/circlepoints/document"
	"github.com/tsawler/circlepoints/format"
	"github.com/tsawler/circlepoints/model"
	"github.com/tsawler/circlepoints/raster"
	"github.com/tsawler/circlepoints/vector"
)

// lowRes keeps the raster stages fast
const lowRes = 36

func TestPoints(t *testing.T) {
	spec := model.DefaultSpec()
	spec.Count = 4
	spec.Radius = 50

	points, err := New(spec).Points()
	if err != nil {
		t.Fatalf("Points() error: %v", err)
	}

	want := model.PointSet{
		{Index: 1, X: 50, Y: 0},
		{Index: 2, X: 0, Y: 50},
		{Index: 3, X: -50, Y: 0},
		{Index: 4, X: 0, Y: -50},
	}
	if diff := cmp.Diff(want, points, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable(t *testing.T) {
	spec := model.DefaultSpec()
	spec.Center = model.Point{X: 10, Y: 5}
	spec.Radius = 10
	spec.Count = 1
	spec.StartAngle = 90

	table, err := New(spec).Table()
	if err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	want := []model.CoordinateRow{{Index: 1, X: 10, Y: 15}}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestImmutability(t *testing.T) {
	base := Default()
	withAuthor := base.Author("Ada").DPI(300)

	if base.options.author != "" || base.options.dpi != raster.DefaultDPI {
		t.Errorf("base pipeline modified: %+v", base.options)
	}
	if withAuthor.options.author != "Ada" || withAuthor.options.dpi != 300 {
		t.Errorf("derived pipeline options = %+v", withAuthor.options)
	}

	a := base.Formats(format.PNG)
	b := a.Formats(format.SVG, format.PDF)
	if diff := cmp.Diff([]format.Format{format.PNG}, a.options.formats); diff != "" {
		t.Errorf("Formats() leaked into parent (-want +got):\n%s", diff)
	}
	if len(b.options.formats) != 2 {
		t.Errorf("formats = %v, want 2 entries", b.options.formats)
	}
}

func TestParams(t *testing.T) {
	p := Default().Author("Ada").Contact("ada@example.com")
	params := p.Params()

	if params.Author != "Ada" || params.Contact != "ada@example.com" {
		t.Errorf("author/contact = %q/%q", params.Author, params.Contact)
	}
	if e := params.Entries[2]; e.Label != "Point count n" || e.Value != "12" {
		t.Errorf("count entry = %+v", e)
	}
}

func TestDiagram(t *testing.T) {
	spec := model.DefaultSpec()
	spec.Count = 7

	d, err := New(spec).Diagram()
	if err != nil {
		t.Fatalf("Diagram() error: %v", err)
	}
	markers := 0
	for _, e := range d.Elements {
		if e.Type() == diagram.ElementTypeMarker {
			markers++
		}
	}
	if got := markers; got != 7 {
		t.Errorf("markers = %d, want 7", got)
	}
}

func TestExport(t *testing.T) {
	out, err := Default().DPI(lowRes).Export()
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if diff := cmp.Diff(format.All, out.Formats()); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
	for _, f := range format.All {
		if got := format.DetectFromMagic(out.Bytes(f)); got != f {
			t.Errorf("%v artifact detected as %v", f, got)
		}
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(out.PNG))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 288 || cfg.Height != 216 {
		t.Errorf("PNG size = %dx%d, want 288x216", cfg.Width, cfg.Height)
	}
	if len(out.Points) != 12 || out.Table.RowCount() != 12 {
		t.Errorf("points/rows = %d/%d, want 12", len(out.Points), out.Table.RowCount())
	}
	if got := strings.Count(string(out.SVG), `class="marker"`); got != 12 {
		t.Errorf("SVG markers = %d, want 12", got)
	}
}

func TestExportSubset(t *testing.T) {
	tests := []struct {
		name    string
		formats []format.Format
	}{
		{"png only", []format.Format{format.PNG}},
		{"svg only", []format.Format{format.SVG}},
		{"pdf without png", []format.Format{format.PDF}},
		{"svg and pdf", []format.Format{format.SVG, format.PDF}},
		{"none", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Default().DPI(lowRes).Formats(tt.formats...).Export()
			if err != nil {
				t.Fatalf("Export() error: %v", err)
			}
			want := tt.formats
			if len(want) == 0 {
				want = nil
			}
			if diff := cmp.Diff(want, out.Formats()); diff != "" {
				t.Errorf("formats mismatch (-want +got):\n%s", diff)
			}
			if out.Diagram == nil {
				t.Error("expected a diagram")
			}
		})
	}
}

func TestExportDeterministic(t *testing.T) {
	p := Default().DPI(lowRes).Author("Ada")

	first, err := p.Export()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Export()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range format.All {
		if !bytes.Equal(first.Bytes(f), second.Bytes(f)) {
			t.Errorf("%v output differs between runs", f)
		}
	}
}

func TestStandaloneTerminalsMatchExport(t *testing.T) {
	p := Default().DPI(lowRes)
	out, err := p.Export()
	if err != nil {
		t.Fatal(err)
	}

	if svg := Must(p.SVG()); !bytes.Equal(svg, out.SVG) {
		t.Error("SVG() differs from Export().SVG")
	}
	if pdf := Must(p.PDF()); !bytes.Equal(pdf, out.PDF) {
		t.Error("PDF() differs from Export().PDF")
	}
}

func TestStageErrors(t *testing.T) {
	invalid := model.DefaultSpec()
	invalid.Count = 0

	tests := []struct {
		name     string
		run      func() error
		stage    string
		sentinel error
	}{
		{
			name:     "zero count",
			run:      func() error { _, err := New(invalid).Points(); return err },
			stage:    StageGeometry,
			sentinel: model.ErrInvalidSpec,
		},
		{
			name: "negative radius",
			run: func() error {
				spec := model.DefaultSpec()
				spec.Radius = -1
				_, err := New(spec).Export()
				return err
			},
			stage:    StageGeometry,
			sentinel: model.ErrInvalidSpec,
		},
		{
			name:     "bad dpi",
			run:      func() error { _, err := Default().DPI(0).PNG(); return err },
			stage:    StageRaster,
			sentinel: ErrEncoding,
		},
		{
			name:     "dpi above limit",
			run:      func() error { _, err := Default().DPI(1e5).Export(); return err },
			stage:    StageRaster,
			sentinel: ErrEncoding,
		},
		{
			name:     "page too small",
			run:      func() error { _, err := Default().DPI(lowRes).PageSize(50, 100).PDF(); return err },
			stage:    StageDocument,
			sentinel: document.ErrDocumentBuild,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatal("expected error")
			}
			var se *StageError
			if !errors.As(err, &se) {
				t.Fatalf("error %v is not a *StageError", err)
			}
			if se.Stage != tt.stage {
				t.Errorf("stage = %q, want %q", se.Stage, tt.stage)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
		})
	}
}

func TestErrEncodingMatchesBothEncoders(t *testing.T) {
	for _, inner := range []error{raster.ErrEncoding, vector.ErrEncoding} {
		err := &StageError{Stage: StageRaster, Err: inner}
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("errors.Is(%v, ErrEncoding) = false", err)
		}
		if !errors.Is(err, inner) {
			t.Errorf("errors.Is(%v, %v) = false", err, inner)
		}
	}

	other := &StageError{Stage: StageDocument, Err: document.ErrDocumentBuild}
	if errors.Is(other, ErrEncoding) {
		t.Error("document failure matched ErrEncoding")
	}
}

func TestFirstErrorWins(t *testing.T) {
	_, err := Default().DPI(-1).Formats(format.Unknown).Export()
	var se *StageError
	if !errors.As(err, &se) || se.Stage != StageRaster {
		t.Errorf("err = %v, want the raster-stage dpi error", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic")
		}
	}()
	spec := model.DefaultSpec()
	spec.Style.Size = 0
	Must(New(spec).Points())
}
