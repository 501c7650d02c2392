package vector

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/tsawler/circlepoints/diagram"
	"github.com/tsawler/circlepoints/model"
)

func encodeSpec(t *testing.T, spec model.CircleSpec) string {
	t.Helper()
	points, err := model.PlacePoints(spec)
	if err != nil {
		t.Fatalf("PlacePoints() error: %v", err)
	}
	d, err := diagram.Render(spec, points)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	return string(out)
}

func TestEncodeDocument(t *testing.T) {
	out := encodeSpec(t, model.DefaultSpec())

	for _, want := range []string{
		`width="576pt"`,
		`height="432pt"`,
		`viewBox="0 0 57600 43200"`,
		"<title>" + diagram.Title + "</title>",
		"x [m]",
		"y [m]",
		`transform="rotate(-90 `,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	// well-formed XML
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("SVG is not well-formed: %v", err)
		}
	}
}

func TestEncodeMarkers(t *testing.T) {
	tests := []struct {
		name  string
		count int
		color string
	}{
		{"single", 1, "#123456"},
		{"default", 12, "#ff5722"},
		{"many", 50, "#00aaff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := model.DefaultSpec()
			spec.Count = tt.count
			spec.Style.Color = model.MustParseColor(tt.color)
			out := encodeSpec(t, spec)

			if got := strings.Count(out, `class="marker"`); got != tt.count {
				t.Errorf("markers = %d, want %d", got, tt.count)
			}
			if got := strings.Count(out, "fill:"+tt.color); got != tt.count {
				t.Errorf("markers filled with %s = %d, want %d", tt.color, got, tt.count)
			}
		})
	}
}

func TestEncodeGrid(t *testing.T) {
	spec := model.DefaultSpec()
	spec.ShowGrid = true
	if !strings.Contains(encodeSpec(t, spec), "stroke-dasharray") {
		t.Error("grid enabled but no dashed lines")
	}

	spec.ShowGrid = false
	if strings.Contains(encodeSpec(t, spec), "stroke-dasharray") {
		t.Error("grid disabled but dashed lines present")
	}
}

func TestEncodeEscapesText(t *testing.T) {
	spec := model.DefaultSpec()
	spec.Units = "<m&m>"
	out := encodeSpec(t, spec)
	if strings.Contains(out, "<m&m>") {
		t.Error("units label written unescaped")
	}
	if !strings.Contains(out, "&lt;m&amp;m&gt;") {
		t.Error("escaped units label missing")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	spec := model.DefaultSpec()
	spec.StartAngle = 17.5
	if encodeSpec(t, spec) != encodeSpec(t, spec) {
		t.Error("Encode() output differs between runs")
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, ErrEncoding) {
		t.Errorf("nil diagram: err = %v, want ErrEncoding", err)
	}

	bad := &diagram.Diagram{
		Width: 10, Height: 10,
		Elements: []diagram.Element{&diagram.Marker{Center: model.Point{X: math.NaN()}}},
	}
	out, err := Encode(bad)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("NaN marker: err = %v, want ErrEncoding", err)
	}
	if out != nil {
		t.Error("no bytes expected on error")
	}

	if _, err := Encode(&diagram.Diagram{}); !errors.Is(err, ErrEncoding) {
		t.Errorf("empty canvas: err = %v, want ErrEncoding", err)
	}
}

func TestUnits(t *testing.T) {
	if u(1.234) != 123 || u(0.006) != 1 || u(-2) != -200 {
		t.Error("unexpected unit conversion")
	}
	if !bytes.Contains([]byte(encodeSpec(t, model.DefaultSpec())), []byte("font-size:800")) {
		t.Error("tick labels should be 8pt")
	}
}
