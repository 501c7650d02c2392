package contentstream

import (
	"testing"

	"github.com/tsawler/circlepoints/core"
	"github.com/tsawler/circlepoints/model"
)

func TestBuilderText(t *testing.T) {
	got := string(NewBuilder().Text("F1", 10, 30, 537.28, "Author: (x)").Bytes())
	want := "BT\n/F1 10 Tf\n30 537.28 Td\n(Author: \\(x\\)) Tj\nET\n"
	if got != want {
		t.Errorf("Bytes() =\n%q\nwant\n%q", got, want)
	}
}

func TestBuilderDrawImage(t *testing.T) {
	b := NewBuilder().DrawImage("Im1", model.NewBBox(117.5, 50, 607, 455.25))
	got := string(b.Bytes())
	want := "q\n607 0 0 455.25 117.5 50 cm\n/Im1 Do\nQ\n"
	if got != want {
		t.Errorf("Bytes() =\n%q\nwant\n%q", got, want)
	}

	ops := b.Operations()
	if len(ops) != 4 {
		t.Fatalf("got %d operations, want 4", len(ops))
	}
	if ops[2].Operator != "Do" || ops[2].Operands[0] != core.Name("Im1") {
		t.Errorf("unexpected Do operation: %+v", ops[2])
	}
}

func TestBuilderFillColor(t *testing.T) {
	got := string(NewBuilder().FillColor(model.Color{R: 255, G: 0, B: 51}).Bytes())
	want := "1 0 0.2 rg\n"
	if got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestOperationWithoutOperands(t *testing.T) {
	got := string(Operation{Operator: "Q"}.AppendPDF(nil))
	if got != "Q\n" {
		t.Errorf("AppendPDF() = %q, want %q", got, "Q\n")
	}
}
