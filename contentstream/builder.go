package contentstream

import (
	"github.com/tsawler/circlepoints/core"
	"github.com/tsawler/circlepoints/model"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "Tm", "q")
	Operands []core.Object // The operands
}

// AppendPDF writes the operands followed by the operator and a newline.
func (op Operation) AppendPDF(b []byte) []byte {
	for _, operand := range op.Operands {
		b = operand.AppendPDF(b)
		b = append(b, ' ')
	}
	b = append(b, op.Operator...)
	return append(b, '\n')
}

// Builder accumulates operations for one page's content stream.
// Methods return the builder so calls can be chained.
type Builder struct {
	ops []Operation
}

// NewBuilder creates an empty content stream builder
func NewBuilder() *Builder {
	return &Builder{ops: make([]Operation, 0)}
}

// Op appends an arbitrary operation
func (b *Builder) Op(operator string, operands ...core.Object) *Builder {
	b.ops = append(b.ops, Operation{Operator: operator, Operands: operands})
	return b
}

// Operations returns the operations recorded so far
func (b *Builder) Operations() []Operation {
	return b.ops
}

// Bytes serializes the content stream
func (b *Builder) Bytes() []byte {
	var out []byte
	for _, op := range b.ops {
		out = op.AppendPDF(out)
	}
	return out
}

// Save pushes the graphics state (q operator)
func (b *Builder) Save() *Builder {
	return b.Op("q")
}

// Restore pops the graphics state (Q operator)
func (b *Builder) Restore() *Builder {
	return b.Op("Q")
}

// Transform concatenates m to the CTM (cm operator)
func (b *Builder) Transform(m model.Matrix) *Builder {
	return b.Op("cm", reals(m[:]...)...)
}

// FillColor sets the non-stroking RGB color (rg operator)
func (b *Builder) FillColor(c model.Color) *Builder {
	comp := c.Components()
	return b.Op("rg", reals(comp[:]...)...)
}

// DrawImage paints the named image XObject into the rectangle r.
// Image space is the unit square, so the CTM is scaled to r.
func (b *Builder) DrawImage(name string, r model.BBox) *Builder {
	return b.Save().
		Transform(model.Matrix{r.Width, 0, 0, r.Height, r.X, r.Y}).
		Op("Do", core.Name(name)).
		Restore()
}

// Text shows a single line of text at (x, y) in the given font resource.
// The text must already be encoded for the font.
func (b *Builder) Text(font string, size, x, y float64, text string) *Builder {
	return b.Op("BT").
		Op("Tf", core.Name(font), core.Real(size)).
		Op("Td", core.Real(x), core.Real(y)).
		Op("Tj", core.String(text)).
		Op("ET")
}

func reals(vs ...float64) []core.Object {
	objs := make([]core.Object, len(vs))
	for i, v := range vs {
		objs[i] = core.Real(v)
	}
	return objs
}
