package surface

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded drawing call
type OpKind int

const (
	OpFillRect OpKind = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpFill
	OpStroke
	OpFillText
)

var opNames = map[OpKind]string{
	OpFillRect:  "FillRect",
	OpBeginPath: "BeginPath",
	OpMoveTo:    "MoveTo",
	OpLineTo:    "LineTo",
	OpArc:       "Arc",
	OpFill:      "Fill",
	OpStroke:    "Stroke",
	OpFillText:  "FillText",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind

	X, Y          float64 // point, arc center, rect origin or text anchor
	Width, Height float64 // rect size, or line width for Stroke
	Radius        float64
	Start, End    float64 // arc angles in radians

	Color color.Color
	Text  string
	Style TextStyle
}

// Recorder is a surface that draws nothing and remembers every call in order.
type Recorder struct {
	width, height float64
	Ops           []Op
}

// NewRecorder creates a recorder reporting the given surface size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (width, height float64) {
	return r.width, r.height
}

func (r *Recorder) FillRect(x, y, width, height float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, Width: width, Height: height, Color: clr})
}

func (r *Recorder) BeginPath() {
	r.Ops = append(r.Ops, Op{Kind: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, X: x, Y: y})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, X: x, Y: y, Radius: radius, Start: startAngle, End: endAngle})
}

func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: clr})
}

func (r *Recorder) Stroke(clr color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Color: clr, Width: width})
}

func (r *Recorder) FillText(text string, x, y float64, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, X: x, Y: y, Text: text, Style: style})
}

// Count returns how many calls of the given kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// OfKind returns the recorded calls of the given kind, in order
func (r *Recorder) OfKind(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Kinds returns the kind of every recorded call, in order
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset forgets all recorded calls
func (r *Recorder) Reset() {
	r.Ops = nil
}
