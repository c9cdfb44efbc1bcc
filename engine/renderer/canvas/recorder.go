package canvas

import (
	"image"
	"image/color"

	"github.com/spaghettifunk/wireframe/engine/math"
)

type OpKind uint8

const (
	OpPixel OpKind = iota
	OpLine
	OpFill
)

// Op is one recorded drawing call. From is the pixel for OpPixel; From and
// To are the endpoints for OpLine; Triangle is set for OpFill.
type Op struct {
	Kind     OpKind
	From, To image.Point
	Triangle [3]math.Vec2
	Color    color.RGBA
}

// Recorder is a surface that keeps every call in order instead of drawing.
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawPixel(x, y int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpPixel, From: image.Pt(x, y), Color: c})
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: image.Pt(x0, y0), To: image.Pt(x1, y1), Color: c})
}

func (r *Recorder) FillTriangle(p [3]math.Vec2, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Triangle: p, Color: c})
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Pixels returns the positions of the recorded DrawPixel calls.
func (r *Recorder) Pixels() []image.Point {
	var pts []image.Point
	for _, op := range r.Ops {
		if op.Kind == OpPixel {
			pts = append(pts, op.From)
		}
	}
	return pts
}

// Lines returns the recorded DrawLine calls.
func (r *Recorder) Lines() []Op {
	return r.filter(OpLine)
}

// Fills returns the recorded FillTriangle calls.
func (r *Recorder) Fills() []Op {
	return r.filter(OpFill)
}

func (r *Recorder) filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
