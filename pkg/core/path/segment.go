package path

import (
	"strconv"
	"strings"

	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

// Op identifies the kind of a [Segment].
type Op uint8

const (
	OpMoveTo Op = iota
	OpMove
	OpLineTo
	OpLine
	OpVerticalLineTo
	OpVerticalLine
	OpHorizontalLineTo
	OpHorizontalLine
	OpCurveTo
	OpCurve
	OpClose
)

var opTokens = [...]string{
	OpMoveTo:           "M",
	OpMove:             "m",
	OpLineTo:           "L",
	OpLine:             "l",
	OpVerticalLineTo:   "V",
	OpVerticalLine:     "v",
	OpHorizontalLineTo: "H",
	OpHorizontalLine:   "h",
	OpCurveTo:          "C",
	OpCurve:            "c",
	OpClose:            "Z",
}

// Token returns the single-letter drawing command for op. Upper case
// commands are absolute, lower case relative.
func (op Op) Token() string {
	if int(op) < len(opTokens) {
		return opTokens[op]
	}
	return "?"
}

// Relative reports whether op is expressed relative to the pen.
func (op Op) Relative() bool {
	switch op {
	case OpMove, OpLine, OpVerticalLine, OpHorizontalLine, OpCurve:
		return true
	}
	return false
}

// Segment is one drawing step. The zero value is not a valid segment; use
// the constructors.
//
// For MoveTo/LineTo/CurveTo p is an absolute point, for the relative forms a
// displacement. Single-axis segments store their scalar in s. Curves carry
// their two control points in c1 and c2.
type Segment struct {
	op     Op
	p      vec.Vector2
	c1, c2 vec.Vector2
	s      vec.Scalar
}

// MoveTo lifts the pen to the absolute point p.
func MoveTo(p vec.Vector2) Segment { return Segment{op: OpMoveTo, p: p} }

// Move lifts the pen by d.
func Move(d vec.Vector2) Segment { return Segment{op: OpMove, p: d} }

// LineTo draws a line to the absolute point p.
func LineTo(p vec.Vector2) Segment { return Segment{op: OpLineTo, p: p} }

// Line draws a line by d.
func Line(d vec.Vector2) Segment { return Segment{op: OpLine, p: d} }

// VerticalLineTo draws a vertical line to the absolute ordinate y.
func VerticalLineTo(y vec.Scalar) Segment { return Segment{op: OpVerticalLineTo, s: y} }

// VerticalLine draws a vertical line by dy.
func VerticalLine(dy vec.Scalar) Segment { return Segment{op: OpVerticalLine, s: dy} }

// HorizontalLineTo draws a horizontal line to the absolute abscissa x.
func HorizontalLineTo(x vec.Scalar) Segment { return Segment{op: OpHorizontalLineTo, s: x} }

// HorizontalLine draws a horizontal line by dx.
func HorizontalLine(dx vec.Scalar) Segment { return Segment{op: OpHorizontalLine, s: dx} }

// CurveTo draws a cubic Bézier curve to p with absolute control points.
func CurveTo(c1, c2, p vec.Vector2) Segment {
	return Segment{op: OpCurveTo, c1: c1, c2: c2, p: p}
}

// Curve draws a cubic Bézier curve with every point relative to the pen.
func Curve(dc1, dc2, d vec.Vector2) Segment {
	return Segment{op: OpCurve, c1: dc1, c2: dc2, p: d}
}

// Close closes the current subpath.
func Close() Segment { return Segment{op: OpClose} }

// Op returns the segment kind.
func (s Segment) Op() Op { return s.op }

// Point returns the end point or displacement of the segment. It is the
// zero vector for single-axis segments and Close.
func (s Segment) Point() vec.Vector2 { return s.p }

// Scalar returns the coordinate or displacement of a single-axis segment.
func (s Segment) Scalar() vec.Scalar { return s.s }

// Controls returns the two control points (or control displacements) of a
// curve segment.
func (s Segment) Controls() (vec.Vector2, vec.Vector2) { return s.c1, s.c2 }

// Cursor returns the pen position after drawing s from prev. Close reports
// false: its position is left to the caller.
func (s Segment) Cursor(prev vec.Vector2) (vec.Vector2, bool) {
	switch s.op {
	case OpMoveTo, OpLineTo, OpCurveTo:
		return s.p, true
	case OpMove, OpLine, OpCurve:
		return prev.Plus(s.p), true
	case OpVerticalLineTo:
		return vec.XY(prev.X, s.s), true
	case OpVerticalLine:
		return vec.XY(prev.X, prev.Y+s.s), true
	case OpHorizontalLineTo:
		return vec.XY(s.s, prev.Y), true
	case OpHorizontalLine:
		return vec.XY(prev.X+s.s, prev.Y), true
	}
	return prev, false
}

// controlPoints returns the absolute control points of a curve drawn from
// prev, or false for any other segment.
func (s Segment) controlPoints(prev vec.Vector2) (vec.Vector2, vec.Vector2, bool) {
	switch s.op {
	case OpCurveTo:
		return s.c1, s.c2, true
	case OpCurve:
		return prev.Plus(s.c1), prev.Plus(s.c2), true
	}
	return vec.Zero, vec.Zero, false
}

// String renders s as a drawing command, e.g. "M 1 2", "v -2.5" or
// "C 1 2, 3 4, 5 6".
func (s Segment) String() string {
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s Segment) write(b *strings.Builder) {
	b.WriteString(s.op.Token())
	switch s.op {
	case OpMoveTo, OpMove, OpLineTo, OpLine:
		b.WriteByte(' ')
		writePoint(b, s.p)
	case OpVerticalLineTo, OpVerticalLine, OpHorizontalLineTo, OpHorizontalLine:
		b.WriteByte(' ')
		b.WriteString(formatScalar(s.s))
	case OpCurveTo, OpCurve:
		b.WriteByte(' ')
		writePoint(b, s.c1)
		b.WriteString(", ")
		writePoint(b, s.c2)
		b.WriteString(", ")
		writePoint(b, s.p)
	}
}

func writePoint(b *strings.Builder, p vec.Vector2) {
	b.WriteString(formatScalar(p.X))
	b.WriteByte(' ')
	b.WriteString(formatScalar(p.Y))
}

func formatScalar(v vec.Scalar) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
