package path

import "github.com/matzehuels/sketchkit/pkg/core/vec"

// Builder accumulates segments for a [Path]. Methods return the builder so
// calls can be chained. A Builder is owned by a single goroutine.
type Builder struct {
	segments []Segment
}

// Start begins a new path at the absolute point p.
func Start(p vec.Vector2) *Builder {
	return &Builder{segments: []Segment{MoveTo(p)}}
}

// Append adds raw segments. A MoveTo or Move starts a new subpath.
func (b *Builder) Append(segs ...Segment) *Builder {
	b.segments = append(b.segments, segs...)
	return b
}

// MoveTo lifts the pen to p.
func (b *Builder) MoveTo(p vec.Vector2) *Builder { return b.Append(MoveTo(p)) }

// Move lifts the pen by d.
func (b *Builder) Move(d vec.Vector2) *Builder { return b.Append(Move(d)) }

// LineTo draws a line to p.
func (b *Builder) LineTo(p vec.Vector2) *Builder { return b.Append(LineTo(p)) }

// Line draws a line by d.
func (b *Builder) Line(d vec.Vector2) *Builder { return b.Append(Line(d)) }

// VLineTo draws a vertical line to the ordinate y.
func (b *Builder) VLineTo(y vec.Scalar) *Builder { return b.Append(VerticalLineTo(y)) }

// VLine draws a vertical line by dy.
func (b *Builder) VLine(dy vec.Scalar) *Builder { return b.Append(VerticalLine(dy)) }

// HLineTo draws a horizontal line to the abscissa x.
func (b *Builder) HLineTo(x vec.Scalar) *Builder { return b.Append(HorizontalLineTo(x)) }

// HLine draws a horizontal line by dx.
func (b *Builder) HLine(dx vec.Scalar) *Builder { return b.Append(HorizontalLine(dx)) }

// CurveTo draws a cubic Bézier curve to p.
func (b *Builder) CurveTo(c1, c2, p vec.Vector2) *Builder { return b.Append(CurveTo(c1, c2, p)) }

// Curve draws a relative cubic Bézier curve.
func (b *Builder) Curve(dc1, dc2, d vec.Vector2) *Builder { return b.Append(Curve(dc1, dc2, d)) }

// Cursor returns the current pen position, with Close leaving the pen in
// place.
func (b *Builder) Cursor() vec.Vector2 {
	return Path{segments: b.segments}.End()
}

// End finalizes the path without closing it.
func (b *Builder) End() Path {
	out := make([]Segment, len(b.segments))
	copy(out, b.segments)
	return Path{segments: out}
}

// Close appends a Close segment and finalizes the path.
func (b *Builder) Close() Path {
	b.segments = append(b.segments, Close())
	return b.End()
}
