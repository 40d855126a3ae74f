// Package path models multi-segment line drawings.
//
// A [Path] is built with a [Builder] that always starts with an absolute
// MoveTo:
//
//	p := path.Start(vec.XY(1, -2)).VLine(10).HLine(30).End()
//	p.Cursor(2) // (31, 8)
//
// Finalized paths are immutable. The builder hands each finalized path its
// own copy of the segment list, so a builder can keep being extended after
// End without affecting paths already produced.
package path

import (
	"strings"

	"github.com/jbeda/geom"

	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

// Path is a finalized, non-empty sequence of segments whose first element
// is a MoveTo. The zero value is an empty path that only [Start] can
// replace; all accessors treat it as a path at the origin.
type Path struct {
	segments []Segment
}

// Segments returns a copy of the segments of p.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments, including the initial MoveTo.
func (p Path) Len() int { return len(p.segments) }

// Start returns the point of the initial MoveTo.
func (p Path) Start() vec.Vector2 {
	if len(p.segments) == 0 {
		return vec.Zero
	}
	return p.segments[0].p
}

// Closed reports whether the last segment of p is a Close.
func (p Path) Closed() bool {
	n := len(p.segments)
	return n > 0 && p.segments[n-1].op == OpClose
}

// Cursor returns the pen position after the first i segments following the
// initial MoveTo. Indices past the end clamp to the last segment. A Close
// segment leaves the pen where it was.
func (p Path) Cursor(i int) vec.Vector2 {
	cur := p.Start()
	for _, s := range p.tail(i) {
		if next, ok := s.Cursor(cur); ok {
			cur = next
		}
	}
	return cur
}

// ClosingCursor is like Cursor, except that a Close returns the pen to the
// start of the current subpath, the way a renderer draws it. Every MoveTo
// or Move begins a new subpath.
func (p Path) ClosingCursor(i int) vec.Vector2 {
	cur := p.Start()
	subpath := cur
	for _, s := range p.tail(i) {
		switch s.op {
		case OpClose:
			cur = subpath
		case OpMoveTo, OpMove:
			cur, _ = s.Cursor(cur)
			subpath = cur
		default:
			cur, _ = s.Cursor(cur)
		}
	}
	return cur
}

func (p Path) tail(i int) []Segment {
	if len(p.segments) == 0 || i <= 0 {
		return nil
	}
	n := min(i, len(p.segments)-1)
	return p.segments[1 : n+1]
}

// End returns the pen position after the whole path.
func (p Path) End() vec.Vector2 { return p.Cursor(len(p.segments)) }

// Points returns the pen position before the first segment and after each
// following one, len(p.Segments()) points in total.
func (p Path) Points() []vec.Vector2 {
	if len(p.segments) == 0 {
		return nil
	}
	pts := make([]vec.Vector2, 0, len(p.segments))
	cur := p.Start()
	pts = append(pts, cur)
	for _, s := range p.segments[1:] {
		if next, ok := s.Cursor(cur); ok {
			cur = next
		}
		pts = append(pts, cur)
	}
	return pts
}

// Bounds returns the axis-aligned box containing every pen position and
// every curve control point of p.
func (p Path) Bounds() geom.Rect {
	start := p.Start()
	r := geom.Rect{Min: start, Max: start}
	cur := start
	for _, s := range p.segments {
		if c1, c2, ok := s.controlPoints(cur); ok {
			r.ExpandToContainCoord(c1)
			r.ExpandToContainCoord(c2)
		}
		if next, ok := s.Cursor(cur); ok {
			cur = next
		}
		r.ExpandToContainCoord(cur)
	}
	return r
}

// String renders p as space separated drawing commands, suitable for a
// path data attribute.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		s.write(&b)
	}
	return b.String()
}
