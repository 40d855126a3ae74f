// Package arrow computes arrow geometry: endpoint trimming so a marker glyph
// does not overrun its target, and elbow routes between two points.
//
// A route trims the leg its marker sits on: the final leg by default, the
// first leg for start markers. Intermediate corners are exact.
package arrow

import (
	"math"

	"github.com/matzehuels/sketchkit/pkg/core/marker"
	"github.com/matzehuels/sketchkit/pkg/core/path"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

// Shift is the default trim distance: the part of the arrow glyph that
// extends past the line end once the marker is scaled onto the stroke.
const Shift = 0.75 * marker.GlyphLength

// TrimEndpoint returns the point on the segment start→end at distance
// |end-start|-shift from start.
//
// A zero-length segment, a zero shift or a NaN shift returns end unchanged.
// A shift at least as long as the segment returns start.
func TrimEndpoint(start, end vec.Vector2, shift vec.Scalar) vec.Vector2 {
	if shift == 0 || math.IsNaN(shift) {
		return end
	}
	diff := end.Minus(start)
	length := diff.Magnitude()
	if length == 0 {
		return end
	}
	keep := length - shift
	if keep <= 0 {
		return start
	}
	// Per-axis division keeps axis-aligned results exact.
	return start.Plus(vec.XY(diff.X/length*keep, diff.Y/length*keep))
}

// Straight returns a single trimmed line from start to end.
func Straight(start, end vec.Vector2, shift vec.Scalar) path.Path {
	return RouteStraight.Build(start, end, 0, shift)
}

// VerticalHorizontal goes vertically from start to end's row, then
// horizontally to end.
func VerticalHorizontal(start, end vec.Vector2, shift vec.Scalar) path.Path {
	return RouteVH.Build(start, end, 0, shift)
}

// HorizontalVertical goes horizontally from start to end's column, then
// vertically to end.
func HorizontalVertical(start, end vec.Vector2, shift vec.Scalar) path.Path {
	return RouteHV.Build(start, end, 0, shift)
}

// VerticalHorizontalVertical hops yOffset vertically from start, crosses to
// end's column and finishes vertically at end.
func VerticalHorizontalVertical(start, end vec.Vector2, yOffset, shift vec.Scalar) path.Path {
	return RouteVHV.Build(start, end, yOffset, shift)
}

// HorizontalVerticalHorizontal hops xOffset horizontally from start, crosses
// to end's row and finishes horizontally at end.
func HorizontalVerticalHorizontal(start, end vec.Vector2, xOffset, shift vec.Scalar) path.Path {
	return RouteHVH.Build(start, end, xOffset, shift)
}

// route draws start→corners→end, pulling the first leg in by startShift and
// the final leg by endShift. Corners equal to the previous point or to end
// are skipped.
func route(start, end vec.Vector2, startShift, endShift vec.Scalar, corners ...vec.Vector2) path.Path {
	pts := []vec.Vector2{start}
	for _, c := range corners {
		if c == pts[len(pts)-1] || c == end {
			continue
		}
		pts = append(pts, c)
	}
	pts = append(pts, end)

	n := len(pts)
	first := TrimEndpoint(pts[1], pts[0], startShift)
	last := TrimEndpoint(pts[n-2], pts[n-1], endShift)
	pts[0], pts[n-1] = first, last

	b := path.Start(pts[0])
	for i := 1; i < n; i++ {
		leg(b, pts[i-1], pts[i])
	}
	return b.End()
}
func leg(b *path.Builder, from, to vec.Vector2) {
	switch {
	case from.X == to.X && from.Y != to.Y:
		b.VLineTo(to.Y)
	case from.Y == to.Y && from.X != to.X:
		b.HLineTo(to.X)
	default:
		b.LineTo(to)
	}
}
