package arrow

import (
	"strings"

	"github.com/matzehuels/sketchkit/pkg/core/marker"
	"github.com/matzehuels/sketchkit/pkg/core/path"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Route names an arrow routing strategy.
type Route string

const (
	RouteStraight Route = "straight"
	RouteVH       Route = "vh"
	RouteHV       Route = "hv"
	RouteVHV      Route = "vhv"
	RouteHVH      Route = "hvh"
)

// Routes lists every supported route.
var Routes = []Route{RouteStraight, RouteVH, RouteHV, RouteVHV, RouteHVH}

// ParseRoute parses a route name. The empty string means straight.
func ParseRoute(s string) (Route, error) {
	r := Route(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RouteStraight, nil
	}
	for _, known := range Routes {
		if r == known {
			return r, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidRoute, "unknown route %q (want one of straight, vh, hv, vhv, hvh)", s)
}

// Build draws r from start to end with the final leg trimmed by shift.
// offset is the elbow hop of the double elbow routes and ignored by the
// others.
func (r Route) Build(start, end vec.Vector2, offset, shift vec.Scalar) path.Path {
	return route(start, end, 0, shift, r.corners(start, end, offset)...)
}

// BuildHead draws r for a marker at head. The leg the marker sits on is
// trimmed by shift: the first leg for PlaceStart, the final leg for
// PlaceEnd. Mid markers sit on interior vertices and trim nothing.
func (r Route) BuildHead(start, end vec.Vector2, offset, shift vec.Scalar, head marker.Placement) path.Path {
	switch head {
	case marker.PlaceStart:
		return route(start, end, shift, 0, r.corners(start, end, offset)...)
	case marker.PlaceMid:
		return route(start, end, 0, 0, r.corners(start, end, offset)...)
	}
	return r.Build(start, end, offset, shift)
}

func (r Route) corners(start, end vec.Vector2, offset vec.Scalar) []vec.Vector2 {
	switch r {
	case RouteVH:
		return []vec.Vector2{vec.XY(start.X, end.Y)}
	case RouteHV:
		return []vec.Vector2{vec.XY(end.X, start.Y)}
	case RouteVHV:
		y := start.Y + offset
		return []vec.Vector2{vec.XY(start.X, y), vec.XY(end.X, y)}
	case RouteHVH:
		x := start.X + offset
		return []vec.Vector2{vec.XY(x, start.Y), vec.XY(x, end.Y)}
	}
	return nil
}
