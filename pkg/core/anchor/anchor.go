// Package anchor defines attachment points on shapes.
//
// An [Anchor] names a point relative to a shape: its origin, one of the eight
// compass directions, or an arbitrary polar offset. Shapes implement
// [Anchorer] to map an Anchor to an absolute coordinate; the helpers in this
// package (North, Above, BelowRight, ...) work on any Anchorer.
//
// # Sign convention
//
// North is up on the rendered image, which is decreasing Y. East is
// increasing X. The same convention holds for every shape kind and every
// helper.
package anchor

import (
	"fmt"
	"strings"

	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Kind enumerates the anchor variants.
type Kind uint8

const (
	KindOrigin Kind = iota
	KindNorth
	KindNorthEast
	KindEast
	KindSouthEast
	KindSouth
	KindSouthWest
	KindWest
	KindNorthWest
	KindPolar
)

var kindNames = [...]string{
	KindOrigin:    "origin",
	KindNorth:     "north",
	KindNorthEast: "northeast",
	KindEast:      "east",
	KindSouthEast: "southeast",
	KindSouth:     "south",
	KindSouthWest: "southwest",
	KindWest:      "west",
	KindNorthWest: "northwest",
	KindPolar:     "polar",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Anchor is an immutable anchor description. Radius and Angle are only
// meaningful for KindPolar; Angle is in degrees.
type Anchor struct {
	Kind   Kind
	Radius vec.Scalar
	Angle  vec.Scalar
}

// Named anchors.
var (
	Origin    = Anchor{Kind: KindOrigin}
	North     = Anchor{Kind: KindNorth}
	NorthEast = Anchor{Kind: KindNorthEast}
	East      = Anchor{Kind: KindEast}
	SouthEast = Anchor{Kind: KindSouthEast}
	South     = Anchor{Kind: KindSouth}
	SouthWest = Anchor{Kind: KindSouthWest}
	West      = Anchor{Kind: KindWest}
	NorthWest = Anchor{Kind: KindNorthWest}
)

// Compass lists the origin followed by the eight compass anchors, clockwise
// from north.
var Compass = []Anchor{Origin, North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Polar returns an anchor at radius from the shape's origin, angle degrees
// clockwise from east.
func Polar(radius, angle vec.Scalar) Anchor {
	return Anchor{Kind: KindPolar, Radius: radius, Angle: angle}
}

// CompassAngle returns the fixed polar angle (degrees) of a compass kind.
// It returns false for KindOrigin and KindPolar.
func CompassAngle(k Kind) (vec.Scalar, bool) {
	switch k {
	case KindEast:
		return 0, true
	case KindSouthEast:
		return 45, true
	case KindSouth:
		return 90, true
	case KindSouthWest:
		return 135, true
	case KindWest:
		return 180, true
	case KindNorthWest:
		return -135, true
	case KindNorth:
		return -90, true
	case KindNorthEast:
		return -45, true
	}
	return 0, false
}

// String renders the anchor, e.g. "northeast" or "polar(10, 45)".
func (a Anchor) String() string {
	if a.Kind == KindPolar {
		return fmt.Sprintf("polar(%g, %g)", a.Radius, a.Angle)
	}
	return a.Kind.String()
}

// Parse parses a named anchor. Short forms (n, ne, e, ...) and "center" are
// accepted. Polar anchors have no textual form; build them with [Polar].
func Parse(name string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "origin", "center", "c":
		return Origin, nil
	case "north", "n":
		return North, nil
	case "northeast", "ne":
		return NorthEast, nil
	case "east", "e":
		return East, nil
	case "southeast", "se":
		return SouthEast, nil
	case "south", "s":
		return South, nil
	case "southwest", "sw":
		return SouthWest, nil
	case "west", "w":
		return West, nil
	case "northwest", "nw":
		return NorthWest, nil
	}
	return Anchor{}, errors.New(errors.ErrCodeInvalidAnchor, "unknown anchor %q", name)
}
