// Package shape provides the geometry records of the shapes sketchkit can
// anchor to, and their anchor resolution.
//
// Records are plain values. The builder-style methods (At, WithRadius,
// WithWidth, ...) return modified copies and never mutate the receiver, so a
// record can be reused as a template:
//
//	block := shape.Rectangle{}.WithWidth(80).WithHeight(50)
//	plant := block.At(anchor.Right(controller, 100))
//
// Both kinds satisfy [anchor.Anchorer].
package shape

import (
	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

// Circle is a circle centered on Origin.
type Circle struct {
	Origin vec.Vector2
	Radius vec.Scalar
}

// At returns a copy of c centered on origin.
func (c Circle) At(origin vec.Vector2) Circle {
	c.Origin = origin
	return c
}

// WithRadius returns a copy of c with the given radius.
func (c Circle) WithRadius(r vec.Scalar) Circle {
	c.Radius = r
	return c
}

// Anchor resolves a on the circle. Side anchors lie on the axes; diagonal
// anchors lie on the circle at their compass angle.
func (c Circle) Anchor(a anchor.Anchor) vec.Vector2 {
	switch a.Kind {
	case anchor.KindOrigin:
		return c.Origin
	case anchor.KindNorth:
		return c.Origin.Plus(vec.XY(0, -c.Radius))
	case anchor.KindEast:
		return c.Origin.Plus(vec.XY(c.Radius, 0))
	case anchor.KindSouth:
		return c.Origin.Plus(vec.XY(0, c.Radius))
	case anchor.KindWest:
		return c.Origin.Plus(vec.XY(-c.Radius, 0))
	case anchor.KindPolar:
		return c.Origin.Plus(vec.FromPolar(a.Radius, a.Angle))
	}
	angle, ok := anchor.CompassAngle(a.Kind)
	if !ok {
		return c.Origin
	}
	return c.Origin.Plus(vec.FromPolar(c.Radius, angle))
}

// Rectangle is an axis-aligned rectangle whose Origin is its center.
// CornerRadius only affects rendering, never anchors.
type Rectangle struct {
	Origin       vec.Vector2
	Width        vec.Scalar
	Height       vec.Scalar
	CornerRadius vec.Scalar
}

// At returns a copy of r centered on origin.
func (r Rectangle) At(origin vec.Vector2) Rectangle {
	r.Origin = origin
	return r
}

// WithWidth returns a copy of r with the given width.
func (r Rectangle) WithWidth(w vec.Scalar) Rectangle {
	r.Width = w
	return r
}

// WithHeight returns a copy of r with the given height.
func (r Rectangle) WithHeight(h vec.Scalar) Rectangle {
	r.Height = h
	return r
}

// WithSize returns a copy of r with the given width and height.
func (r Rectangle) WithSize(w, h vec.Scalar) Rectangle {
	r.Width, r.Height = w, h
	return r
}

// RoundedCorners returns a copy of r with the given corner radius.
func (r Rectangle) RoundedCorners(radius vec.Scalar) Rectangle {
	r.CornerRadius = radius
	return r
}

// TopLeft returns the corner markup formats position rectangles by.
func (r Rectangle) TopLeft() vec.Vector2 {
	return r.Anchor(anchor.NorthWest)
}

// Anchor resolves a on the rectangle. Polar anchors are a true polar offset
// from the center and may land outside the rectangle.
func (r Rectangle) Anchor(a anchor.Anchor) vec.Vector2 {
	hw, hh := r.Width/2, r.Height/2
	switch a.Kind {
	case anchor.KindNorth:
		return r.Origin.Plus(vec.XY(0, -hh))
	case anchor.KindNorthEast:
		return r.Origin.Plus(vec.XY(hw, -hh))
	case anchor.KindEast:
		return r.Origin.Plus(vec.XY(hw, 0))
	case anchor.KindSouthEast:
		return r.Origin.Plus(vec.XY(hw, hh))
	case anchor.KindSouth:
		return r.Origin.Plus(vec.XY(0, hh))
	case anchor.KindSouthWest:
		return r.Origin.Plus(vec.XY(-hw, hh))
	case anchor.KindWest:
		return r.Origin.Plus(vec.XY(-hw, 0))
	case anchor.KindNorthWest:
		return r.Origin.Plus(vec.XY(-hw, -hh))
	case anchor.KindPolar:
		return r.Origin.Plus(vec.FromPolar(a.Radius, a.Angle))
	}
	return r.Origin
}

var (
	_ anchor.Anchorer = Circle{}
	_ anchor.Anchorer = Rectangle{}
)
