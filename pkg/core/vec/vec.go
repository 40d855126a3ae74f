// Package vec holds the scalar and 2D vector primitives shared by every
// geometry package in sketchkit.
//
// Vector2 is an alias of [geom.Coord], so the vector arithmetic (Plus, Minus,
// Times, Magnitude, Unit) comes from github.com/jbeda/geom and per-axis access
// is plain field access (v.X, v.Y).
//
// # Coordinates
//
// All packages use the display convention: +X points right (east) and +Y
// points down (south). A positive polar angle therefore turns clockwise on
// screen.
package vec

import (
	"math"

	"github.com/jbeda/geom"
)

// Scalar is the single floating-point type used for every coordinate,
// length and angle.
type Scalar = float64

// Vector2 is an (x, y) pair. It is a value type with no identity.
type Vector2 = geom.Coord

// Tolerance is the absolute error accepted by [ApproxEqual] when comparing
// results of trigonometric evaluation.
const Tolerance = 1e-6

// Zero is the origin vector.
var Zero = Vector2{}

// XY builds a vector from its components.
func XY(x, y Scalar) Vector2 { return Vector2{X: x, Y: y} }

// UnitX returns the unit vector along +X (east).
func UnitX() Vector2 { return Vector2{X: 1} }

// UnitY returns the unit vector along +Y (south).
func UnitY() Vector2 { return Vector2{Y: 1} }

// Radians converts an angle in degrees to radians.
func Radians(degrees Scalar) Scalar { return degrees * math.Pi / 180 }

// Degrees converts an angle in radians to degrees.
func Degrees(radians Scalar) Scalar { return radians * 180 / math.Pi }

// FromPolar returns radius·(cos θ, sin θ) for θ given in degrees.
// The trigonometric functions are evaluated once.
func FromPolar(radius, degrees Scalar) Vector2 {
	s, c := math.Sincos(Radians(degrees))
	return Vector2{X: radius * c, Y: radius * s}
}

// ApproxEqual reports whether a and b differ by at most tol on each axis.
func ApproxEqual(a, b Vector2, tol Scalar) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vector2) Vector2 { return a.Plus(b).Times(0.5) }
