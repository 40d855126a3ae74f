package anchor

import "github.com/matzehuels/sketchkit/pkg/core/vec"

// Anchorer maps an anchor to an absolute point. Implementations must be total.
type Anchorer interface {
	Anchor(a Anchor) vec.Vector2
}

// OriginOf returns the center of s.
func OriginOf(s Anchorer) vec.Vector2 { return s.Anchor(Origin) }

// NorthOf returns the top anchor of s.
func NorthOf(s Anchorer) vec.Vector2 { return s.Anchor(North) }

// EastOf returns the right anchor of s.
func EastOf(s Anchorer) vec.Vector2 { return s.Anchor(East) }

// SouthOf returns the bottom anchor of s.
func SouthOf(s Anchorer) vec.Vector2 { return s.Anchor(South) }

// WestOf returns the left anchor of s.
func WestOf(s Anchorer) vec.Vector2 { return s.Anchor(West) }

// NorthEastOf returns the top-right anchor of s.
func NorthEastOf(s Anchorer) vec.Vector2 { return s.Anchor(NorthEast) }

// SouthEastOf returns the bottom-right anchor of s.
func SouthEastOf(s Anchorer) vec.Vector2 { return s.Anchor(SouthEast) }

// SouthWestOf returns the bottom-left anchor of s.
func SouthWestOf(s Anchorer) vec.Vector2 { return s.Anchor(SouthWest) }

// NorthWestOf returns the top-left anchor of s.
func NorthWestOf(s Anchorer) vec.Vector2 { return s.Anchor(NorthWest) }

// Above returns the north anchor moved up by dy.
func Above(s Anchorer, dy vec.Scalar) vec.Vector2 {
	return NorthOf(s).Plus(vec.XY(0, -dy))
}

// Below returns the south anchor moved down by dy.
func Below(s Anchorer, dy vec.Scalar) vec.Vector2 {
	return SouthOf(s).Plus(vec.XY(0, dy))
}

// Left returns the west anchor moved left by dx.
func Left(s Anchorer, dx vec.Scalar) vec.Vector2 {
	return WestOf(s).Plus(vec.XY(-dx, 0))
}

// Right returns the east anchor moved right by dx.
func Right(s Anchorer, dx vec.Scalar) vec.Vector2 {
	return EastOf(s).Plus(vec.XY(dx, 0))
}

// AboveLeft returns the northwest anchor moved left by dx and up by dy.
func AboveLeft(s Anchorer, dx, dy vec.Scalar) vec.Vector2 {
	return NorthWestOf(s).Plus(vec.XY(-dx, -dy))
}

// AboveRight returns the northeast anchor moved right by dx and up by dy.
func AboveRight(s Anchorer, dx, dy vec.Scalar) vec.Vector2 {
	return NorthEastOf(s).Plus(vec.XY(dx, -dy))
}

// BelowLeft returns the southwest anchor moved left by dx and down by dy.
func BelowLeft(s Anchorer, dx, dy vec.Scalar) vec.Vector2 {
	return SouthWestOf(s).Plus(vec.XY(-dx, dy))
}

// BelowRight returns the southeast anchor moved right by dx and down by dy.
func BelowRight(s Anchorer, dx, dy vec.Scalar) vec.Vector2 {
	return SouthEastOf(s).Plus(vec.XY(dx, dy))
}

// Offset returns the anchor a of s shifted by d. It is the general form the
// scene description uses for "anchor plus dx/dy".
func Offset(s Anchorer, a Anchor, d vec.Vector2) vec.Vector2 {
	return s.Anchor(a).Plus(d)
}

// All resolves the origin and the eight compass anchors of s, keyed by name.
func All(s Anchorer) map[string]vec.Vector2 {
	out := make(map[string]vec.Vector2, len(Compass))
	for _, a := range Compass {
		out[a.Kind.String()] = s.Anchor(a)
	}
	return out
}
