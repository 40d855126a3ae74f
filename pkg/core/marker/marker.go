// Package marker describes the glyphs drawn at the ends of lines.
//
// The glyph geometry is fixed: arrow glyphs are drawn in a GlyphLength by
// GlyphWidth box with the tip at (GlyphLength, GlyphWidth/2). Line
// endpoints are trimmed by a fraction of GlyphLength so the tip lands on
// the target (see package arrow).
package marker

import (
	"fmt"

	"github.com/matzehuels/sketchkit/pkg/attr"
	"github.com/matzehuels/sketchkit/pkg/core/path"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

// Glyph box of the default arrow.
const (
	GlyphLength vec.Scalar = 10
	GlyphWidth  vec.Scalar = 10
)

// Default marker viewport and orientation.
const (
	DefaultWidth  vec.Scalar = 3
	DefaultHeight vec.Scalar = 3
	DefaultOrient            = "auto-start-reverse"
)

// ArrowID is the id given to the default arrow marker.
const ArrowID = "arrow"

// Marker is a reusable glyph referenced by lines.
type Marker struct {
	ID     string
	Width  vec.Scalar
	Height vec.Scalar
	// Orient is a fixed rotation in degrees. Nil means DefaultOrient.
	Orient *vec.Scalar
	Glyph  path.Path
}

// New returns a marker with the default viewport and orientation.
func New(id string, glyph path.Path) Marker {
	return Marker{ID: id, Width: DefaultWidth, Height: DefaultHeight, Glyph: glyph}
}

// ArrowGlyph returns the triangle M 0 0 L 10 5 L 0 10 Z.
func ArrowGlyph() path.Path {
	return path.Start(vec.Zero).
		LineTo(vec.XY(GlyphLength, GlyphWidth/2)).
		LineTo(vec.XY(0, GlyphWidth)).
		Close()
}

// Arrow returns the default arrow marker.
func Arrow() Marker { return New(ArrowID, ArrowGlyph()) }

// WithSize returns a copy of m with the given viewport.
func (m Marker) WithSize(w, h vec.Scalar) Marker {
	m.Width, m.Height = w, h
	return m
}

// WithOrient returns a copy of m with a fixed rotation in degrees.
func (m Marker) WithOrient(deg vec.Scalar) Marker {
	m.Orient = &deg
	return m
}

// URL returns the reference lines use to point at m.
func (m Marker) URL() string { return fmt.Sprintf("url(#%s)", m.ID) }

// Attributes returns the serializer attributes of m.
func (m Marker) Attributes() attr.Attributes {
	a := attr.Attributes{}
	a.SetString(attr.KeyID, m.ID)
	a.SetScalar(attr.KeyMarkerWidth, m.Width)
	a.SetScalar(attr.KeyMarkerHeight, m.Height)
	if m.Orient != nil {
		a.SetScalar(attr.KeyOrient, *m.Orient)
	} else {
		a.SetString(attr.KeyOrient, DefaultOrient)
	}
	a.SetString(attr.KeyD, m.Glyph.String())
	return a
}

// Placement selects the vertices of a line a marker is drawn on.
type Placement uint8

const (
	PlaceStart Placement = iota
	PlaceMid
	PlaceEnd
)

// Key returns the attribute name for p.
func (p Placement) Key() string {
	switch p {
	case PlaceStart:
		return attr.KeyMarkerStart
	case PlaceMid:
		return attr.KeyMarkerMid
	}
	return attr.KeyMarkerEnd
}

// ParsePlacement parses "start", "mid" or "end".
func ParsePlacement(s string) (Placement, bool) {
	switch s {
	case "start":
		return PlaceStart, true
	case "mid":
		return PlaceMid, true
	case "end", "":
		return PlaceEnd, true
	}
	return PlaceEnd, false
}
