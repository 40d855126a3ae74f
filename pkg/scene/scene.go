// Package scene reads declarative diagram descriptions and evaluates them
// into a document plus the resolved geometry.
//
// A scene is a TOML file with a list of shapes and a list of arrows. Shapes
// are placed relative to anchors of shapes declared before them; arrows
// connect any two points and are routed and trimmed by package arrow:
//
//	unit = "mm"
//
//	[[shape]]
//	id = "controller"
//	kind = "rectangle"
//	width = 20
//	height = 12.5
//
//	[[shape]]
//	id = "plant"
//	like = "controller"
//	at = { ref = "controller", anchor = "east", dx = 40 }
//
//	[[arrow]]
//	from = { ref = "controller", anchor = "east" }
//	to = { ref = "plant", anchor = "west" }
//
// Lengths are expressed in the scene unit and converted to pixels during
// evaluation. Angles are degrees.
package scene

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/arrow"
	"github.com/matzehuels/sketchkit/pkg/core/marker"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Shape kinds accepted in scene files.
const (
	KindRectangle = "rectangle"
	KindCircle    = "circle"
)

// NoMarker disables arrow heads when used as a marker id.
const NoMarker = "none"

// Scene is a parsed scene description.
type Scene struct {
	Unit   string  `toml:"unit" json:"unit,omitempty"`
	Marker string  `toml:"marker" json:"marker,omitempty"`
	Shapes []Shape `toml:"shape" json:"shapes"`
	Arrows []Arrow `toml:"arrow" json:"arrows,omitempty"`
}

// Shape declares a rectangle or a circle.
type Shape struct {
	ID           string  `toml:"id" json:"id"`
	Kind         string  `toml:"kind" json:"kind,omitempty"`
	Width        float64 `toml:"width" json:"width,omitempty"`
	Height       float64 `toml:"height" json:"height,omitempty"`
	Radius       float64 `toml:"radius" json:"radius,omitempty"`
	CornerRadius float64 `toml:"corner_radius" json:"corner_radius,omitempty"`
	// Like copies the geometry of an earlier shape. Dimensions set on this
	// shape override the copied ones.
	Like string `toml:"like" json:"like,omitempty"`
	// At places the shape's center. Shapes without At sit at the origin.
	At *Point `toml:"at" json:"at,omitempty"`
}

// Point is a position: an anchor of an earlier shape, or an absolute (x, y)
// when Ref is empty, shifted by (dx, dy).
type Point struct {
	Ref    string  `toml:"ref" json:"ref,omitempty"`
	Anchor string  `toml:"anchor" json:"anchor,omitempty"`
	Radius float64 `toml:"radius" json:"radius,omitempty"`
	Angle  float64 `toml:"angle" json:"angle,omitempty"`
	X      float64 `toml:"x" json:"x,omitempty"`
	Y      float64 `toml:"y" json:"y,omitempty"`
	DX     float64 `toml:"dx" json:"dx,omitempty"`
	DY     float64 `toml:"dy" json:"dy,omitempty"`
}

// Arrow connects two points.
type Arrow struct {
	From   Point   `toml:"from" json:"from"`
	To     Point   `toml:"to" json:"to"`
	Route  string  `toml:"route" json:"route,omitempty"`
	Offset float64 `toml:"offset" json:"offset,omitempty"`
	// Marker overrides the scene marker for this arrow.
	Marker string `toml:"marker" json:"marker,omitempty"`
	// Head selects where the marker is drawn: start, mid or end (default).
	Head string `toml:"head" json:"head,omitempty"`
}

// Parse decodes and validates a TOML scene.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks identifiers, references and dimensions. Shapes may only
// refer to shapes declared before them.
func (sc *Scene) Validate() error {
	if _, err := vec.ParseUnit(sc.Unit); err != nil {
		return err
	}
	if sc.Marker != "" && sc.Marker != NoMarker {
		if err := errors.ValidateIdentifier(sc.Marker); err != nil {
			return err
		}
	}

	kinds := make(map[string]string, len(sc.Shapes))
	for i, s := range sc.Shapes {
		if err := errors.ValidateIdentifier(s.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "shape %d", i)
		}
		if _, dup := kinds[s.ID]; dup {
			return errors.New(errors.ErrCodeInvalidScene, "shape %q declared twice", s.ID)
		}
		kind, err := s.resolveKind(kinds)
		if err != nil {
			return err
		}
		if err := s.validateSize(kind); err != nil {
			return err
		}
		if s.At != nil {
			if err := s.At.validate(kinds); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "shape %q", s.ID)
			}
		}
		kinds[s.ID] = kind
	}

	for i, a := range sc.Arrows {
		if _, err := arrow.ParseRoute(a.Route); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRoute, err, "arrow %d", i)
		}
		if _, ok := marker.ParsePlacement(a.Head); !ok {
			return errors.New(errors.ErrCodeInvalidScene, "arrow %d: unknown head %q (want start, mid or end)", i, a.Head)
		}
		if a.Marker != "" && a.Marker != NoMarker {
			if err := errors.ValidateIdentifier(a.Marker); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScene, err, "arrow %d", i)
			}
		}
		for _, p := range []Point{a.From, a.To} {
			if err := p.validate(kinds); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "arrow %d", i)
			}
		}
	}
	return nil
}

func normalizeKind(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "rectangle", "rect":
		return KindRectangle
	case "circle":
		return KindCircle
	case "":
		return ""
	}
	return "?" + kind
}

func (s Shape) resolveKind(known map[string]string) (string, error) {
	kind := normalizeKind(s.Kind)
	if strings.HasPrefix(kind, "?") {
		return "", errors.New(errors.ErrCodeInvalidScene, "shape %q: unknown kind %q (want rectangle or circle)", s.ID, s.Kind)
	}
	if s.Like == "" {
		if kind == "" {
			return "", errors.New(errors.ErrCodeInvalidScene, "shape %q: kind is required", s.ID)
		}
		return kind, nil
	}
	likeKind, ok := known[s.Like]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownReference, "shape %q: like refers to undeclared shape %q", s.ID, s.Like)
	}
	if kind != "" && kind != likeKind {
		return "", errors.New(errors.ErrCodeKindMismatch, "shape %q is a %s but like %q is a %s", s.ID, kind, s.Like, likeKind)
	}
	return likeKind, nil
}

// validateSize checks the dimensions of s against its resolved kind. A
// like-shape inherits its dimensions, so zero means "keep" and only
// negative overrides are rejected.
func (s Shape) validateSize(kind string) error {
	if s.Like != "" {
		if s.Width < 0 || s.Height < 0 || s.Radius < 0 || s.CornerRadius < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "shape %q overrides a dimension with a negative value", s.ID)
		}
	}
	switch kind {
	case KindRectangle:
		if s.Like == "" && (s.Width <= 0 || s.Height <= 0) {
			return errors.New(errors.ErrCodeInvalidScene, "rectangle %q needs a positive width and height", s.ID)
		}
		if s.Radius != 0 {
			return errors.New(errors.ErrCodeInvalidScene, "rectangle %q has a radius, did you mean corner_radius?", s.ID)
		}
	case KindCircle:
		if s.Like == "" && s.Radius <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "circle %q needs a positive radius", s.ID)
		}
		if s.Width != 0 || s.Height != 0 || s.CornerRadius != 0 {
			return errors.New(errors.ErrCodeInvalidScene, "circle %q has rectangle dimensions, use radius", s.ID)
		}
	}
	return nil
}

func (p Point) validate(known map[string]string) error {
	if p.Ref == "" {
		if p.Anchor != "" {
			return errors.New(errors.ErrCodeInvalidScene, "anchor %q given without a ref", p.Anchor)
		}
		return nil
	}
	if _, ok := known[p.Ref]; !ok {
		return errors.New(errors.ErrCodeUnknownReference, "reference to undeclared shape %q", p.Ref)
	}
	_, err := p.ParseAnchor(vec.Pixel)
	return err
}

// ParseAnchor parses the anchor of p. Polar radii are converted from unit.
func (p Point) ParseAnchor(unit vec.Unit) (anchor.Anchor, error) {
	if strings.EqualFold(strings.TrimSpace(p.Anchor), "polar") {
		return anchor.Polar(unit.Px(p.Radius), p.Angle), nil
	}
	return anchor.Parse(p.Anchor)
}
