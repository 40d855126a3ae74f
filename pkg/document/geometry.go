package document

import (
	"github.com/matzehuels/sketchkit/pkg/attr"
	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/shape"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

func circleAttributes(c shape.Circle) attr.Attributes {
	a := attr.Attributes{}
	a.SetScalar(attr.KeyCX, c.Origin.X)
	a.SetScalar(attr.KeyCY, c.Origin.Y)
	a.SetScalar(attr.KeyR, c.Radius)
	return a
}

// Rectangles are serialized by their top-left corner.
func rectangleAttributes(r shape.Rectangle) attr.Attributes {
	a := attr.Attributes{}
	tl := r.TopLeft()
	a.SetScalar(attr.KeyX, tl.X)
	a.SetScalar(attr.KeyY, tl.Y)
	a.SetScalar(attr.KeyWidth, r.Width)
	a.SetScalar(attr.KeyHeight, r.Height)
	if r.CornerRadius != 0 {
		a.SetScalar(attr.KeyRX, r.CornerRadius)
	}
	return a
}

// scalar reads key leniently, warning when it falls back to zero.
func (s *Store) scalar(h Handle, r *record, key string, optional bool) vec.Scalar {
	v, err := r.attrs.Lookup(key)
	if err != nil && !(optional && errors.Is(err, errors.ErrCodeMissingAttribute)) {
		s.logger.Warn("attribute read failed, using 0", "handle", h, "kind", r.kind, "key", key, "err", errors.UserMessage(err))
	}
	return v
}

func (s *Store) typed(h Handle, want Kind) (*record, error) {
	r, err := s.get(h)
	if err != nil {
		return nil, err
	}
	if r.kind != want {
		return nil, errors.New(errors.ErrCodeKindMismatch, "element %d is a %s, not a %s", h, r.kind, want)
	}
	return r, nil
}

// Circle decodes the circle at h.
func (s *Store) Circle(h Handle) (shape.Circle, error) {
	r, err := s.typed(h, KindCircle)
	if err != nil {
		return shape.Circle{}, err
	}
	return shape.Circle{
		Origin: vec.XY(s.scalar(h, r, attr.KeyCX, false), s.scalar(h, r, attr.KeyCY, false)),
		Radius: s.scalar(h, r, attr.KeyR, false),
	}, nil
}

// Rectangle decodes the rectangle at h.
func (s *Store) Rectangle(h Handle) (shape.Rectangle, error) {
	r, err := s.typed(h, KindRectangle)
	if err != nil {
		return shape.Rectangle{}, err
	}
	w := s.scalar(h, r, attr.KeyWidth, false)
	ht := s.scalar(h, r, attr.KeyHeight, false)
	x := s.scalar(h, r, attr.KeyX, false)
	y := s.scalar(h, r, attr.KeyY, false)
	return shape.Rectangle{
		Origin:       vec.XY(x+w/2, y+ht/2),
		Width:        w,
		Height:       ht,
		CornerRadius: s.scalar(h, r, attr.KeyRX, true),
	}, nil
}

// Shape returns the anchorable geometry of the element at h.
func (s *Store) Shape(h Handle) (anchor.Anchorer, error) {
	kind, err := s.Kind(h)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindCircle:
		c, err := s.Circle(h)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindRectangle:
		r, err := s.Rectangle(h)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "%s elements have no anchors", kind)
}

// Anchor resolves a on the element at h.
func (s *Store) Anchor(h Handle, a anchor.Anchor) (vec.Vector2, error) {
	sh, err := s.Shape(h)
	if err != nil {
		return vec.Zero, err
	}
	return sh.Anchor(a), nil
}

// MoveTo recenters the shape at h on origin, keeping its size.
func (s *Store) MoveTo(h Handle, origin vec.Vector2) error {
	kind, err := s.Kind(h)
	if err != nil {
		return err
	}
	switch kind {
	case KindCircle:
		c, err := s.Circle(h)
		if err != nil {
			return err
		}
		s.records[h].attrs.Merge(circleAttributes(c.At(origin)))
		return nil
	case KindRectangle:
		r, err := s.Rectangle(h)
		if err != nil {
			return err
		}
		s.records[h].attrs.Merge(rectangleAttributes(r.At(origin)))
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "%s elements cannot be moved", kind)
}
