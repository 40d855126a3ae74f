// Package document stores the elements of a diagram as attribute records in
// an arena addressed by stable integer handles.
//
// Every element is a tagged record: a [Kind] plus the flat attribute map the
// external serializer consumes. Geometry is never stored twice: shape
// snapshots ([Store.Circle], [Store.Rectangle]) are decoded from the
// attributes each time they are requested, so attribute edits made through
// [Store.Set] or [Store.Like] are always reflected in anchor queries.
//
// A Store has a single owner and is not safe for concurrent use.
package document

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchkit/pkg/attr"
	"github.com/matzehuels/sketchkit/pkg/core/marker"
	"github.com/matzehuels/sketchkit/pkg/core/path"
	"github.com/matzehuels/sketchkit/pkg/core/shape"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Kind tags the element type of a record.
type Kind uint8

const (
	KindCircle Kind = iota + 1
	KindRectangle
	KindLine
	KindPath
	KindMarker
)

// String returns the element name the serializer uses for k.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rect"
	case KindLine:
		return "line"
	case KindPath:
		return "path"
	case KindMarker:
		return "marker"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for c := KindCircle; c <= KindMarker; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown element kind %q", text)
}

// Handle addresses a record in a Store. Handles stay valid for the life of
// the Store.
type Handle int

type record struct {
	kind  Kind
	attrs attr.Attributes
}

// Store is an arena of element records.
type Store struct {
	records []record
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger lenient attribute reads warn through.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

func (s *Store) add(kind Kind, attrs attr.Attributes) Handle {
	s.records = append(s.records, record{kind: kind, attrs: attrs})
	return Handle(len(s.records) - 1)
}

func (s *Store) get(h Handle) (*record, error) {
	if h < 0 || int(h) >= len(s.records) {
		return nil, errors.New(errors.ErrCodeInvalidHandle, "no element with handle %d", h)
	}
	return &s.records[h], nil
}

// AddCircle adds a circle element.
func (s *Store) AddCircle(c shape.Circle) Handle {
	return s.add(KindCircle, circleAttributes(c))
}

// AddRectangle adds a rectangle element.
func (s *Store) AddRectangle(r shape.Rectangle) Handle {
	return s.add(KindRectangle, rectangleAttributes(r))
}

// AddLine adds a straight line element.
func (s *Store) AddLine(start, end vec.Vector2) Handle {
	a := attr.Attributes{}
	a.SetScalar(attr.KeyX1, start.X)
	a.SetScalar(attr.KeyY1, start.Y)
	a.SetScalar(attr.KeyX2, end.X)
	a.SetScalar(attr.KeyY2, end.Y)
	return s.add(KindLine, a)
}

// AddPath adds a path element.
func (s *Store) AddPath(p path.Path) Handle {
	a := attr.Attributes{}
	a.SetString(attr.KeyD, p.String())
	return s.add(KindPath, a)
}

// AddMarker adds a marker definition.
func (s *Store) AddMarker(m marker.Marker) Handle {
	return s.add(KindMarker, m.Attributes())
}

// Kind returns the kind of the record at h.
func (s *Store) Kind(h Handle) (Kind, error) {
	r, err := s.get(h)
	if err != nil {
		return 0, err
	}
	return r.kind, nil
}

// Attributes returns a copy of the attributes at h.
func (s *Store) Attributes(h Handle) (attr.Attributes, error) {
	r, err := s.get(h)
	if err != nil {
		return nil, err
	}
	return r.attrs.Clone(), nil
}

// Set stores a single attribute on the record at h.
func (s *Store) Set(h Handle, key string, v attr.Value) error {
	r, err := s.get(h)
	if err != nil {
		return err
	}
	r.attrs.Set(key, v)
	return nil
}

// Like replaces the attributes at dst with a copy of those at src. Both
// records must have the same kind.
func (s *Store) Like(dst, src Handle) error {
	from, err := s.get(src)
	if err != nil {
		return err
	}
	to, err := s.get(dst)
	if err != nil {
		return err
	}
	if from.kind != to.kind {
		return errors.New(errors.ErrCodeKindMismatch, "cannot make %s %d like %s %d", to.kind, dst, from.kind, src)
	}
	to.attrs = from.attrs.Clone()
	return nil
}

// Element is a snapshot of one record.
type Element struct {
	Handle     Handle          `json:"handle"`
	Kind       Kind            `json:"kind"`
	Attributes attr.Attributes `json:"attributes"`
}

// Elements returns snapshots of every record in insertion order.
func (s *Store) Elements() []Element {
	out := make([]Element, len(s.records))
	for i, r := range s.records {
		out[i] = Element{Handle: Handle(i), Kind: r.kind, Attributes: r.attrs.Clone()}
	}
	return out
}
