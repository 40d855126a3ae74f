package document

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchkit/pkg/attr"
	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/arrow"
	"github.com/matzehuels/sketchkit/pkg/core/marker"
	"github.com/matzehuels/sketchkit/pkg/core/shape"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

func newTestStore(buf *bytes.Buffer) *Store {
	return New(WithLogger(log.New(buf)))
}

func TestHandlesAreStable(t *testing.T) {
	s := New()
	c := s.AddCircle(shape.Circle{}.WithRadius(5))
	r := s.AddRectangle(shape.Rectangle{}.WithSize(8, 6))
	l := s.AddLine(vec.XY(0, 0), vec.XY(1, 1))

	if c != 0 || r != 1 || l != 2 {
		t.Errorf("handles = %d, %d, %d; want 0, 1, 2", c, r, l)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	tests := []struct {
		h    Handle
		want Kind
	}{
		{c, KindCircle},
		{r, KindRectangle},
		{l, KindLine},
	}
	for _, tt := range tests {
		got, err := s.Kind(tt.h)
		if err != nil || got != tt.want {
			t.Errorf("Kind(%d) = %v, %v; want %v", tt.h, got, err, tt.want)
		}
	}

	if _, err := s.Kind(99); !errors.Is(err, errors.ErrCodeInvalidHandle) {
		t.Errorf("Kind(99) error = %v, want INVALID_HANDLE", err)
	}
	if _, err := s.Kind(-1); !errors.Is(err, errors.ErrCodeInvalidHandle) {
		t.Errorf("Kind(-1) error = %v, want INVALID_HANDLE", err)
	}
}

func TestRectangleRoundTrip(t *testing.T) {
	s := New()
	want := shape.Rectangle{}.At(vec.XY(10, 20)).WithSize(8, 6).RoundedCorners(1)
	h := s.AddRectangle(want)

	a, _ := s.Attributes(h)
	if a.Scalar(attr.KeyX) != 6 || a.Scalar(attr.KeyY) != 17 {
		t.Errorf("top-left = (%v, %v), want (6, 17)", a.Scalar(attr.KeyX), a.Scalar(attr.KeyY))
	}

	got, err := s.Rectangle(h)
	if err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	if got != want {
		t.Errorf("Rectangle() = %+v, want %+v", got, want)
	}
}

func TestAnchorDispatch(t *testing.T) {
	s := New()
	c := s.AddCircle(shape.Circle{}.At(vec.XY(1, 1)).WithRadius(2))
	r := s.AddRectangle(shape.Rectangle{}.WithSize(8, 6))
	p := s.AddPath(arrow.Straight(vec.XY(0, 0), vec.XY(10, 0), arrow.Shift))
	m := s.AddMarker(marker.Arrow())

	if got, err := s.Anchor(c, anchor.North); err != nil || got != vec.XY(1, -1) {
		t.Errorf("Anchor(circle, north) = %v, %v; want (1, -1)", got, err)
	}
	if got, err := s.Anchor(r, anchor.SouthWest); err != nil || got != vec.XY(-4, 3) {
		t.Errorf("Anchor(rect, southwest) = %v, %v; want (-4, 3)", got, err)
	}
	for _, h := range []Handle{p, m} {
		if _, err := s.Anchor(h, anchor.Origin); !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("Anchor(%d) error = %v, want UNSUPPORTED", h, err)
		}
	}
	if _, err := s.Anchor(42, anchor.Origin); !errors.Is(err, errors.ErrCodeInvalidHandle) {
		t.Errorf("Anchor(42) error = %v, want INVALID_HANDLE", err)
	}
}

func TestSetIsVisibleToAnchors(t *testing.T) {
	s := New()
	h := s.AddCircle(shape.Circle{}.WithRadius(1))
	if err := s.Set(h, attr.KeyR, attr.Number(10)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := s.Anchor(h, anchor.East); got != vec.XY(10, 0) {
		t.Errorf("Anchor(east) after Set = %v, want (10, 0)", got)
	}
}

func TestLike(t *testing.T) {
	s := New()
	src := s.AddRectangle(shape.Rectangle{}.WithSize(80, 50).RoundedCorners(4))
	dst := s.AddRectangle(shape.Rectangle{})
	other := s.AddCircle(shape.Circle{})

	if err := s.Like(dst, src); err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if err := s.MoveTo(dst, vec.XY(200, 0)); err != nil {
		t.Fatalf("MoveTo() error = %v", err)
	}

	moved, _ := s.Rectangle(dst)
	orig, _ := s.Rectangle(src)
	if moved.Width != 80 || moved.Height != 50 || moved.CornerRadius != 4 {
		t.Errorf("Like() did not copy size: %+v", moved)
	}
	if moved.Origin != vec.XY(200, 0) || orig.Origin != vec.Zero {
		t.Errorf("Like() aliases records: dst %v, src %v", moved.Origin, orig.Origin)
	}

	if err := s.Like(other, src); !errors.Is(err, errors.ErrCodeKindMismatch) {
		t.Errorf("Like(circle, rect) error = %v, want KIND_MISMATCH", err)
	}
	if err := s.Like(dst, 99); !errors.Is(err, errors.ErrCodeInvalidHandle) {
		t.Errorf("Like(dst, 99) error = %v, want INVALID_HANDLE", err)
	}
}

func TestMoveTo(t *testing.T) {
	s := New()
	c := s.AddCircle(shape.Circle{}.At(vec.XY(3, 4)).WithRadius(5))
	r := s.AddRectangle(shape.Rectangle{}.WithSize(20, 10).RoundedCorners(2))
	l := s.AddLine(vec.XY(0, 0), vec.XY(1, 1))

	if err := s.MoveTo(c, vec.XY(-10, 30)); err != nil {
		t.Fatalf("MoveTo(circle) error = %v", err)
	}
	if got, _ := s.Circle(c); got.Origin != vec.XY(-10, 30) || got.Radius != 5 {
		t.Errorf("moved circle = %+v, want origin (-10, 30) radius 5", got)
	}

	if err := s.MoveTo(r, vec.XY(50, 50)); err != nil {
		t.Fatalf("MoveTo(rectangle) error = %v", err)
	}
	got, _ := s.Rectangle(r)
	if got.Origin != vec.XY(50, 50) || got.Width != 20 || got.Height != 10 || got.CornerRadius != 2 {
		t.Errorf("moved rectangle = %+v", got)
	}
	if a, _ := s.Anchor(r, anchor.NorthWest); a != vec.XY(40, 45) {
		t.Errorf("Anchor(northwest) after MoveTo = %v, want (40, 45)", a)
	}

	if err := s.MoveTo(l, vec.Zero); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("MoveTo(line) error = %v, want UNSUPPORTED", err)
	}
	if err := s.MoveTo(99, vec.Zero); !errors.Is(err, errors.ErrCodeInvalidHandle) {
		t.Errorf("MoveTo(99) error = %v, want INVALID_HANDLE", err)
	}
}

func TestLenientReadsWarn(t *testing.T) {
	var buf bytes.Buffer
	s := newTestStore(&buf)
	h := s.AddCircle(shape.Circle{}.At(vec.XY(3, 4)).WithRadius(5))
	_ = s.Set(h, attr.KeyR, attr.Text("wide"))

	c, err := s.Circle(h)
	if err != nil {
		t.Fatalf("Circle() error = %v", err)
	}
	if c.Radius != 0 || c.Origin != vec.XY(3, 4) {
		t.Errorf("Circle() = %+v, want radius 0 at (3, 4)", c)
	}
	if !strings.Contains(buf.String(), "attribute read failed") {
		t.Errorf("expected a warning, log = %q", buf.String())
	}

	// A missing optional corner radius is not worth a warning.
	buf.Reset()
	r := s.AddRectangle(shape.Rectangle{}.WithSize(2, 2))
	if _, err := s.Rectangle(r); err != nil {
		t.Fatalf("Rectangle() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected warning: %q", buf.String())
	}

	if _, err := s.Circle(r); !errors.Is(err, errors.ErrCodeKindMismatch) {
		t.Errorf("Circle(rect) error = %v, want KIND_MISMATCH", err)
	}
}

func TestElements(t *testing.T) {
	s := New()
	s.AddMarker(marker.Arrow())
	s.AddLine(vec.XY(0, 0), vec.XY(3, 4))

	els := s.Elements()
	if len(els) != 2 {
		t.Fatalf("Elements() returned %d elements, want 2", len(els))
	}
	els[1].Attributes.SetScalar(attr.KeyX1, 100)
	if a, _ := s.Attributes(1); a.Scalar(attr.KeyX1) != 0 {
		t.Error("Elements() aliases stored attributes")
	}

	data, err := json.Marshal(els[1])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"kind":"line"`) {
		t.Errorf("Marshal() = %s, want kind by name", data)
	}
}
