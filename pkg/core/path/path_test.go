package path

import (
	"testing"

	"github.com/jbeda/geom"

	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

func TestStartClose(t *testing.T) {
	p := vec.XY(1, 2)
	closed := Start(p).Close()

	if closed.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", closed.Len())
	}
	if !closed.Closed() {
		t.Error("Closed() = false, want true")
	}
	for i := 0; i < 5; i++ {
		if got := closed.Cursor(i); got != p {
			t.Errorf("Cursor(%d) = %v, want %v", i, got, p)
		}
	}
}

func TestLineCursor(t *testing.T) {
	p, d := vec.XY(1, 2), vec.XY(3, 4)
	line := Start(p).Line(d).End()

	tests := []struct {
		i    int
		want vec.Vector2
	}{
		{0, p},
		{1, vec.XY(4, 6)},
		{2, vec.XY(4, 6)},
		{100, vec.XY(4, 6)},
		{-1, p},
	}
	for _, tt := range tests {
		if got := line.Cursor(tt.i); got != tt.want {
			t.Errorf("Cursor(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestSingleAxisCursor(t *testing.T) {
	p := Start(vec.XY(1, -2)).VLine(10).HLine(30).End()

	want := []vec.Vector2{vec.XY(1, -2), vec.XY(1, 8), vec.XY(31, 8)}
	for i, w := range want {
		if got := p.Cursor(i); got != w {
			t.Errorf("Cursor(%d) = %v, want %v", i, got, w)
		}
	}
	if got := p.End(); got != vec.XY(31, 8) {
		t.Errorf("End() = %v, want (31, 8)", got)
	}
}

func TestAbsoluteSegments(t *testing.T) {
	p := Start(vec.XY(0, 0)).
		HLineTo(5).
		VLineTo(-3).
		LineTo(vec.XY(10, 10)).
		MoveTo(vec.XY(-1, -1)).
		CurveTo(vec.XY(0, 5), vec.XY(5, 0), vec.XY(7, 7)).
		Curve(vec.XY(1, 1), vec.XY(2, 2), vec.XY(3, -3)).
		Move(vec.XY(1, 0)).
		End()

	want := []vec.Vector2{
		vec.XY(0, 0),
		vec.XY(5, 0),
		vec.XY(5, -3),
		vec.XY(10, 10),
		vec.XY(-1, -1),
		vec.XY(7, 7),
		vec.XY(10, 4),
		vec.XY(11, 4),
	}
	got := p.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, got[i], want[i])
		}
		if c := p.Cursor(i); c != want[i] {
			t.Errorf("Cursor(%d) = %v, want %v", i, c, want[i])
		}
	}
}

func TestClosingCursor(t *testing.T) {
	tri := Start(vec.XY(0, 0)).LineTo(vec.XY(10, 5)).LineTo(vec.XY(0, 10)).Close()

	// Close as a no-op keeps the last drawn point.
	if got := tri.Cursor(3); got != vec.XY(0, 10) {
		t.Errorf("Cursor(3) = %v, want (0, 10)", got)
	}
	// Close as a renderer draws it returns to the subpath start.
	if got := tri.ClosingCursor(3); got != vec.XY(0, 0) {
		t.Errorf("ClosingCursor(3) = %v, want (0, 0)", got)
	}

	two := Start(vec.XY(0, 0)).
		Line(vec.XY(5, 0)).
		Close().
		Segments()
	sub := Start(vec.XY(0, 0)).Append(two[1:]...).
		Move(vec.XY(20, 20)).
		Line(vec.XY(1, 1)).
		Close()

	tests := []struct {
		i       int
		cursor  vec.Vector2
		closing vec.Vector2
	}{
		{1, vec.XY(5, 0), vec.XY(5, 0)},
		{2, vec.XY(5, 0), vec.XY(0, 0)},
		{3, vec.XY(25, 20), vec.XY(20, 20)},
		{4, vec.XY(26, 21), vec.XY(21, 21)},
		{5, vec.XY(26, 21), vec.XY(20, 20)},
	}
	for _, tt := range tests {
		if got := sub.Cursor(tt.i); got != tt.cursor {
			t.Errorf("Cursor(%d) = %v, want %v", tt.i, got, tt.cursor)
		}
		if got := sub.ClosingCursor(tt.i); got != tt.closing {
			t.Errorf("ClosingCursor(%d) = %v, want %v", tt.i, got, tt.closing)
		}
	}
}

func TestBuilderHandsOutCopies(t *testing.T) {
	b := Start(vec.XY(0, 0)).Line(vec.XY(1, 0))
	first := b.End()
	b.Line(vec.XY(0, 1))
	second := b.End()

	if first.Len() != 2 {
		t.Errorf("first.Len() = %d after extending the builder, want 2", first.Len())
	}
	if second.Len() != 3 {
		t.Errorf("second.Len() = %d, want 3", second.Len())
	}
	if got := b.Cursor(); got != vec.XY(1, 1) {
		t.Errorf("builder Cursor() = %v, want (1, 1)", got)
	}

	segs := first.Segments()
	segs[0] = MoveTo(vec.XY(99, 99))
	if first.Start() != vec.Zero {
		t.Errorf("Segments() aliases the path: Start() = %v", first.Start())
	}
}

func TestString(t *testing.T) {
	p := Start(vec.XY(-1.75, -2.5)).
		VLine(4).
		HLine(-12.34).
		Move(vec.XY(1, -1)).
		CurveTo(vec.XY(100, 0), vec.XY(1, -200), vec.XY(0, 0)).
		Close()

	want := "M -1.75 -2.5 v 4 h -12.34 m 1 -1 C 100 0, 1 -200, 0 0 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	segs := []struct {
		seg  Segment
		want string
	}{
		{LineTo(vec.XY(3, 4)), "L 3 4"},
		{Line(vec.XY(0.5, 1e-3)), "l 0.5 0.001"},
		{VerticalLineTo(7), "V 7"},
		{HorizontalLineTo(-7), "H -7"},
		{Curve(vec.XY(1, 2), vec.XY(3, 4), vec.XY(5, 6)), "c 1 2, 3 4, 5 6"},
		{Close(), "Z"},
	}
	for _, tt := range segs {
		if got := tt.seg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	p := Start(vec.XY(0, 0)).
		Line(vec.XY(10, 0)).
		Curve(vec.XY(0, -5), vec.XY(5, 20), vec.XY(5, 0)).
		End()

	want := geom.Rect{Min: vec.XY(0, -5), Max: vec.XY(15, 20)}
	got := p.Bounds()
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if w, h := got.Width(), got.Height(); w != 15 || h != 25 {
		t.Errorf("Bounds() size = %vx%v, want 15x25", w, h)
	}
}

func TestZeroPath(t *testing.T) {
	var p Path
	if p.Len() != 0 || p.Start() != vec.Zero || p.Cursor(3) != vec.Zero {
		t.Errorf("zero Path = len %d start %v cursor %v", p.Len(), p.Start(), p.Cursor(3))
	}
	if p.Points() != nil {
		t.Errorf("Points() = %v, want nil", p.Points())
	}
	if p.String() != "" {
		t.Errorf("String() = %q, want empty", p.String())
	}
}

func TestOpRelative(t *testing.T) {
	for _, op := range []Op{OpMove, OpLine, OpVerticalLine, OpHorizontalLine, OpCurve} {
		if !op.Relative() {
			t.Errorf("%s.Relative() = false", op.Token())
		}
	}
	for _, op := range []Op{OpMoveTo, OpLineTo, OpVerticalLineTo, OpHorizontalLineTo, OpCurveTo, OpClose} {
		if op.Relative() {
			t.Errorf("%s.Relative() = true", op.Token())
		}
	}
}
