package shape

import (
	"math"
	"testing"

	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
)

func TestCircleAnchors(t *testing.T) {
	const radius = 10.0
	s, c := math.Sincos(math.Pi / 4)
	xr, yr := c*radius, s*radius

	circle := Circle{}.WithRadius(radius)

	tests := []struct {
		name string
		got  vec.Vector2
		want vec.Vector2
	}{
		{"origin", anchor.OriginOf(circle), vec.Zero},
		{"north", anchor.NorthOf(circle), vec.XY(0, -radius)},
		{"northeast", anchor.NorthEastOf(circle), vec.XY(xr, -yr)},
		{"east", anchor.EastOf(circle), vec.XY(radius, 0)},
		{"southeast", anchor.SouthEastOf(circle), vec.XY(xr, yr)},
		{"south", anchor.SouthOf(circle), vec.XY(0, radius)},
		{"southwest", anchor.SouthWestOf(circle), vec.XY(-xr, yr)},
		{"west", anchor.WestOf(circle), vec.XY(-radius, 0)},
		{"northwest", anchor.NorthWestOf(circle), vec.XY(-xr, -yr)},
		{"above", anchor.Above(circle, 10), vec.XY(0, -20)},
		{"below", anchor.Below(circle, 10), vec.XY(0, 20)},
		{"left", anchor.Left(circle, 10), vec.XY(-20, 0)},
		{"right", anchor.Right(circle, 10), vec.XY(20, 0)},
		{"above right", anchor.AboveRight(circle, 5, 2), anchor.NorthEastOf(circle).Plus(vec.XY(5, -2))},
		{"above left", anchor.AboveLeft(circle, 2, 1), anchor.NorthWestOf(circle).Plus(vec.XY(-2, -1))},
		{"below left", anchor.BelowLeft(circle, 1, 9), anchor.SouthWestOf(circle).Plus(vec.XY(-1, 9))},
		{"below right", anchor.BelowRight(circle, -9, 4), anchor.SouthEastOf(circle).Plus(vec.XY(-9, 4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec.ApproxEqual(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCircleSymmetry(t *testing.T) {
	circle := Circle{}.At(vec.XY(12, -32)).WithRadius(7.5)
	twice := circle.Origin.Times(2)

	pairs := [][2]anchor.Anchor{
		{anchor.North, anchor.South},
		{anchor.East, anchor.West},
		{anchor.NorthEast, anchor.SouthWest},
		{anchor.NorthWest, anchor.SouthEast},
	}
	for _, p := range pairs {
		sum := circle.Anchor(p[0]).Plus(circle.Anchor(p[1]))
		if !vec.ApproxEqual(sum, twice, vec.Tolerance) {
			t.Errorf("%v + %v = %v, want %v", p[0], p[1], sum, twice)
		}
	}
}

func TestCirclePolarMatchesCompass(t *testing.T) {
	circle := Circle{}.At(vec.XY(-3, 8)).WithRadius(4)
	for _, a := range anchor.Compass[1:] {
		angle, _ := anchor.CompassAngle(a.Kind)
		got := circle.Anchor(anchor.Polar(circle.Radius, angle))
		if !vec.ApproxEqual(got, circle.Anchor(a), vec.Tolerance) {
			t.Errorf("polar at %v° = %v, want %v (%v)", angle, got, circle.Anchor(a), a)
		}
	}

	// A polar anchor twice as far out doubles the offset from the center.
	c := Circle{}.WithRadius(10)
	got := c.Anchor(anchor.Polar(20, -135))
	if !vec.ApproxEqual(got, anchor.NorthWestOf(c).Times(2), vec.Tolerance) {
		t.Errorf("polar(20, -135) = %v, want %v", got, anchor.NorthWestOf(c).Times(2))
	}
}

func TestRectangleAnchors(t *testing.T) {
	rect := Rectangle{}.WithWidth(8).WithHeight(6)

	tests := []struct {
		name string
		got  vec.Vector2
		want vec.Vector2
	}{
		{"origin", anchor.OriginOf(rect), vec.Zero},
		{"north", anchor.NorthOf(rect), vec.XY(0, -3)},
		{"northeast", anchor.NorthEastOf(rect), vec.XY(4, -3)},
		{"east", anchor.EastOf(rect), vec.XY(4, 0)},
		{"southeast", anchor.SouthEastOf(rect), vec.XY(4, 3)},
		{"south", anchor.SouthOf(rect), vec.XY(0, 3)},
		{"southwest", anchor.SouthWestOf(rect), vec.XY(-4, 3)},
		{"west", anchor.WestOf(rect), vec.XY(-4, 0)},
		{"northwest", anchor.NorthWestOf(rect), vec.XY(-4, -3)},
		{"above", anchor.Above(rect, 10), vec.XY(0, -13)},
		{"below", anchor.Below(rect, 10), vec.XY(0, 13)},
		{"left", anchor.Left(rect, 10), vec.XY(-14, 0)},
		{"right", anchor.Right(rect, 10), vec.XY(14, 0)},
		{"above right", anchor.AboveRight(rect, 5, 5), vec.XY(9, -8)},
		{"above left", anchor.AboveLeft(rect, 5, 5), vec.XY(-9, -8)},
		{"below left", anchor.BelowLeft(rect, 5, 5), vec.XY(-9, 8)},
		{"below right", anchor.BelowRight(rect, 5, 5), vec.XY(9, 8)},
		{"top left", rect.TopLeft(), vec.XY(-4, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Rectangle anchors involve no trigonometry and must be exact.
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRectangleCornerExactness(t *testing.T) {
	for _, size := range [][2]vec.Scalar{{8, 6}, {0.3, 0.7}, {1e6, 3}} {
		w, h := size[0], size[1]
		rect := Rectangle{}.WithSize(w, h)
		if got, want := anchor.NorthEastOf(rect), vec.XY(w/2, -h/2); got != want {
			t.Errorf("%vx%v northeast = %v, want %v", w, h, got, want)
		}
	}
}

func TestRectanglePolar(t *testing.T) {
	rect := Rectangle{}.WithWidth(8).WithHeight(6)

	// sin(angle) = 3/5 puts a radius-5 polar anchor exactly on the southeast corner.
	angle := vec.Degrees(math.Asin(3.0 / 5.0))
	got := rect.Anchor(anchor.Polar(5, angle))
	if !vec.ApproxEqual(got, anchor.SouthEastOf(rect), vec.Tolerance) {
		t.Errorf("polar(5, %v) = %v, want %v", angle, got, anchor.SouthEastOf(rect))
	}

	// Polar anchors are offsets from the center and may leave the rectangle.
	far := rect.Anchor(anchor.Polar(100, 0))
	if far != vec.XY(100, 0) {
		t.Errorf("polar(100, 0) = %v, want (100, 0)", far)
	}
}

func TestBuildersReturnCopies(t *testing.T) {
	base := Rectangle{}.WithSize(10, 20).RoundedCorners(2)
	moved := base.At(vec.XY(5, 5))
	if base.Origin != vec.Zero {
		t.Errorf("At mutated the receiver: %v", base.Origin)
	}
	if moved.Width != 10 || moved.Height != 20 || moved.CornerRadius != 2 {
		t.Errorf("At lost dimensions: %+v", moved)
	}

	c := Circle{}.WithRadius(3)
	d := c.At(vec.XY(1, 1)).WithRadius(4)
	if c.Radius != 3 || c.Origin != vec.Zero {
		t.Errorf("circle builders mutated the receiver: %+v", c)
	}
	if d.Radius != 4 || d.Origin != vec.XY(1, 1) {
		t.Errorf("circle builders = %+v", d)
	}
}
