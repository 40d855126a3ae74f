package vec

import (
	"math"
	"testing"

	"github.com/matzehuels/sketchkit/pkg/errors"
)

func TestXY(t *testing.T) {
	tests := []struct {
		name string
		got  Vector2
		want Vector2
	}{
		{"components", XY(1, -2), Vector2{X: 1, Y: -2}},
		{"scaled unit x", UnitX().Times(1.5), XY(1.5, 0)},
		{"scaled unit y", UnitY().Times(-234.5), XY(0, -234.5)},
		{"scaled zero", Zero.Times(1.5), XY(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a, b := XY(1, 2), XY(3, -4)
	if got := a.Plus(b); got != XY(4, -2) {
		t.Errorf("Plus = %v, want (4,-2)", got)
	}
	if got := a.Minus(b); got != XY(-2, 6) {
		t.Errorf("Minus = %v, want (-2,6)", got)
	}
	if got := b.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := Midpoint(a, b); got != XY(2, -1) {
		t.Errorf("Midpoint = %v, want (2,-1)", got)
	}
}

func TestFromPolar(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		name    string
		radius  Scalar
		degrees Scalar
		want    Vector2
	}{
		{"east", 10, 0, XY(10, 0)},
		{"south", 10, 90, XY(0, 10)},
		{"west", 10, 180, XY(-10, 0)},
		{"north", 10, -90, XY(0, -10)},
		{"diagonal", 2, 45, XY(2*h, 2*h)},
		{"zero radius", 0, 123, Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPolar(tt.radius, tt.degrees)
			if !ApproxEqual(got, tt.want, Tolerance) {
				t.Errorf("FromPolar(%v, %v) = %v, want %v", tt.radius, tt.degrees, got, tt.want)
			}
		})
	}
}

func TestDegreesRoundTrip(t *testing.T) {
	for _, d := range []Scalar{-135, -45, 0, 30, 90, 270} {
		if got := Degrees(Radians(d)); math.Abs(got-d) > 1e-9 {
			t.Errorf("Degrees(Radians(%v)) = %v", d, got)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(XY(1, 1), XY(1+5e-7, 1-5e-7), Tolerance) {
		t.Error("values within tolerance should compare equal")
	}
	if ApproxEqual(XY(1, 1), XY(1, 1.01), Tolerance) {
		t.Error("values outside tolerance should not compare equal")
	}
}

func TestUnits(t *testing.T) {
	if Pixel.Px(4) != Mm(1) {
		t.Errorf("4px should equal 1mm, got %v", Mm(1))
	}
	if Cm(10.5) != Mm(105) {
		t.Errorf("10.5cm should equal 105mm")
	}
	if In(2) != 192 {
		t.Errorf("2in = %v, want 192", In(2))
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"", Pixel, false},
		{"px", Pixel, false},
		{"MM", Millimetre, false},
		{" cm ", Centimetre, false},
		{"in", Inch, false},
		{"pt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidUnit) {
				t.Errorf("ParseUnit(%q) code = %v", tt.input, errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
