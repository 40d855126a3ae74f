package vec

import (
	"strings"

	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Unit converts lengths expressed in a physical unit to user units (pixels).
type Unit string

// Supported length units. Millimetres use 4px instead of 3.78px so that
// metric drawings land on whole pixels.
const (
	Pixel      Unit = "px"
	Millimetre Unit = "mm"
	Centimetre Unit = "cm"
	Inch       Unit = "in"
)

var unitScale = map[Unit]Scalar{
	Pixel:      1,
	Millimetre: 4,
	Centimetre: 40,
	Inch:       96,
}

// ParseUnit parses a unit name. The empty string means pixels.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if u == "" {
		return Pixel, nil
	}
	if _, ok := unitScale[u]; !ok {
		return "", errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q (want px, mm, cm or in)", s)
	}
	return u, nil
}

// Scale returns the number of pixels per unit.
func (u Unit) Scale() Scalar {
	if s, ok := unitScale[u]; ok {
		return s
	}
	return 1
}

// Px converts v expressed in u to pixels.
func (u Unit) Px(v Scalar) Scalar { return v * u.Scale() }

// Mm converts millimetres to pixels.
func Mm(v Scalar) Scalar { return Millimetre.Px(v) }

// Cm converts centimetres to pixels.
func Cm(v Scalar) Scalar { return Centimetre.Px(v) }

// In converts inches to pixels.
func In(v Scalar) Scalar { return Inch.Px(v) }
