// Package attr is the bridge between geometry and the external markup
// serializer: a flat map from attribute name to a scalar or string value.
//
// Reads come in two flavours. [Attributes.Scalar] is lenient and falls back
// to zero for missing or unparsable values, which is what geometry snapshots
// want. [Attributes.Lookup] is strict and reports why a value could not be
// read.
package attr

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Value is a scalar or a string attribute value.
type Value struct {
	num   vec.Scalar
	str   string
	isStr bool
}

// Number returns a scalar value.
func Number(v vec.Scalar) Value { return Value{num: v} }

// Text returns a string value.
func Text(s string) Value { return Value{str: s, isStr: true} }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.isStr }

// Float returns v as a scalar. String values are parsed; ok is false when
// they do not hold a number.
func (v Value) Float() (vec.Scalar, bool) {
	if !v.isStr {
		return v.num, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String renders v the way the serializer writes it.
func (v Value) String() string {
	if v.isStr {
		return v.str
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and strings as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isStr {
		return json.Marshal(v.str)
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAttribute, err, "attribute value must be a number or a string")
	}
	*v = Number(f)
	return nil
}

// Attributes maps attribute names to values.
type Attributes map[string]Value

// Set stores v under key.
func (a Attributes) Set(key string, v Value) { a[key] = v }

// SetScalar stores a scalar under key.
func (a Attributes) SetScalar(key string, v vec.Scalar) { a[key] = Number(v) }

// SetString stores a string under key.
func (a Attributes) SetString(key, s string) { a[key] = Text(s) }

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Scalar returns the value of key as a scalar, or 0 if it is missing or not
// numeric.
func (a Attributes) Scalar(key string) vec.Scalar {
	f, _ := a.Lookup(key)
	return f
}

// Lookup returns the value of key as a scalar. It fails with
// ErrCodeMissingAttribute or ErrCodeInvalidAttribute.
func (a Attributes) Lookup(key string) (vec.Scalar, error) {
	v, ok := a[key]
	if !ok {
		return 0, errors.New(errors.ErrCodeMissingAttribute, "attribute %q is not set", key)
	}
	f, ok := v.Float()
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidAttribute, "attribute %q = %q is not a number", key, v.String())
	}
	return f, nil
}

// String returns the textual form of key, or "" if it is missing.
func (a Attributes) String(key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	return v.String()
}

// Clone returns an independent copy of a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// Merge copies every entry of other into a, overwriting existing keys.
func (a Attributes) Merge(other Attributes) {
	maps.Copy(a, other)
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}
