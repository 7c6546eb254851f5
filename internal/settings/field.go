package settings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldType is the declared type of a settings field.
type FieldType int

const (
	// Text is a free form string field.
	Text FieldType = iota
	// Integer is a whole number field.
	Integer
	// Float is a floating-point field.
	Float
	// Boolean is an on/off field.
	Boolean
)

var (
	// ErrUnknownKey is returned when a key is not part of the settings model.
	ErrUnknownKey = errors.New("unknown settings key")
	// ErrTypeMismatch is returned when a value does not match the declared field type.
	ErrTypeMismatch = errors.New("value type does not match field type")
	// ErrMalformedValue is returned when a raw value can not be parsed into the field type.
	ErrMalformedValue = errors.New("malformed settings value")
)

// truthy holds the lower-cased raw values read as true. Anything else is false.
var truthy = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
}

// String returns the name of the field type.
func (t FieldType) String() string {
	switch t {
	case Text:
		return "text"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is a tagged settings value. Only the member matching Type is meaningful.
type Value struct {
	Type  FieldType
	Text  string
	Int   int
	Float float64
	Bool  bool
}

// TextValue returns a Text value.
func TextValue(s string) Value { return Value{Type: Text, Text: s} }

// IntValue returns an Integer value.
func IntValue(i int) Value { return Value{Type: Integer, Int: i} }

// FloatValue returns a Float value.
func FloatValue(f float64) Value { return Value{Type: Float, Float: f} }

// BoolValue returns a Boolean value.
func BoolValue(b bool) Value { return Value{Type: Boolean, Bool: b} }

// String serializes the value into its persisted form.
func (v Value) String() string {
	switch v.Type {
	case Integer:
		return strconv.Itoa(v.Int)
	case Float:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case Boolean:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Text
	}
}

// Any returns the meaningful member as an interface value.
func (v Value) Any() any {
	switch v.Type {
	case Integer:
		return v.Int
	case Float:
		return v.Float
	case Boolean:
		return v.Bool
	default:
		return v.Text
	}
}

// Parse converts a raw stored value into a value of type t.
// Booleans never fail: only "1", "true" and "yes" (any case, no surrounding
// spaces) are true. Floats must be finite.
func Parse(t FieldType, raw string) (Value, error) {
	switch t {
	case Text:
		return TextValue(raw), nil
	case Boolean:
		_, ok := truthy[strings.ToLower(raw)]
		return BoolValue(ok), nil
	case Integer:
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an integer", ErrMalformedValue, raw)
		}

		return IntValue(i), nil
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrMalformedValue, raw)
		}

		return FloatValue(f), nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrTypeMismatch, t)
	}
}

// Coerce parses raw into the type of def, falling back to def when raw is malformed.
// The second result reports whether the fallback was used.
func Coerce(def Value, raw string) (Value, bool) {
	v, err := Parse(def.Type, raw)
	if err != nil {
		return def, true
	}

	return v, false
}
