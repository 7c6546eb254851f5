// Package form implements the typed controls the settings tabs are built from.
//
// A control holds one displayed value. Programmatic writes (Set) are silent;
// user edits (Edit) run the change hooks when the displayed value changes.
package form

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the value kind of a control.
type Kind string

// Control kinds.
const (
	KindText    Kind = "text"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindBool    Kind = "bool"
	KindChoice  Kind = "choice"
)

var (
	// ErrInvalidInput is returned when a user edit can't be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotAnOption is returned when a user picks a value outside a choice list.
	ErrNotAnOption = errors.New("value is not one of the options")
)

// View is the render data of a control.
type View struct {
	Key     string
	Label   string
	Kind    Kind
	Value   string
	Checked bool
	Options []string
	Min     string
	Max     string
	Step    string
}

// Control is one editable field.
type Control interface {
	Key() string
	Label() string
	Kind() Kind
	// Edit applies a user edit given as text.
	Edit(raw string) error
	// OnChange registers fn to run after a user edit changed the value.
	OnChange(fn func())
	View() View
}

type base struct {
	key   string
	label string
	hooks []func()
}

func (b *base) Key() string   { return b.key }
func (b *base) Label() string { return b.label }

func (b *base) OnChange(fn func()) {
	b.hooks = append(b.hooks, fn)
}

func (b *base) changed() {
	for _, fn := range b.hooks {
		fn()
	}
}

func (b *base) view(kind Kind, value string) View {
	return View{Key: b.key, Label: b.label, Kind: kind, Value: value}
}

// TextInput is a single line text control.
type TextInput struct {
	base
	value string
}

// NewText creates a text control.
func NewText(key, label, value string) *TextInput {
	return &TextInput{base: base{key: key, label: label}, value: value}
}

// Kind implements Control.
func (c *TextInput) Kind() Kind { return KindText }

// Value returns the displayed text.
func (c *TextInput) Value() string { return c.value }

// Set replaces the displayed text.
func (c *TextInput) Set(v string) { c.value = v }

// Edit implements Control.
func (c *TextInput) Edit(raw string) error {
	if raw == c.value {
		return nil
	}

	c.value = raw
	c.changed()

	return nil
}

// View implements Control.
func (c *TextInput) View() View { return c.view(KindText, c.value) }

// IntInput is a spin box: values outside [min, max] are clamped.
type IntInput struct {
	base
	value    int
	min, max int
}

// NewInt creates an integer control limited to [lo, hi].
func NewInt(key, label string, lo, hi, value int) *IntInput {
	c := &IntInput{base: base{key: key, label: label}, min: lo, max: hi}
	c.Set(value)

	return c
}

// Kind implements Control.
func (c *IntInput) Kind() Kind { return KindInteger }

// Value returns the displayed number.
func (c *IntInput) Value() int { return c.value }

// Set replaces the displayed number, clamped to the range.
func (c *IntInput) Set(v int) { c.value = min(max(v, c.min), c.max) }

// Edit implements Control.
func (c *IntInput) Edit(raw string) error {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %s must be a whole number", ErrInvalidInput, c.label)
	}

	old := c.value
	c.Set(v)

	if c.value != old {
		c.changed()
	}

	return nil
}

// View implements Control.
func (c *IntInput) View() View {
	v := c.view(KindInteger, strconv.Itoa(c.value))
	v.Min = strconv.Itoa(c.min)
	v.Max = strconv.Itoa(c.max)
	v.Step = "1"

	return v
}

// FloatInput is a decimal field with a fixed number of decimals.
type FloatInput struct {
	base
	value    decimal.Decimal
	min, max decimal.Decimal
	places   int32
}

// NewFloat creates a decimal control limited to [lo, hi] with places decimals.
func NewFloat(key, label string, lo, hi float64, places int32, value float64) *FloatInput {
	c := &FloatInput{
		base:   base{key: key, label: label},
		min:    decimal.NewFromFloat(lo),
		max:    decimal.NewFromFloat(hi),
		places: places,
	}
	c.Set(value)

	return c
}

// Kind implements Control.
func (c *FloatInput) Kind() Kind { return KindFloat }

// Value returns the displayed number.
func (c *FloatInput) Value() float64 {
	f, _ := c.value.Float64()
	return f
}

// Set replaces the displayed number, clamped and rounded. +Inf shows the
// maximum, -Inf and NaN the minimum.
func (c *FloatInput) Set(v float64) {
	switch {
	case math.IsInf(v, 1):
		c.value = c.max.Round(c.places)
	case math.IsNaN(v) || math.IsInf(v, -1):
		c.value = c.min.Round(c.places)
	default:
		c.value = c.normalize(decimal.NewFromFloat(v))
	}
}

func (c *FloatInput) normalize(d decimal.Decimal) decimal.Decimal {
	switch {
	case d.LessThan(c.min):
		d = c.min
	case d.GreaterThan(c.max):
		d = c.max
	}

	return d.Round(c.places)
}

// Edit implements Control. An empty field reads as zero.
func (c *FloatInput) Edit(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "0"
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: %s must be a number", ErrInvalidInput, c.label)
	}

	d = c.normalize(d)
	if d.Equal(c.value) {
		return nil
	}

	c.value = d
	c.changed()

	return nil
}

// View implements Control.
func (c *FloatInput) View() View {
	v := c.view(KindFloat, c.value.StringFixed(c.places))
	v.Min = c.min.String()
	v.Max = c.max.String()
	v.Step = decimal.New(1, -c.places).String()

	return v
}

// Checkbox is an on/off control.
type Checkbox struct {
	base
	value bool
}

// NewBool creates a checkbox.
func NewBool(key, label string, value bool) *Checkbox {
	return &Checkbox{base: base{key: key, label: label}, value: value}
}

// Kind implements Control.
func (c *Checkbox) Kind() Kind { return KindBool }

// Value reports whether the box is checked.
func (c *Checkbox) Value() bool { return c.value }

// Set checks or unchecks the box.
func (c *Checkbox) Set(v bool) { c.value = v }

// Edit implements Control. Browsers send "on" for a checked box and nothing
// for an unchecked one.
func (c *Checkbox) Edit(raw string) error {
	var v bool

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		v = true
	}

	if v == c.value {
		return nil
	}

	c.value = v
	c.changed()

	return nil
}

// View implements Control.
func (c *Checkbox) View() View {
	v := c.view(KindBool, strconv.FormatBool(c.value))
	v.Checked = c.value

	return v
}

// Select is a closed list of options.
type Select struct {
	base
	options []string
	value   string
}

// NewChoice creates a choice control. A value missing from options is appended
// to them instead of being dropped.
func NewChoice(key, label string, options []string, value string) *Select {
	c := &Select{base: base{key: key, label: label}, options: slices.Clone(options)}
	c.Set(value)

	return c
}

// Kind implements Control.
func (c *Select) Kind() Kind { return KindChoice }

// Value returns the selected option.
func (c *Select) Value() string { return c.value }

// Options returns a copy of the option list.
func (c *Select) Options() []string { return slices.Clone(c.options) }

// Set selects v, widening the option list when v is not in it.
func (c *Select) Set(v string) {
	if !slices.Contains(c.options, v) {
		c.options = append(c.options, v)
	}

	c.value = v
}

// Edit implements Control. Users can only pick listed options.
func (c *Select) Edit(raw string) error {
	if !slices.Contains(c.options, raw) {
		return fmt.Errorf("%w: %s can't be %q", ErrNotAnOption, c.label, raw)
	}

	if raw == c.value {
		return nil
	}

	c.value = raw
	c.changed()

	return nil
}

// View implements Control.
func (c *Select) View() View {
	v := c.view(KindChoice, c.value)
	v.Options = c.Options()

	return v
}
