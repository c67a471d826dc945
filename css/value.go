package css

import (
	"fmt"
	"regexp"
	"strconv"
)

// Value is a style property value.
type Value interface {
	String() string
}

// Keyword is an identifier value, e.g. "inline" or "bold".
type Keyword string

func (k Keyword) String() string { return string(k) }

// Cursor is the name of a mouse cursor.
type Cursor string

func (c Cursor) String() string { return string(c) }

// String is a quoted string value, stored without quotes.
type String string

func (s String) String() string { return strconv.Quote(string(s)) }

// URL is the location argument of url(…).
type URL string

func (u URL) String() string { return "url(" + string(u) + ")" }

// Initial is the keyword resetting a property.
const Initial Keyword = "initial"

// IsInitial is true for the keyword `initial` (as keyword or as cursor name).
func IsInitial(v Value) bool {
	switch x := v.(type) {
	case Keyword:
		return x == Initial
	case Cursor:
		return x == "initial"
	}
	return false
}

// IsColor is true for color values.
func IsColor(v Value) bool {
	_, ok := v.(Color)
	return ok
}

// IsNumeric is true for number values.
func IsNumeric(v Value) bool {
	_, ok := v.(NumberUnit)
	return ok
}

// Truthy is false for nil and for empty keywords and strings.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case Keyword:
		return x != ""
	case String:
		return x != ""
	}
	return true
}

// --- Numbers ---------------------------------------------------------------

// Unit is the unit suffix of a number.
type Unit string

// Units known to the style engine. Units are not interpreted.
const (
	NoUnit  Unit = ""
	PX      Unit = "px"
	VW      Unit = "vw"
	VH      Unit = "vh"
	PT      Unit = "pt"
	Percent Unit = "%"
)

// NumberUnit is a number with an optional unit.
type NumberUnit struct {
	Num  float64
	Unit Unit
}

// Number creates a unit-less number.
func Number(n float64) NumberUnit {
	return NumberUnit{Num: n}
}

// Dimen creates a number with a unit.
func Dimen(n float64, u Unit) NumberUnit {
	return NumberUnit{Num: n, Unit: u}
}

func (n NumberUnit) String() string {
	return strconv.FormatFloat(n.Num, 'f', -1, 64) + string(n.Unit)
}

var numberPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(px|vw|vh|pt|%)?$`)

// ParseNumberUnit parses a signed decimal with an optional unit suffix.
// A leading '.' is not allowed, numbers must be written as 0.x.
func ParseNumberUnit(s string) (NumberUnit, error) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return NumberUnit{}, fmt.Errorf("not a number: %q", s)
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return NumberUnit{}, err
	}
	return NumberUnit{Num: f, Unit: Unit(m[2])}, nil
}

// --- Matching numbers ------------------------------------------------------

// Match starts a match expression for n, to be used in a switch:
//
//     switch m := n.Match(); m {
//     case m.Unit(css.PX, &px):
//         …
//     case m.Unitless(&f):
//         …
//     }
func (n NumberUnit) Match() *Matcher {
	return &Matcher{n: n}
}

// Matcher is a match expression for numbers. Cases which do not match
// return nil.
type Matcher struct {
	n NumberUnit
}

// Unit matches numbers with unit u and stores the number in f, if f is non-nil.
func (m *Matcher) Unit(u Unit, f *float64) *Matcher {
	if m.n.Unit != u {
		return nil
	}
	if f != nil {
		*f = m.n.Num
	}
	return m
}

// Unitless matches numbers without a unit.
func (m *Matcher) Unitless(f *float64) *Matcher {
	return m.Unit(NoUnit, f)
}

// ViewRelative matches numbers with unit vw or vh.
func (m *Matcher) ViewRelative(f *float64) *Matcher {
	if m.n.Unit != VW && m.n.Unit != VH {
		return nil
	}
	if f != nil {
		*f = m.n.Num
	}
	return m
}

// --- Value patterns --------------------------------------------------------

// Patterns holds one result per kind of value, see ValuePattern.
type Patterns[T any] struct {
	Keyword T
	Number  T
	Color   T
	Cursor  T
	String  T
	URL     T
	Default T
}

// ValuePattern starts a pattern match over the kind of a value:
//
//     group := css.ValuePattern[string](v).OneOf(css.Patterns[string]{
//         Color:   "background-color",
//         Default: "background-image",
//     })
//
// Kinds left out of the patterns yield the zero value of T, not Default.
// Default is returned for values of unknown type only.
func ValuePattern[T any](v Value) *MatchExpr[T] {
	return &MatchExpr[T]{v: v}
}

// MatchExpr is a pattern match expression over values.
type MatchExpr[T any] struct {
	v Value
}

// OneOf selects the pattern for the kind of the value.
func (m *MatchExpr[T]) OneOf(patterns Patterns[T]) T {
	switch m.v.(type) {
	case Keyword:
		return patterns.Keyword
	case NumberUnit:
		return patterns.Number
	case Color:
		return patterns.Color
	case Cursor:
		return patterns.Cursor
	case String:
		return patterns.String
	case URL:
		return patterns.URL
	}
	return patterns.Default
}

// Otherwise is like OneOf, but kinds without an explicit pattern (zero value)
// yield def. It is meant for patterns of comparable types.
func Otherwise[T comparable](m *MatchExpr[T], patterns Patterns[T], def T) T {
	var zero T
	if r := m.OneOf(patterns); r != zero {
		return r
	}
	return def
}
