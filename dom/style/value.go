package style

import (
	"strings"

	"github.com/npillmayer/uistyle/css"
)

// Value is the value of a declaration: either a scalar or a sequence of
// scalars. The zero value is an empty sequence.
//
//     type Value
//         = Scalar css.Value
//         | Sequence []css.Value
type Value struct {
	items []css.Value
	seq   bool
}

// Scalar creates a single-valued Value.
func Scalar(v css.Value) Value {
	return Value{items: []css.Value{v}}
}

// Sequence creates a multi-valued Value. A sequence of length one is still
// a sequence.
func Sequence(vs ...css.Value) Value {
	items := make([]css.Value, len(vs))
	copy(items, vs)
	return Value{items: items, seq: true}
}

// Keyword is a shortcut for Scalar(css.Keyword(k)).
func Keyword(k string) Value {
	return Scalar(css.Keyword(k))
}

// IsSequence is true for sequence values.
func (v Value) IsSequence() bool {
	return v.seq
}

// IsEmpty is true for the zero value and for empty sequences.
func (v Value) IsEmpty() bool {
	return len(v.items) == 0
}

// Len returns the number of scalars (1 for scalar values).
func (v Value) Len() int {
	return len(v.items)
}

// Items returns the scalars of the value. Clients must not modify the slice.
func (v Value) Items() []css.Value {
	return v.items
}

// First returns the first scalar, or nil for empty values.
func (v Value) First() css.Value {
	if len(v.items) == 0 {
		return nil
	}
	return v.items[0]
}

// IsInitial is true for the scalar keyword `initial`.
func (v Value) IsInitial() bool {
	return !v.seq && len(v.items) == 1 && css.IsInitial(v.items[0])
}

// Equal compares two values, including their shape.
func (v Value) Equal(o Value) bool {
	if v.seq != o.seq || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	s := make([]string, len(v.items))
	for i, x := range v.items {
		s[i] = x.String()
	}
	return strings.Join(s, " ")
}

// Declaration binds a value to a property.
type Declaration struct {
	Property string
	Value    Value
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value.String()
}
