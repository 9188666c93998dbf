// Released under an MIT license. See LICENSE.

// Package array provides paradoc's sequence types: the general array
// and the lazy integer range that numbers coerce to.
package array

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
)

const name = "array"

// Seq is any value that can be read as a sequence of values.
type Seq interface {
	value.I

	At(i int) value.I
	Items() []value.I
	Len() int
}

// T (array) is an ordered, heterogeneous sequence of values.
type T struct {
	items []value.I
}

type array = T

// New creates a new array that takes ownership of items.
func New(items ...value.I) *T {
	if items == nil {
		items = []value.I{}
	}

	return &array{items: items}
}

// At returns the i-th element of a.
func (a *array) At(i int) value.I {
	return a.items[i]
}

// Bool returns false for the empty array.
func (a *array) Bool() bool {
	return len(a.items) > 0
}

// Equal returns true if v is an array or range with equal elements.
func (a *array) Equal(v value.I) bool {
	return equal(a, v)
}

// Items returns the elements of a. Do not modify them.
func (a *array) Items() []value.I {
	return a.items
}

// Len returns the number of elements in a.
func (a *array) Len() int {
	return len(a.items)
}

// Literal returns the literal representation of a.
func (a *array) Literal() string {
	return "[" + strings.Join(value.Literals(a.items), " ") + "]"
}

// Name returns the name of the array type.
func (a *array) Name() string {
	return name
}

// String returns the printed forms of the elements, without separators.
func (a *array) String() string {
	var b strings.Builder
	for _, v := range a.items {
		b.WriteString(v.String())
	}

	return b.String()
}

// BuildLike builds a sequence from items shaped like src: text stays
// text as long as every item is a char; everything else becomes an array.
func BuildLike(src value.I, items []value.I) value.I {
	if !text.Is(src) {
		return New(items...)
	}

	rs := make([]rune, 0, len(items))

	for _, v := range items {
		c, ok := v.(num.Char)
		if !ok {
			return New(items...)
		}

		rs = append(rs, rune(c))
	}

	return text.Runes(rs)
}

// Is returns true if v is an array or a range.
func Is(v value.I) bool {
	switch v.(type) {
	case *T, *Range:
		return true
	}

	return false
}

// Items returns the elements of any sequence value.
func Items(v value.I) ([]value.I, bool) {
	if s, ok := v.(Seq); ok {
		return s.Items(), true
	}

	return nil, false
}

// Iterable returns any sequence value or, for an integer n, the range
// 0 through n-1. Nothing is materialized.
func Iterable(v value.I) (Seq, bool) {
	if r, ok := ToRange(v); ok {
		return r, true
	}

	s, ok := v.(Seq)

	return s, ok
}

func equal(a Seq, v value.I) bool {
	if !Is(v) {
		return false
	}

	b, _ := Items(v)

	return value.Equal(a.Items(), b)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var (
		a array
		r Range
	)

	// The array types are sequences.
	_ = Seq(&a)
	_ = Seq(&r)

	// The array types have a truth value.
	_ = truth.I(&a)
	_ = truth.I(&r)
}
