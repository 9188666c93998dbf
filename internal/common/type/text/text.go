// Released under an MIT license. See LICENSE.

// Package text provides paradoc's string type.
package text

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
)

const name = "text"

// T (text) is an ordered sequence of code points.
type T struct {
	runes []rune
}

type text = T

// New creates a new text value from the string s.
func New(s string) *T {
	return &text{runes: []rune(s)}
}

// Runes creates a new text value that takes ownership of rs.
func Runes(rs []rune) *T {
	return &text{runes: rs}
}

// At returns the i-th code point of t as a char.
func (t *text) At(i int) value.I {
	return num.Char(t.runes[i])
}

// Bool returns false for the empty text.
func (t *text) Bool() bool {
	return len(t.runes) > 0
}

// Chars returns the code points of t as chars.
func (t *text) Chars() []value.I {
	vs := make([]value.I, len(t.runes))
	for i, r := range t.runes {
		vs[i] = num.Char(r)
	}

	return vs
}

// Items returns the code points of t as chars.
func (t *text) Items() []value.I {
	return t.Chars()
}

// Equal returns true if v is text with the same code points.
func (t *text) Equal(v value.I) bool {
	return Is(v) && t.String() == To(v).String()
}

// Len returns the number of code points in t.
func (t *text) Len() int {
	return len(t.runes)
}

// Literal returns the quoted form of t. Only '"' and '\' are escaped.
func (t *text) Literal() string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(t.String()) + `"`
}

// Name returns the name of the text type.
func (t *text) Name() string {
	return name
}

// Runes returns the code points of t. Do not modify them.
func (t *text) Runes() []rune {
	return t.runes
}

// String returns the text itself.
func (t *text) String() string {
	return string(t.runes)
}

// Is returns true if v is a *T.
func Is(v value.I) bool {
	_, ok := v.(*T)
	return ok
}

// To returns a *T if v is a *T; Otherwise it panics.
func To(v value.I) *T {
	if t, ok := v.(*T); ok {
		return t
	}

	panic("not " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t text

	// The text type is a value.
	_ = value.I(&t)

	// The text type has a truth value.
	_ = truth.I(&t)
}
