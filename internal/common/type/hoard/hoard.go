// Released under an MIT license. See LICENSE.

// Package hoard provides paradoc's mutable container type.
// Builtins that mutate a hoard live with the rest of the catalog;
// the engine only reads a hoard as a sequence.
package hoard

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
)

const name = "hoard"

// T (hoard) is a mutable list of values.
type T struct {
	items []value.I
}

type hoard = T

// New creates a hoard holding a copy of items.
func New(items ...value.I) *T {
	h := &hoard{}
	h.items = append(h.items, items...)

	return h
}

// Append adds vs to the end of h.
func (h *hoard) Append(vs ...value.I) {
	h.items = append(h.items, vs...)
}

// At returns the i-th value in h.
func (h *hoard) At(i int) value.I {
	return h.items[i]
}

// Bool returns false for the empty hoard.
func (h *hoard) Bool() bool {
	return len(h.items) > 0
}

// Equal returns true if v is the same hoard. Hoards are mutable so
// equality is identity.
func (h *hoard) Equal(v value.I) bool {
	o, ok := v.(*T)
	return ok && o == h
}

// Items returns a snapshot of the contents of h.
func (h *hoard) Items() []value.I {
	vs := make([]value.I, len(h.items))
	copy(vs, h.items)

	return vs
}

// Len returns the number of values in h.
func (h *hoard) Len() int {
	return len(h.items)
}

// Literal returns a representation of h. Hoards have no literal syntax.
func (h *hoard) Literal() string {
	return "(" + name + " [" + strings.Join(value.Literals(h.items), " ") + "])"
}

// Name returns the name of the hoard type.
func (h *hoard) Name() string {
	return name
}

// String returns the printed forms of the contents, without separators.
func (h *hoard) String() string {
	var b strings.Builder
	for _, v := range h.items {
		b.WriteString(v.String())
	}

	return b.String()
}

// Is returns true if v is a *T.
func Is(v value.I) bool {
	_, ok := v.(*T)
	return ok
}

// To returns a *T if v is a *T; Otherwise it panics.
func To(v value.I) *T {
	if h, ok := v.(*T); ok {
		return h
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var h hoard

	// The hoard type is a value.
	_ = value.I(&h)

	// The hoard type has a truth value.
	_ = truth.I(&h)
}
