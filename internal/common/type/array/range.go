// Released under an MIT license. See LICENSE.

package array

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
)

// Range is the lazily represented integer sequence start, start+step, ...
// up to but not including stop. It is observationally an array.
type Range struct {
	start, stop, step int
}

// NewRange creates a range. A zero step is treated as one.
func NewRange(start, stop, step int) *Range {
	if step == 0 {
		step = 1
	}

	return &Range{start: start, stop: stop, step: step}
}

// ToRange coerces an integer n to the range 0 through n-1.
// Negative integers coerce to the empty range.
func ToRange(v value.I) (*Range, bool) {
	if r, ok := v.(*Range); ok {
		return r, true
	}

	if !num.IsInt(v) {
		return nil, false
	}

	n, ok := num.ToInt(v)
	if !ok {
		return nil, false
	}

	if n < 0 {
		n = 0
	}

	return NewRange(0, n, 1), true
}

// At returns the i-th element of r.
func (r *Range) At(i int) value.I {
	return num.NewInt(int64(r.start + i*r.step))
}

// Bool returns false for the empty range.
func (r *Range) Bool() bool {
	return r.Len() > 0
}

// Equal returns true if v is an array or range with equal elements.
func (r *Range) Equal(v value.I) bool {
	return equal(r, v)
}

// Items materializes the elements of r.
func (r *Range) Items() []value.I {
	n := r.Len()

	vs := make([]value.I, n)
	for i := 0; i < n; i++ {
		vs[i] = r.At(i)
	}

	return vs
}

// Len returns the number of elements in r.
func (r *Range) Len() int {
	var n int

	if r.step > 0 && r.stop > r.start {
		n = (r.stop - r.start + r.step - 1) / r.step
	} else if r.step < 0 && r.stop < r.start {
		n = (r.start - r.stop - r.step - 1) / -r.step
	}

	return n
}

// Literal returns the literal representation of r as an explicit array.
func (r *Range) Literal() string {
	return New(r.Items()...).Literal()
}

// Name returns the name of the array type; a range is a kind of array.
func (r *Range) Name() string {
	return name
}

// String returns the printed forms of the elements, without separators.
func (r *Range) String() string {
	return New(r.Items()...).String()
}
