// Released under an MIT license. See LICENSE.

package block

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
)

// Coercion accepts a value, possibly converting it, or rejects it.
type Coercion func(v value.I) (value.I, bool)

// AnyValue accepts everything.
func AnyValue(v value.I) (value.I, bool) {
	return v, true
}

// Number accepts integers, floats, and chars.
func Number(v value.I) (value.I, bool) {
	return v, num.Is(v)
}

// Integer accepts integers, and chars as their code points.
func Integer(v value.I) (value.I, bool) {
	switch v := v.(type) {
	case *num.Int:
		return v, true
	case num.Char:
		return num.NewInt(int64(v)), true
	}

	return nil, false
}

// Float accepts any number as a float.
func Float(v value.I) (value.I, bool) {
	f, ok := num.ToFloat(v)
	if !ok {
		return nil, false
	}

	return num.Float(f), true
}

// Text accepts text.
func Text(v value.I) (value.I, bool) {
	return v, text.Is(v)
}

// List accepts arrays and ranges.
func List(v value.I) (value.I, bool) {
	return v, array.Is(v)
}

// Seq accepts anything that reads as a sequence: arrays, ranges, text,
// and hoards.
func Seq(v value.I) (value.I, bool) {
	_, ok := v.(array.Seq)
	return v, ok
}

// Iterable accepts sequences, and integers as ranges.
func Iterable(v value.I) (value.I, bool) {
	if r, ok := array.ToRange(v); ok {
		return r, true
	}

	return Seq(v)
}

// Callable accepts blocks.
func Callable(v value.I) (value.I, bool) {
	return v, Is(v)
}

// Rules is shorthand for a list of coercions.
func Rules(cs ...Coercion) []Coercion {
	return cs
}

func coerce(rules []Coercion, args []value.I) ([]value.I, bool) {
	out := make([]value.I, len(args))

	for i, r := range rules {
		v, ok := r(args[i])
		if !ok {
			return nil, false
		}

		out[i] = v
	}

	return out, true
}
