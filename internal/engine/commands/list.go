// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/trailer"
)

// Clamp a possibly negative index into the range 0 through n.
func clamp(i, n int) int {
	if i < 0 {
		i += n
	}

	if i < 0 {
		return 0
	}

	if i > n {
		return n
	}

	return i
}

func take(_ *env.T, s, n value.I) ([]value.I, error) {
	items, _ := array.Items(s)
	k, _ := num.ToInt(n)

	return one(array.BuildLike(s, items[:clamp(k, len(items))])), nil
}

func drop(_ *env.T, s, n value.I) ([]value.I, error) {
	items, _ := array.Items(s)
	k, _ := num.ToInt(n)

	return one(array.BuildLike(s, items[clamp(k, len(items)):])), nil
}

func index(_ *env.T, s, n value.I) ([]value.I, error) {
	seq := s.(array.Seq)
	k, _ := num.ToInt(n)

	if k < 0 {
		k += seq.Len()
	}

	if k < 0 || k >= seq.Len() {
		return nil, fault.New(fault.TypeMismatch, "index %s out of range", n.Literal())
	}

	return one(seq.At(k)), nil
}

func nonempty(s value.I) ([]value.I, error) {
	items, _ := array.Items(s)
	if len(items) == 0 {
		return nil, fault.New(fault.TypeMismatch, "empty %s", s.Name())
	}

	return items, nil
}

func list() []builtin {
	return []builtin{
		def(",", cases(",",
			block.Unary(block.Integer, func(_ *env.T, n value.I) ([]value.I, error) {
				r, ok := array.ToRange(n)
				if !ok {
					return nil, fault.New(fault.TypeMismatch, "%s is too large for a range", n.Literal())
				}

				return one(r), nil
			}),
			block.Unary(block.Seq, func(_ *env.T, s value.I) ([]value.I, error) {
				items, _ := array.Items(s)

				pairs := make([]value.I, len(items))
				for i, v := range items {
					pairs[i] = array.New(num.NewInt(int64(i)), v)
				}

				return one(array.New(pairs...)), nil
			}),
		), "Range"),

		def("(", cases("(",
			block.Unary(block.Number, func(_ *env.T, v value.I) ([]value.I, error) {
				return one(num.Step(v, -1)), nil
			}),
			block.Unary(block.Seq, func(_ *env.T, s value.I) ([]value.I, error) {
				items, err := nonempty(s)
				if err != nil {
					return nil, err
				}

				return []value.I{array.BuildLike(s, items[1:]), items[0]}, nil
			}),
		), "Decr"),

		def(")", cases(")",
			block.Unary(block.Number, func(_ *env.T, v value.I) ([]value.I, error) {
				return one(num.Step(v, 1)), nil
			}),
			block.Unary(block.Seq, func(_ *env.T, s value.I) ([]value.I, error) {
				items, err := nonempty(s)
				if err != nil {
					return nil, err
				}

				n := len(items) - 1

				return []value.I{array.BuildLike(s, items[:n]), items[n]}, nil
			}),
		), "Incr"),

		def("L", cases("L",
			block.Unary(block.Seq, func(_ *env.T, s value.I) ([]value.I, error) {
				return one(num.NewInt(int64(s.(array.Seq).Len()))), nil
			}),
		), "Len"),

		def("Σ", cases("Σ",
			block.Unary(block.Iterable, func(_ *env.T, s value.I) ([]value.I, error) {
				r, err := trailer.Sum(s.(array.Seq))
				if err != nil {
					return nil, err
				}

				return one(r), nil
			}),
		), "Sum"),
	}
}
