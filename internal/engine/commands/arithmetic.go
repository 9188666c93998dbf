// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/hoard"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/loop"
)

type infallible func(a, b value.I) (value.I, bool)

type fallible func(a, b value.I) (value.I, error)

func numeric(fn infallible) block.Case {
	return block.Binary(block.Number, block.Number, func(_ *env.T, a, b value.I) ([]value.I, error) {
		r, _ := fn(a, b)
		return one(r), nil
	})
}

func division(fn fallible) block.Case {
	return block.Binary(block.Number, block.Number, func(_ *env.T, a, b value.I) ([]value.I, error) {
		r, err := fn(a, b)
		if err != nil {
			return nil, fault.Wrap(err)
		}

		return one(r), nil
	})
}

// A case taking a sequence and a block in either order.
func withBlock(fn func(e *env.T, seq value.I, b env.Block) ([]value.I, error)) block.Case {
	return block.Commute(block.Binary(block.Iterable, block.Callable,
		func(e *env.T, seq, b value.I) ([]value.I, error) {
			return fn(e, seq, block.To(b))
		},
	))
}

func hoardable(v value.I) (value.I, bool) {
	return v, hoard.Is(v)
}

func arithmetic() []builtin {
	return []builtin{
		def("+", cases("+",
			numeric(num.Add),
			block.Binary(block.Text, block.Text, func(_ *env.T, a, b value.I) ([]value.I, error) {
				return one(text.New(a.String() + b.String())), nil
			}),
			block.Binary(block.List, block.List, func(_ *env.T, a, b value.I) ([]value.I, error) {
				x, _ := array.Items(a)
				y, _ := array.Items(b)

				return one(array.New(append(append([]value.I{}, x...), y...)...)), nil
			}),
			block.Binary(hoardable, block.AnyValue, func(_ *env.T, h, v value.I) ([]value.I, error) {
				hoard.To(h).Append(v)
				return one(h), nil
			}),
			withBlock(func(e *env.T, seq value.I, b env.Block) ([]value.I, error) {
				r, err := loop.Filter(e, b, seq, true)
				return one(r), err
			}),
		), "Plus"),

		def("-", cases("-",
			numeric(num.Sub),
			block.Binary(block.Seq, block.Seq, func(_ *env.T, a, b value.I) ([]value.I, error) {
				x, _ := array.Items(a)
				y, _ := array.Items(b)

				var keep []value.I

			outer:
				for _, v := range x {
					for _, w := range y {
						if v.Equal(w) {
							continue outer
						}
					}

					keep = append(keep, v)
				}

				return one(array.BuildLike(a, keep)), nil
			}),
			withBlock(func(e *env.T, seq value.I, b env.Block) ([]value.I, error) {
				r, err := loop.Filter(e, b, seq, false)
				return one(r), err
			}),
		), "Minus"),

		def("*", cases("*",
			numeric(num.Mul),
			block.Binary(block.Seq, block.Integer, func(_ *env.T, s, n value.I) ([]value.I, error) {
				items, _ := array.Items(s)
				k, _ := num.ToInt(n)

				var out []value.I
				for i := 0; i < k; i++ {
					out = append(out, items...)
				}

				return one(array.BuildLike(s, out)), nil
			}),
			withBlock(func(e *env.T, seq value.I, b env.Block) ([]value.I, error) {
				return nil, loop.Times(e, b, seq)
			}),
		), "Mul"),

		def("/", cases("/",
			division(num.Div),
			withBlock(func(e *env.T, seq value.I, b env.Block) ([]value.I, error) {
				r, err := loop.Map(e, b, seq)
				return one(r), err
			}),
		), "Div"),

		def("%", cases("%",
			division(num.Mod),
			withBlock(func(e *env.T, seq value.I, b env.Block) ([]value.I, error) {
				return nil, loop.Each(e, b, seq)
			}),
		), "Mod"),

		def("÷", cases("÷", division(num.IntDiv)), "Intdiv"),
	}
}
