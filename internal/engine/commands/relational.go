// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
)

func compare(test func(int) bool) []block.Case {
	return []block.Case{
		block.Binary(block.Number, block.Number, func(_ *env.T, a, b value.I) ([]value.I, error) {
			return one(boolean(test(num.Cmp(a, b)))), nil
		}),
		block.Binary(block.Text, block.Text, func(_ *env.T, a, b value.I) ([]value.I, error) {
			return one(boolean(test(strings.Compare(a.String(), b.String())))), nil
		}),
	}
}

func relational() []builtin {
	return []builtin{
		def("<", cases("<", append(compare(func(c int) bool { return c < 0 }),
			block.Binary(block.Seq, block.Integer, take),
		)...), "Less"),

		def(">", cases(">", append(compare(func(c int) bool { return c > 0 }),
			block.Binary(block.Seq, block.Integer, drop),
		)...), "Greater"),

		def("=", cases("=",
			block.Binary(block.Number, block.Number, func(_ *env.T, a, b value.I) ([]value.I, error) {
				return one(boolean(a.Equal(b))), nil
			}),
			block.Binary(block.Seq, block.Integer, index),
			block.Binary(block.AnyValue, block.AnyValue, func(_ *env.T, a, b value.I) ([]value.I, error) {
				return one(boolean(a.Equal(b))), nil
			}),
		), "Eq"),

		def("≈", cases("≈",
			block.Binary(block.Float, block.Float, func(e *env.T, a, b value.I) ([]value.I, error) {
				return one(boolean(num.Approx(a, b, e.Epsilon()))), nil
			}),
		), "Approx"),
	}
}
