// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
)

// Blocks are called; anything else is pushed.
func run(e *env.T, v value.I) ([]value.I, error) {
	if b, ok := v.(env.Block); ok {
		return nil, b.Call(e)
	}

	return one(v), nil
}

func logical() []builtin {
	return []builtin{
		def("!", cases("!",
			block.Unary(block.AnyValue, func(_ *env.T, v value.I) ([]value.I, error) {
				return one(boolean(!truth.Value(v))), nil
			}),
		), "Not"),

		def("&", cases("&",
			block.Binary(block.AnyValue, block.AnyValue, func(e *env.T, c, v value.I) ([]value.I, error) {
				if !truth.Value(c) {
					return nil, nil
				}

				return run(e, v)
			}),
		), "If"),

		def("?", cases("?",
			block.Case{
				Arity: 3,
				Rules: block.Rules(block.AnyValue, block.AnyValue, block.AnyValue),
				Fn: func(e *env.T, args []value.I) ([]value.I, error) {
					if truth.Value(args[0]) {
						return run(e, args[1])
					}

					return run(e, args[2])
				},
			},
		), "Ifelse"),
	}
}
