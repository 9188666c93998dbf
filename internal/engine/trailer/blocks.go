// Released under an MIT license. See LICENSE.

package trailer

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/loop"
)

// A wrapper builds a new calling convention around b.
type wrapper func(e *env.T, b env.Block) error

func wrap(letter, long string, w wrapper) {
	register("block", letter, long, false, func(_ *env.T, v value.I) (value.I, error) {
		b := block.To(v)

		return block.New(b.Literal()+trailerLiteral(letter, long), func(e *env.T) error {
			return w(e, b)
		}), nil
	})
}

// Like wrap but for combinators that pop a sequence and push one result.
func over(letter, long string, fn func(e *env.T, b env.Block, v value.I) (value.I, error)) {
	wrap(letter, long, func(e *env.T, b env.Block) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}

		r, err := fn(e, b, v)
		if err != nil {
			return err
		}

		e.Push(r)

		return nil
	})
}

func trailerLiteral(letter, long string) string {
	if letter != "" {
		return letter
	}

	return "_" + long
}

func popBlock(e *env.T) (env.Block, error) {
	v, err := e.Pop()
	if err != nil {
		return nil, err
	}

	b, ok := v.(env.Block)
	if !ok {
		return nil, fault.New(fault.TypeMismatch, "expected a block, got %s", v.Name())
	}

	return b, nil
}

func init() { //nolint:gochecknoinits
	wrap("a", "apply", func(e *env.T, b env.Block) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}

		items, ok := array.Items(v)
		if !ok {
			return fault.New(fault.TypeMismatch, "cannot apply to %s", v.Name())
		}

		e.Push(items...)

		return b.Call(e)
	})

	// Bind and compose take their operand when the trailer is applied.
	register("block", "b", "bind", false, func(e *env.T, v value.I) (value.I, error) {
		b := block.To(v)

		x, err := e.Pop()
		if err != nil {
			return nil, err
		}

		return block.New(x.Literal()+b.Literal()+"b", func(e *env.T) error {
			e.Push(x)

			return b.Call(e)
		}), nil
	})

	register("block", "o", "compose", false, func(e *env.T, v value.I) (value.I, error) {
		first, err := popBlock(e)
		if err != nil {
			return nil, err
		}

		return block.Compose(first, block.To(v)), nil
	})

	register("block", "c", "cache", false, func(_ *env.T, v value.I) (value.I, error) {
		return block.Memoize(block.To(v)), nil
	})

	over("d", "deepmap", loop.DeepMap)

	wrap("e", "each", func(e *env.T, b env.Block) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}

		return loop.Each(e, b, v)
	})

	over("f", "filter", func(e *env.T, b env.Block, v value.I) (value.I, error) {
		return loop.Filter(e, b, v, true)
	})

	over("g", "reject", func(e *env.T, b env.Block, v value.I) (value.I, error) {
		return loop.Filter(e, b, v, false)
	})

	over("i", "iterate", loop.Fixpoint)

	wrap("k", "keep", loop.Keep)

	wrap("l", "loop", loop.Loop)

	over("m", "map", loop.Map)

	wrap("n", "not", func(e *env.T, b env.Block) error {
		if err := b.Call(e); err != nil {
			return err
		}

		v, err := e.Pop()
		if err != nil {
			return err
		}

		if truth.Value(v) {
			e.Push(num.NewInt(0))
		} else {
			e.Push(num.NewInt(1))
		}

		return nil
	})

	over("r", "reduce", loop.Reduce)

	wrap("s", "sandbox", func(e *env.T, b env.Block) error {
		out, err := loop.Sandbox(e, b)
		if err != nil {
			return err
		}

		e.Push(out...)

		return nil
	})

	wrap("t", "try", loop.Try)

	wrap("x", "xloop", func(e *env.T, b env.Block) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}

		return loop.Times(e, b, v)
	})

	wrap("z", "zip", func(e *env.T, b env.Block) error {
		vs, err := e.PopN(2)
		if err != nil {
			return err
		}

		r, err := loop.Zip(e, b, vs[0], vs[1])
		if err != nil {
			return err
		}

		e.Push(r)

		return nil
	})
}
