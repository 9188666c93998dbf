// Released under an MIT license. See LICENSE.

// Package loop provides the higher-order operations that builtins and
// trailers are built from.
//
// Loops keep the current index and element on the x-stack while each
// iteration runs, so X is the element and Y the index. Continue ends an
// iteration. Break ends the loop and keeps whatever the loop had
// accumulated. Exit, and every other error, passes through.
package loop

import (
	"errors"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
)

// Sandbox runs b in a bracketed shadow of e holding args and returns the
// shadow's final stack. Values the block pulls from below args are
// consumed from e.
func Sandbox(e *env.T, b env.Block, args ...value.I) ([]value.I, error) {
	s := e.Bracketed()
	s.Push(args...)

	if err := b.Call(s); err != nil {
		return nil, err
	}

	e.Log().Trace().Int("pulled", s.Pulled()).Msg("sandbox")

	return s.Stack(), nil
}

// Each pushes each element of seq onto e and calls b.
func Each(e *env.T, b env.Block, seq value.I) error {
	s, err := iterable(seq)
	if err != nil {
		return err
	}

	return iterate(e, s.Len(), s.At, func(_ int, v value.I) error {
		e.Push(v)

		return b.Call(e)
	})
}

// Times calls b once for each element of seq without pushing anything;
// the block reads the element from the x-stack.
func Times(e *env.T, b env.Block, seq value.I) error {
	s, err := iterable(seq)
	if err != nil {
		return err
	}

	return iterate(e, s.Len(), s.At, func(_ int, _ value.I) error {
		return b.Call(e)
	})
}

// Loop calls b until it breaks. X is the number of completed iterations.
func Loop(e *env.T, b env.Block) error {
	for i := int64(0); ; i++ {
		n := num.NewInt(i)

		e.PushX(n, n)
		err := b.Call(e)
		e.PopX(2)

		switch {
		case err == nil || errors.Is(err, signal.Continue):
		case errors.Is(err, signal.Break):
			return nil
		default:
			return err
		}
	}
}

// Map collects everything b leaves when sandboxed with each element of
// seq. Mapping over text yields text if every result is a char.
func Map(e *env.T, b env.Block, seq value.I) (value.I, error) {
	s, err := iterable(seq)
	if err != nil {
		return nil, err
	}

	var acc []value.I

	err = iterate(e, s.Len(), s.At, func(_ int, v value.I) error {
		out, err := Sandbox(e, b, v)
		acc = append(acc, out...)

		return err
	})
	if err != nil {
		return nil, err
	}

	return array.BuildLike(seq, acc), nil
}

// Filter keeps the elements of seq for which b leaves a value whose
// truth equals want.
func Filter(e *env.T, b env.Block, seq value.I, want bool) (value.I, error) {
	s, err := iterable(seq)
	if err != nil {
		return nil, err
	}

	var acc []value.I

	err = iterate(e, s.Len(), s.At, func(_ int, v value.I) error {
		ok, err := Test(e, b, v)
		if err != nil {
			return err
		}

		if ok == want {
			acc = append(acc, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return array.BuildLike(seq, acc), nil
}

// Test sandboxes b with args and returns the truth of the value it
// leaves on top. A block that leaves nothing is false.
func Test(e *env.T, b env.Block, args ...value.I) (bool, error) {
	out, err := Sandbox(e, b, args...)
	if err != nil || len(out) == 0 {
		return false, err
	}

	return truth.Value(out[len(out)-1]), nil
}

// Reduce folds seq with b from the left. Break keeps the accumulator.
func Reduce(e *env.T, b env.Block, seq value.I) (value.I, error) {
	s, err := iterable(seq)
	if err != nil {
		return nil, err
	}

	if s.Len() == 0 {
		return nil, fault.New(fault.TypeMismatch, "reduce of an empty sequence")
	}

	acc := s.At(0)

	rest := func(i int) value.I {
		return s.At(i + 1)
	}

	err = iterate(e, s.Len()-1, rest, func(_ int, v value.I) error {
		out, err := Sandbox(e, b, acc, v)
		if err != nil {
			return err
		}

		if len(out) == 0 {
			return fault.New(fault.EmptyStack, "reduce block left nothing")
		}

		acc = out[len(out)-1]

		return nil
	})
	if err != nil {
		return nil, err
	}

	return acc, nil
}

// Zip sandboxes b with corresponding elements of a and c, stopping at the
// end of the shorter sequence, and collects the results.
func Zip(e *env.T, b env.Block, a, c value.I) (value.I, error) {
	left, err := iterable(a)
	if err != nil {
		return nil, err
	}

	right, err := iterable(c)
	if err != nil {
		return nil, err
	}

	n := left.Len()
	if right.Len() < n {
		n = right.Len()
	}

	var acc []value.I

	err = iterate(e, n, left.At, func(i int, v value.I) error {
		out, err := Sandbox(e, b, v, right.At(i))
		acc = append(acc, out...)

		return err
	})
	if err != nil {
		return nil, err
	}

	return array.BuildLike(a, acc), nil
}

// DeepMap maps b over the leaves of nested arrays. Text and numbers are
// leaves. Each leaf must map to exactly one value.
func DeepMap(e *env.T, b env.Block, v value.I) (value.I, error) {
	if !array.Is(v) {
		out, err := Sandbox(e, b, v)
		if err != nil {
			return nil, err
		}

		if len(out) != 1 {
			return nil, fault.New(fault.TypeMismatch, "deep map block left %d values", len(out))
		}

		return out[0], nil
	}

	s, _ := array.Iterable(v)
	acc := make([]value.I, 0, s.Len())

	err := iterate(e, s.Len(), s.At, func(_ int, v value.I) error {
		r, err := DeepMap(e, b, v)
		if err == nil {
			acc = append(acc, r)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return array.New(acc...), nil
}

// Fixpoint applies b to v until a value repeats. It returns every
// distinct value seen followed by the repeated value.
func Fixpoint(e *env.T, b env.Block, v value.I) (value.I, error) {
	seen := []value.I{v}

	for {
		out, err := Sandbox(e, b, v)
		if err != nil {
			return nil, err
		}

		if len(out) == 0 {
			return nil, fault.New(fault.EmptyStack, "iterated block left nothing")
		}

		v = out[len(out)-1]

		for _, s := range seen {
			if s.Equal(v) {
				return array.New(append(seen, v)...), nil
			}
		}

		seen = append(seen, v)
	}
}

// Keep runs b without consuming its operands from e and pushes the
// results above them. Operands the block only peeked at are still in e
// and are not pushed again.
func Keep(e *env.T, b env.Block) error {
	s := e.Keep()
	if err := b.Call(s); err != nil {
		return err
	}

	e.Push(s.Stack()[s.Borrowed():]...)

	return nil
}

// Try runs b in a bracketed shadow. On success it pushes the results and
// then 0. On failure it pushes the error message instead. Control signals
// are never caught.
func Try(e *env.T, b env.Block) error {
	s := e.Bracketed()

	err := b.Call(s)
	if err == nil {
		e.Push(s.Stack()...)
		e.Push(num.NewInt(0))

		return nil
	}

	if signal.Is(err) {
		return err
	}

	e.Push(text.New(err.Error()))

	return nil
}

func iterable(v value.I) (array.Seq, error) {
	s, ok := array.Iterable(v)
	if !ok {
		return nil, fault.New(fault.TypeMismatch, "cannot iterate over %s", v.Name())
	}

	return s, nil
}

// Elements are fetched one at a time so a loop that breaks early over a
// long range never builds it.
func iterate(e *env.T, n int, at func(int) value.I, fn func(i int, v value.I) error) error {
	for i := 0; i < n; i++ {
		v := at(i)

		e.PushX(num.NewInt(int64(i)), v)
		err := fn(i, v)
		e.PopX(2)

		switch {
		case err == nil || errors.Is(err, signal.Continue):
		case errors.Is(err, signal.Break):
			return nil
		default:
			return err
		}
	}

	return nil
}
