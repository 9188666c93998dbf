// Released under an MIT license. See LICENSE.

package block

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
)

// Case is one alternative of a multi-case block. Rules apply to the
// arguments in stack order, deepest first. A commutative case with two
// arguments is also tried with its arguments swapped.
type Case struct {
	Arity       int
	Commutative bool
	Rules       []Coercion
	Fn          func(e *env.T, args []value.I) ([]value.I, error)
}

// Cased is a block that chooses the first case whose rules accept the
// values on top of the stack.
type Cased struct {
	cases []Case
	label string
}

// Cases creates a multi-case block. Cases are tried in order.
func Cases(label string, cs ...Case) *Cased {
	return &Cased{cases: cs, label: label}
}

// Unary is a single case of arity one.
func Unary(rule Coercion, fn func(e *env.T, a value.I) ([]value.I, error)) Case {
	return Case{
		Arity: 1,
		Rules: Rules(rule),
		Fn: func(e *env.T, args []value.I) ([]value.I, error) {
			return fn(e, args[0])
		},
	}
}

// Binary is a single case of arity two.
func Binary(a, b Coercion, fn func(e *env.T, a, b value.I) ([]value.I, error)) Case {
	return Case{
		Arity: 2,
		Rules: Rules(a, b),
		Fn: func(e *env.T, args []value.I) ([]value.I, error) {
			return fn(e, args[0], args[1])
		},
	}
}

// Commute marks the case c as commutative.
func Commute(c Case) Case {
	c.Commutative = true

	return c
}

// Call pops arguments only as the cases need them. Arguments collected
// for an earlier, larger case but not used by the matching case are
// pushed back before the case runs.
func (c *Cased) Call(e *env.T) error {
	var args []value.I

	for i, k := range c.cases {
		for len(args) < k.Arity {
			v, err := e.Pop()
			if err != nil {
				return err
			}

			args = append([]value.I{v}, args...)
		}

		unused := len(args) - k.Arity
		window := args[unused:]

		in, ok := coerce(k.Rules, window)
		swapped := false

		if !ok && k.Commutative && k.Arity == 2 {
			in, ok = coerce(k.Rules, []value.I{window[1], window[0]})
			swapped = ok
		}

		if !ok {
			continue
		}

		e.Log().Trace().
			Str("name", c.label).
			Int("case", i).
			Bool("swapped", swapped).
			Msg("dispatch")

		e.Push(args[:unused]...)

		out, err := k.Fn(e, in)
		if err != nil {
			return err
		}

		e.Push(out...)

		return nil
	}

	f := fault.New(fault.NoMatchingCase, "no case of %s matches", c.label)
	f.Args = args

	return f
}

// Equal returns true only if v is the block c.
func (c *Cased) Equal(v value.I) bool {
	return v == value.I(c)
}

// Literal returns the label of the block c.
func (c *Cased) Literal() string {
	return c.label
}

// Name returns the name of the block type.
func (c *Cased) Name() string {
	return name
}

// String returns the label of the block c.
func (c *Cased) String() string {
	return c.label
}
