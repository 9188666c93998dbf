// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/trailer"
	"github.com/michaelmacinnis/paradoc/internal/reader/parser"
	"github.com/michaelmacinnis/paradoc/internal/reader/token"
)

// Execute runs items, in order, against e. The first fault to pass
// through is tagged with the token that raised it and the state of e.
func Execute(e *env.T, items []*parser.Item) error {
	for _, i := range items {
		if err := item(e, i); err != nil {
			if f, ok := fault.As(err); ok {
				f.Locate(i.Token.Source(), i.Token.Text(), e.Snapshot())
			}

			return err
		}
	}

	return nil
}

func item(e *env.T, i *parser.Item) error {
	e.Log().Trace().Str("token", i.Token.Text()).Int("depth", e.Len()).Msg("execute")

	switch i.Kind {
	case parser.Assign:
		return assign(e, i)

	case parser.Block:
		return invoke(e, compile(i), i.Trailers, false)

	case parser.Global:
		return fault.New(fault.Structural, "global trailers must start a program")
	}

	t := i.Token

	switch t.Class() {
	case token.Char:
		r, _ := utf8.DecodeRuneInString(t.Value())
		return invoke(e, num.Char(r), t.Trailers(), false)

	case token.Number:
		v, ok := num.Parse(t.Value())
		if !ok {
			return fault.New(fault.Lex, "malformed number %s", t.Value())
		}

		return invoke(e, v, t.Trailers(), false)

	case token.String:
		return invoke(e, text.New(t.Value()), t.Trailers(), false)
	}

	v, run, err := resolve(e, t.Value(), t.Trailers())
	if err != nil {
		return err
	}

	return invoke(e, v, run, true)
}

func assign(e *env.T, i *parser.Item) error {
	var (
		v   value.I
		err error
	)

	if i.Pop {
		v, err = e.Pop()
	} else {
		v, err = e.Peek()
	}

	if err != nil {
		return err
	}

	e.Put(i.Target.Name(), v)

	return nil
}

// The resolve function finds the longest bound name made from head and
// a prefix of run. The rest of run is returned as trailers. A name is
// shortened to its last underscore before it loses single letters.
func resolve(e *env.T, head, run string) (value.I, string, error) {
	rest := run

	for {
		if v, ok := e.Get(head + rest); ok {
			return v, run[len(rest):], nil
		}

		if rest == "" {
			break
		}

		if n := strings.LastIndexByte(rest, '_'); n >= 0 {
			rest = rest[:n]
		} else {
			rest = rest[:len(rest)-1]
		}
	}

	return nil, "", fault.New(fault.UnboundName, "%s is not bound", head+run)
}

// The invoke function applies the trailers in run to v. Blocks are then
// called unless a trailer made them reluctant. With no trailers, a block
// is called only if it came from a name.
func invoke(e *env.T, v value.I, run string, named bool) error {
	names := trailer.Split(run)

	call := named
	for _, n := range names {
		var (
			err       error
			reluctant bool
		)

		v, reluctant, err = trailer.Apply(e, v, n)
		if err != nil {
			return err
		}

		call = !reluctant
	}

	if b, ok := v.(env.Block); ok && call {
		return b.Call(e)
	}

	e.Push(v)

	return nil
}
