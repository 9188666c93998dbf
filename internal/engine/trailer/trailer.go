// Released under an MIT license. See LICENSE.

// Package trailer applies trailers, the lowercase runs that follow a
// token, to the value the token resolved to.
//
// Each kind of value has its own table. Most trailers have a one letter
// form and a long form; a long form is written after an underscore.
package trailer

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/hoard"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
)

// Fn transforms v. It may pop operands from e.
type Fn func(e *env.T, v value.I) (value.I, error)

type entry struct {
	fn        Fn
	reluctant bool
}

type table map[string]entry

//nolint:gochecknoglobals
var tables = map[string]table{}

// Apply applies the trailer called name to v. The result is reluctant if
// it is a block that must be pushed rather than called.
func Apply(e *env.T, v value.I, name string) (value.I, bool, error) {
	k := Kind(v)

	t, ok := tables[k]
	if !ok {
		return nil, false, fault.New(fault.UnknownTrailer, "%s values take no trailers", k)
	}

	x, ok := t[name]
	if !ok {
		return nil, false, fault.New(fault.UnknownTrailer, "unknown %s trailer %q", k, name)
	}

	e.Log().Trace().Str("kind", k).Str("trailer", name).Msg("trailer")

	r, err := x.fn(e, v)
	if err != nil {
		return nil, false, err
	}

	return r, x.reluctant, nil
}

// Kind returns the name of the trailer table for v.
func Kind(v value.I) string {
	switch v.(type) {
	case env.Block:
		return "block"
	case *num.Int:
		return "integer"
	case num.Float:
		return "float"
	case num.Char:
		return "char"
	case *text.T:
		return "text"
	case *hoard.T:
		return "hoard"
	}

	if array.Is(v) {
		return "array"
	}

	return v.Name()
}

// Split breaks a trailer run into trailer names. Letters stand alone
// unless an underscore introduces a long name, which runs to the next
// underscore or the end of the run.
func Split(run string) []string {
	var names []string

	for run != "" {
		if run[0] != '_' {
			names = append(names, run[:1])
			run = run[1:]

			continue
		}

		run = run[1:]

		n := strings.IndexByte(run, '_')
		if n < 0 {
			n = len(run)
		}

		if n > 0 {
			names = append(names, run[:n])
		}

		run = run[n:]
	}

	return names
}

func register(kind, letter, long string, reluctant bool, fn Fn) {
	t, ok := tables[kind]
	if !ok {
		t = table{}
		tables[kind] = t
	}

	x := entry{fn: fn, reluctant: reluctant}

	if letter != "" {
		t[letter] = x
	}

	t[long] = x
}

// Every kind with a table can be turned into a block that pushes it.
func reluctant(kind string) {
	register(kind, "b", "block", true, func(_ *env.T, v value.I) (value.I, error) {
		return block.Const(v), nil
	})
}
