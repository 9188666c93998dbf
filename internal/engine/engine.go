// Released under an MIT license. See LICENSE.

// Package engine runs paradoc programs.
package engine

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/reader"
	"github.com/michaelmacinnis/paradoc/internal/reader/parser"
)

// T (engine) is a facade in front of the machinery for running programs.
// Programs run one after another against the same root environment.
type T struct {
	env   *env.T
	fed   bool
	input io.Reader
	mode  Mode
}

// New creates an engine for the root environment e. When a program
// needs more values than it has, they come from input, read as mode
// dictates. Global trailers override mode.
func New(e *env.T, input io.Reader, mode Mode) *T {
	return &T{env: e, input: input, mode: mode}
}

// Env returns the engine's root environment.
func (en *T) Env() *env.T {
	return en.env
}

// Run compiles and executes the program in source.
func (en *T) Run(label, source string) error {
	items, err := Compile(label, source)
	if err != nil {
		return err
	}

	mode := en.mode

	if len(items) > 0 && items[0].Kind == parser.Global {
		g := items[0]
		items = items[1:]

		mode, err = en.globals(g.Token.Trailers(), mode)
		if err != nil {
			f, _ := fault.As(err)
			f.Locate(g.Token.Source(), g.Token.Text(), nil)

			return err
		}
	}

	if mode != None && !en.fed {
		en.env.SetTrigger(Input(en.input, mode))
		en.fed = true
	}

	en.env.Log().Debug().Str("program", label).Int("items", len(items)).Msg("start")

	err = Execute(en.env, items)

	en.env.Log().Debug().Str("program", label).Int("depth", en.env.Len()).Msg("end")

	return err
}

// Print writes the printed form of each value on the stack, separated
// by the field separator and terminated by the record separator.
func (en *T) Print(w io.Writer) error {
	field, record := en.env.Separators()

	vs := en.env.Stack()
	ss := make([]string, len(vs))

	for i, v := range vs {
		ss[i] = v.String()
	}

	_, err := io.WriteString(w, strings.Join(ss, field)+record)

	return err
}

// Compile lexes and structures source without running it.
func Compile(label, source string) ([]*parser.Item, error) {
	return reader.Read(label, source)
}

func (en *T) globals(run string, mode Mode) (Mode, error) {
	for _, r := range run {
		_, record := en.env.Separators()

		switch r {
		case 'a':
			mode = All
		case 'l':
			mode = Lines
		case 'n':
			mode = Numbers
		case 'w':
			mode = Words
		case 'e':
			en.env.SetSeparators("\n", record)
		case 'j':
			en.env.SetSeparators("", record)
		case 's':
			en.env.SetSeparators(" ", record)
		default:
			return mode, fault.New(fault.UnknownTrailer, "unknown global trailer %q", string(r))
		}

		en.env.Log().Debug().Str("trailer", string(r)).Msg("global")
	}

	return mode, nil
}
