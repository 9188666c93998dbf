// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/hoard"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
)

func nothing(*env.T) error {
	return nil
}

func x(i int) func(e *env.T) error {
	return func(e *env.T) error {
		v, err := e.IndexX(i)
		if err != nil {
			return err
		}

		e.Push(v)

		return nil
	}
}

func core() []builtin {
	return []builtin{
		primitive(" ", nothing, "\n", "\t", "\r"),

		primitive(":", func(e *env.T) error {
			v, err := e.Pop()
			if err != nil {
				return err
			}

			e.Push(v, v)

			return nil
		}, "Dup"),

		primitive("\\", func(e *env.T) error {
			vs, err := e.PopN(2)
			if err != nil {
				return err
			}

			e.Push(vs[1], vs[0])

			return nil
		}, "Swap"),

		primitive(";", func(e *env.T) error {
			_, err := e.Pop()
			return err
		}, "Pop"),

		primitive("[", func(e *env.T) error {
			e.Mark()
			return nil
		}, "Mark"),

		primitive("]", func(e *env.T) error {
			e.Push(array.New(e.PopUntilMark()...))
			return nil
		}, "Pack"),

		primitive("X", x(0)),
		primitive("Y", x(1)),
		primitive("Z", x(2)),

		primitive("H", func(e *env.T) error {
			e.Push(hoard.New())
			return nil
		}, "Hoard"),

		primitive("O", func(e *env.T) error {
			v, err := e.Pop()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(e.Output(), v.String())

			return err
		}, "Output"),

		primitive("Break", func(*env.T) error {
			return signal.Break
		}),

		primitive("Continue", func(*env.T) error {
			return signal.Continue
		}),

		// Exit takes its code from an integer on top of the stack, if any.
		primitive("Exit", func(e *env.T) error {
			code := 0

			if e.Len() > 0 {
				v, _ := e.Peek()
				if n, ok := num.ToInt(v); ok && num.IsInt(v) {
					_, _ = e.Pop()
					code = n
				}
			}

			return &signal.Exit{Code: code}
		}),
	}
}

// The digits resolver reads N followed by letters a through j as a
// decimal number: Nbc is 12.
func digits(name string) (value.I, bool) {
	if len(name) < 2 || name[0] != 'N' {
		return nil, false
	}

	n := int64(0)

	for _, r := range name[1:] {
		if r < 'a' || r > 'j' {
			return nil, false
		}

		n = n*10 + int64(r-'a')
	}

	return num.NewInt(n), true
}

// The letters resolver reads L or U followed by one letter as that
// letter in lowercase or uppercase.
func letters(name string) (value.I, bool) {
	if len(name) != 2 || !strings.ContainsRune("LU", rune(name[0])) {
		return nil, false
	}

	r := rune(name[1])
	if r < 'a' || r > 'z' {
		return nil, false
	}

	if name[0] == 'U' {
		r = unicode.ToUpper(r)
	}

	return num.Char(r), true
}
