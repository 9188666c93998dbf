// Released under an MIT license. See LICENSE.

// Package ui provides an interactive session for the paradoc language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/engine"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
	"github.com/michaelmacinnis/paradoc/internal/system/history"
)

// Run reads lines and runs each one against the engine's root
// environment until end of input or Exit. It returns the exit code.
func Run(en *engine.T, stdout, stderr io.Writer) int {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(en.Env().Names(), line, pos)
	})

	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	for {
		line, err := cli.Prompt("pd> ")

		switch {
		case err == nil:
			cli.AppendHistory(line)
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		default:
			fmt.Fprintln(stdout)
			return 0
		}

		err = en.Run("pd", line)
		if code, ok := signal.IsExit(err); ok {
			return code
		}

		if err != nil {
			Report(stderr, err)
		}

		fmt.Fprintln(stdout, Show(en.Env().Stack(), width()))
	}
}

// Report writes err to w, with the machine state if it is a fault.
func Report(w io.Writer, err error) {
	if f, ok := fault.As(err); ok {
		fmt.Fprint(w, f.Report())
		return
	}

	fmt.Fprintln(w, err.Error())
}

// Show renders the stack in at most n columns. When the stack does not
// fit, the bottom is elided.
func Show(vs []value.I, n int) string {
	s := "[" + strings.Join(value.Literals(vs), " ") + "]"

	rs := []rune(s)
	if n < 5 || len(rs) <= n {
		return s
	}

	return "[..." + string(rs[len(rs)-n+4:])
}

func complete(names []string, line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	// Names are an uppercase letter followed by lowercase trailers.
	start := strings.LastIndexFunc(head, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '_'
	}) + 1

	word := head[start:]
	if word == "" {
		return head, nil, tail
	}

	var cs []string

	for _, n := range names {
		if len(n) > len(word) && strings.HasPrefix(n, word) {
			cs = append(cs, n)
		}
	}

	return head[:start], cs, tail
}

// Width assumed when the terminal will not say.
const columns = 80
