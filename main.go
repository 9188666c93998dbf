// Released under an MIT license. See LICENSE.

/*
Paradoc is a stack-based golfing language.

A program is a run of one-character tokens, each of which may be
followed by lowercase trailers that modify it:

    2 3+7*               .. 35
    [1 3 7 5 0 9 2]{5<}+ .. [1 3 0 2]
    10,{3%0=}+           .. [0 3 6 9]

When a program ends its stack is printed. A program that needs more
values than it has reads them from stdin, as lines, words, numbers, or
all at once, according to its global trailers or the configuration file.

With no program and a terminal on stdin, pd starts an interactive session.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/paradoc/internal/engine"
	"github.com/michaelmacinnis/paradoc/internal/engine/commands"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
	"github.com/michaelmacinnis/paradoc/internal/system/config"
	"github.com/michaelmacinnis/paradoc/internal/system/options"
	"github.com/michaelmacinnis/paradoc/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(argv)
	if err != nil {
		ui.Report(stderr, err)
		return 2
	}

	path := opts.Config
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(path)
	if err != nil {
		ui.Report(stderr, err)
		return 1
	}

	mode, ok := engine.ParseMode(cfg.Input.Mode)
	if !ok {
		ui.Report(stderr, fmt.Errorf("unknown input mode %q", cfg.Input.Mode))
		return 1
	}

	e := env.New()
	e.SetEpsilon(cfg.Epsilon)
	e.SetLogger(logger(stderr, cfg.Log.Level, opts.Debug))
	e.SetOutput(stdout)
	e.SetSeparators(cfg.Output.Field, cfg.Output.Record)

	if err := commands.Register(e); err != nil {
		ui.Report(stderr, err)
		return 1
	}

	if opts.Interactive {
		return ui.Run(engine.New(e, nil, engine.None), stdout, stderr)
	}

	label, source := opts.Script, opts.Command

	switch {
	case label != "":
		b, err := os.ReadFile(label)
		if err != nil {
			ui.Report(stderr, err)
			return 1
		}

		source = string(b)
	case source != "":
		label = "-c"
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			ui.Report(stderr, err)
			return 1
		}

		label, source, stdin = "stdin", string(b), nil
	}

	en := engine.New(e, stdin, mode)

	err = en.Run(label, source)

	code, exit := signal.IsExit(err)
	if err != nil && !exit {
		ui.Report(stderr, err)
		return 1
	}

	if err := en.Print(stdout); err != nil {
		ui.Report(stderr, err)
		return 1
	}

	return code
}

func logger(w io.Writer, level string, debug bool) zerolog.Logger {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		l = zerolog.WarnLevel
	}

	if debug {
		l = zerolog.TraceLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(l).With().Timestamp().Logger()
}
