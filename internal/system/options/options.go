// Released under an MIT license. See LICENSE.

// Package options parses paradoc's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by pd -v.
const Version = "pd 0.1.0"

//nolint:gochecknoglobals
var usage = `pd

Usage:
  pd [-d] [--config=FILE] SCRIPT
  pd [-d] [--config=FILE] -c PROGRAM
  pd [-di] [--config=FILE]
  pd -h
  pd -v

Arguments:
  SCRIPT  Path to a paradoc program.

Options:
  -c, --command=PROGRAM  Run the specified program.
  --config=FILE          Read configuration from FILE.
  -d, --debug            Trace execution to stderr.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print pd version.

If pd's stdin is a TTY and pd was invoked with no program, pd starts an
interactive session. Otherwise, with no program, pd reads one from stdin.
`

// T holds the parsed command line.
type T struct {
	Command     string
	Config      string
	Debug       bool
	Interactive bool
	Script      string
}

// Parse parses the command line arguments in argv, without the program name.
func Parse(argv []string) (*T, error) {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	t := &T{}

	t.Command, _ = opts.String("--command")
	t.Config, _ = opts.String("--config")
	t.Debug, _ = opts.Bool("--debug")
	t.Script, _ = opts.String("SCRIPT")

	interactive := t.Command == "" && t.Script == "" && isatty.IsTerminal(os.Stdin.Fd())

	invert, _ := opts.Bool("--interactive")
	t.Interactive = interactive != invert

	return t, nil
}
