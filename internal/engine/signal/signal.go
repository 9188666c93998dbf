// Released under an MIT license. See LICENSE.

// Package signal provides paradoc's non-local control flow.
//
// Signals travel up through error returns but they are not errors:
// Break unwinds to the nearest loop, Continue to the nearest iteration,
// and Exit all the way out of the program.
package signal

import (
	"errors"
	"strconv"
)

// Break unwinds to the nearest enclosing loop combinator.
var Break = errors.New("break outside of a loop")

// Continue unwinds to the nearest enclosing iteration.
var Continue = errors.New("continue outside of a loop")

// Exit unwinds all the way out of the program, carrying an exit code.
type Exit struct {
	Code int
}

// Error returns a description of the exit signal e.
func (e *Exit) Error() string {
	return "exit " + strconv.Itoa(e.Code)
}

// Is returns true if err is, or wraps, one of the three control signals.
func Is(err error) bool {
	if err == nil {
		return false
	}

	var e *Exit

	return errors.Is(err, Break) || errors.Is(err, Continue) || errors.As(err, &e)
}

// IsExit returns the exit code if err is, or wraps, an Exit signal.
func IsExit(err error) (int, bool) {
	var e *Exit
	if errors.As(err, &e) {
		return e.Code, true
	}

	return 0, false
}
