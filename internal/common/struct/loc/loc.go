// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where tokens came from.
// Faults carry one so that errors can point back into the program.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Rune position within the line (column).
	Line int    // Line number (row).
	Name string // Label for the source, usually a file name.
	Text string // The source text of the token at this location.
}

type loc = T

func (l *loc) String() string {
	if l == nil {
		return "?"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
