// Released under an MIT license. See LICENSE.

// Package fault provides paradoc's error taxonomy.
//
// A fault aborts the program. The engine attaches the offending token
// and a snapshot of the machine to the first fault that passes through
// it, so the report points at the innermost token that failed.
package fault

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/struct/loc"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Lex Kind = iota + 1
	Structural
	UnboundName
	NoMatchingCase
	UnknownTrailer
	EmptyStack
	TypeMismatch
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Lex:
		return "LexError"
	case Structural:
		return "StructuralError"
	case UnboundName:
		return "UnboundName"
	case NoMatchingCase:
		return "NoMatchingCase"
	case UnknownTrailer:
		return "UnknownTrailer"
	case EmptyStack:
		return "EmptyStack"
	case TypeMismatch:
		return "TypeMismatch"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Snapshot is the state of the machine at the point of failure.
type Snapshot struct {
	Marks  []int
	Stack  []value.I
	XStack []value.I
}

// T (fault) is a paradoc error.
type T struct {
	Kind    Kind
	Message string

	Args     []value.I // Arguments collected by a failed dispatch.
	Snapshot *Snapshot
	Source   *loc.T
	Token    string
}

type fault = T

// New creates a new fault of kind k.
func New(k Kind, format string, a ...interface{}) *T {
	return &fault{Kind: k, Message: fmt.Sprintf(format, a...)}
}

// Error returns a one line description of the fault f.
func (f *fault) Error() string {
	s := f.Kind.String() + ": " + f.Message

	if len(f.Args) > 0 {
		s += " [" + strings.Join(value.Literals(f.Args), " ") + "]"
	}

	if f.Token != "" {
		s += " at " + adapted.CanonicalString(f.Token)
		if f.Source != nil {
			s += " (" + f.Source.String() + ")"
		}
	}

	return s
}

// Locate records where f happened. Only the first call has an effect.
func (f *fault) Locate(source *loc.T, token string, s *Snapshot) {
	if f.Token != "" || f.Snapshot != nil {
		return
	}

	f.Source = source
	f.Token = token
	f.Snapshot = s
}

// Report returns a multi-line description of f including the snapshot.
func (f *fault) Report() string {
	var b strings.Builder

	b.WriteString(f.Error())
	b.WriteByte('\n')

	if s := f.Snapshot; s != nil {
		b.WriteString("  stack:   [" + strings.Join(value.Literals(s.Stack), " ") + "]\n")
		b.WriteString("  x-stack: [" + strings.Join(value.Literals(s.XStack), " ") + "]\n")

		marks := make([]string, len(s.Marks))
		for i, m := range s.Marks {
			marks[i] = strconv.Itoa(m)
		}

		b.WriteString("  marks:   [" + strings.Join(marks, " ") + "]\n")
	}

	return b.String()
}

// As returns the fault wrapped by err, if there is one.
func As(err error) (*T, bool) {
	var f *T
	if errors.As(err, &f) {
		return f, true
	}

	return nil, false
}

// Is returns true if err is, or wraps, a fault of kind k.
func Is(err error, k Kind) bool {
	f, ok := As(err)
	return ok && f.Kind == k
}

// Wrap converts a plain error raised by an operation into a TypeMismatch
// fault. Faults and control signals pass through unchanged.
func Wrap(err error) error {
	if err == nil || signal.Is(err) {
		return err
	}

	if _, ok := As(err); ok {
		return err
	}

	return &fault{Kind: TypeMismatch, Message: err.Error()}
}
