// Released under an MIT license. See LICENSE.

// Package env provides paradoc's execution environment: the main stack,
// the mark stack, the x-stack of loop variables, and variable bindings.
//
// Shadow environments (see shadow.go) are environments too. They share
// bindings and the x-stack with their parent and keep their own stack
// and marks. When a shadow runs dry it pulls from its parent through the
// same upstream hook the root uses for input, so a shadow is just an
// environment with a different source of last resort.
package env

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
)

// DefaultEpsilon is the tolerance used by approximate comparisons.
const DefaultEpsilon = 1e-9

// Block is callable code. Calling a block runs it against e.
type Block interface {
	value.I

	Call(e *T) error
}

// Resolver derives a value from the spelling of a name. Resolvers let
// families of names exist without binding each one up front.
type Resolver func(name string) (value.I, bool)

// Trigger produces the next input value, or false when input is exhausted.
type Trigger func() (value.I, bool)

// Upstream is where an environment goes when a pop finds its stack empty.
type Upstream interface {
	Pull() (value.I, error)
}

// The scope type is the state shared by an environment and its shadows.
type scope struct {
	bindings  map[string]value.I
	resolvers []Resolver
	xstack    []value.I

	epsilon float64
	field   string
	record  string

	log zerolog.Logger
	out io.Writer
}

// T (env) is an execution context.
type T struct {
	*scope

	borrowed int
	marks    []int
	stack    []value.I
	upstream Upstream
}

type env = T

// New creates a root environment with no input.
func New() *T {
	return &env{
		scope: &scope{
			bindings: map[string]value.I{},
			xstack: []value.I{
				array.New(),
				text.New(""),
				num.NewInt(0),
			},
			epsilon: DefaultEpsilon,
			record:  "\n",
			log:     zerolog.Nop(),
			out:     os.Stdout,
		},
		upstream: &input{},
	}
}

// Push pushes vs, in order, onto the stack.
func (e *env) Push(vs ...value.I) {
	e.stack = append(e.stack, vs...)
}

// Pop removes and returns the top of the stack. If the stack is empty
// the value comes from upstream: input for the root, the parent for a
// shadow. Pop fails with an EmptyStack fault when upstream is exhausted.
func (e *env) Pop() (value.I, error) {
	n := len(e.stack)
	if n == 0 {
		return e.upstream.Pull()
	}

	v := e.stack[n-1]
	e.stack[n-1] = nil
	e.stack = e.stack[:n-1]

	e.shrink()

	return v, nil
}

// PopN pops n values and returns them in stack order, deepest first.
func (e *env) PopN(n int) ([]value.I, error) {
	vs := make([]value.I, n)

	for i := n - 1; i >= 0; i-- {
		v, err := e.Pop()
		if err != nil {
			return nil, err
		}

		vs[i] = v
	}

	return vs, nil
}

// Peek returns the top of the stack without removing it.
func (e *env) Peek() (value.I, error) {
	return e.Index(0)
}

// Index returns the value i places below the top of the stack. Values
// pulled from upstream to satisfy the request are placed at the bottom,
// as if they had always been there.
func (e *env) Index(i int) (value.I, error) {
	for len(e.stack) <= i {
		v, err := e.upstream.Pull()
		if err != nil {
			return nil, err
		}

		e.stack = append([]value.I{v}, e.stack...)
		e.borrowed++

		for j := range e.marks {
			e.marks[j]++
		}
	}

	return e.stack[len(e.stack)-1-i], nil
}

// Borrowed returns how many of the values Index placed at the bottom of
// the stack are still there.
func (e *env) Borrowed() int {
	return e.borrowed
}

// Len returns the depth of the stack.
func (e *env) Len() int {
	return len(e.stack)
}

// Stack returns a copy of the stack, bottom first.
func (e *env) Stack() []value.I {
	vs := make([]value.I, len(e.stack))
	copy(vs, e.stack)

	return vs
}

// Mark records the current depth of the stack.
func (e *env) Mark() {
	e.marks = append(e.marks, len(e.stack))
}

// Marks returns a copy of the mark stack.
func (e *env) Marks() []int {
	ms := make([]int, len(e.marks))
	copy(ms, e.marks)

	return ms
}

// PopUntilMark removes the most recent mark and returns everything pushed
// since it was made, in push order. With no marks it takes the whole stack.
func (e *env) PopUntilMark() []value.I {
	m := 0

	if n := len(e.marks); n > 0 {
		m = e.marks[n-1]
		e.marks = e.marks[:n-1]
	}

	vs := make([]value.I, len(e.stack)-m)
	copy(vs, e.stack[m:])

	e.stack = e.stack[:m]
	e.shrink()

	return vs
}

// Get returns the value bound to name. Names not bound directly are
// offered to each resolver in turn; the first answer is remembered.
func (e *env) Get(name string) (value.I, bool) {
	if v, ok := e.bindings[name]; ok {
		return v, true
	}

	for _, r := range e.resolvers {
		if v, ok := r(name); ok {
			e.bindings[name] = v
			return v, true
		}
	}

	return nil, false
}

// Put binds name to v, replacing any existing binding.
func (e *env) Put(name string, v value.I) {
	e.bindings[name] = v
}

// Define binds v to name and each of its aliases. Defining a name that
// is already bound is a configuration error; use Redefine to replace it.
func (e *env) Define(name string, aliases []string, v value.I) error {
	for _, n := range append([]string{name}, aliases...) {
		if _, ok := e.bindings[n]; ok {
			return fmt.Errorf("%q is already defined", n)
		}
	}

	e.Redefine(name, aliases, v)

	return nil
}

// Redefine binds v to name and each of its aliases unconditionally.
func (e *env) Redefine(name string, aliases []string, v value.I) {
	e.bindings[name] = v

	for _, a := range aliases {
		e.bindings[a] = v
	}
}

// Names returns the directly bound names in sorted order.
func (e *env) Names() []string {
	ns := make([]string, 0, len(e.bindings))
	for n := range e.bindings {
		ns = append(ns, n)
	}

	sort.Strings(ns)

	return ns
}

// Resolve appends r to the chain of resolvers.
func (e *env) Resolve(r Resolver) {
	e.resolvers = append(e.resolvers, r)
}

// IndexX returns the x-stack entry i places below the top.
func (e *env) IndexX(i int) (value.I, error) {
	n := len(e.xstack)
	if i < 0 || i >= n {
		return nil, fault.New(fault.TypeMismatch, "x-stack index %d out of range", i)
	}

	return e.xstack[n-1-i], nil
}

// SetX replaces the x-stack entry i places below the top.
func (e *env) SetX(i int, v value.I) error {
	n := len(e.xstack)
	if i < 0 || i >= n {
		return fault.New(fault.TypeMismatch, "x-stack index %d out of range", i)
	}

	e.xstack[n-1-i] = v

	return nil
}

// PushX pushes vs, in order, onto the x-stack.
func (e *env) PushX(vs ...value.I) {
	e.xstack = append(e.xstack, vs...)
}

// PopX removes the top n entries of the x-stack.
func (e *env) PopX(n int) {
	m := len(e.xstack) - n
	for i := m; i < len(e.xstack); i++ {
		e.xstack[i] = nil
	}

	e.xstack = e.xstack[:m]
}

// XStack returns a copy of the x-stack, bottom first.
func (e *env) XStack() []value.I {
	vs := make([]value.I, len(e.xstack))
	copy(vs, e.xstack)

	return vs
}

// Snapshot captures the stacks and marks for a fault report.
func (e *env) Snapshot() *fault.Snapshot {
	return &fault.Snapshot{
		Marks:  e.Marks(),
		Stack:  e.Stack(),
		XStack: e.XStack(),
	}
}

// Epsilon returns the tolerance for approximate comparisons.
func (e *env) Epsilon() float64 {
	return e.epsilon
}

// SetEpsilon sets the tolerance for approximate comparisons.
func (e *env) SetEpsilon(f float64) {
	e.epsilon = f
}

// Separators returns the field and record separators used for output.
func (e *env) Separators() (field, record string) {
	return e.field, e.record
}

// SetSeparators sets the field and record separators used for output.
func (e *env) SetSeparators(field, record string) {
	e.field = field
	e.record = record
}

// Log returns the logger shared by e and its shadows.
func (e *env) Log() *zerolog.Logger {
	return &e.log
}

// SetLogger replaces the logger shared by e and its shadows.
func (e *env) SetLogger(l zerolog.Logger) {
	e.log = l
}

// Output returns the writer that builtins print to.
func (e *env) Output() io.Writer {
	return e.out
}

// SetOutput sets the writer that builtins print to.
func (e *env) SetOutput(w io.Writer) {
	e.out = w
}

// SetTrigger installs t as the input-fallback hook. Only meaningful for
// a root environment; a shadow always falls back to its parent.
func (e *env) SetTrigger(t Trigger) {
	e.upstream = &input{trigger: t}
}

func (e *env) shrink() {
	n := len(e.stack)
	if e.borrowed > n {
		e.borrowed = n
	}

	for i, m := range e.marks {
		if m > n {
			e.marks[i] = n
		}
	}
}

// The input type is the upstream of a root environment.
type input struct {
	trigger Trigger
}

func (i *input) Pull() (value.I, error) {
	if i.trigger != nil {
		if v, ok := i.trigger(); ok {
			return v, nil
		}
	}

	return nil, fault.New(fault.EmptyStack, "pop from an empty stack")
}
