// Released under an MIT license. See LICENSE.

// Package block provides paradoc's callable values.
package block

import (
	"fmt"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
)

const name = "block"

// Primitive is a block implemented in Go.
type Primitive struct {
	fn    func(e *env.T) error
	label string
}

// New creates a primitive block. The label is used when printing it.
func New(label string, fn func(e *env.T) error) *Primitive {
	return &Primitive{fn: fn, label: label}
}

// Call runs the primitive p against e.
func (p *Primitive) Call(e *env.T) error {
	return p.fn(e)
}

// Equal returns true only if v is the primitive p.
func (p *Primitive) Equal(v value.I) bool {
	return v == value.I(p)
}

// Literal returns the label of the primitive p.
func (p *Primitive) Literal() string {
	return p.label
}

// Name returns the name of the block type.
func (p *Primitive) Name() string {
	return name
}

// String returns the label of the primitive p.
func (p *Primitive) String() string {
	return p.label
}

// Constant is the block produced by a reluctant trailer. Calling it
// pushes its value.
type Constant struct {
	v value.I
}

// Const creates a block that pushes v.
func Const(v value.I) *Constant {
	return &Constant{v: v}
}

// Call pushes the value of c.
func (c *Constant) Call(e *env.T) error {
	e.Push(c.v)

	return nil
}

// Equal returns true if v is a constant block holding an equal value.
func (c *Constant) Equal(v value.I) bool {
	o, ok := v.(*Constant)
	return ok && c.v.Equal(o.v)
}

// Literal returns a literal that rebuilds c.
func (c *Constant) Literal() string {
	return c.v.Literal() + "b"
}

// Name returns the name of the block type.
func (c *Constant) Name() string {
	return name
}

// String returns a literal that rebuilds c.
func (c *Constant) String() string {
	return c.Literal()
}

// Value returns the value c pushes.
func (c *Constant) Value() value.I {
	return c.v
}

// Composed runs one block and then another against the same environment.
type Composed struct {
	first, second env.Block
}

// Compose creates a block that calls first and then second.
func Compose(first, second env.Block) *Composed {
	return &Composed{first: first, second: second}
}

// Call runs both halves of c.
func (c *Composed) Call(e *env.T) error {
	if err := c.first.Call(e); err != nil {
		return err
	}

	return c.second.Call(e)
}

// Equal returns true only if v is the composition c.
func (c *Composed) Equal(v value.I) bool {
	return v == value.I(c)
}

// Literal returns the literal of both halves of c.
func (c *Composed) Literal() string {
	return c.first.Literal() + c.second.Literal() + "o"
}

// Name returns the name of the block type.
func (c *Composed) Name() string {
	return name
}

// String returns the literal of both halves of c.
func (c *Composed) String() string {
	return c.Literal()
}

// Is returns true if v is callable.
func Is(v value.I) bool {
	_, ok := v.(env.Block)
	return ok
}

// To returns v as a block. It panics if v is not callable.
func To(v value.I) env.Block {
	if b, ok := v.(env.Block); ok {
		return b
	}

	panic(fmt.Sprintf("%s is not a block", v.Name()))
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		c Constant
		m Memoized
		o Composed
		p Primitive
		x Cased
	)

	_ = env.Block(&c)
	_ = env.Block(&m)
	_ = env.Block(&o)
	_ = env.Block(&p)
	_ = env.Block(&x)
}
