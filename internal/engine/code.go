// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/reader/parser"
)

// Code is a block written in paradoc.
type Code struct {
	items  []*parser.Item
	source string
}

func compile(i *parser.Item) *Code {
	var b strings.Builder

	b.WriteString("{")

	for _, c := range i.Body {
		b.WriteString(c.String())
	}

	b.WriteString("}")

	return &Code{items: i.Body, source: b.String()}
}

// Call runs the block c against e.
func (c *Code) Call(e *env.T) error {
	return Execute(e, c.items)
}

// Equal returns true only if v is the block c.
func (c *Code) Equal(v value.I) bool {
	return v == value.I(c)
}

// Literal returns the source of the block c.
func (c *Code) Literal() string {
	return c.source
}

// Name returns the name of the block type.
func (c *Code) Name() string {
	return "block"
}

// String returns the source of the block c.
func (c *Code) String() string {
	return c.source
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var c Code

	_ = env.Block(&c)
}
