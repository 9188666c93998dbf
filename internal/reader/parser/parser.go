// Released under an MIT license. See LICENSE.

// Package parser groups paradoc tokens into blocks and assignments.
//
// Paradoc has no grammar to speak of. A program is a flat run of tokens
// and the parser's only job is to find the blocks: braces, and the short
// block glyphs that swallow the next one, two, or three items. A block
// that completes inside a short block counts as a single item, so one
// closing brace can complete several short blocks at once.
package parser

import (
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/reader/lexer"
	"github.com/michaelmacinnis/paradoc/internal/reader/token"
)

// Kind is the type of a parsed item.
type Kind int

// Item kinds.
const (
	Value Kind = iota // A token to execute.
	Block             // A block literal.
	Assign            // An assignment to a name.
	Global            // The global trailers of a program.
)

// Item is a unit of execution.
type Item struct {
	Kind  Kind
	Token *token.T // The token, block opener, assignment glyph, or trailer run.

	Body     []*Item  // Block contents.
	Pop      bool     // Assignment consumes the value it assigns.
	Target   *token.T // Assignment target.
	Trailers string   // Block trailers.
}

// String returns source text that parses back to an equivalent item.
func (i *Item) String() string {
	switch i.Kind {
	case Block:
		var b strings.Builder

		b.WriteString("{")

		for _, c := range i.Body {
			b.WriteString(c.String())
		}

		b.WriteString("}")
		b.WriteString(i.Trailers)

		return b.String()
	case Assign:
		return i.Token.Value() + i.Target.Text()
	}

	return i.Token.Text()
}

// Short block openers and the number of items each takes.
var short = map[string]int{ //nolint:gochecknoglobals
	"β": 1,
	"γ": 2,
	"δ": 3,
}

type frame struct {
	items     []*Item
	opener    *token.T
	remaining int // Items still to come, or -1 for a brace.
}

// T holds the state of the parser.
type T struct {
	assign *token.T         // Pending assignment glyph.
	emit   func(*Item) error // Function to call to emit a top-level item.
	frames []*frame          // Open blocks, innermost last.
	item   func() *token.T   // Function to call to get another token.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of items.
func New(emit func(*Item) error, item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits items until there are no more tokens.
// Blocks still open at the end of input are closed.
func (p *T) Parse() error {
	for t := p.item(); t != nil; t = p.item() {
		if err := p.token(t); err != nil {
			return err
		}
	}

	if p.assign != nil {
		return structural(p.assign, "assignment without a name")
	}

	for n := len(p.frames); n > 0; n = len(p.frames) {
		f := p.frames[n-1]
		p.frames = p.frames[:n-1]

		if err := p.complete(f.block("")); err != nil {
			return err
		}
	}

	return nil
}

func (p *T) token(t *token.T) error {
	if a := p.assign; a != nil {
		p.assign = nil

		if !t.Is(token.Symbol) {
			return structural(t, "expected a name after "+a.Value())
		}

		return p.complete(&Item{
			Kind:   Assign,
			Pop:    a.Value() == string(lexer.Minus),
			Target: t,
			Token:  a,
		})
	}

	switch t.Class() {
	case token.Comment:
		return nil
	case token.Error:
		f := fault.New(fault.Lex, "%s", t.Value())
		f.Locate(t.Source(), t.Text(), nil)

		return f
	case token.Trailers:
		return p.emit(&Item{Kind: Global, Token: t})
	case token.Symbol:
		return p.symbol(t)
	}

	return p.complete(&Item{Kind: Value, Token: t})
}

func (p *T) symbol(t *token.T) error {
	v := t.Value()

	switch v {
	case "{":
		p.frames = append(p.frames, &frame{opener: t, remaining: -1})

		return nil

	case "}":
		n := len(p.frames)
		if n == 0 {
			return structural(t, "unmatched }")
		}

		f := p.frames[n-1]
		if f.remaining >= 0 {
			return structural(t, "} closes a short block opened by "+f.opener.Value())
		}

		p.frames = p.frames[:n-1]

		return p.complete(f.block(t.Trailers()))

	case ".", string(lexer.Minus):
		if t.Trailers() != "" {
			return structural(t, "trailers on an assignment")
		}

		p.assign = t

		return nil
	}

	if n, ok := short[v]; ok {
		p.frames = append(p.frames, &frame{opener: t, remaining: n})

		return nil
	}

	return p.complete(&Item{Kind: Value, Token: t})
}

// The complete method adds i to the innermost open block, closing short
// blocks that it fills. With no open block, i is emitted.
func (p *T) complete(i *Item) error {
	for {
		n := len(p.frames)
		if n == 0 {
			return p.emit(i)
		}

		f := p.frames[n-1]
		f.items = append(f.items, i)

		if f.remaining < 0 {
			return nil
		}

		f.remaining--
		if f.remaining > 0 {
			return nil
		}

		p.frames = p.frames[:n-1]
		i = f.block("")
	}
}

func (f *frame) block(closer string) *Item {
	return &Item{
		Kind:     Block,
		Body:     f.items,
		Token:    f.opener,
		Trailers: f.opener.Trailers() + closer,
	}
}

func structural(t *token.T, msg string) error {
	f := fault.New(fault.Structural, "%s", msg)
	f.Locate(t.Source(), t.Text(), nil)

	return f
}
