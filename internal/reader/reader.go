// Released under an MIT license. See LICENSE.

// Package reader encapsulates the paradoc lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/paradoc/internal/reader/lexer"
	"github.com/michaelmacinnis/paradoc/internal/reader/parser"
)

// T (reader) collects the items produced by structuring a source.
type T struct {
	items []*parser.Item
	l     *lexer.T
	p     *parser.T
}

type reader = T

// New creates a new reader for label.
func New(label string) *T {
	r := &T{l: lexer.New(label)}

	r.p = parser.New(func(i *parser.Item) error {
		r.items = append(r.items, i)
		return nil
	}, r.l.Token)

	return r
}

// Read lexes and structures source, returning the top-level items.
// A reader is good for one source.
func (r *reader) Read(source string) ([]*parser.Item, error) {
	r.l.Scan(source)

	if err := r.p.Parse(); err != nil {
		return nil, err
	}

	return r.items, nil
}

// Read is shorthand for New(label).Read(source).
func Read(label, source string) ([]*parser.Item, error) {
	return New(label).Read(source)
}
