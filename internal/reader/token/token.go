// Released under an MIT license. See LICENSE.

// Package token is shared by the paradoc lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/paradoc/internal/common/struct/loc"
)

// Class is a token's type.
type Class int

// T (token) is a lexical item returned by the scanner: a head (a glyph or
// a literal) followed by a possibly empty run of trailer letters.
type T struct {
	class    Class
	source   *loc.T
	trailers string
	value    string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Char
	Comment
	Number
	String
	Symbol
	Trailers
)

// New creates a new token.
func New(class Class, value, trailers string, source *loc.T) *token {
	return &token{
		class:    class,
		source:   source,
		trailers: trailers,
		value:    value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Char:
		return "Char"
	case Comment:
		return "Comment"
	case Number:
		return "Number"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case Trailers:
		return "Trailers"
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Class returns the class of the token t.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Name returns the head and trailers of t as a single identifier.
func (t *token) Name() string {
	return t.value + t.trailers
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		strconv.Quote(t.trailers) + "," +
		t.source.String() + ")"
}

// Text returns the token exactly as it appeared in the source.
func (t *token) Text() string {
	if t.source == nil {
		return t.Name()
	}

	return t.source.Text
}

// Trailers returns the trailer run that followed the token's head.
func (t *token) Trailers() string {
	return t.trailers
}

// Value returns the token's head: the glyph, the decoded string or char
// literal, the text of a number, or the message for an error.
func (t *token) Value() string {
	return t.value
}
