// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the paradoc language.
//
// The paradoc lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Every token is a head followed by a run of trailers. A head is a
// string literal, a char literal, a number, or any single other
// character, including whitespace and control characters. Trailers are
// lowercase ASCII letters and underscores. A trailer run at the very
// start of a program has no head; it is emitted as a Trailers token.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/paradoc/internal/common/struct/loc"
	"github.com/michaelmacinnis/paradoc/internal/reader/token"
)

// Minus is the glyph that introduces a negative numeric literal.
const Minus = '—'

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	class token.Class // Class of the pending token.
	head  string      // Head of the pending token.

	source loc.T // Current location.
	start  loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		runes: 1,
	}

	l.start = l.source
	l.state = scanGlobal

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()

		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
			if l.state == nil {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v, trailers string) {
	source := l.start
	source.Text = l.Text()

	l.tokens <- token.New(c, v, trailers, &source)
	l.skip()
}

func (l *T) fail(msg string) action {
	l.emit(token.Error, msg, "")
	return nil
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	leftover := ""
	if l.first < len(l.bytes) {
		leftover = l.bytes[l.first:]
	}

	l.bytes = leftover + strings.Join(l.queue, "")
	l.queue = nil
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)

	if l.state == nil {
		l.state = scanToken
	}
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	return l.peekAt(l.index)
}

func (l *T) peekAt(i int) (rune, int) {
	r, w := rune(eof), 0
	if i < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[i:])
	}

	return r, w
}

// second returns the rune after the next one.
func (l *T) second() rune {
	_, w := l.peek()
	r, _ := l.peekAt(l.index + w)

	return r
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
	l.start = l.source
}

// T states.

func scanGlobal(l *T) action {
	if strings.HasPrefix(l.bytes[l.index:], "#!") {
		return scanComment
	}

	if r, _ := l.peek(); !isTrailer(r) {
		return scanToken
	}

	for r, w := l.peek(); isTrailer(r); r, w = l.peek() {
		l.accept(r, w)
	}

	l.emit(token.Trailers, "", l.Text())

	return scanToken
}

func scanToken(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case r == '.' && l.second() == '.':
		return scanComment
	case r == '"':
		l.accept(r, w)
		return scanString
	case r == '\'':
		l.accept(r, w)
		return scanChar
	case isDigit(r), r == Minus && isDigit(l.second()):
		return scanNumber
	}

	l.accept(r, w)

	l.class = token.Symbol
	l.head = l.Text()

	return scanTrailers
}

func scanChar(l *T) action {
	r, w := l.peek()
	if r == eof {
		return l.fail("unterminated char literal")
	}

	l.accept(r, w)

	l.class = token.Char
	l.head = string(r)

	return scanTrailers
}

func scanComment(l *T) action {
	for r, w := l.peek(); r != eof && r != '\n'; r, w = l.peek() {
		l.accept(r, w)
	}

	l.emit(token.Comment, l.Text(), "")

	return scanToken
}

func scanNumber(l *T) action {
	if r, w := l.peek(); r == Minus {
		l.accept(r, w)
	}

	digits(l)

	if r, w := l.peek(); r == '.' && isDigit(l.second()) {
		l.accept(r, w)
		digits(l)
	}

	if r, w := l.peek(); r == 'e' {
		s := l.second()

		if s == Minus {
			_, mw := l.peekAt(l.index + w)
			if n, _ := l.peekAt(l.index + w + mw); !isDigit(n) {
				l.accept(r, w)
				l.next()

				return l.fail("malformed exponent in " + l.Text())
			}

			l.accept(r, w)
			l.next()
			digits(l)
		} else if isDigit(s) {
			l.accept(r, w)
			digits(l)
		}
	}

	l.class = token.Number
	l.head = l.Text()

	return scanTrailers
}

func scanString(l *T) action {
	var b strings.Builder

	for {
		r := l.next()

		switch r {
		case eof:
			return l.fail("unterminated string literal")
		case '"':
			l.class = token.String
			l.head = b.String()

			return scanTrailers
		case '\\':
			if n, w := l.peek(); n == '"' || n == '\\' {
				l.accept(n, w)
				r = n
			}
		}

		b.WriteRune(r)
	}
}

func scanTrailers(l *T) action {
	mark := l.index

	for r, w := l.peek(); isTrailer(r); r, w = l.peek() {
		l.accept(r, w)
	}

	l.emit(l.class, l.head, l.bytes[mark:l.index])

	return scanToken
}

func digits(l *T) {
	for r, w := l.peek(); isDigit(r); r, w = l.peek() {
		l.accept(r, w)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isTrailer(r rune) bool {
	return ('a' <= r && r <= 'z') || r == '_'
}
