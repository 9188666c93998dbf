package lexer

import (
	"testing"

	"github.com/michaelmacinnis/paradoc/internal/reader/token"
)

func TestArithmetic(t *testing.T) {
	h := setup(t, "Arithmetic")

	h.scan("2 3+7*",
		h.number("2", ""),
		h.symbol(" ", ""),
		h.number("3", ""),
		h.symbol("+", ""),
		h.number("7", ""),
		h.symbol("*", ""),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("1..one\n2",
		h.number("1", ""),
		h.other(token.Comment, "..one", ""),
		h.symbol("\n", ""),
		h.number("2", ""),
		nil,
	)
}

func TestGlobalTrailers(t *testing.T) {
	h := setup(t, "GlobalTrailers")

	h.scan("ls3",
		h.other(token.Trailers, "", "ls"),
		h.number("3", ""),
		nil,
	)
}

func TestLiterals(t *testing.T) {
	h := setup(t, "Literals")

	h.scan(`"a\"b\\c\n"u'xy`,
		h.other(token.String, `a"b\c\n`, "u"),
		h.other(token.Char, "x", "y"),
		nil,
	)
}

func TestNumbers(t *testing.T) {
	h := setup(t, "Numbers")

	h.scan("—12 1.5e3 4e—2 7.x 3em",
		h.number("—12", ""),
		h.symbol(" ", ""),
		h.number("1.5e3", ""),
		h.symbol(" ", ""),
		h.number("4e—2", ""),
		h.symbol(" ", ""),
		h.number("7", ""),
		h.symbol(".", "x"),
		h.symbol(" ", ""),
		h.number("3", "em"),
		nil,
	)
}

func TestMalformedExponent(t *testing.T) {
	h := setup(t, "MalformedExponent")

	h.scan("1 2e—x",
		h.number("1", ""),
		h.symbol(" ", ""),
		h.other(token.Error, "malformed exponent in 2e—", ""),
		nil,
	)
}

func TestShebang(t *testing.T) {
	h := setup(t, "Shebang")

	h.scan("#!/usr/bin/env pd\nX",
		h.other(token.Comment, "#!/usr/bin/env pd", ""),
		h.symbol("\n", ""),
		h.symbol("X", ""),
		nil,
	)
}

func TestTrailersAttach(t *testing.T) {
	h := setup(t, "TrailersAttach")

	h.scan("{2*}m +_map Abc\tb",
		h.symbol("{", ""),
		h.number("2", ""),
		h.symbol("*", ""),
		h.symbol("}", "m"),
		h.symbol(" ", ""),
		h.symbol("+", "_map"),
		h.symbol(" ", ""),
		h.symbol("A", "bc"),
		h.symbol("\t", "b"),
		nil,
	)
}

func TestUnterminated(t *testing.T) {
	for _, s := range []string{`"abc`, `'`} {
		h := setup(t, "Unterminated")

		a := h.lexer.Token()
		if a != nil {
			t.Fatalf("expected no tokens before scanning, got %v", a)
		}

		h.lexer.Scan(s)

		a = h.lexer.Token()
		if !a.Is(token.Error) {
			t.Fatalf("%s: expected an error token, got %v", s, a)
		}

		if a = h.lexer.Token(); a != nil {
			t.Fatalf("%s: expected no tokens after an error, got %v", s, a)
		}
	}
}

func TestIncremental(t *testing.T) {
	h := setup(t, "Incremental")

	h.scan("1",
		h.number("1", ""),
		nil,
	)

	h.scan("a 2",
		h.symbol("a", ""),
		h.symbol(" ", ""),
		h.number("2", ""),
		nil,
	)
}

type expected struct {
	class    token.Class
	value    string
	trailers string
}

type harness struct {
	lexer *T
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		t:     t,
	}
}

func (h *harness) expect(tokens ...*expected) {
	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", *e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Class() != e.class || a.Value() != e.value || a.Trailers() != e.trailers:
			h.t.Fatalf("Expected %v; got %v", *e, a)
		}
	}
}

func (h *harness) number(v, trailers string) *expected {
	return h.other(token.Number, v, trailers)
}

func (h *harness) other(c token.Class, v, trailers string) *expected {
	return &expected{class: c, value: v, trailers: trailers}
}

func (h *harness) scan(s string, tokens ...*expected) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) symbol(v, trailers string) *expected {
	return h.other(token.Symbol, v, trailers)
}
