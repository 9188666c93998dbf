package text

import (
	"testing"

	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
)

func TestLiteral(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{`abc`, `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", "\"a\nb\""},
	} {
		if got := New(tc.in).Literal(); got != tc.out {
			t.Fatalf("Literal(%q): expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestAt(t *testing.T) {
	s := New("héllo")

	if s.Len() != 5 {
		t.Fatalf("expected 5 code points, got %d", s.Len())
	}

	if !s.At(1).Equal(num.Char('é')) {
		t.Fatalf("got %s", s.At(1).Literal())
	}
}
