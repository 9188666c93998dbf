package fault

import (
	"fmt"
	"strings"
	"testing"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/struct/loc"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
)

func TestIs(t *testing.T) {
	err := fmt.Errorf("while running: %w", New(EmptyStack, "pop from an empty stack"))

	if !Is(err, EmptyStack) {
		t.Fatal("expected an EmptyStack fault")
	}

	if Is(err, Lex) {
		t.Fatal("not a LexError")
	}
}

func TestLocateOnce(t *testing.T) {
	f := New(UnboundName, "%s is not bound", "Q")

	inner := &loc.T{Name: "test", Line: 1, Char: 3}
	f.Locate(inner, "Q", &Snapshot{Stack: []value.I{num.NewInt(1)}})
	f.Locate(&loc.T{Name: "test", Line: 1, Char: 1}, "{", nil)

	if f.Source != inner || f.Token != "Q" {
		t.Fatalf("expected the innermost location to win, got %v %q", f.Source, f.Token)
	}

	if !strings.Contains(f.Report(), "stack:   [1]") {
		t.Fatalf("report is missing the stack: %s", f.Report())
	}
}

func TestErrorQuotesToken(t *testing.T) {
	f := New(UnboundName, "no binding")
	f.Locate(nil, "\n", nil)

	if !strings.Contains(f.Error(), `$'\n'`) {
		t.Fatalf("expected a visible newline, got %s", f.Error())
	}
}

func TestWrap(t *testing.T) {
	if !Is(Wrap(fmt.Errorf("division by zero")), TypeMismatch) {
		t.Fatal("plain errors should become TypeMismatch faults")
	}

	f := New(Lex, "bad")
	if Wrap(f) != error(f) {
		t.Fatal("faults should pass through Wrap unchanged")
	}
}

func TestWrapKeepsSignals(t *testing.T) {
	if Wrap(signal.Break) != signal.Break {
		t.Fatal("signals must never become faults")
	}
}
