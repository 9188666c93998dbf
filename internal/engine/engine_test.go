// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/engine/commands"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
	"github.com/michaelmacinnis/paradoc/internal/engine/signal"
)

func setup(t *testing.T, input string) *T {
	t.Helper()

	e := env.New()
	if err := commands.Register(e); err != nil {
		t.Fatal(err)
	}

	return New(e, strings.NewReader(input), None)
}

func stack(en *T) string {
	return strings.Join(value.Literals(en.Env().Stack()), " ")
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		program string
		want    string
	}{
		{"2 3+7*", "35"},
		{"[3 7 2 5]1>", "[7 2 5]"},
		{"[1 3 7 5 0 9 2]{5<}+", "[1 3 0 2]"},
		{"10,{3%0=}+", "[0 3 6 9]"},
		{"7(", "6"},
		{"Nbaaaaaaa,L", "10000000"},
		{"Nbaaaaaaa{X Y2={Break}&}x", "0 1 2"},
		{"5{.A}k", "5"},
		{"3{{)}k}k", "3 4"},
		{"3{)}k", "3 4"},
		{"3{:}k", "3 3"},
		{"7)", "8"},
		{"0{)X2={Break}&}l", "3"},
		{"[1 2 3]{:*}m", "[1 4 9]"},
		{"[1 2 3]{:*}_map", "[1 4 9]"},
		{"4{)}m", "[1 2 3 4]"},
		{"[4 5]{)}m", "[5 6]"},
		{"3 4{+}k", "3 4 7"},
		{"[1 2 3 4]{+}r", "10"},
		{"\"abc\"{)}m", "\"bcd\""},
		{"\"abc\"r", "\"cba\""},
		{"7.A;A A*", "49"},
		{"7—A A", "7"},
		{"Nbc", "12"},
		{"Ua Lb", "'A 'b"},
		{"3b", "3b"},
		{"3h", "300"},
		{"—3 2%", "1"},
		{"1 2 3]", "[1 2 3]"},
		{"1[2 3]", "1 [2 3]"},
		{"1 2\\", "2 1"},
		{"1 2 3?", "2"},
		{"0 2 3?", "3"},
		{"[1 2]βm)", "[2 3]"},
		{"3{1+}c3{1+}c", "4 4"},
		{"3{Continue}m", "[]"},
		{"5{;Break}e", ""},
		{"[1 2][10 20]{+}z", "[11 22]"},
		{"10{2÷}i", "[10 5 2 1 0 0]"},
		{"\"ab\"L", "2"},
		{"5,Σ", "10"},
		{"0.1 0.2+0.3≈", "1"},
		{"0.1 0.2+0.3=", "0"},
	}

	for _, tt := range tests {
		en := setup(t, "")

		if err := en.Run("test", tt.program); err != nil {
			t.Fatalf("%q: %v", tt.program, err)
		}

		if got := stack(en); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.program, got, tt.want)
		}
	}
}

func TestFaults(t *testing.T) {
	tests := []struct {
		program string
		kind    fault.Kind
	}{
		{"+", fault.EmptyStack},
		{"Qq", fault.UnboundName},
		{"\"a\"2=", fault.TypeMismatch},
		{"\"a\"q", fault.UnknownTrailer},
		{"{1}{2}+", fault.NoMatchingCase},
		{"β}", fault.Structural},
		{"1e—", fault.Lex},
		{"qx1", fault.UnknownTrailer},
	}

	for _, tt := range tests {
		en := setup(t, "")

		err := en.Run("test", tt.program)
		if !fault.Is(err, tt.kind) {
			t.Errorf("%q: expected %v, got %v", tt.program, tt.kind, err)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		program string
		want    string
	}{
		// An underscore cuts the run before single letters are dropped.
		{"5.Ab;[1 2]Ab_m", "[1 2] —5"},
		// The longest bound name wins.
		{"5—Ab 7—Abc Abc", "7"},
		{"5—Ab 7—Abc Abcd", "14"},
		{"5—Ab 7—Abc Abd", "10"},
		{"5—Ab 7—Abc Ab_d", "10"},
	}

	for _, tt := range tests {
		en := setup(t, "")

		if err := en.Run("test", tt.program); err != nil {
			t.Errorf("%q: unexpected error: %v", tt.program, err)
			continue
		}

		if got := stack(en); got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.program, tt.want, got)
		}
	}

	en := setup(t, "")

	err := en.Run("test", "Bre_ak")
	if !fault.Is(err, fault.UnboundName) {
		t.Fatalf("expected an unbound name, got %v", err)
	}
}

func TestFaultLocation(t *testing.T) {
	en := setup(t, "")

	err := en.Run("test", "1 2{\"x\"+}e")

	f, ok := fault.As(err)
	if !ok {
		t.Fatalf("expected a fault, got %v", err)
	}

	if f.Token != "+" {
		t.Fatalf("fault at %q", f.Token)
	}

	if f.Snapshot == nil || len(f.Snapshot.Stack) == 0 {
		t.Fatalf("missing snapshot: %+v", f.Snapshot)
	}
}

func TestTry(t *testing.T) {
	en := setup(t, "")

	if err := en.Run("test", "{1 0/}t{2}t"); err != nil {
		t.Fatal(err)
	}

	vs := en.Env().Stack()
	if len(vs) != 3 {
		t.Fatalf("got %q", stack(en))
	}

	if msg := vs[0].String(); !strings.HasPrefix(msg, "TypeMismatch: division by zero") {
		t.Fatalf("message %q", msg)
	}

	if got := value.Literals(vs[1:]); got[0] != "2" || got[1] != "0" {
		t.Fatalf("got %q", got)
	}
}

func TestExit(t *testing.T) {
	en := setup(t, "")

	err := en.Run("test", "1 2{3Exit}l4")
	if code, ok := signal.IsExit(err); !ok || code != 3 {
		t.Fatalf("got %v", err)
	}

	if got := stack(en); got != "1 2" {
		t.Fatalf("stack %q", got)
	}
}

func TestStrayBreak(t *testing.T) {
	en := setup(t, "")

	if err := en.Run("test", "Break"); !errors.Is(err, signal.Break) {
		t.Fatalf("got %v", err)
	}
}

func TestInputModes(t *testing.T) {
	tests := []struct {
		program string
		input   string
		want    string
	}{
		{"l+", "ab\ncd\n", "\"cdab\""},
		{"w\\", "x y", "\"x\" \"y\""},
		{"n+", "3 oops 4", "7"},
		{"a", "whole\ninput", ""},
		{"a:", "whole", "\"whole\" \"whole\""},
	}

	for _, tt := range tests {
		en := setup(t, tt.input)

		if err := en.Run("test", tt.program); err != nil {
			t.Fatalf("%q: %v", tt.program, err)
		}

		if got := stack(en); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.program, got, tt.want)
		}
	}
}

func TestPrint(t *testing.T) {
	en := setup(t, "")

	if err := en.Run("test", "s1\"a\"[2 3]"); err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := en.Print(&b); err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != "1 a 23\n" {
		t.Fatalf("got %q", got)
	}
}

func TestOutput(t *testing.T) {
	en := setup(t, "")

	var b bytes.Buffer
	en.Env().SetOutput(&b)

	if err := en.Run("test", "3{O}e"); err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != "0\n1\n2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestReplPersists(t *testing.T) {
	en := setup(t, "")

	for _, line := range []string{"5—A", "A A*"} {
		if err := en.Run("repl", line); err != nil {
			t.Fatal(err)
		}
	}

	if got := stack(en); got != "25" {
		t.Fatalf("got %q", got)
	}
}
