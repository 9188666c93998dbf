// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
)

func ints(ns ...int64) []value.I {
	vs := make([]value.I, len(ns))
	for i, n := range ns {
		vs[i] = num.NewInt(n)
	}

	return vs
}

func expect(t *testing.T, what string, got, want []value.I) {
	t.Helper()

	if !value.Equal(got, want) {
		t.Fatalf("%s: got %v, want %v", what, value.Literals(got), value.Literals(want))
	}
}

func TestEmptyPop(t *testing.T) {
	e := New()

	_, err := e.Pop()
	if !fault.Is(err, fault.EmptyStack) {
		t.Fatalf("expected EmptyStack, got %v", err)
	}
}

func TestMarkCapturesPushes(t *testing.T) {
	e := New()
	e.Push(ints(1, 2)...)

	e.Mark()
	e.Push(ints(3, 4, 5)...)

	expect(t, "mark", e.PopUntilMark(), ints(3, 4, 5))
	expect(t, "stack", e.Stack(), ints(1, 2))
}

func TestMarkShrinksOnPop(t *testing.T) {
	e := New()
	e.Push(ints(1, 2, 3)...)

	e.Mark()

	for i := 0; i < 2; i++ {
		if _, err := e.Pop(); err != nil {
			t.Fatal(err)
		}
	}

	e.Push(ints(9)...)

	expect(t, "mark", e.PopUntilMark(), ints(9))
	expect(t, "stack", e.Stack(), ints(1))
}

func TestPopUntilMarkWithoutMark(t *testing.T) {
	e := New()
	e.Push(ints(1, 2)...)

	expect(t, "everything", e.PopUntilMark(), ints(1, 2))

	if e.Len() != 0 {
		t.Fatalf("stack not empty: %d", e.Len())
	}
}

func TestTriggerFillsBottom(t *testing.T) {
	e := New()

	next := int64(100)
	e.SetTrigger(func() (value.I, bool) {
		next++
		return num.NewInt(next), next <= 102
	})

	e.Push(ints(1)...)
	e.Mark()
	e.Push(ints(2)...)

	v, err := e.Index(3)
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(num.NewInt(102)) {
		t.Fatalf("got %v", v)
	}

	expect(t, "stack", e.Stack(), ints(102, 101, 1, 2))
	expect(t, "mark", e.PopUntilMark(), ints(2))

	if _, err := e.Index(5); !fault.Is(err, fault.EmptyStack) {
		t.Fatalf("expected EmptyStack, got %v", err)
	}
}

func TestBracketedFallsThrough(t *testing.T) {
	e := New()
	e.Push(ints(1, 2, 3)...)

	s := e.Bracketed()
	s.Push(ints(4)...)

	vs, err := s.PopN(3)
	if err != nil {
		t.Fatal(err)
	}

	expect(t, "popped", vs, ints(2, 3, 4))
	expect(t, "parent", e.Stack(), ints(1))

	if s.Pulled() != 2 {
		t.Fatalf("pulled %d, want 2", s.Pulled())
	}
}

func TestKeepLeavesParent(t *testing.T) {
	e := New()
	e.Push(ints(1, 2, 3)...)

	s := e.Keep()

	vs, err := s.PopN(2)
	if err != nil {
		t.Fatal(err)
	}

	expect(t, "popped", vs, ints(2, 3))
	expect(t, "parent", e.Stack(), ints(1, 2, 3))

	// Later pulls reach deeper rather than seeing the same values again.
	v, err := s.Pop()
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(num.NewInt(1)) {
		t.Fatalf("third pull got %v", v)
	}
}

func TestBorrowed(t *testing.T) {
	e := New()
	e.Push(ints(1, 2)...)

	s := e.Keep()

	if _, err := s.Index(1); err != nil {
		t.Fatal(err)
	}

	s.Push(num.NewInt(9))

	if s.Borrowed() != 2 {
		t.Fatalf("expected 2 borrowed, got %d", s.Borrowed())
	}

	if _, err := s.PopN(2); err != nil {
		t.Fatal(err)
	}

	if s.Borrowed() != 1 {
		t.Fatalf("expected 1 borrowed after popping below, got %d", s.Borrowed())
	}
}

func TestTrackingRecordsConsumed(t *testing.T) {
	e := New()
	e.Push(ints(1, 2, 3)...)

	s := e.Tracking()
	if _, err := s.PopN(2); err != nil {
		t.Fatal(err)
	}

	expect(t, "consumed", s.Consumed(), ints(2, 3))
	expect(t, "parent", e.Stack(), ints(1))
}

func TestShadowMarksAreIsolated(t *testing.T) {
	e := New()
	e.Push(ints(1)...)
	e.Mark()
	e.Push(ints(2)...)

	s := e.Bracketed()
	s.Push(ints(3)...)

	expect(t, "shadow", s.PopUntilMark(), ints(3))
	expect(t, "parent", e.PopUntilMark(), ints(2))
}

func TestShadowSharesScope(t *testing.T) {
	e := New()
	s := e.Keep()

	s.Put("A", num.NewInt(7))
	s.PushX(num.NewInt(8))

	if v, ok := e.Get("A"); !ok || !v.Equal(num.NewInt(7)) {
		t.Fatalf("binding not shared: %v %v", v, ok)
	}

	if v, err := e.IndexX(0); err != nil || !v.Equal(num.NewInt(8)) {
		t.Fatalf("x-stack not shared: %v %v", v, err)
	}
}

func TestDefine(t *testing.T) {
	e := New()

	if err := e.Define("Sum", []string{"Σ"}, num.NewInt(1)); err != nil {
		t.Fatal(err)
	}

	if err := e.Define("Total", []string{"Σ"}, num.NewInt(2)); err == nil {
		t.Fatal("duplicate alias accepted")
	}

	e.Redefine("Σ", nil, num.NewInt(3))

	if v, _ := e.Get("Σ"); !v.Equal(num.NewInt(3)) {
		t.Fatalf("redefine ignored: %v", v)
	}
}

func TestResolverIsCached(t *testing.T) {
	e := New()

	calls := 0
	e.Resolve(func(name string) (value.I, bool) {
		calls++
		return num.NewInt(int64(len(name))), name == "Nab"
	})

	for i := 0; i < 2; i++ {
		if v, ok := e.Get("Nab"); !ok || !v.Equal(num.NewInt(3)) {
			t.Fatalf("got %v %v", v, ok)
		}
	}

	if _, ok := e.Get("Other"); ok {
		t.Fatal("resolver answered for the wrong name")
	}

	if calls != 2 {
		t.Fatalf("resolver called %d times", calls)
	}
}

func TestXStack(t *testing.T) {
	e := New()

	if v, _ := e.IndexX(0); !v.Equal(num.NewInt(0)) {
		t.Fatalf("initial X = %v", v)
	}

	e.PushX(ints(5, 6)...)

	if v, _ := e.IndexX(1); !v.Equal(num.NewInt(5)) {
		t.Fatalf("Y = %v", v)
	}

	e.PopX(2)

	if _, err := e.IndexX(3); err == nil {
		t.Fatal("expected an error beyond the x-stack")
	}
}
