// Released under an MIT license. See LICENSE.

package trailer

import (
	"reflect"
	"testing"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		run  string
		want []string
	}{
		{"", nil},
		{"m", []string{"m"}},
		{"bm", []string{"b", "m"}},
		{"_map", []string{"map"}},
		{"b_map_filter", []string{"b", "map", "filter"}},
		{"_", nil},
	}

	for _, tt := range tests {
		if got := Split(tt.run); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %q, want %q", tt.run, got, tt.want)
		}
	}
}

func TestValueTrailers(t *testing.T) {
	tests := []struct {
		in   value.I
		name string
		want value.I
	}{
		{num.NewInt(65), "c", num.Char('A')},
		{num.NewInt(3), "h", num.NewInt(300)},
		{num.NewInt(4), "square", num.NewInt(16)},
		{num.NewInt(3), "r", array.New(num.NewInt(0), num.NewInt(1), num.NewInt(2))},
		{num.Float(2.5), "f", num.NewInt(2)},
		{num.Float(2.5), "c", num.NewInt(3)},
		{num.Float(-2.5), "round", num.NewInt(-3)},
		{num.Char('a'), "u", num.Char('A')},
		{num.Char('a'), "i", num.NewInt(97)},
		{text.New("abc"), "r", text.New("cba")},
		{text.New(" 42 "), "i", num.NewInt(42)},
		{text.New("a b"), "w", array.New(text.New("a"), text.New("b"))},
		{array.New(num.NewInt(1), num.Float(2)), "s", num.Float(3)},
	}

	e := env.New()

	for _, tt := range tests {
		got, reluctant, err := Apply(e, tt.in, tt.name)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.in.Literal(), tt.name, err)
		}

		if reluctant {
			t.Fatalf("%s %s: unexpected reluctant result", tt.in.Literal(), tt.name)
		}

		if !got.Equal(tt.want) {
			t.Errorf("%s %s = %s, want %s", tt.in.Literal(), tt.name, got.Literal(), tt.want.Literal())
		}
	}
}

func TestReluctantBlock(t *testing.T) {
	e := env.New()

	v, reluctant, err := Apply(e, num.NewInt(7), "b")
	if err != nil {
		t.Fatal(err)
	}

	if !reluctant || !block.Is(v) {
		t.Fatalf("got %v reluctant=%v", v, reluctant)
	}
}

func TestUnknownTrailer(t *testing.T) {
	e := env.New()

	_, _, err := Apply(e, text.New("x"), "q")
	if !fault.Is(err, fault.UnknownTrailer) {
		t.Fatalf("expected UnknownTrailer, got %v", err)
	}
}

func TestBlockTrailers(t *testing.T) {
	inc := block.New("inc", func(e *env.T) error {
		v, err := e.Pop()
		if err != nil {
			return err
		}

		e.Push(num.Step(v, 1))

		return nil
	})

	e := env.New()
	e.Push(num.NewInt(3))

	m, _, err := Apply(e, inc, "m")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.(env.Block).Call(e); err != nil {
		t.Fatal(err)
	}

	want := array.New(num.NewInt(1), num.NewInt(2), num.NewInt(3))
	if got := e.Stack(); len(got) != 1 || !got[0].Equal(want) {
		t.Fatalf("got %v", value.Literals(got))
	}
}

func TestBindTakesOperandEarly(t *testing.T) {
	e := env.New()
	e.Push(num.NewInt(1), num.NewInt(10))

	add := block.New("+", func(e *env.T) error {
		vs, err := e.PopN(2)
		if err != nil {
			return err
		}

		r, _ := num.Add(vs[0], vs[1])
		e.Push(r)

		return nil
	})

	b, _, err := Apply(e, add, "b")
	if err != nil {
		t.Fatal(err)
	}

	if err := b.(env.Block).Call(e); err != nil {
		t.Fatal(err)
	}

	if got := e.Stack(); !value.Equal(got, []value.I{num.NewInt(11)}) {
		t.Fatalf("got %v", value.Literals(got))
	}
}
