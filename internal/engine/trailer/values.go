// Released under an MIT license. See LICENSE.

package trailer

import (
	"math"
	"math/big"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/hoard"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
	"github.com/michaelmacinnis/paradoc/internal/engine/fault"
)

// Pure transformations that never touch the environment.
func pure(kind, letter, long string, fn func(v value.I) (value.I, error)) {
	register(kind, letter, long, false, func(_ *env.T, v value.I) (value.I, error) {
		return fn(v)
	})
}

func scale(kind, letter, long string, n int64) {
	pure(kind, letter, long, func(v value.I) (value.I, error) {
		r, _ := num.Mul(v, num.NewInt(n))
		return r, nil
	})
}

func integral(kind, letter, long string, fn func(float64) float64) {
	pure(kind, letter, long, func(v value.I) (value.I, error) {
		f, _ := num.ToFloat(v)

		f = fn(f)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fault.New(fault.TypeMismatch, "%s has no integer value", v.Literal())
		}

		b, _ := big.NewFloat(f).Int(nil)

		return num.Big(b), nil
	})
}

func init() { //nolint:gochecknoinits
	for _, k := range []string{"array", "char", "float", "hoard", "integer", "text"} {
		reluctant(k)
	}

	integers()
	floats()
	chars()
	texts()
	sequences()
}

func integers() {
	pure("integer", "c", "char", func(v value.I) (value.I, error) {
		n, ok := num.ToInt(v)
		if !ok || n < 0 || n > unicode.MaxRune {
			return nil, fault.New(fault.TypeMismatch, "%s is not a code point", v.Literal())
		}

		return num.Char(rune(n)), nil
	})

	scale("integer", "d", "double", 2)
	scale("integer", "h", "hundred", 100)
	scale("integer", "k", "thousand", 1000)

	pure("integer", "m", "minus", func(v value.I) (value.I, error) {
		return num.Neg(v), nil
	})

	pure("integer", "r", "range", func(v value.I) (value.I, error) {
		r, ok := array.ToRange(v)
		if !ok {
			return nil, fault.New(fault.TypeMismatch, "%s is too large for a range", v.Literal())
		}

		return r, nil
	})

	pure("integer", "s", "square", func(v value.I) (value.I, error) {
		r, _ := num.Mul(v, v)
		return r, nil
	})
}

func floats() {
	integral("float", "c", "ceiling", math.Ceil)
	scale("float", "d", "double", 2)
	integral("float", "f", "floor", math.Floor)
	scale("float", "h", "hundred", 100)
	scale("float", "k", "thousand", 1000)

	pure("float", "m", "minus", func(v value.I) (value.I, error) {
		return num.Neg(v), nil
	})

	integral("float", "r", "round", math.Round)
}

func chars() {
	char := func(letter, long string, fn func(rune) rune) {
		pure("char", letter, long, func(v value.I) (value.I, error) {
			return num.Char(fn(rune(v.(num.Char)))), nil
		})
	}

	pure("char", "i", "int", func(v value.I) (value.I, error) {
		return num.NewInt(int64(v.(num.Char))), nil
	})

	char("l", "lower", unicode.ToLower)

	pure("char", "s", "text", func(v value.I) (value.I, error) {
		return text.New(v.String()), nil
	})

	char("u", "upper", unicode.ToUpper)
}

func texts() {
	pure("text", "c", "chars", func(v value.I) (value.I, error) {
		return array.New(text.To(v).Chars()...), nil
	})

	pure("text", "f", "float", func(v value.I) (value.I, error) {
		n, ok := num.Parse(strings.TrimSpace(v.String()))
		if !ok {
			return nil, fault.New(fault.TypeMismatch, "%s is not a number", v.Literal())
		}

		f, _ := num.ToFloat(n)

		return num.Float(f), nil
	})

	pure("text", "i", "int", func(v value.I) (value.I, error) {
		n, ok := num.Parse(strings.TrimSpace(v.String()))
		if !ok || !num.IsInt(n) {
			return nil, fault.New(fault.TypeMismatch, "%s is not an integer", v.Literal())
		}

		return n, nil
	})

	pure("text", "l", "lower", func(v value.I) (value.I, error) {
		return text.New(strings.ToLower(v.String())), nil
	})

	pure("text", "r", "reverse", func(v value.I) (value.I, error) {
		rs := text.To(v).Runes()

		out := make([]rune, len(rs))
		for i, r := range rs {
			out[len(rs)-1-i] = r
		}

		return text.Runes(out), nil
	})

	pure("text", "u", "upper", func(v value.I) (value.I, error) {
		return text.New(strings.ToUpper(v.String())), nil
	})

	pure("text", "w", "words", func(v value.I) (value.I, error) {
		fs := strings.Fields(v.String())

		vs := make([]value.I, len(fs))
		for i, f := range fs {
			vs[i] = text.New(f)
		}

		return array.New(vs...), nil
	})
}

func sequences() {
	length := func(v value.I) (value.I, error) {
		return num.NewInt(int64(v.(array.Seq).Len())), nil
	}

	pure("hoard", "a", "array", func(v value.I) (value.I, error) {
		return array.New(hoard.To(v).Items()...), nil
	})

	pure("hoard", "l", "length", length)
	pure("array", "l", "length", length)

	pure("array", "r", "reverse", func(v value.I) (value.I, error) {
		items, _ := array.Items(v)

		out := make([]value.I, len(items))
		for i, x := range items {
			out[len(items)-1-i] = x
		}

		return array.New(out...), nil
	})

	pure("array", "s", "sum", func(v value.I) (value.I, error) {
		return Sum(v.(array.Seq))
	})
}

// Sum adds the numbers in s. The sum of nothing is 0.
func Sum(s array.Seq) (value.I, error) {
	var acc value.I = num.NewInt(0)

	for i := 0; i < s.Len(); i++ {
		x := s.At(i)

		r, ok := num.Add(acc, x)
		if !ok {
			return nil, fault.New(fault.TypeMismatch, "cannot sum %s", x.Name())
		}

		acc = r
	}

	return acc, nil
}
