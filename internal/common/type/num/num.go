// Released under an MIT license. See LICENSE.

// Package num provides paradoc's numeric types: arbitrary precision
// integers, floats, and chars. A char is a code point that remembers it
// is a char; arithmetic between two chars yields a char, arithmetic that
// mixes a char with anything else yields a plain number.
package num

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/truth"
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
)

const (
	charName  = "char"
	floatName = "float"
	intName   = "integer"
)

// Int wraps Go's big.Int type.
type Int big.Int

// Float wraps Go's float64 type.
type Float float64

// Char wraps a code point.
type Char rune

// NewInt creates an Int from the int64 i.
func NewInt(i int64) *Int {
	return (*Int)(big.NewInt(i))
}

// Big wraps b as an Int. The caller must not modify b afterwards.
func Big(b *big.Int) *Int {
	return (*Int)(b)
}

// Parse converts the text of a numeric literal to an Int or a Float.
// The literal may start with '-' or the minus glyph '—'.
func Parse(s string) (value.I, bool) {
	s = strings.Replace(s, "—", "-", -1)

	if !strings.ContainsAny(s, ".e") {
		b, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, false
		}

		return Big(b), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}

	return Float(f), true
}

// Big returns the value of i as a *big.Int. Do not modify it.
func (i *Int) Big() *big.Int {
	return (*big.Int)(i)
}

// Bool returns false for zero.
func (i *Int) Bool() bool {
	return i.Big().Sign() != 0
}

// Equal returns true if v is a non-char number with the same value.
func (i *Int) Equal(v value.I) bool {
	return !IsChar(v) && Is(v) && Cmp(i, v) == 0
}

// Literal returns the literal representation of the Int i.
func (i *Int) Literal() string {
	return minus(i.String())
}

// Name returns the type name for the Int i.
func (i *Int) Name() string {
	return intName
}

// String returns the decimal text of the Int i.
func (i *Int) String() string {
	return i.Big().String()
}

// Bool returns false for zero.
func (f Float) Bool() bool {
	return f != 0
}

// Equal returns true if v is a non-char number with the same value.
func (f Float) Equal(v value.I) bool {
	return !IsChar(v) && Is(v) && Cmp(f, v) == 0
}

// Literal returns the literal representation of the Float f.
func (f Float) Literal() string {
	return minus(f.String())
}

// Name returns the type name for the Float f.
func (f Float) Name() string {
	return floatName
}

// String returns the shortest text that reads back as f.
func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}

	return s
}

// Bool returns false for the NUL char.
func (c Char) Bool() bool {
	return c != 0
}

// Equal returns true if v is the same char. A char is never equal to
// an integer, even one with the same code point.
func (c Char) Equal(v value.I) bool {
	d, ok := v.(Char)
	return ok && c == d
}

// Literal returns the literal representation of the Char c.
func (c Char) Literal() string {
	return "'" + string(rune(c))
}

// Name returns the type name for the Char c.
func (c Char) Name() string {
	return charName
}

// String returns the char itself.
func (c Char) String() string {
	return string(rune(c))
}

// Is returns true if v is an Int, Float, or Char.
func Is(v value.I) bool {
	switch v.(type) {
	case *Int, Float, Char:
		return true
	}

	return false
}

// IsChar returns true if v is a Char.
func IsChar(v value.I) bool {
	_, ok := v.(Char)
	return ok
}

// IsFloat returns true if v is a Float.
func IsFloat(v value.I) bool {
	_, ok := v.(Float)
	return ok
}

// IsInt returns true if v is an Int.
func IsInt(v value.I) bool {
	_, ok := v.(*Int)
	return ok
}

// ToInt returns v as an int if it is an Int or Char that fits.
func ToInt(v value.I) (int, bool) {
	switch v := v.(type) {
	case *Int:
		if !v.Big().IsInt64() {
			return 0, false
		}

		n := v.Big().Int64()
		if int64(int(n)) != n {
			return 0, false
		}

		return int(n), true
	case Char:
		return int(v), true
	}

	return 0, false
}

// ToFloat returns the value of any number as a float64.
func ToFloat(v value.I) (float64, bool) {
	switch v := v.(type) {
	case *Int:
		f, _ := new(big.Float).SetInt(v.Big()).Float64()
		return f, true
	case Float:
		return float64(v), true
	case Char:
		return float64(v), true
	}

	return 0, false
}

func minus(s string) string {
	if strings.HasPrefix(s, "-") {
		return "—" + s[1:]
	}

	return s
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		c Char
		f Float
		i Int
	)

	// The numeric types are values.
	_ = value.I(c)
	_ = value.I(f)
	_ = value.I(&i)

	// The numeric types have a truth value.
	_ = truth.I(c)
	_ = truth.I(f)
	_ = truth.I(&i)
}
