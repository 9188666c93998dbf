// Released under an MIT license. See LICENSE.

package num

import (
	"errors"
	"math"
	"math/big"
	"unicode"

	"github.com/nukata/goarith"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
)

// ErrDivideByZero is returned by the dividing operations.
var ErrDivideByZero = errors.New("division by zero")

// Add returns a + b. The boolean is false if either operand is not a number.
func Add(a, b value.I) (value.I, bool) {
	return binary(a, b, (*big.Int).Add, func(x, y float64) float64 {
		return x + y
	})
}

// Sub returns a - b.
func Sub(a, b value.I) (value.I, bool) {
	return binary(a, b, (*big.Int).Sub, func(x, y float64) float64 {
		return x - y
	})
}

// Mul returns a * b.
func Mul(a, b value.I) (value.I, bool) {
	return binary(a, b, (*big.Int).Mul, func(x, y float64) float64 {
		return x * y
	})
}

// Div returns a / b as a Float.
func Div(a, b value.I) (value.I, error) {
	x, _ := ToFloat(a)
	y, _ := ToFloat(b)

	if y == 0 {
		return nil, ErrDivideByZero
	}

	return Float(x / y), nil
}

// IntDiv returns a / b rounded toward negative infinity.
func IntDiv(a, b value.I) (value.I, error) {
	if isZero(b) {
		return nil, ErrDivideByZero
	}

	v, _ := binary(a, b, floorDiv, func(x, y float64) float64 {
		return math.Floor(x / y)
	})

	return v, nil
}

// Mod returns a modulo b with the sign of b.
func Mod(a, b value.I) (value.I, error) {
	if isZero(b) {
		return nil, ErrDivideByZero
	}

	v, _ := binary(a, b, floorMod, func(x, y float64) float64 {
		return x - y*math.Floor(x/y)
	})

	return v, nil
}

// Neg returns -v, keeping the kind of v.
func Neg(v value.I) value.I {
	switch v := v.(type) {
	case *Int:
		return Big(new(big.Int).Neg(v.Big()))
	case Float:
		return -v
	case Char:
		return -v
	}

	return v
}

// Step returns v + d, keeping the kind of v. A char stays a char.
func Step(v value.I, d int64) value.I {
	switch v := v.(type) {
	case *Int:
		return Big(new(big.Int).Add(v.Big(), big.NewInt(d)))
	case Float:
		return v + Float(d)
	case Char:
		return v + Char(d)
	}

	return v
}

// Cmp compares two numbers and returns -1, 0, or +1.
func Cmp(a, b value.I) int {
	if !IsFloat(a) && !IsFloat(b) {
		return integer(a).Cmp(integer(b))
	}

	return goarith.AsNumber(arithmetic(a)).Cmp(goarith.AsNumber(arithmetic(b)))
}

// Approx reports whether a and b are within epsilon of each other.
func Approx(a, b value.I, epsilon float64) bool {
	x, _ := ToFloat(a)
	y, _ := ToFloat(b)

	return math.Abs(x-y) <= epsilon
}

func arithmetic(v value.I) interface{} {
	if f, ok := v.(Float); ok {
		return float64(f)
	}

	return integer(v)
}

func binary(
	a, b value.I,
	i func(z, x, y *big.Int) *big.Int,
	f func(x, y float64) float64,
) (value.I, bool) {
	if !Is(a) || !Is(b) {
		return nil, false
	}

	if IsFloat(a) || IsFloat(b) {
		x, _ := ToFloat(a)
		y, _ := ToFloat(b)

		return Float(f(x, y)), true
	}

	z := i(new(big.Int), integer(a), integer(b))
	if IsChar(a) && IsChar(b) && isRune(z) {
		return Char(z.Int64()), true
	}

	return Big(z), true
}

// A char result outside the range of code points becomes an integer.
func isRune(z *big.Int) bool {
	if !z.IsInt64() {
		return false
	}

	n := z.Int64()

	return n >= math.MinInt32 && n <= unicode.MaxRune
}

func floorDiv(z, x, y *big.Int) *big.Int {
	m := floorMod(new(big.Int), x, y)

	z.Sub(x, m)

	return z.Quo(z, y)
}

func floorMod(z, x, y *big.Int) *big.Int {
	z.Mod(x, y)

	if z.Sign() != 0 && y.Sign() < 0 {
		z.Add(z, y)
	}

	return z
}

func integer(v value.I) *big.Int {
	switch v := v.(type) {
	case *Int:
		return v.Big()
	case Char:
		return big.NewInt(int64(v))
	}

	return new(big.Int)
}

func isZero(v value.I) bool {
	f, ok := ToFloat(v)
	return !ok || f == 0
}
