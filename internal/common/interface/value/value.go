// Released under an MIT license. See LICENSE.

// Package value defines the interface for all paradoc runtime values.
package value

// I (value) is anything that can live on a paradoc stack.
//
// String is the printed form (text without quotes, arrays without
// separators). Literal is the form that reads back as source where
// one exists.
type I interface {
	Equal(v I) bool
	Literal() string
	Name() string
	String() string
}

// Equal reports whether the slices a and b hold pairwise equal values.
func Equal(a, b []I) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Literals returns the literal representation of each value in vs.
func Literals(vs []I) []string {
	ls := make([]string, len(vs))
	for i, v := range vs {
		ls[i] = v.Literal()
	}

	return ls
}
