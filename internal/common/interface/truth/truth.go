// Released under an MIT license. See LICENSE.

// Package truth defines the interface for paradoc values that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for v. Values without an opinion,
// blocks for example, are true.
func Value(v value.I) bool {
	b, ok := v.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
