// Released under an MIT license. See LICENSE.

package block

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/array"
	"github.com/michaelmacinnis/paradoc/internal/common/type/hoard"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
)

var keyMode cbor.EncMode //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("block: failed to create CBOR enc mode: %v", err))
	}

	keyMode = em
}

// Memoized caches the results of a block by the values it consumes.
// The first call discovers how many values the block consumes; later
// calls pop exactly that many and consult the cache first.
type Memoized struct {
	arity int
	cache map[string][]value.I
	inner env.Block
}

// Memoize wraps b in a caching block.
func Memoize(b env.Block) *Memoized {
	return &Memoized{arity: -1, cache: map[string][]value.I{}, inner: b}
}

// Call runs the wrapped block, or replays its cached results.
func (m *Memoized) Call(e *env.T) error {
	if m.arity < 0 {
		s := e.Tracking()
		if err := m.inner.Call(s); err != nil {
			return err
		}

		args := s.Consumed()
		out := s.Stack()

		m.arity = len(args)
		m.store(args, out)

		e.Log().Trace().Int("arity", m.arity).Msg("memo discovered")
		e.Push(out...)

		return nil
	}

	args, err := e.PopN(m.arity)
	if err != nil {
		return err
	}

	if k, ok := key(args); ok {
		if out, ok := m.cache[k]; ok {
			e.Log().Trace().Msg("memo hit")
			e.Push(out...)

			return nil
		}
	}

	e.Log().Trace().Msg("memo miss")

	s := e.Bracketed()
	s.Push(args...)

	if err := m.inner.Call(s); err != nil {
		return err
	}

	out := s.Stack()
	m.store(args, out)
	e.Push(out...)

	return nil
}

// Equal returns true only if v is the block m.
func (m *Memoized) Equal(v value.I) bool {
	return v == value.I(m)
}

// Literal returns the literal of the wrapped block.
func (m *Memoized) Literal() string {
	return m.inner.Literal() + "c"
}

// Name returns the name of the block type.
func (m *Memoized) Name() string {
	return name
}

// String returns the literal of the wrapped block.
func (m *Memoized) String() string {
	return m.Literal()
}

func (m *Memoized) store(args, out []value.I) {
	if k, ok := key(args); ok {
		m.cache[k] = out
	}
}

// The key function returns the canonical CBOR encoding of a structural
// rendering of vs. Values with identity (hoards, blocks) key by address.
func key(vs []value.I) (string, bool) {
	b, err := keyMode.Marshal(structure(vs))
	if err != nil {
		return "", false
	}

	return string(b), true
}

func structure(vs []value.I) []interface{} {
	s := make([]interface{}, len(vs))

	for i, v := range vs {
		switch v := v.(type) {
		case *num.Int:
			s[i] = []interface{}{"i", v.String()}
		case num.Float:
			s[i] = []interface{}{"f", float64(v)}
		case num.Char:
			s[i] = []interface{}{"c", int32(v)}
		case *text.T:
			s[i] = []interface{}{"t", v.String()}
		case *hoard.T:
			s[i] = []interface{}{"h", fmt.Sprintf("%p", v)}
		case array.Seq:
			s[i] = []interface{}{"a", structure(v.Items())}
		default:
			s[i] = []interface{}{"b", fmt.Sprintf("%p", v)}
		}
	}

	return s
}
