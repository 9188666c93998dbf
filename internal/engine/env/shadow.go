// Released under an MIT license. See LICENSE.

package env

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
)

// Bracketed returns a shadow whose pops fall through to e. Values taken
// from e are consumed and counted (see Pulled).
func (e *env) Bracketed() *T {
	e.trace("bracketed")

	return &env{scope: e.scope, upstream: &bracketed{parent: e}}
}

// Keep returns a shadow that reads through e without consuming it. The
// n-th value the shadow pulls is the value n places below the top of e.
func (e *env) Keep() *T {
	e.trace("keep")

	return &env{scope: e.scope, upstream: &keep{parent: e}}
}

// Tracking returns a shadow that consumes from e and records what it
// took (see Consumed).
func (e *env) Tracking() *T {
	e.trace("tracking")

	return &env{scope: e.scope, upstream: &tracking{parent: e}}
}

// Pulled returns how many values a bracketed or keep shadow has taken
// from its parent. It is zero for any other environment.
func (e *env) Pulled() int {
	switch u := e.upstream.(type) {
	case *bracketed:
		return u.pulled
	case *keep:
		return u.pulled
	case *tracking:
		return len(u.consumed)
	}

	return 0
}

// Consumed returns the values a tracking shadow took from its parent, in
// the order they sat on the parent's stack. It is nil for any other
// environment.
func (e *env) Consumed() []value.I {
	if t, ok := e.upstream.(*tracking); ok {
		vs := make([]value.I, len(t.consumed))
		copy(vs, t.consumed)

		return vs
	}

	return nil
}

func (e *env) trace(kind string) {
	e.log.Trace().Str("shadow", kind).Int("depth", len(e.stack)).Msg("shadow")
}

type bracketed struct {
	parent *T
	pulled int
}

func (b *bracketed) Pull() (value.I, error) {
	v, err := b.parent.Pop()
	if err != nil {
		return nil, err
	}

	b.pulled++

	return v, nil
}

type keep struct {
	parent *T
	pulled int
}

func (k *keep) Pull() (value.I, error) {
	v, err := k.parent.Index(k.pulled)
	if err != nil {
		return nil, err
	}

	k.pulled++

	return v, nil
}

type tracking struct {
	parent   *T
	consumed []value.I
}

func (t *tracking) Pull() (value.I, error) {
	v, err := t.parent.Pop()
	if err != nil {
		return nil, err
	}

	// Each pull reaches deeper so it belongs at the front.
	t.consumed = append([]value.I{v}, t.consumed...)

	return v, nil
}
