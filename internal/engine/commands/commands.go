// Released under an MIT license. See LICENSE.

// Package commands provides paradoc's builtins.
package commands

import (
	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/engine/block"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
)

type builtin struct {
	name    string
	aliases []string
	block   env.Block
}

// Register defines every builtin in e.
func Register(e *env.T) error {
	for _, group := range [][]builtin{
		arithmetic(),
		core(),
		relational(),
		logical(),
		list(),
	} {
		for _, b := range group {
			if err := e.Define(b.name, b.aliases, b.block); err != nil {
				return err
			}
		}
	}

	e.Resolve(digits)
	e.Resolve(letters)

	return nil
}

func def(name string, b env.Block, aliases ...string) builtin {
	return builtin{name: name, aliases: aliases, block: b}
}

func primitive(name string, fn func(e *env.T) error, aliases ...string) builtin {
	return def(name, block.New(name, fn), aliases...)
}

func cases(name string, cs ...block.Case) env.Block {
	return block.Cases(name, cs...)
}

func boolean(b bool) value.I {
	if b {
		return num.NewInt(1)
	}

	return num.NewInt(0)
}

func one(v value.I) []value.I {
	return []value.I{v}
}
