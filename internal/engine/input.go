// Released under an MIT license. See LICENSE.

package engine

import (
	"bufio"
	"io"
	"strings"

	"github.com/michaelmacinnis/paradoc/internal/common/interface/value"
	"github.com/michaelmacinnis/paradoc/internal/common/type/num"
	"github.com/michaelmacinnis/paradoc/internal/common/type/text"
	"github.com/michaelmacinnis/paradoc/internal/engine/env"
)

// Mode is how input is read when a program runs out of values.
type Mode string

// Input modes.
const (
	None    Mode = "none"
	All     Mode = "all"
	Lines   Mode = "lines"
	Numbers Mode = "numbers"
	Words   Mode = "words"
)

// ParseMode returns the mode called s.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case None, All, Lines, Numbers, Words:
		return m, true
	case "":
		return None, true
	}

	return None, false
}

// Input returns a trigger that reads r lazily, one value per request.
func Input(r io.Reader, mode Mode) env.Trigger {
	if r == nil || mode == None {
		return nil
	}

	s := bufio.NewScanner(r)

	switch mode {
	case All:
		done := false

		return func() (value.I, bool) {
			if done {
				return nil, false
			}

			done = true

			b, err := io.ReadAll(r)
			if err != nil {
				return nil, false
			}

			return text.New(string(b)), true
		}

	case Numbers, Words:
		s.Split(bufio.ScanWords)
	}

	return func() (value.I, bool) {
		for s.Scan() {
			t := s.Text()

			if mode != Numbers {
				return text.New(t), true
			}

			if v, ok := num.Parse(strings.TrimSpace(t)); ok {
				return v, true
			}
		}

		return nil, false
	}
}
