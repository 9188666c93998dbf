// Released under an MIT license. See LICENSE.

// Package config handles paradoc's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// T is the contents of a configuration file.
type T struct {
	Epsilon float64 `toml:"epsilon"`
	Input   Input   `toml:"input"`
	Log     Log     `toml:"log"`
	Output  Output  `toml:"output"`
}

// Input configures where values come from when a program runs short.
type Input struct {
	Mode string `toml:"mode"`
}

// Log configures diagnostic output.
type Log struct {
	Level string `toml:"level"`
}

// Output configures how the final stack is printed.
type Output struct {
	Field  string `toml:"field"`
	Record string `toml:"record"`
}

// Default returns the configuration used when there is no file.
func Default() *T {
	return &T{
		Epsilon: 1e-9,
		Input:   Input{Mode: "none"},
		Log:     Log{Level: "warn"},
		Output:  Output{Record: "\n"},
	}
}

// Path returns the default configuration file path.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "paradoc", "config.toml")
}

// Load reads the configuration in path. Settings missing from the file,
// or a missing file, take their default values.
func Load(path string) (*T, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return c, nil
}
