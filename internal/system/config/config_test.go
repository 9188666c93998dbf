// Released under an MIT license. See LICENSE.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}

	if *c != *Default() {
		t.Fatalf("got %+v", c)
	}
}

func TestPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	data := `epsilon = 0.001

[output]
field = " "

[input]
mode = "lines"
`

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.Epsilon != 0.001 || c.Output.Field != " " || c.Input.Mode != "lines" {
		t.Fatalf("got %+v", c)
	}

	if c.Output.Record != "\n" || c.Log.Level != "warn" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := os.WriteFile(path, []byte("epsilon = ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
