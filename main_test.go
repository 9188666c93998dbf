// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pd(t *testing.T, stdin string, argv ...string) (string, string, int) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "config.toml")

	var stdout, stderr bytes.Buffer

	code := run(append([]string{"--config=" + cfg}, argv...), strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), code
}

func TestCommand(t *testing.T) {
	out, _, code := pd(t, "", "-c", "2 3+7*")
	if code != 0 || out != "35\n" {
		t.Fatalf("got %q (%d)", out, code)
	}
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.pd")

	if err := os.WriteFile(path, []byte("#!/usr/bin/env pd\n10,{3%0=}+"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, code := pd(t, "", path)
	if code != 0 || out != "0369\n" {
		t.Fatalf("got %q (%d)", out, code)
	}
}

func TestProgramFromStdin(t *testing.T) {
	out, _, code := pd(t, "7)")
	if code != 0 || out != "8\n" {
		t.Fatalf("got %q (%d)", out, code)
	}
}

func TestInputFromStdin(t *testing.T) {
	out, _, code := pd(t, "1\n2\n3\n", "-c", "n+")
	if code != 0 || out != "3\n" {
		t.Fatalf("got %q (%d)", out, code)
	}
}

func TestFaultExitsOne(t *testing.T) {
	_, errs, code := pd(t, "", "-c", "1+")
	if code != 1 || !strings.Contains(errs, "EmptyStack") {
		t.Fatalf("got %q (%d)", errs, code)
	}
}

func TestExitCode(t *testing.T) {
	out, _, code := pd(t, "", "-c", "1 7Exit")
	if code != 7 || out != "1\n" {
		t.Fatalf("got %q (%d)", out, code)
	}
}
