package signal

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	for _, tc := range []struct {
		err    error
		signal bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{Break, true},
		{Continue, true},
		{&Exit{Code: 3}, true},
		{fmt.Errorf("wrapped: %w", Break), true},
	} {
		if got := Is(tc.err); got != tc.signal {
			t.Fatalf("Is(%v): expected %v", tc.err, tc.signal)
		}
	}
}

func TestIsExit(t *testing.T) {
	code, ok := IsExit(fmt.Errorf("deep: %w", &Exit{Code: 7}))
	if !ok || code != 7 {
		t.Fatalf("expected exit 7, got %d %v", code, ok)
	}

	if _, ok := IsExit(Break); ok {
		t.Fatal("break is not exit")
	}
}
