package schema

import (
	"errors"
	"math"
	"testing"
)

func TestNewNumericRange(t *testing.T) {
	cases := []struct {
		name    string
		min     float64
		max     float64
		wantErr bool
	}{
		{"min below max", 1, 10, false},
		{"min equals max", 5, 5, false},
		{"min above max", 5, 3, true},
		{"nan min", math.NaN(), 3, true},
		{"infinite max", 0, math.Inf(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewNumericRange(tc.min, tc.max)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Fatalf("expected ErrInvalidRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Min != tc.min || got.Max != tc.max {
				t.Fatalf("range = %+v", got)
			}
		})
	}
}

func TestNumericRange_Contains(t *testing.T) {
	rng, err := NewNumericRange(1, 3)
	if err != nil {
		t.Fatalf("NewNumericRange: %v", err)
	}
	for value, want := range map[float64]bool{0.5: false, 1: true, 2: true, 3: true, 3.1: false} {
		if got := rng.Contains(value); got != want {
			t.Fatalf("Contains(%v) = %v, want %v", value, got, want)
		}
	}
}
