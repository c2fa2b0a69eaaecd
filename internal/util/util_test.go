package util

import (
	"math"
	"testing"
)

func TestFormatLamports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lamports uint64
		expected string
	}{
		{name: "zero", lamports: 0, expected: "0 SOL"},
		{name: "one token", lamports: 1_000_000_000, expected: "1 SOL"},
		{name: "fractional token", lamports: 1_500_000_000, expected: "1.5 SOL"},
		{name: "single lamport", lamports: 1, expected: "0.000000001 SOL"},
		{name: "half token", lamports: 500_000_000, expected: "0.5 SOL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatLamports(tt.lamports); got != tt.expected {
				t.Fatalf("FormatLamports(%d) = %s, want %s", tt.lamports, got, tt.expected)
			}
		})
	}
}

func TestCheckedArithmetic(t *testing.T) {
	t.Parallel()

	if sum, ok := CheckedAdd(math.MaxUint64, 1); ok {
		t.Fatalf("CheckedAdd overflow not detected, got %d", sum)
	}
	if sum, ok := CheckedAdd(2, 3); !ok || sum != 5 {
		t.Fatalf("CheckedAdd(2, 3) = %d, %v", sum, ok)
	}
	if diff, ok := CheckedSub(1, 2); ok {
		t.Fatalf("CheckedSub underflow not detected, got %d", diff)
	}
	if diff, ok := CheckedSub(5, 5); !ok || diff != 0 {
		t.Fatalf("CheckedSub(5, 5) = %d, %v", diff, ok)
	}
}
