// Package util holds ledger arithmetic and formatting helpers.
package util

import (
	"fmt"
	"math/bits"
	"strings"
)

// LamportsPerSOL is the number of base units in one whole token.
const LamportsPerSOL uint64 = 1_000_000_000

// CheckedAdd returns a+b and reports false when the sum overflows uint64.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)

	return sum, carry == 0
}

// CheckedSub returns a-b and reports false when b is greater than a.
func CheckedSub(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)

	return diff, borrow == 0
}

// FormatLamports formats a base-unit amount as whole tokens (e.g., "1.5 SOL").
func FormatLamports(lamports uint64) string {
	whole := lamports / LamportsPerSOL
	frac := lamports % LamportsPerSOL
	if frac == 0 {
		return fmt.Sprintf("%d SOL", whole)
	}

	fraction := strings.TrimRight(fmt.Sprintf("%09d", frac), "0")

	return fmt.Sprintf("%d.%s SOL", whole, fraction)
}
