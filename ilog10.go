// Package ilog10 computes floor(log10(x)) for unsigned integers without
// division or digit-counting loops.
//
// Two independent techniques are provided. Log10Floor refines a cheap
// floor(log2(x)) into a floor(log10(x)) guess through a small lookup
// table, then corrects the guess with a single comparison against a
// per-decade maximum. Log10Floor32 instead indexes one table of packed
// constants by bit length and derives the result with one addition and
// one shift, with no branches at all.
//
// All functions are pure, allocation free, and complete in constant
// time. The tables are read-only, so every function is safe for
// concurrent use without synchronization.
package ilog10

import (
	"math/bits"
)

//go:generate go run ./internal/gentables -out tables.go

// Log10Floor returns floor(log10(x)), i.e. one less than the number of
// decimal digits of x. This function panics if x == 0; callers that
// need a defined value for zero should use Digits or Log10Floor32.
func Log10Floor[T Unsigned](x T) uint8 {
	v := uint64(x)
	// The guess is floor(log10) of the smallest value with the same bit
	// length as x, so it is either exact or exactly one too low.
	guess := log10GuessByLog2[Log2Floor(v)]
	if v > decadeLimits[guess] {
		return guess + 1
	}
	return guess
}

// Log10Floor32 returns floor(log10(x)) for x > 0, and 0 for x == 0.
// The packed table entry for each bit length already contains the
// decade correction in its low half, so the addition carries into the
// high half exactly when x has crossed its decade boundary and the
// shift yields the final result with no conditionals.
func Log10Floor32(x uint32) uint32 {
	return uint32((uint64(x) + packedLog10ByBitLen[bits.Len32(x)]) >> 32)
}

// Digits returns the number of decimal digits of x. Digits(0) is 1.
func Digits[T Unsigned](x T) int {
	if x == 0 {
		return 1
	}
	return int(Log10Floor(x)) + 1
}

// Pow10 returns 10^e and true for e <= 19, or 0 and false when 10^e
// does not fit in a uint64.
func Pow10(e uint) (uint64, bool) {
	if e >= uint(len(pow10)) {
		return 0, false
	}
	return pow10[e], true
}
