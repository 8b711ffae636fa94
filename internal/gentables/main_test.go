package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorLog10Pow2(t *testing.T) {
	assert.Equal(t, 0, floorLog10Pow2(0))
	assert.Equal(t, 0, floorLog10Pow2(3))
	assert.Equal(t, 1, floorLog10Pow2(4))
	assert.Equal(t, 3, floorLog10Pow2(10))
	assert.Equal(t, 18, floorLog10Pow2(63))
}

func TestDecadeLimit(t *testing.T) {
	assert.Equal(t, uint64(9), decadeLimit(0))
	assert.Equal(t, uint64(9_999), decadeLimit(3))
	assert.Equal(t, uint64(9_999_999_999_999_999_999), decadeLimit(18))
	assert.Equal(t, uint64(math.MaxUint64), decadeLimit(19))
}

func TestPackedEntry(t *testing.T) {
	assert.Equal(t, uint64(0), packedEntry(0))
	assert.Equal(t, uint64(0), packedEntry(1))
	// Bit length 4 covers 8..15 and contains the boundary 10.
	assert.Equal(t, uint64(0x0000_FFFF_FFF6), packedEntry(4))
	// Bit length 5 covers 16..31, no boundary.
	assert.Equal(t, uint64(0x0001_0000_0000), packedEntry(5))
	// Bit length 30 covers the boundary 10^9.
	assert.Equal(t, uint64(0x0008_C465_3600), packedEntry(30))
	assert.Equal(t, uint64(0x0009_0000_0000), packedEntry(32))
}
