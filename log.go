package ilog10

import (
	"math/bits"
)

// Unsigned is the set of integer types the lookup tables cover. Named
// unsigned types (for example a uint64 wrapper used as a decimal
// coefficient) satisfy it as well.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Log2Floor returns floor(log2(x)), i.e. the bit position of the highest
// set bit of x. This function panics if x == 0.
func Log2Floor[T Unsigned](x T) uint8 {
	if x == 0 {
		panic("log2 of zero does not exist")
	}
	return uint8(bits.Len64(uint64(x)) - 1)
}
