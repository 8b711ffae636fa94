// Command gentables derives the lookup tables in tables.go from closed
// form and rewrites the file, so the literals are never maintained by
// hand. It is run via go generate in the package root.
package main

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"

	"github.com/dave/jennifer/jen"
	flag "github.com/spf13/pflag"
)

const (
	maxBits    = 64 // input width covered by the guess and limit tables
	packedBits = 32 // input width covered by the packed table
	packShift  = 32 // bit position of the result field in a packed entry
)

func main() {
	out := flag.String("out", "tables.go", "file to write")
	flag.Parse()

	// One decade per possible guess value, plus one saturated entry for
	// the correction past the highest guess.
	decades := floorLog10Pow2(maxBits-1) + 2

	f := jen.NewFile("ilog10")
	f.HeaderComment("Code generated by internal/gentables. DO NOT EDIT.")

	f.Comment("log10GuessByLog2[k] is floor(log10(2^k)), a lower bound for")
	f.Comment("floor(log10(x)) over every x whose floor(log2(x)) is k.")
	f.Var().Id("log10GuessByLog2").Op("=").Index(jen.Lit(maxBits)).Uint8().ValuesFunc(func(g *jen.Group) {
		for k := 0; k < maxBits; k++ {
			g.Lit(floorLog10Pow2(k))
		}
	})

	f.Comment("decadeLimits[d] is the largest x for which floor(log10(x)) == d. The")
	f.Comment("final entry is saturated to the largest uint64.")
	f.Var().Id("decadeLimits").Op("=").Index(jen.Lit(decades)).Uint64().ValuesFunc(func(g *jen.Group) {
		for d := 0; d < decades; d++ {
			g.Id(strconv.FormatUint(decadeLimit(d), 10))
		}
	})

	f.Comment("pow10[e] is 10^e.")
	f.Var().Id("pow10").Op("=").Index(jen.Lit(decades)).Uint64().ValuesFunc(func(g *jen.Group) {
		p := uint64(1)
		for e := 0; e < decades; e++ {
			g.Id(strconv.FormatUint(p, 10))
			if e < decades-1 {
				p *= 10
			}
		}
	})

	f.Comment("packedLog10ByBitLen[l] packs, for every x of bit length l, a decade")
	f.Comment("correction threshold in its low 32 bits and floor(log10) of the")
	f.Comment("smallest value of that bit length in its high bits, such that")
	f.Comment("(x + entry) >> 32 is exactly floor(log10(x)). Entry 0 covers x == 0")
	f.Comment("and yields 0.")
	f.Var().Id("packedLog10ByBitLen").Op("=").Index(jen.Lit(packedBits+1)).Uint64().ValuesFunc(func(g *jen.Group) {
		for l := 0; l <= packedBits; l++ {
			g.Id(fmt.Sprintf("%#014x", packedEntry(l)))
		}
	})

	if err := f.Save(*out); err != nil {
		fmt.Fprintln(os.Stderr, "gentables:", err)
		os.Exit(1)
	}
}

// floorLog10Pow2 returns floor(log10(2^k)), computed exactly as the
// decimal length of 2^k minus one.
func floorLog10Pow2(k int) int {
	return len(new(big.Int).Lsh(big.NewInt(1), uint(k)).String()) - 1
}

// decadeLimit returns 10^(d+1) - 1, saturated to the largest uint64.
func decadeLimit(d int) uint64 {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d)+1), nil)
	limit.Sub(limit, big.NewInt(1))
	if limit.IsUint64() {
		return limit.Uint64()
	}
	return math.MaxUint64
}

// packedEntry returns the packed constant for values of bit length l.
// With d = floor(log10) of the smallest such value, the entry is d in
// the high bits; if the range [2^(l-1), 2^l - 1] also contains the
// decade boundary 10^(d+1), the low bits hold 2^32 minus that boundary
// so the addition carries exactly for x past it.
func packedEntry(l int) uint64 {
	if l == 0 {
		return 0
	}
	hi := uint64(1)<<l - 1
	d := uint64(floorLog10Pow2(l - 1))

	boundary := uint64(10)
	for i := uint64(0); i < d; i++ {
		boundary *= 10
	}

	if boundary <= hi {
		return d<<packShift + (uint64(1)<<packShift - boundary)
	}
	return d << packShift
}
