package fastfloat

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// eiselLemire converts mant * 10^exp10 with the Eisel-Lemire algorithm.
// It gives up (ok == false) when the 128-bit approximation of 10^exp10
// can't decide the rounding, and when the result is not a normal number.
//
// https://nigeltao.github.io/blog/2020/eisel-lemire.html
// https://github.com/lemire/fast_double_parser/blob/master/include/fast_double_parser.h
func eiselLemire(mant uint64, exp10 int64, neg bool, flt *floatInfo) (f uint64, ok bool) {
	// Exp10 Range.
	if mant == 0 {
		return flt.zero(neg), true
	}
	pow, ok := powerOfFiveAt(exp10)
	if !ok {
		return 0, false
	}

	// Normalization.
	clz := bits.LeadingZeros64(mant)
	mant <<= uint(clz)
	retExp2 := uint64(217706*int(exp10)>>16+64+flt.bias) - uint64(clz)

	// the bits of the product below mantbits+3 significant bits.
	lowBits := 63 - flt.mantbits - 2
	lowMask := uint64(1)<<lowBits - 1

	// Multiplication.
	var x int128.Uint128
	x.H, x.L = bits.Mul64(mant, pow.hi)

	// Wider Approximation.
	if x.H&lowMask == lowMask && x.L+mant < mant {
		var y int128.Uint128
		y.H, y.L = bits.Mul64(mant, pow.lo)
		merged := x.Add(int128.Uint128{L: y.H})
		if merged.H&lowMask == lowMask && merged.L+1 == 0 && y.L+mant < mant {
			return 0, false
		}
		x = merged
	}

	// Shifting to mantbits+2 Bits.
	msb := x.H >> 63
	retMant := x.H >> (msb + uint64(lowBits))
	retExp2 -= 1 ^ msb

	// Half-way Ambiguity.
	if x.L == 0 && x.H&lowMask == 0 && retMant&3 == 1 {
		return 0, false
	}

	// From mantbits+2 to mantbits+1 Bits.
	retMant += retMant & 1
	retMant >>= 1
	if retMant>>(flt.mantbits+1) > 0 {
		retMant >>= 1
		retExp2 += 1
	}

	// retExp2 is a uint64. Zero or underflow means that we're in subnormal
	// space. expMask or above means that we're in Inf/NaN space.
	if retExp2-1 >= flt.expMask()-1 {
		return 0, false
	}
	return pack(retMant, int(retExp2), neg, flt), true
}
