package fastfloat

import (
	"math"
	"math/bits"

	"github.com/shogo82148/int128"
)

// exact powers of 10.
var float64pow10 = []float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

var float32pow10 = []float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

var uint64pow10 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// uint128pow10[k] is 10^k for k up to float64info.maxExact10.
var uint128pow10 = func() (t [23]int128.Uint128) {
	ten := int128.Uint128{L: 10}
	t[0] = int128.Uint128{L: 1}
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1].Mul(ten)
	}
	return
}()

// atofExact converts mant * 10^exp10 when both operands are exactly
// representable in flt, so that one multiplication or division
// rounds correctly.
func atofExact(mant uint64, exp10 int64, neg bool, flt *floatInfo) (f uint64, ok bool) {
	if mant>>flt.mantbits != 0 {
		return
	}
	if exp10 < -int64(flt.maxExact10) || exp10 > int64(flt.maxExact10+flt.exactDigits) {
		return
	}
	exp := int(exp10)
	if !softFloat {
		switch flt {
		case &float64info:
			return atof64exact(mant, exp, neg)
		case &float32info:
			return atof32exact(mant, exp, neg)
		}
	}
	return atofSoftExact(mant, exp, neg, flt)
}

func atof64exact(mant uint64, exp int, neg bool) (uint64, bool) {
	f := float64(mant)
	if neg {
		f = -f
	}
	switch {
	case exp > 0:
		// If exponent is big but number of digits is not,
		// can move a few zeros into the integer part.
		if exp > 22 {
			f *= float64pow10[exp-22]
			exp = 22
		}
		if f > 1e15 || f < -1e15 {
			// the exponent was really too large.
			return 0, false
		}
		f *= float64pow10[exp]
	case exp < 0:
		f /= float64pow10[-exp]
	}
	return math.Float64bits(f), true
}

func atof32exact(mant uint64, exp int, neg bool) (uint64, bool) {
	f := float32(mant)
	if neg {
		f = -f
	}
	switch {
	case exp > 0:
		if exp > 10 {
			f *= float32pow10[exp-10]
			exp = 10
		}
		if f > 1e7 || f < -1e7 {
			return 0, false
		}
		f *= float32pow10[exp]
	case exp < 0:
		f /= float32pow10[-exp]
	}
	return uint64(math.Float32bits(f)), true
}

// atofSoftExact is atof64exact and atof32exact done in integers.
// Every rounding happens once, in assemble, at the precision of flt.
func atofSoftExact(mant uint64, exp int, neg bool, flt *floatInfo) (uint64, bool) {
	if exp > flt.maxExact10 {
		hi, lo := bits.Mul64(mant, uint64pow10[exp-flt.maxExact10])
		if hi != 0 {
			return 0, false
		}
		mant, exp = lo, flt.maxExact10
	}
	// the same bound as the native paths, so both accept the same inputs.
	if exp > 0 && mant > uint64pow10[flt.exactDigits] {
		return 0, false
	}
	if mant == 0 {
		return flt.zero(neg), true
	}

	if exp >= 0 {
		x := int128.Uint128{L: mant}
		m, shift, trunc := narrow(x.Mul(uint128pow10[exp]))
		return assemble(m, shift, neg, trunc, flt), true
	}

	// the dividend is in [2^127, 2^128) and the divisor is below 2^74,
	// so the quotient keeps more than mantbits+2 bits.
	lz := bits.LeadingZeros64(mant)
	x := int128.Uint128{H: mant << uint(lz)}
	q, r := x.DivMod(uint128pow10[-exp])
	m, shift, trunc := narrow(q)
	trunc = trunc || r != (int128.Uint128{})
	return assemble(m, shift-64-lz, neg, trunc, flt), true
}

// narrow returns the top 64 bits of x as m * 2^shift,
// and whether any bit below them is set.
func narrow(x int128.Uint128) (m uint64, shift int, trunc bool) {
	if x.H == 0 {
		return x.L, 0, false
	}
	k := uint(bits.Len64(x.H))
	m = x.L>>k | x.H<<(64-k)
	return m, int(k), x.L&(1<<k-1) != 0
}
