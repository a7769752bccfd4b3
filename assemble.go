package fastfloat

// assemble returns the bits of mant * 2^exp rounded to flt,
// to nearest with ties to even.
// If trunc is true, nonzero bits below mant have been omitted.
//
// based on https://github.com/golang/go/blob/8c92897e15d15fbc664cd5a05132ce800cf4017f/src/strconv/atof.go#L494-L562
func assemble(mant uint64, exp int, neg, trunc bool, flt *floatInfo) uint64 {
	maxExp := int(flt.expMask()) - flt.bias - 1
	minExp := 1 - flt.bias
	exp += int(flt.mantbits) // mantissa now implicitly divided by 2^mantbits.

	// Shift mantissa and exponent to bring representation into float range.
	// Eventually we want a mantissa with a leading 1-bit followed by mantbits other bits.
	// For rounding, we need two more, where the bottom bit represents
	// whether that bit or any later bit was non-zero.
	// (If the mantissa has already lost non-zero bits, trunc is true,
	// and we OR in a 1 below after shifting left appropriately.)
	for mant != 0 && mant>>(flt.mantbits+2) == 0 {
		mant <<= 1
		exp--
	}
	if trunc {
		mant |= 1
	}
	for mant>>(1+flt.mantbits+2) != 0 {
		mant = mant>>1 | mant&1
		exp++
	}

	// If exponent is too negative,
	// denormalize in hopes of making it representable.
	// (The -2 is for the rounding bits.)
	for mant > 1 && exp < minExp-2 {
		mant = mant>>1 | mant&1
		exp++
	}

	// Round using two bottom bits.
	round := mant & 3
	mant >>= 2
	round |= mant & 1 // round to even (round up if mantissa is odd)
	exp += 2
	if round == 3 {
		mant++
		if mant == 1<<(1+flt.mantbits) {
			mant >>= 1
			exp++
		}
	}

	if mant>>flt.mantbits == 0 { // subnormal or zero
		exp = -flt.bias
	}
	if exp > maxExp {
		return flt.inf(neg)
	}
	return pack(mant, exp+flt.bias, neg, flt)
}

// pack assembles the bits of a rounded mantissa and a biased exponent.
// The implicit leading bit of mant, if any, is dropped.
func pack(mant uint64, biased int, neg bool, flt *floatInfo) uint64 {
	bits := mant & (1<<flt.mantbits - 1)
	bits |= (uint64(biased) & flt.expMask()) << flt.mantbits
	if neg {
		bits |= flt.signMask()
	}
	return bits
}
