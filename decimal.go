package fastfloat

// maxDecimalDigits is the number of significant digits the slow path keeps.
// A binary64 halfway point has at most 767 of them, so the digits beyond
// only matter as a sticky bit.
const maxDecimalDigits = 800

// decimal is 0.d[0]d[1]...d[nd-1] * 10^dp, exactly, up to trunc.
type decimal struct {
	d     [maxDecimalDigits]byte // digits, big-endian representation
	nd    int                    // number of digits used
	dp    int64                  // decimal point
	neg   bool                   // negative flag
	trunc bool                   // discarded nonzero digits beyond d[:nd]
}

func (d *decimal) set(num *number) {
	d.nd = 0
	d.neg = num.neg
	d.trunc = false

	var nsig int64
	for i := 0; i < len(num.intDigits); i++ {
		c := num.intDigits[i]
		if c == '0' && nsig == 0 { // ignore leading zeros
			continue
		}
		nsig++
		d.add(c)
	}
	d.dp = nsig
	for i := 0; i < len(num.fracDigits); i++ {
		c := num.fracDigits[i]
		if c == '0' && nsig == 0 { // ignore leading zeros
			d.dp--
			continue
		}
		nsig++
		d.add(c)
	}
	d.dp += num.exp

	// trailing zeros don't change the value.
	for d.nd > 0 && d.d[d.nd-1] == '0' {
		d.nd--
	}
}

func (d *decimal) add(c byte) {
	if d.nd < len(d.d) {
		d.d[d.nd] = c
		d.nd++
	} else if c != '0' {
		d.trunc = true
	}
}

// floatBits converts d to flt exactly.
func (d *decimal) floatBits(flt *floatInfo) uint64 {
	// Zero is always special.
	if d.nd == 0 {
		return flt.zero(d.neg)
	}

	// Obvious overflow/underflow.
	if d.dp > flt.maxDecimalPoint {
		return flt.inf(d.neg)
	}
	if d.dp < flt.minDecimalPoint {
		return flt.zero(d.neg)
	}

	// d = digits * 10^e = digits * 5^e * 2^e.
	e := int(d.dp) - d.nd
	num := newBigUint()
	num.setDigits(d.d[:d.nd])

	var mant uint64
	var exp int
	var trunc bool
	if e >= 0 {
		num.mulPow5(e)
		mant, exp, trunc = num.top64()
		exp += e
	} else {
		den := newBigUint()
		den.setUint64(1)
		den.mulPow5(-e)
		mant, exp, trunc = quoBits(&num, &den)
		exp += e
	}
	return assemble(mant, exp, d.neg, trunc || d.trunc, flt)
}

// convert returns the bits of num in flt, correctly rounded.
func convert(num *number, flt *floatInfo) uint64 {
	if !num.trunc {
		if f, ok := atofExact(num.mant, num.exp10, num.neg, flt); ok {
			return f
		}
	}
	if f, ok := eiselLemire(num.mant, num.exp10, num.neg, flt); ok {
		if !num.trunc {
			return f
		}
		// Even if the mantissa was truncated, we may
		// have found the correct result. Confirm by
		// converting the upper mantissa bound.
		if fUp, ok := eiselLemire(num.mant+1, num.exp10, num.neg, flt); ok && f == fUp {
			return f
		}
	}
	return convertSlow(num, flt)
}

// convertSlow converts num with exact arithmetic only.
func convertSlow(num *number, flt *floatInfo) uint64 {
	var d decimal
	d.set(num)
	return d.floatBits(flt)
}
