package fastfloat

import "math/bits"

// bigUint is an arbitrary-precision unsigned integer
// in base 2^32, least significant limb first, with no leading zero limbs.
type bigUint struct {
	limbs []uint32
}

// bigUintLimbs covers the largest operands the slow path builds for
// binary64 (about 2700 bits), so that they rarely grow.
const bigUintLimbs = 96

func newBigUint() bigUint {
	return bigUint{limbs: make([]uint32, 0, bigUintLimbs)}
}

// pow5u32[k] is 5^k; 5^13 is the largest power that fits in uint32.
var pow5u32 = [...]uint32{
	1, 5, 25, 125, 625, 3125, 15625, 78125, 390625,
	1953125, 9765625, 48828125, 244140625, 1220703125,
}

func (x *bigUint) isZero() bool {
	return len(x.limbs) == 0
}

func (x *bigUint) setUint64(v uint64) {
	x.limbs = x.limbs[:0]
	for v != 0 {
		x.limbs = append(x.limbs, uint32(v))
		v >>= 32
	}
}

// setDigits sets x to the decimal digits ds ('0' to '9'), most significant first.
func (x *bigUint) setDigits(ds []byte) {
	x.limbs = x.limbs[:0]
	for len(ds) > 0 {
		n := len(ds)
		if n > 9 {
			n = 9
		}
		var chunk uint32
		for _, c := range ds[:n] {
			chunk = chunk*10 + uint32(c-'0')
		}
		x.mulSmall(uint32(uint64pow10[n]))
		x.addSmall(chunk)
		ds = ds[n:]
	}
}

func (x *bigUint) mulSmall(m uint32) {
	var carry uint64
	for i, l := range x.limbs {
		v := uint64(l)*uint64(m) + carry
		x.limbs[i] = uint32(v)
		carry = v >> 32
	}
	if carry != 0 {
		x.limbs = append(x.limbs, uint32(carry))
	}
	x.norm()
}

func (x *bigUint) addSmall(a uint32) {
	carry := uint64(a)
	for i := 0; carry != 0 && i < len(x.limbs); i++ {
		v := uint64(x.limbs[i]) + carry
		x.limbs[i] = uint32(v)
		carry = v >> 32
	}
	if carry != 0 {
		x.limbs = append(x.limbs, uint32(carry))
	}
}

// mulPow5 multiplies x by 5^k.
func (x *bigUint) mulPow5(k int) {
	const step = len(pow5u32) - 1
	for k >= step {
		x.mulSmall(pow5u32[step])
		k -= step
	}
	if k > 0 {
		x.mulSmall(pow5u32[k])
	}
}

// shl shifts x left by n bits.
func (x *bigUint) shl(n uint) {
	if x.isZero() || n == 0 {
		return
	}
	words, s := int(n/32), n%32
	old := len(x.limbs)
	for i := 0; i < words+1; i++ {
		x.limbs = append(x.limbs, 0)
	}
	l := x.limbs
	if s == 0 {
		copy(l[words:], l[:old])
		l[old+words] = 0
	} else {
		l[old+words] = l[old-1] >> (32 - s)
		for i := old - 1; i > 0; i-- {
			l[i+words] = l[i]<<s | l[i-1]>>(32-s)
		}
		l[words] = l[0] << s
	}
	for i := 0; i < words; i++ {
		l[i] = 0
	}
	x.norm()
}

// shr1 shifts x right by one bit.
func (x *bigUint) shr1() {
	l := x.limbs
	for i := 0; i < len(l); i++ {
		l[i] >>= 1
		if i+1 < len(l) {
			l[i] |= l[i+1] << 31
		}
	}
	x.norm()
}

// cmp compares x and y and returns -1, 0 or +1.
func (x *bigUint) cmp(y *bigUint) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// sub sets x to x - y. It requires x >= y.
func (x *bigUint) sub(y *bigUint) {
	var borrow uint32
	for i := range x.limbs {
		var yl uint32
		if i < len(y.limbs) {
			yl = y.limbs[i]
		}
		x.limbs[i], borrow = bits.Sub32(x.limbs[i], yl, borrow)
	}
	x.norm()
}

func (x *bigUint) bitLen() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}
	return (n-1)*32 + bits.Len32(x.limbs[n-1])
}

// top64 returns x as m * 2^shift + rest, where m holds the 64 most
// significant bits of x, and reports whether rest is nonzero.
func (x *bigUint) top64() (m uint64, shift int, trunc bool) {
	n := x.bitLen()
	if n <= 64 {
		for i := len(x.limbs) - 1; i >= 0; i-- {
			m = m<<32 | uint64(x.limbs[i])
		}
		return m, 0, false
	}

	shift = n - 64
	i, off := shift/32, uint(shift%32)
	m = uint64(x.limbs[i]) >> off
	if i+1 < len(x.limbs) {
		m |= uint64(x.limbs[i+1]) << (32 - off)
	}
	if i+2 < len(x.limbs) {
		m |= uint64(x.limbs[i+2]) << (64 - off)
	}

	trunc = x.limbs[i]&(1<<off-1) != 0
	for j := 0; !trunc && j < i; j++ {
		trunc = x.limbs[j] != 0
	}
	return m, shift, trunc
}

// quoBits divides num by den and returns the quotient as q * 2^exp
// with 62 or 63 significant bits in q, and whether the division is inexact.
// num and den are clobbered.
func quoBits(num, den *bigUint) (q uint64, exp int, inexact bool) {
	const qbits = 62
	s := qbits + den.bitLen() - num.bitLen()
	if s > 0 {
		num.shl(uint(s))
	} else if s < 0 {
		den.shl(uint(-s))
	}
	// now num / den is in [2^(qbits-1), 2^(qbits+1)).

	// Restoring binary long division, one quotient bit per step.
	den.shl(qbits)
	for i := 0; i <= qbits; i++ {
		q <<= 1
		if num.cmp(den) >= 0 {
			num.sub(den)
			q |= 1
		}
		if i < qbits {
			den.shr1()
		}
	}
	return q, -s, !num.isZero()
}

// norm drops leading zero limbs.
func (x *bigUint) norm() {
	n := len(x.limbs)
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	x.limbs = x.limbs[:n]
}
