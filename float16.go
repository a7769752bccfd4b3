package fastfloat

import (
	"math"
	"math/bits"
)

// Float16 is an IEEE 754 binary16 value.
type Float16 uint16

// Float16frombits returns the floating point number corresponding
// the IEEE 754 binary representation b.
func Float16frombits(b uint16) Float16 {
	return Float16(b)
}

// ParseFloat16 is Parse for half precision.
func ParseFloat16(s string) (Float16, error) {
	f, err := atof("ParseFloat16", s, &float16info)
	return Float16(f), err
}

// ParseFloat16Prefix is ParsePrefix for half precision.
func ParseFloat16Prefix(s string) (Float16, int, error) {
	f, n, err := atofPrefix("ParseFloat16Prefix", s, &float16info)
	return Float16(f), n, err
}

// Bits returns the IEEE 754 binary representation of f.
func (f Float16) Bits() uint16 {
	return uint16(f)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func (f Float16) IsNaN() bool {
	return f&0x7c00 == 0x7c00 && f&0x03ff != 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float16) IsInf(sign int) bool {
	return sign >= 0 && f == 0x7c00 || sign <= 0 && f == 0xfc00
}

// Signbit reports whether f is negative or negative zero.
func (f Float16) Signbit() bool {
	return f&0x8000 != 0
}

// Float32 returns the float32 representation of f.
func (f Float16) Float32() float32 {
	sign := uint32(f&0x8000) << 16
	exp := uint32(f>>10) & 0x1f
	mant := uint32(f & 0x3ff)

	if exp == 0 {
		// subnormal number
		if mant == 0 {
			exp = 0
		} else {
			l := bits.Len32(mant)
			mant = (mant << (10 - l + 1)) & 0x3ff
			exp = 127 - 25 + uint32(l)
		}
	} else if exp == 31 {
		// infinity or NaN
		exp = 255
	} else {
		// normal number
		exp += 127 - 15
	}
	return math.Float32frombits(sign | (exp << 23) | (mant << (23 - 10)))
}

// Float64 returns the float64 representation of f.
func (f Float16) Float64() float64 {
	sign := uint64(f&0x8000) << 48
	exp := uint64(f>>10) & 0x1f
	mant := uint64(f & 0x3ff)

	if exp == 0 {
		// subnormal number
		l := bits.Len64(mant)
		if l == 0 {
			exp = 0
		} else {
			mant = (mant << (10 - l + 1)) & 0x3ff
			exp = 1023 - 25 + uint64(l)
		}
	} else if exp == 31 {
		// infinity or NaN
		exp = 2047
	} else {
		// normal number
		exp += 1023 - 15
	}
	return math.Float64frombits(sign | (exp << 52) | (mant << (52 - 10)))
}
