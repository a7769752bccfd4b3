// convert string to float

package fastfloat

import "math"

// Float is the set of native float types Parse can produce.
type Float interface {
	float32 | float64
}

// readFloatBits reads the longest number at the start of s.
func readFloatBits(s string, flt *floatInfo) (f uint64, n int, ok bool) {
	if f, n, ok := special(s, flt); ok {
		return f, n, true
	}
	num, n, ok := readNumber(s)
	if !ok {
		return 0, 0, false
	}
	return convert(&num, flt), n, true
}

func atof(fn, s string, flt *floatInfo) (uint64, error) {
	if f, n, ok := special(s, flt); ok {
		if n != len(s) {
			return 0, strictError(fn, s, n, true)
		}
		return f, nil
	}

	// check the syntax before doing any arithmetic.
	num, n, ok := readNumber(s)
	if !ok || n != len(s) {
		return 0, strictError(fn, s, n, ok)
	}
	return convert(&num, flt), nil
}

func atofPrefix(fn, s string, flt *floatInfo) (uint64, int, error) {
	if len(s) == 0 {
		return 0, 0, numError(fn, s, ErrEmpty)
	}
	f, n, ok := readFloatBits(s, flt)
	if !ok {
		return 0, 0, numError(fn, s, ErrSyntax)
	}
	return f, n, nil
}

// Parse converts the string s to the nearest value of type T,
// rounding to nearest with ties to even.
//
// s must be a decimal number as a whole: an optional sign, digits with an
// optional decimal point, and an optional exponent, or one of "inf",
// "infinity" and "nan" ignoring case. Leading and trailing white space is
// not skipped; trim it first if needed.
//
// Values too large for T are ±Inf and values too small are ±0 or subnormal;
// neither is an error. The error, if any, is of type *NumError.
func Parse[T Float](s string) (T, error) {
	var zero T
	if _, ok := any(zero).(float32); ok {
		f, err := atof("Parse", s, &float32info)
		return T(math.Float32frombits(uint32(f))), err
	}
	f, err := atof("Parse", s, &float64info)
	return T(math.Float64frombits(f)), err
}

// ParsePrefix is like Parse, but it converts the longest number at the start
// of s and reports the number of bytes it consumed.
func ParsePrefix[T Float](s string) (T, int, error) {
	var zero T
	if _, ok := any(zero).(float32); ok {
		f, n, err := atofPrefix("ParsePrefix", s, &float32info)
		return T(math.Float32frombits(uint32(f))), n, err
	}
	f, n, err := atofPrefix("ParsePrefix", s, &float64info)
	return T(math.Float64frombits(f)), n, err
}

// ParseFloat is a drop-in for strconv.ParseFloat on decimal input.
// bitSize 32 and 16 round to float32 and Float16 precision, and the result
// is widened to float64 exactly. Any other bitSize means 64.
func ParseFloat(s string, bitSize int) (float64, error) {
	f, err := atof("ParseFloat", s, bitSizeFormat(bitSize).info())
	return widen(f, bitSize), err
}

// ParseFloatPrefix is like ParseFloat, but it converts the longest number at
// the start of s and reports the number of bytes it consumed.
func ParseFloatPrefix(s string, bitSize int) (float64, int, error) {
	f, n, err := atofPrefix("ParseFloatPrefix", s, bitSizeFormat(bitSize).info())
	return widen(f, bitSize), n, err
}

// ParseBits converts s like Parse, and returns the IEEE 754 bits of the
// result in format f in the low bits of the returned value.
func ParseBits(s string, f Format) (uint64, error) {
	return atof("ParseBits", s, f.info())
}

// ParseBitsPrefix is like ParseBits, but it converts the longest number at
// the start of s and reports the number of bytes it consumed.
func ParseBitsPrefix(s string, f Format) (uint64, int, error) {
	return atofPrefix("ParseBitsPrefix", s, f.info())
}

func bitSizeFormat(bitSize int) Format {
	switch bitSize {
	case 16:
		return Binary16
	case 32:
		return Binary32
	}
	return Binary64
}

func widen(f uint64, bitSize int) float64 {
	switch bitSize {
	case 16:
		return Float16(f).Float64()
	case 32:
		return float64(math.Float32frombits(uint32(f)))
	}
	return math.Float64frombits(f)
}
