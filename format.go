// Package fastfloat converts decimal text to the nearest IEEE 754 binary64,
// binary32 or binary16 value, correctly rounded for every input.
package fastfloat

// Format selects the IEEE 754 binary interchange format of a parse result.
type Format int

const (
	Binary64 Format = iota // double precision
	Binary32               // single precision
	Binary16               // half precision
)

func (f Format) String() string {
	return f.info().name
}

func (f Format) info() *floatInfo {
	switch f {
	case Binary32:
		return &float32info
	case Binary16:
		return &float16info
	}
	return &float64info
}

// floatInfo is the set of constants the conversion is generic over.
type floatInfo struct {
	name     string
	mantbits uint // explicit mantissa bits
	expbits  uint
	bias     int

	// 10^k is exact for 0 <= k <= maxExact10, and integers with up to
	// exactDigits digits are exact.
	maxExact10  int
	exactDigits int

	// value = 0.ddd * 10^dp is certainly infinite when dp > maxDecimalPoint
	// and certainly rounds to zero when dp < minDecimalPoint.
	minDecimalPoint int64
	maxDecimalPoint int64
}

var float16info = floatInfo{
	name:            "binary16",
	mantbits:        10,
	expbits:         5,
	bias:            15,
	maxExact10:      4,
	exactDigits:     3,
	minDecimalPoint: -7,
	maxDecimalPoint: 5,
}

var float32info = floatInfo{
	name:            "binary32",
	mantbits:        23,
	expbits:         8,
	bias:            127,
	maxExact10:      10,
	exactDigits:     7,
	minDecimalPoint: -45,
	maxDecimalPoint: 39,
}

var float64info = floatInfo{
	name:            "binary64",
	mantbits:        52,
	expbits:         11,
	bias:            1023,
	maxExact10:      22,
	exactDigits:     15,
	minDecimalPoint: -323,
	maxDecimalPoint: 309,
}

func (flt *floatInfo) signMask() uint64 {
	return 1 << (flt.mantbits + flt.expbits)
}

func (flt *floatInfo) expMask() uint64 {
	return 1<<flt.expbits - 1
}

func (flt *floatInfo) zero(neg bool) uint64 {
	if neg {
		return flt.signMask()
	}
	return 0
}

func (flt *floatInfo) inf(neg bool) uint64 {
	return flt.zero(neg) | flt.expMask()<<flt.mantbits
}

// nan returns the canonical quiet NaN.
func (flt *floatInfo) nan(neg bool) uint64 {
	return flt.inf(neg) | 1<<(flt.mantbits-1)
}
