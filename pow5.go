package fastfloat

//go:generate go run ./internal/cmd/genpow5 --output pow5table.go

// powerOfFive is a 128-bit mantissa hi:lo of a power of five.
// 10^q and 5^q share it, only the binary exponent differs.
type powerOfFive struct {
	hi uint64
	lo uint64
}

// powerOfFiveAt returns the table entry for 5^q.
func powerOfFiveAt(q int64) (powerOfFive, bool) {
	if q < powersOfFiveMinExp10 || q > powersOfFiveMaxExp10 {
		return powerOfFive{}, false
	}
	return powersOfFive[q-powersOfFiveMinExp10], true
}
