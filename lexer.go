package fastfloat

// maxMantDigits is the number of significant digits packed into
// number.mant. 10^19 fits in uint64.
const maxMantDigits = 19

// exponentLimit bounds an explicit exponent. Anything beyond it is
// infinity or zero for every format, given any realistic input length.
const exponentLimit = 1 << 40

// number is a decimal literal split out of its text.
type number struct {
	neg   bool
	mant  uint64 // the first maxMantDigits significant digits
	exp10 int64  // mant * 10^exp10 is the value, up to the dropped digits
	trunc bool   // some dropped digit was nonzero

	// the raw digits, for the slow path.
	intDigits  string
	fracDigits string
	exp        int64 // explicit exponent
}

// lower(c) is a lower-case letter if and only if
// c is either that lower-case letter or the equivalent upper-case letter.
// Instead of writing c == 'x' || c == 'X' one can write lower(c) == 'x'.
// Note that lower of non-letters can produce other non-letters.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// commonPrefixLenIgnoreCase returns the length of the common
// prefix of s and prefix, with the character case of s ignored.
// The prefix argument must be all lower-case.
func commonPrefixLenIgnoreCase(s, prefix string) int {
	n := len(prefix)
	if n > len(s) {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return i
		}
	}
	return n
}

// special parses "inf", "infinity" and "nan" with an optional sign,
// ignoring case. It reports the bits for flt and the number of bytes read.
func special(s string, flt *floatInfo) (f uint64, n int, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}

	neg := false
	nsign := 0
	switch s[0] {
	case '+', '-':
		neg = s[0] == '-'
		nsign = 1
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, 0, false
	}

	switch s[0] {
	case 'i', 'I':
		n := commonPrefixLenIgnoreCase(s, "infinity")
		// Anything longer than "inf" is ok, but if we
		// don't have "infinity", only consume "inf".
		if 3 < n && n < 8 {
			n = 3
		}
		if n == 3 || n == 8 {
			return flt.inf(neg), nsign + n, true
		}
	case 'n', 'N':
		if commonPrefixLenIgnoreCase(s, "nan") == 3 {
			return flt.nan(neg), nsign + 3, true
		}
	}
	return 0, 0, false
}

// readNumber reads the longest decimal literal at the start of s.
// It reports the number of bytes consumed (i), and whether a number
// was found at all (ok).
func readNumber(s string) (num number, i int, ok bool) {
	// optional sign
	if i >= len(s) {
		return
	}
	switch s[i] {
	case '+':
		i++
	case '-':
		num.neg = true
		i++
	}

	// digits
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	num.intDigits = s[start:i]
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		num.fracDigits = s[start:i]
	}
	if len(num.intDigits) == 0 && len(num.fracDigits) == 0 {
		return num, 0, false
	}

	// optional exponent moves decimal point.
	// An 'e' without digits after it is not part of the number.
	if i < len(s) && lower(s[i]) == 'e' {
		j := i + 1
		esign := int64(1)
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			if s[j] == '-' {
				esign = -1
			}
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			var e int64
			for ; j < len(s) && isDigit(s[j]); j++ {
				if e < exponentLimit {
					e = e*10 + int64(s[j]-'0')
				}
			}
			num.exp = e * esign
			i = j
		}
	}

	// pack the significant digits.
	nd := int64(0)
	ndMant := 0
	for k := 0; k < len(num.intDigits); k++ {
		c := num.intDigits[k]
		if c == '0' && nd == 0 { // ignore leading zeros
			continue
		}
		nd++
		if ndMant < maxMantDigits {
			num.mant = num.mant*10 + uint64(c-'0')
			ndMant++
		} else if c != '0' {
			num.trunc = true
		}
	}
	dp := nd
	for k := 0; k < len(num.fracDigits); k++ {
		c := num.fracDigits[k]
		if c == '0' && nd == 0 { // ignore leading zeros
			dp--
			continue
		}
		nd++
		if ndMant < maxMantDigits {
			num.mant = num.mant*10 + uint64(c-'0')
			ndMant++
		} else if c != '0' {
			num.trunc = true
		}
	}

	if num.mant != 0 {
		num.exp10 = dp + num.exp - int64(ndMant)
	}
	ok = true
	return
}
