package fastfloat

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates that the input holds no number at all.
	ErrEmpty = errors.New("empty input")

	// ErrSyntax indicates that the input does not match the number grammar.
	ErrSyntax = errors.New("invalid syntax")

	// ErrTrailing indicates that a number is followed by other characters.
	ErrTrailing = errors.New("trailing characters after number")
)

// A NumError records a failed conversion.
// It matches strconv.ErrSyntax in errors.Is, whatever its Err is.
type NumError struct {
	Func string // the failing function (Parse, ParseFloat, ...)
	Num  string // the input
	Err  error  // the reason the conversion failed (ErrEmpty, ErrSyntax, ErrTrailing)
}

func (e *NumError) Error() string {
	return "fastfloat." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func (e *NumError) Is(target error) bool {
	return target == strconv.ErrSyntax
}

func numError(fn, s string, err error) *NumError {
	return &NumError{Func: fn, Num: strings.Clone(s), Err: err}
}

// strictError classifies why s is not a number as a whole.
// n bytes of s form a number, if ok.
func strictError(fn, s string, n int, ok bool) *NumError {
	switch {
	case len(s) == 0:
		return numError(fn, s, ErrEmpty)
	case !ok:
		if t := strings.TrimSpace(s); t == "" || t == "+" || t == "-" {
			return numError(fn, s, ErrEmpty)
		}
		return numError(fn, s, ErrSyntax)
	}
	switch c := s[n]; {
	case isDigit(c), c == '.', c == '+', c == '-', lower(c) == 'e':
		// the number continues, but not in a valid way: "1e", "1.2.3".
		return numError(fn, s, ErrSyntax)
	}
	return numError(fn, s, ErrTrailing)
}
