package main

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	src, err := generate(-1, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"powersOfFiveMinExp10 = -1",
		"powersOfFiveMaxExp10 = 1",
		"{0xcccccccccccccccc, 0xcccccccccccccccc}, // 5^-1",
		"{0x8000000000000000, 0x0000000000000000}, // 5^0",
		"{0xa000000000000000, 0x0000000000000000}, // 5^1",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("expected %q in\n%s", want, src)
		}
	}
}

func TestMantissa(t *testing.T) {
	for _, q := range []int{-342, -27, 0, 55, 308} {
		if n := mantissa(q).BitLen(); n != 128 {
			t.Errorf("5^%d: expected 128 bits, got %d", q, n)
		}
	}
}
