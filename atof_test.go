package fastfloat

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

func TestParseFloat16(t *testing.T) {
	tests := []struct {
		s string
		x Float16
	}{
		{"0", 0},
		{"-0", 0x8000},
		{"+Inf", 0x7c00},
		{"-Inf", 0xfc00},
		{"+infinity", 0x7c00},
		{"-infinity", 0xfc00},
		{"NaN", 0x7e00},

		// greater than one
		{"1", 0x3c00},
		{"2", 0x4000},
		{"65504", 0x7bff}, // maximum finite value

		// 65519 is greater than the maximum finite value 65504 but it's ok.
		// because it round down to 65504.
		{"65519", 0x7bff},

		// less than one
		{"0.5", 0x3800},
		{"0.00024414062", 0x0c00},
		{"0.00006103515625", 0x0400},

		// subnormal numbers
		{"0.000030517578125", 0x0200},
		{"0.000000059604644775390625", 0x0001},
		{"0.0000000298023223876953125", 0x0000}, // half of the minimum, round to even
		{"0.0000000298023223876953125000001", 0x0001},

		// test rounding
		{"1.0009765625", 0x3c01}, // minimum value greater than one
		{"1.00048828125", 0x3c00},
		{"1.0004882812500001", 0x3c01},
		{"1.0014648437499999", 0x3c01},
		{"1.00146484375", 0x3c02},
		{"0.1", 0x2e66},
		{"3.14159", 0x4248},
	}

	for _, tt := range tests {
		got, err := ParseFloat16(tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if got != tt.x {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.x, got)
		}
	}
}

func TestParseFloat16_overflow(t *testing.T) {
	test := []string{
		"65520",
		"6.552e4",
		"1e5",
	}

	for _, tt := range test {
		got, err := ParseFloat16(tt)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt, err)
		}
		if !got.IsInf(1) {
			t.Errorf("%q: expected +Inf, got %x", tt, got)
		}
	}
}

func TestParse_literals(t *testing.T) {
	tests := []struct {
		s    string
		bits uint64
	}{
		{"1303e-20", 0x3c6e0b8dedbf1ba8},
		{"2606e-20", 0x3c7e0b8dedbf1ba8},
		{"5212e-20", 0x3c8e0b8dedbf1ba8},
	}
	for _, tt := range tests {
		got, err := Parse[float64](tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if math.Float64bits(got) != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, math.Float64bits(got))
		}
	}
}

func TestParse_boundaries(t *testing.T) {
	tests := []struct {
		s    string
		bits uint64
	}{
		{"1e400", 0x7ff0000000000000},
		{"-1e400", 0xfff0000000000000},
		{"1e-400", 0},
		{"-1e-400", 0x8000000000000000},
		{"0", 0},
		{"-0", 0x8000000000000000},
		{"0e999999999999999999999", 0},
		{"1e99999999999999999999", 0x7ff0000000000000},
		{"1e-99999999999999999999", 0},
		{"99999999999999999999999999999999999999999999999999e250", 0x7e37e43c8800759c},
		{"99999999999999999999999999999999999999999999999999e300", 0x7ff0000000000000},
		{"1.7976931348623157e308", 0x7fefffffffffffff},
		{"1.7976931348623159e308", 0x7ff0000000000000},
		{"4.9e-324", 1},
		{"2.4703282292062327e-324", 0},
		{"2.4703282292062328e-324", 1},
		{"2.2250738585072011e-308", 0x000fffffffffffff},
		{"2.2250738585072012e-308", 0x0010000000000000},
	}
	for _, tt := range tests {
		got, err := Parse[float64](tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if math.Float64bits(got) != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, math.Float64bits(got))
		}
	}
}

func TestParse_float32(t *testing.T) {
	tests := []struct {
		s    string
		bits uint32
	}{
		{"0.1", 0x3dcccccd},
		{"16777217", 0x4b800000},
		{"16777219", 0x4b800002},
		{"3.4028235e38", 0x7f7fffff},
		{"3.4028236e38", 0x7f800000},
		{"1.4e-45", 0x00000001},
		{"7e-46", 0},
		{"7.1e-46", 0x00000001},
		{"1e23", 0x65a96816},
		{"123456789012345678901234567890", 0x6fc77488},
		{"1.00000017881393432617187499", 0x3f800001},
		{"-0", 0x80000000},
	}
	for _, tt := range tests {
		got, err := Parse[float32](tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if math.Float32bits(got) != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, math.Float32bits(got))
		}
	}
}

func TestParse_special(t *testing.T) {
	if f, err := Parse[float64]("inf"); err != nil || !math.IsInf(f, 1) {
		t.Errorf("inf: expected +Inf, got %v, %v", f, err)
	}
	if f, err := Parse[float64]("-INFINITY"); err != nil || !math.IsInf(f, -1) {
		t.Errorf("-INFINITY: expected -Inf, got %v, %v", f, err)
	}
	if f, err := Parse[float32]("nan"); err != nil || !math.IsNaN(float64(f)) {
		t.Errorf("nan: expected NaN, got %v, %v", f, err)
	}
	if f, err := Parse[float64]("-nan"); err != nil || !math.IsNaN(f) || !math.Signbit(f) {
		t.Errorf("-nan: expected NaN with the sign bit, got %v, %v", f, err)
	}
	if _, err := Parse[float64]("infinit"); err == nil {
		t.Errorf("infinit: expected an error")
	}
}

func TestParse_malformed(t *testing.T) {
	tests := []struct {
		s   string
		err error
	}{
		{"", ErrEmpty},
		{"+", ErrEmpty},
		{"-", ErrEmpty},
		{"   ", ErrEmpty},
		{".", ErrSyntax},
		{"+.", ErrSyntax},
		{"e5", ErrSyntax},
		{".e5", ErrSyntax},
		{"1e", ErrSyntax},
		{"1e+", ErrSyntax},
		{"1e-", ErrSyntax},
		{"--1", ErrSyntax},
		{"+-1", ErrSyntax},
		{"1.2.3", ErrSyntax},
		{"1..2", ErrSyntax},
		{"0x1p0", ErrTrailing},
		{"1_000", ErrTrailing},
		{"12abc", ErrTrailing},
		{" 1", ErrSyntax},
		{"1 ", ErrTrailing},
		{"infx", ErrTrailing},
		{"abc", ErrSyntax},
	}
	for _, tt := range tests {
		got, err := Parse[float64](tt.s)
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.s, tt.err, err)
		}
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Errorf("%q: expected strconv.ErrSyntax compatible error, got %v", tt.s, err)
		}
		var numErr *NumError
		if !errors.As(err, &numErr) || numErr.Num != tt.s || numErr.Func != "Parse" {
			t.Errorf("%q: unexpected error %#v", tt.s, err)
		}
		if got != 0 {
			t.Errorf("%q: expected 0, got %v", tt.s, got)
		}
	}
}

func TestNumError(t *testing.T) {
	_, err := ParseFloat("1.2.3", 64)
	want := `fastfloat.ParseFloat: parsing "1.2.3": invalid syntax`
	if err == nil || err.Error() != want {
		t.Errorf("expected %s, got %v", want, err)
	}
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		s string
		f float64
		n int
	}{
		{"1", 1, 1},
		{"1e", 1, 1},
		{"1e+", 1, 1},
		{"1ex", 1, 1},
		{"1e5x", 1e5, 3},
		{"1.5.5", 1.5, 3},
		{"1.", 1, 2},
		{".5,", 0.5, 2},
		{"-2.5e-3 rest", -2.5e-3, 7},
		{"12abc", 12, 2},
		{"infinity and beyond", math.Inf(1), 8},
		{"infin", math.Inf(1), 3},
		{"-inf1", math.Inf(-1), 4},
		{"0x10", 0, 1},
		{"1_000", 1, 1},
	}
	for _, tt := range tests {
		f, n, err := ParsePrefix[float64](tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
			continue
		}
		if f != tt.f || n != tt.n {
			t.Errorf("%q: expected %v, %d, got %v, %d", tt.s, tt.f, tt.n, f, n)
		}
	}

	for _, s := range []string{"", "+", ".", "e1", "x"} {
		if _, n, err := ParsePrefix[float64](s); err == nil || n != 0 {
			t.Errorf("%q: expected an error, got n = %d, err = %v", s, n, err)
		}
	}
	if _, _, err := ParsePrefix[float64](""); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestParseFloat_bitSize(t *testing.T) {
	tests := []struct {
		s       string
		bitSize int
		f       float64
	}{
		{"0.1", 64, 0.1},
		{"0.1", 32, float64(float32(0.1))},
		{"0.1", 16, 0x1.998p-04},
		{"0.1", 0, 0.1},
		{"65520", 16, math.Inf(1)},
	}
	for _, tt := range tests {
		f, err := ParseFloat(tt.s, tt.bitSize)
		if err != nil {
			t.Errorf("%q/%d: expected no error, got %v", tt.s, tt.bitSize, err)
		}
		if f != tt.f {
			t.Errorf("%q/%d: expected %x, got %x", tt.s, tt.bitSize, tt.f, f)
		}
	}

	f, n, err := ParseFloatPrefix("3.5kg", 32)
	if err != nil || f != 3.5 || n != 3 {
		t.Errorf("3.5kg: expected 3.5, 3, got %v, %d, %v", f, n, err)
	}
}

func TestParse_roundTrip64(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100000; i++ {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		for _, s := range []string{
			strconv.FormatFloat(f, 'g', -1, 64),
			strconv.FormatFloat(f, 'e', 16, 64),
			strconv.FormatFloat(f, 'e', 25, 64),
		} {
			got, err := Parse[float64](s)
			if err != nil {
				t.Fatalf("%q: expected no error, got %v", s, err)
			}
			if math.Float64bits(got) != math.Float64bits(f) {
				t.Errorf("%q: expected %x, got %x", s, math.Float64bits(f), math.Float64bits(got))
			}
		}
	}
}

func TestParse_roundTrip32(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100000; i++ {
		f := math.Float32frombits(r.Uint32())
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			continue
		}
		for _, s := range []string{
			strconv.FormatFloat(float64(f), 'g', -1, 32),
			strconv.FormatFloat(float64(f), 'e', 8, 32),
		} {
			got, err := Parse[float32](s)
			if err != nil {
				t.Fatalf("%q: expected no error, got %v", s, err)
			}
			if math.Float32bits(got) != math.Float32bits(f) {
				t.Errorf("%q: expected %x, got %x", s, math.Float32bits(f), math.Float32bits(got))
			}
		}
	}
}

func TestParseFloat16_all(t *testing.T) {
	for bits := 0; bits < 1<<16; bits++ {
		f16 := Float16frombits(uint16(bits))
		if f16.IsNaN() {
			continue
		}
		s := strconv.FormatFloat(f16.Float64(), 'g', -1, 64)
		got, err := ParseFloat16(s)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", s, err)
		}
		if got != f16 {
			t.Errorf("%q: expected %04x, got %04x", s, f16, got)
		}
	}
}

// compareStrconv checks Parse against strconv.ParseFloat,
// which is correctly rounded too.
func compareStrconv(t *testing.T, s string) {
	t.Helper()
	want, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("%q: strconv: %v", s, err)
	}
	got, err := Parse[float64](s)
	if err != nil {
		t.Fatalf("%q: expected no error, got %v", s, err)
	}
	if math.Float64bits(got) != math.Float64bits(want) {
		t.Errorf("%q: expected %x, got %x", s, math.Float64bits(want), math.Float64bits(got))
	}

	want32, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("%q: strconv: %v", s, err)
	}
	got32, err := Parse[float32](s)
	if err != nil {
		t.Fatalf("%q: expected no error, got %v", s, err)
	}
	if math.Float32bits(got32) != math.Float32bits(float32(want32)) {
		t.Errorf("%q: expected %x, got %x", s, math.Float32bits(float32(want32)), math.Float32bits(got32))
	}
}

func randomDecimal(r *rand.Rand, maxDigits, maxExp int) string {
	var sb strings.Builder
	if r.Intn(2) == 0 {
		sb.WriteByte('-')
	}
	nd := 1 + r.Intn(maxDigits)
	dot := r.Intn(nd + 1)
	for i := 0; i < nd; i++ {
		if i == dot {
			sb.WriteByte('.')
		}
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
	sb.WriteByte('e')
	sb.WriteString(strconv.Itoa(r.Intn(2*maxExp+1) - maxExp))
	return sb.String()
}

func TestParse_random(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		compareStrconv(t, randomDecimal(r, 25, 350))
	}
	for i := 0; i < 500; i++ {
		compareStrconv(t, randomDecimal(r, 1000, 400))
	}
}

func TestParse_manyDigits(t *testing.T) {
	nines := strings.Repeat("9", 50)
	for _, e := range []int{-400, -330, -300, -50, 0, 50, 250, 258, 259, 300} {
		compareStrconv(t, nines+"e"+strconv.Itoa(e))
		compareStrconv(t, "0."+nines+"e"+strconv.Itoa(e))
	}
	// a long run of zeros between the significant digits.
	compareStrconv(t, "1."+strings.Repeat("0", 5000)+"1")
	compareStrconv(t, "0."+strings.Repeat("0", 5000)+"1e5000")
	compareStrconv(t, "9007199254740993."+strings.Repeat("0", 1000)+"1")
}

// halfway returns the exact midpoint of lo and hi.
func halfway(lo, hi float64) *big.Float {
	a := new(big.Float).SetPrec(2000).SetFloat64(lo)
	b := new(big.Float).SetPrec(2000).SetFloat64(hi)
	a.Add(a, b)
	return a.SetMantExp(a, -1)
}

// nudge returns m moved by a relative 2^-200 in the direction of sign.
func nudge(m *big.Float, sign int) *big.Float {
	eps := new(big.Float).SetPrec(2000).SetInt64(int64(sign))
	eps.SetMantExp(eps, m.MantExp(nil)-200)
	return new(big.Float).SetPrec(2000).Add(m, eps)
}

func TestNudge(t *testing.T) {
	m := halfway(1, math.Nextafter(1, 2))
	below, above := nudge(m, -1), nudge(m, +1)
	if below.Cmp(m) >= 0 || above.Cmp(m) <= 0 {
		t.Fatalf("expected %s < %s < %s", below.Text('e', 80), m.Text('e', 80), above.Text('e', 80))
	}
	if below.Text('e', 1000) == m.Text('e', 1000) || above.Text('e', 1000) == m.Text('e', 1000) {
		t.Errorf("expected the nudge to survive formatting")
	}
}

func TestParse_tiesToEven(t *testing.T) {
	tests := []struct {
		s    string
		bits uint64
	}{
		{"9007199254740993", 0x4340000000000000},
		{"9007199254740995", 0x4340000000000002},
		{"9007199254740993.0000000000000000000000000001", 0x4340000000000001},
		{"9007199254740992.9999999999999999999999999999", 0x4340000000000000},
	}
	for _, tt := range tests {
		got, err := Parse[float64](tt.s)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.s, err)
		}
		if math.Float64bits(got) != tt.bits {
			t.Errorf("%q: expected %x, got %x", tt.s, tt.bits, math.Float64bits(got))
		}
	}

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 300; i++ {
		lo := math.Float64frombits(r.Uint64() &^ (1 << 63))
		if i%3 == 0 {
			lo = math.Float64frombits(r.Uint64() & (1<<52 - 1)) // subnormal
		}
		hi := math.Nextafter(lo, math.Inf(1))
		if math.IsNaN(lo) || math.IsInf(hi, 0) {
			continue
		}
		even := lo
		if math.Float64bits(lo)&1 != 0 {
			even = hi
		}
		m := halfway(lo, hi)
		for _, tt := range []struct {
			s    string
			want float64
		}{
			{m.Text('e', 800), even},
			{nudge(m, -1).Text('e', 1000), lo},
			{nudge(m, +1).Text('e', 1000), hi},
		} {
			got, err := Parse[float64](tt.s)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if math.Float64bits(got) != math.Float64bits(tt.want) {
				t.Errorf("%.40s...: expected %x, got %x", tt.s, math.Float64bits(tt.want), math.Float64bits(got))
			}
		}
	}
}

func TestParse_tiesToEven32(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		lo := math.Float32frombits(r.Uint32() &^ (1 << 31))
		hi := math.Nextafter32(lo, float32(math.Inf(1)))
		if math.IsNaN(float64(lo)) || math.IsInf(float64(hi), 0) {
			continue
		}
		even := lo
		if math.Float32bits(lo)&1 != 0 {
			even = hi
		}
		m := halfway(float64(lo), float64(hi))
		for _, tt := range []struct {
			s    string
			want float32
		}{
			{m.Text('e', 200), even},
			{nudge(m, -1).Text('e', 300), lo},
			{nudge(m, +1).Text('e', 300), hi},
		} {
			got, err := Parse[float32](tt.s)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if math.Float32bits(got) != math.Float32bits(tt.want) {
				t.Errorf("%.40s...: expected %x, got %x", tt.s, math.Float32bits(tt.want), math.Float32bits(got))
			}
		}
	}
}

func TestParse_monotonic(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 20000; i++ {
		a := strings.TrimPrefix(randomDecimal(r, 20, 330), "-")
		b := strings.TrimPrefix(randomDecimal(r, 20, 330), "-")
		ra, okA := new(big.Rat).SetString(a)
		rb, okB := new(big.Rat).SetString(b)
		if !okA || !okB {
			t.Fatalf("bad rationals %q, %q", a, b)
		}
		if ra.Cmp(rb) > 0 {
			a, b = b, a
		}
		fa, _ := Parse[float64](a)
		fb, _ := Parse[float64](b)
		if fa > fb {
			t.Errorf("%q < %q, but %x > %x", a, b, fa, fb)
		}
		ga, _ := Parse[float32](a)
		gb, _ := Parse[float32](b)
		if ga > gb {
			t.Errorf("%q < %q, but %x > %x", a, b, ga, gb)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name string
		s    string
	}{
		{"exact", "12345.678"},
		{"eisel-lemire", "1.2345678901234567e-120"},
		{"truncated", "1.23456789012345678901234567890"},
		{"halfway", "9007199254740993"},
		{"slow", "2.4703282292062327208828439643411068618252990130716238221279284125033775363510437593264991818081799618989828234772285886546332835517796989819938739800539093906315035659515570226392290858392449105184435931802849936536152500319370457678249219365623669863658480757001585769269903706311928279558551332927834338409351978015531246597263579574622766465272827220056374006485499977096599470454020828166226237857393450736339007967761930577506740176324673600968951340535537458516661134223766678604162159680461914467291840300530057530849048765391711386591646239524912623653881879636239373280423891018672348497668235089863388587925628302755995657524455507255189313690836254779186948667994968324049705821028513185451396213837722826145437693412532098591327667236328125e-324"},
	}
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f, _ := Parse[float64](in.s)
				runtime.KeepAlive(f)
			}
		})
	}
}

func BenchmarkParse32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f, _ := Parse[float32]("3.1415927")
		runtime.KeepAlive(f)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("1303e-20")
	f.Add("1e400")
	f.Add("-0")
	f.Add("9007199254740993")
	f.Add(".5e-3")
	f.Add("infinity")

	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 5000 {
			// strconv saturates exponents at 10000, which is only exact
			// while the digits can't move the decimal point that far.
			return
		}
		got, gotErr := Parse[float64](s)
		want, wantErr := strconv.ParseFloat(s, 64)
		if wantErr != nil && errors.Is(wantErr, strconv.ErrRange) {
			wantErr = nil
		}
		if gotErr != nil {
			if got != 0 {
				t.Errorf("%q: expected 0 on error, got %v", s, got)
			}
			if wantErr == nil && !strings.ContainsAny(s, "xX_") {
				t.Errorf("%q: strconv accepts it, got %v", s, gotErr)
			}
			return
		}
		if math.IsNaN(got) {
			return
		}
		if wantErr != nil {
			t.Fatalf("%q: strconv rejects it with %v, got %x", s, wantErr, got)
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("%q: expected %x, got %x", s, math.Float64bits(want), math.Float64bits(got))
		}
	})
}
