package literal

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestInt(t *testing.T) {
	if got := Int(-12, "i8"); got != "-12i8" {
		t.Errorf("Int = %q", got)
	}
	if got := Uint(12345, "u64"); got != "12345u64" {
		t.Errorf("Uint = %q", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 1, -1.5, 12345.6789, 1e300, 5e-324} {
		got := Float64(v)
		if !strings.HasSuffix(got, "f64") {
			t.Fatalf("Float64(%v) = %q: missing suffix", v, got)
		}
		back, err := strconv.ParseFloat(strings.TrimSuffix(got, "f64"), 64)
		if err != nil {
			t.Fatalf("Float64(%v) = %q: %v", v, got, err)
		}
		if math.Float64bits(back) != math.Float64bits(v) {
			t.Errorf("Float64(%v) = %q: parses to %v", v, got, back)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, v := range []float32{0.1, 3.5, -2.25e-10} {
		got := Float32(v)
		back, err := strconv.ParseFloat(strings.TrimSuffix(got, "f32"), 32)
		if err != nil {
			t.Fatalf("Float32(%v) = %q: %v", v, got, err)
		}
		if float32(back) != v {
			t.Errorf("Float32(%v) = %q: parses to %v", v, got, back)
		}
	}
}

func TestFloatSpecials(t *testing.T) {
	if got := Float64(math.NaN()); got != "f64::NAN" {
		t.Errorf("NaN = %q", got)
	}
	if got := Float64(math.Inf(1)); got != "f64::INFINITY" {
		t.Errorf("+Inf = %q", got)
	}
	if got := Float32(float32(math.Inf(-1))); got != "f32::NEG_INFINITY" {
		t.Errorf("-Inf = %q", got)
	}
}

func TestQuote(t *testing.T) {
	cases := []struct{ in, want string }{
		{`plain`, `"plain"`},
		{"a\"b", `"a\"b"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"nul\x00", `"nul\0"`},
		{"bell\x07", `"bell\u{7}"`},
		{"del\x7f", `"del\u{7f}"`},
		{"unicode é", "\"unicode é\""},
	}
	for _, c := range cases {
		if got := Quote(c.in); got != c.want {
			t.Errorf("Quote(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestQuoteInvalidUTF8(t *testing.T) {
	// invalid bytes have no text rendering; they substitute to U+FFFD
	if got, want := Quote("a\xffb"), "\"a�b\""; got != want {
		t.Fatalf("Quote = %s, want %s", got, want)
	}
}

func TestQuoteChar(t *testing.T) {
	cases := []struct {
		in   rune
		want string
	}{
		{'c', `'c'`},
		{'\'', `'\''`},
		{'"', `'"'`},
		{'\n', `'\n'`},
		{'\x1b', `'\u{1b}'`},
	}
	for _, c := range cases {
		if got := QuoteChar(c.in); got != c.want {
			t.Errorf("QuoteChar(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}
