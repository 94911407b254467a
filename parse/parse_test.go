package parse

import (
	"errors"
	"testing"

	"github.com/Cerber-Ursi/uneval/encode"
)

func mustParse(t *testing.T, in string, opts ...ParseOption) string {
	t.Helper()
	n, err := Parse([]byte(in), opts...)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return encode.MustString(n)
}

func TestScalars(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"int", "7", "7i64"},
		{"negative", "-3", "-3i64"},
		{"float", "1.5", "1.5f64"},
		{"bool", "true", "true"},
		{"string", `"hi"`, `"hi".into()`},
		{"plain string", "hi", `"hi".into()`},
		{"null", "null", "None"},
		{"nan", ".nan", "f64::NAN"},
		{"inf", ".inf", "f64::INFINITY"},
		{"neg inf", "-.inf", "f64::NEG_INFINITY"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestSequenceAndMap(t *testing.T) {
	got := mustParse(t, "[1, 2, 3]")
	want := "vec![1i64, 2i64, 3i64].into_iter().collect()"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	got = mustParse(t, "{b: 2, a: 1}")
	want = `vec![("b".into(), 2i64), ("a".into(), 1i64)].into_iter().collect()`
	if got != want {
		t.Fatalf("map entries must keep source order: got %s, want %s", got, want)
	}
}

func TestRecordTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"record", "!Point {x: 1, y: 2}", "Point { x: 1i64, y: 2i64 }"},
		{"positional", `!Wrapper ["x"]`, `Wrapper("x".into())`},
		{"newtype scalar", "!Wrapper 3", "Wrapper(3i64)"},
		{"unit record", "!Marker", "Marker"},
		{"unit record null", "!Marker null", "Marker"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestVariantTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"unit", "!Shape::Empty", "Shape::Empty"},
		{"newtype", "!Shape::Circle 3.5", "Shape::Circle(3.5f64)"},
		{"tuple", "!Shape::Rect [2, 4]", "Shape::Rect(2i64, 4i64)"},
		{"record", "!Shape::Label {text: hi}", `Shape::Label { text: "hi".into() }`},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestSpecialTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"unit", "!unit", "()"},
		{"none", "!none", "None"},
		{"some", "!some 3", "Some(3i64)"},
		{"char", `!char "c"`, "'c'"},
		{"tuple", `!tuple [1, "a"]`, `::uneval::convert::convert_tuple_2((1i64, "a".into()))`},
		{"empty tuple", "!tuple []", "()"},
		{"binary", `!!binary "aGk="`, "vec![104u8, 105u8].into_iter().collect()"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestWidthTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"u8", "!u8 7", "7u8"},
		{"i32", "!i32 -1", "-1i32"},
		{"u64", "!u64 18446744073709551615", "18446744073709551615u64"},
		{"f32", "!f32 1.5", "1.5f32"},
		{"f32 from int", "!f32 2", "2f32"},
		{"f64", "!f64 1", "1f64"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.in); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestWidthTagRange(t *testing.T) {
	for _, in := range []string{"!u8 300", "!u8 -1", "!i8 200", "!i16 40000"} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%s: expected range error, got %v", in, err)
		}
	}
}

func TestNested(t *testing.T) {
	in := `
!Scene
shapes:
  - !Shape::Circle 1.5
  - !Shape::Empty
name: demo
`
	got := mustParse(t, in)
	want := `Scene { shapes: vec![Shape::Circle(1.5f64), Shape::Empty].into_iter().collect(), name: "demo".into() }`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestJSONInput(t *testing.T) {
	got := mustParse(t, `{"a": [1, 2], "b": null}`, ParseJSON())
	want := `vec![("a".into(), vec![1i64, 2i64].into_iter().collect()), ("b".into(), None)].into_iter().collect()`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	if _, err := Parse([]byte("!Point {x: 1}"), ParseJSON()); !errors.Is(err, ErrParse) {
		t.Fatalf("tags must be rejected in JSON mode, got %v", err)
	}
}

func TestBadInput(t *testing.T) {
	for _, in := range []string{
		"---\na: 1\n---\nb: 2\n", // two documents
		"!lowercase 1",           // not a type name
		"!char \"ab\"",           // more than one character
		"!tuple 3",               // tuple needs a sequence
		"!!binary \"%%%\"",       // bad base64
	} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", in, err)
		}
	}
}

func TestBlockLiteralString(t *testing.T) {
	got := mustParse(t, "|\n  line one\n  line two\n")
	want := `"line one\nline two\n".into()`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
