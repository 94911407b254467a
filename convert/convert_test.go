package convert

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpers(t *testing.T) {
	var buf bytes.Buffer
	if err := Helpers(&buf, 3); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"pub trait FromTuple<T>",
		"impl<T> FromTuple<(T,T,)> for [T; 2]",
		"[tuple.0, tuple.1]",
		"impl<T0, T1> FromTuple<(T0, T1,)> for (T0, T1,)",
		"pub fn convert_tuple_1<T0, Out: FromTuple<(T0,)>>",
		"pub fn convert_tuple_3<T0, T1, T2, Out: FromTuple<(T0, T1, T2,)>>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "convert_tuple_4") {
		t.Error("arity bound not respected")
	}
}

func TestInline(t *testing.T) {
	var buf bytes.Buffer
	if err := Inline(&buf, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "pub fn") {
		t.Error("inline helpers must not be pub")
	}
	if !strings.Contains(out, "fn convert_tuple_2<T0, T1,") {
		t.Errorf("missing inline convert fn:\n%s", out)
	}
}

func TestBadArity(t *testing.T) {
	if err := Helpers(&bytes.Buffer{}, 0); err == nil {
		t.Error("expected error for zero arity")
	}
	if err := Inline(&bytes.Buffer{}, -1); err == nil {
		t.Error("expected error for negative arity")
	}
}
