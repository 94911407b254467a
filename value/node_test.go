package value

import "testing"

func TestPositionalZeroArityCollapses(t *testing.T) {
	n := Positional("Empty")
	if n.Kind != UnitRecordKind {
		t.Fatalf("expected UnitRecord kind, got %s", n.Kind)
	}
	if n.Name != "Empty" {
		t.Fatalf("expected name preserved, got %q", n.Name)
	}
}

func TestTupleZeroArityCollapses(t *testing.T) {
	n := Tuple()
	if n.Kind != UnitKind {
		t.Fatalf("expected Unit kind, got %s", n.Kind)
	}
}

func TestVariantPayloadCollapse(t *testing.T) {
	if v := VariantTuple("E", "V"); v.Kind != VariantKind || len(v.Elems) != 0 {
		t.Fatalf("empty tuple payload should collapse to unit variant: %+v", v)
	}
	if v := VariantRecord("E", "V"); len(v.Fields) != 0 {
		t.Fatalf("empty record payload should collapse to unit variant: %+v", v)
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"bool", Bool(true), Bool(true), true},
		{"bool-ne", Bool(true), Bool(false), false},
		{"int-width", I8(1), I16(1), false},
		{"str", Str("a"), Str("a"), true},
		{"none-some", None(), Some(Unit()), false},
		{"some", Some(I32(3)), Some(I32(3)), true},
		{"seq", Seq(I64(1), I64(2)), Seq(I64(1), I64(2)), true},
		{"seq-order", Seq(I64(1), I64(2)), Seq(I64(2), I64(1)), false},
		{
			"map-order",
			MapOf(KV(Str("a"), I64(1)), KV(Str("b"), I64(2))),
			MapOf(KV(Str("b"), I64(2)), KV(Str("a"), I64(1))),
			false,
		},
		{
			"record",
			Record("P", F("x", I32(1))),
			Record("P", F("x", I32(1))),
			true,
		},
		{
			"record-name",
			Record("P", F("x", I32(1))),
			Record("Q", F("x", I32(1))),
			false,
		},
		{"variant", Variant("E", "A"), Variant("E", "A"), true},
		{"variant-ne", Variant("E", "A"), Variant("E", "B"), false},
		{"nan", F64(nan()), F64(nan()), true},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("%s: Equal = %v, want %v", c.name, got, c.want)
		}
	}
}

func nan() float64 {
	z := 0.0
	return z / z
}
