package value

// Equal reports structural equality of two nodes.  Map pairs compare
// in order: two maps with the same entries in different orders are
// not equal, matching the encoder's order-preservation guarantee.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case BoolKind:
		return a.BoolVal == b.BoolVal
	case I8Kind, I16Kind, I32Kind, I64Kind:
		return a.IntVal == b.IntVal
	case U8Kind, U16Kind, U32Kind, U64Kind:
		return a.UintVal == b.UintVal
	case F32Kind, F64Kind:
		// bit-identical, so NaN == NaN here
		return a.FloatVal == b.FloatVal ||
			(a.FloatVal != a.FloatVal && b.FloatVal != b.FloatVal)
	case CharKind:
		return a.CharVal == b.CharVal
	case StringKind:
		return a.StrVal == b.StrVal
	case BytesKind:
		if len(a.Data) != len(b.Data) {
			return false
		}
		for i := range a.Data {
			if a.Data[i] != b.Data[i] {
				return false
			}
		}
		return true
	case UnitKind:
		return true
	case OptionKind:
		if (a.Child == nil) != (b.Child == nil) {
			return false
		}
		return a.Child == nil || Equal(a.Child, b.Child)
	case SeqKind, TupleKind:
		return equalElems(a.Elems, b.Elems)
	case MapKind:
		if len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if !Equal(a.Pairs[i].Key, b.Pairs[i].Key) {
				return false
			}
			if !Equal(a.Pairs[i].Val, b.Pairs[i].Val) {
				return false
			}
		}
		return true
	case RecordKind:
		return a.Name == b.Name && equalFields(a.Fields, b.Fields)
	case PositionalKind:
		return a.Name == b.Name && equalElems(a.Elems, b.Elems)
	case UnitRecordKind:
		return a.Name == b.Name
	case VariantKind:
		return a.Name == b.Name && a.VariantName == b.VariantName &&
			equalElems(a.Elems, b.Elems) && equalFields(a.Fields, b.Fields)
	default:
		return false
	}
}

func equalElems(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !Equal(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}
