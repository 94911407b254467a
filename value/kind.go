package value

import "fmt"

// Kind discriminates the shape of a Node.  Exactly one Kind applies
// per node; the union is closed.
type Kind int

const (
	BoolKind Kind = iota
	I8Kind
	I16Kind
	I32Kind
	I64Kind
	U8Kind
	U16Kind
	U32Kind
	U64Kind
	F32Kind
	F64Kind
	CharKind
	StringKind
	BytesKind
	UnitKind
	OptionKind
	SeqKind
	TupleKind
	MapKind
	RecordKind
	PositionalKind
	UnitRecordKind
	VariantKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		BoolKind:       "Bool",
		I8Kind:         "I8",
		I16Kind:        "I16",
		I32Kind:        "I32",
		I64Kind:        "I64",
		U8Kind:         "U8",
		U16Kind:        "U16",
		U32Kind:        "U32",
		U64Kind:        "U64",
		F32Kind:        "F32",
		F64Kind:        "F64",
		CharKind:       "Char",
		StringKind:     "String",
		BytesKind:      "Bytes",
		UnitKind:       "Unit",
		OptionKind:     "Option",
		SeqKind:        "Seq",
		TupleKind:      "Tuple",
		MapKind:        "Map",
		RecordKind:     "Record",
		PositionalKind: "Positional",
		UnitRecordKind: "UnitRecord",
		VariantKind:    "Variant",
	}[k]
	if !ok {
		return fmt.Sprintf("<err: %d is not a kind>", int(k))
	}
	return s
}

// Kinds returns all kinds, in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, int(VariantKind)+1)
	for k := BoolKind; k <= VariantKind; k++ {
		res = append(res, k)
	}
	return res
}

// IsSigned reports whether k is a signed integer scalar kind.
func (k Kind) IsSigned() bool {
	switch k {
	case I8Kind, I16Kind, I32Kind, I64Kind:
		return true
	}
	return false
}

// IsUnsigned reports whether k is an unsigned integer scalar kind.
func (k Kind) IsUnsigned() bool {
	switch k {
	case U8Kind, U16Kind, U32Kind, U64Kind:
		return true
	}
	return false
}
