package value

// Node is one node of the structured-value tree handed to the
// encoder.  Nodes are ephemeral: they are built by a binder or parser,
// walked once, and discarded.
//
// The payload fields used depend on Kind; all others are zero.  Name
// holds the unqualified record (or enum) name as supplied upstream:
// no module or path qualification is ever available, and none is
// invented downstream.
type Node struct {
	Kind Kind

	BoolVal  bool
	IntVal   int64   // I8..I64
	UintVal  uint64  // U8..U64
	FloatVal float64 // F32 (stored widened), F64
	CharVal  rune
	StrVal   string
	Data     []byte // Bytes

	Child  *Node   // Option: nil means absent
	Elems  []*Node // Seq, Tuple, Positional, Variant tuple payload
	Pairs  []Pair  // Map, insertion order preserved
	Fields []Field // Record, Variant named payload

	Name        string // Record, Positional, UnitRecord; enum name for Variant
	VariantName string // Variant
}

// Pair is one key/value entry of a Map node.
type Pair struct {
	Key, Val *Node
}

// Field is one named field of a Record node or named variant payload.
type Field struct {
	Name string
	Val  *Node
}

func Bool(v bool) *Node { return &Node{Kind: BoolKind, BoolVal: v} }

func I8(v int8) *Node   { return &Node{Kind: I8Kind, IntVal: int64(v)} }
func I16(v int16) *Node { return &Node{Kind: I16Kind, IntVal: int64(v)} }
func I32(v int32) *Node { return &Node{Kind: I32Kind, IntVal: int64(v)} }
func I64(v int64) *Node { return &Node{Kind: I64Kind, IntVal: v} }

func U8(v uint8) *Node   { return &Node{Kind: U8Kind, UintVal: uint64(v)} }
func U16(v uint16) *Node { return &Node{Kind: U16Kind, UintVal: uint64(v)} }
func U32(v uint32) *Node { return &Node{Kind: U32Kind, UintVal: uint64(v)} }
func U64(v uint64) *Node { return &Node{Kind: U64Kind, UintVal: v} }

func F32(v float32) *Node { return &Node{Kind: F32Kind, FloatVal: float64(v)} }
func F64(v float64) *Node { return &Node{Kind: F64Kind, FloatVal: v} }

func Char(r rune) *Node   { return &Node{Kind: CharKind, CharVal: r} }
func Str(v string) *Node  { return &Node{Kind: StringKind, StrVal: v} }
func Bytes(d []byte) *Node { return &Node{Kind: BytesKind, Data: d} }

func Unit() *Node { return &Node{Kind: UnitKind} }

// None is the absent optional.
func None() *Node { return &Node{Kind: OptionKind} }

// Some wraps v as a present optional.
func Some(v *Node) *Node { return &Node{Kind: OptionKind, Child: v} }

func Seq(elems ...*Node) *Node { return &Node{Kind: SeqKind, Elems: elems} }

// Tuple builds a fixed-arity grouping.  The zero tuple and the unit
// value are the same value in the host language, and no conversion
// helper of arity zero exists, so with no elements the result
// collapses to Unit().
func Tuple(elems ...*Node) *Node {
	if len(elems) == 0 {
		return Unit()
	}
	return &Node{Kind: TupleKind, Elems: elems}
}

func MapOf(pairs ...Pair) *Node { return &Node{Kind: MapKind, Pairs: pairs} }

// KV builds one Map entry.
func KV(k, v *Node) Pair { return Pair{Key: k, Val: v} }

// F builds one Record field.
func F(name string, v *Node) Field { return Field{Name: name, Val: v} }

func Record(name string, fields ...Field) *Node {
	return &Node{Kind: RecordKind, Name: name, Fields: fields}
}

// Positional builds a record with unnamed, position-identified
// fields.  A zero-arity positional record is indistinguishable from a
// unit record in this model, so elems must be non-empty; with no
// elements the result collapses to UnitRecord(name).
func Positional(name string, elems ...*Node) *Node {
	if len(elems) == 0 {
		return UnitRecord(name)
	}
	return &Node{Kind: PositionalKind, Name: name, Elems: elems}
}

func UnitRecord(name string) *Node {
	return &Node{Kind: UnitRecordKind, Name: name}
}

// Variant builds a payload-free ("unit") variant of the named enum.
func Variant(enum, variant string) *Node {
	return &Node{Kind: VariantKind, Name: enum, VariantName: variant}
}

// VariantTuple builds a variant carrying positional payload.  With no
// elements it collapses to the unit variant, mirroring Positional.
func VariantTuple(enum, variant string, elems ...*Node) *Node {
	if len(elems) == 0 {
		return Variant(enum, variant)
	}
	return &Node{Kind: VariantKind, Name: enum, VariantName: variant, Elems: elems}
}

// VariantRecord builds a variant carrying named-field payload.
func VariantRecord(enum, variant string, fields ...Field) *Node {
	if len(fields) == 0 {
		return Variant(enum, variant)
	}
	return &Node{Kind: VariantKind, Name: enum, VariantName: variant, Fields: fields}
}
