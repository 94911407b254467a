package value

import "fmt"

// Visitor receives exactly one callback per node shape.  A consumer
// missing a method for a shape present in the model cannot compile,
// which is the intended failure mode: the contract is enforced at
// build time, not at run time.
//
// Callbacks receive the node's content; recursion into child nodes is
// the visitor's responsibility (via Walk), so a visitor holds no more
// state than the ancestor chain of the expression it is building.
type Visitor interface {
	VisitBool(v bool) error
	VisitInt(k Kind, v int64) error
	VisitUint(k Kind, v uint64) error
	VisitFloat(k Kind, v float64) error
	VisitChar(r rune) error
	VisitString(s string) error
	VisitBytes(d []byte) error
	VisitUnit() error
	VisitNone() error
	VisitSome(inner *Node) error
	VisitSeq(elems []*Node) error
	VisitTuple(elems []*Node) error
	VisitMap(pairs []Pair) error
	VisitRecord(name string, fields []Field) error
	VisitPositional(name string, elems []*Node) error
	VisitUnitRecord(name string) error
	VisitVariant(enum, variant string) error
	VisitVariantTuple(enum, variant string, elems []*Node) error
	VisitVariantRecord(enum, variant string, fields []Field) error
}

// Walk dispatches a single node to the matching Visitor callback.  It
// does not recurse: composite callbacks receive child nodes and call
// Walk on them as they consume them, giving one top-to-bottom,
// depth-first traversal with no backtracking.
func Walk(n *Node, v Visitor) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrBadNode)
	}
	switch n.Kind {
	case BoolKind:
		return v.VisitBool(n.BoolVal)
	case I8Kind, I16Kind, I32Kind, I64Kind:
		return v.VisitInt(n.Kind, n.IntVal)
	case U8Kind, U16Kind, U32Kind, U64Kind:
		return v.VisitUint(n.Kind, n.UintVal)
	case F32Kind, F64Kind:
		return v.VisitFloat(n.Kind, n.FloatVal)
	case CharKind:
		return v.VisitChar(n.CharVal)
	case StringKind:
		return v.VisitString(n.StrVal)
	case BytesKind:
		return v.VisitBytes(n.Data)
	case UnitKind:
		return v.VisitUnit()
	case OptionKind:
		if n.Child == nil {
			return v.VisitNone()
		}
		return v.VisitSome(n.Child)
	case SeqKind:
		return v.VisitSeq(n.Elems)
	case TupleKind:
		if len(n.Elems) == 0 {
			// not constructible through Tuple, but a hand-built
			// node must still collapse to unit
			return v.VisitUnit()
		}
		return v.VisitTuple(n.Elems)
	case MapKind:
		return v.VisitMap(n.Pairs)
	case RecordKind:
		return v.VisitRecord(n.Name, n.Fields)
	case PositionalKind:
		if len(n.Elems) == 0 {
			// not constructible through Positional, but a
			// hand-built node must still follow the policy
			return v.VisitUnitRecord(n.Name)
		}
		return v.VisitPositional(n.Name, n.Elems)
	case UnitRecordKind:
		return v.VisitUnitRecord(n.Name)
	case VariantKind:
		switch {
		case len(n.Fields) > 0:
			return v.VisitVariantRecord(n.Name, n.VariantName, n.Fields)
		case len(n.Elems) > 0:
			return v.VisitVariantTuple(n.Name, n.VariantName, n.Elems)
		default:
			return v.VisitVariant(n.Name, n.VariantName)
		}
	default:
		return fmt.Errorf("%w: kind %s", ErrBadNode, n.Kind)
	}
}
