package parse

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/Cerber-Ursi/uneval/value"
)

// Parse reads one YAML or JSON document into a value tree.
//
// Plain scalars map to the obvious kinds (integers widen to i64,
// floats to f64, null to the absent optional).  YAML tags select the
// richer shapes the plain data model cannot spell:
//
//	!Point {x: 1, y: 2}     named record
//	!Wrapper [1, 2]         positional record
//	!Marker                 unit record (null body)
//	!Shape::Circle 3.5      enum variant (payload as above)
//	!tuple [1, "a"]         fixed-arity tuple
//	!some 3, !none, !unit   explicit optionals and unit
//	!char "c"               char scalar
//	!u8 7, !i32 -1, !f32 x  width-narrowed numerics
//	!!binary aGk=           byte string (base64)
func Parse(d []byte, opts ...ParseOption) (*value.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(f.Docs) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one document, got %d", ErrParse, len(f.Docs))
	}
	return fromAST(f.Docs[0].Body, po)
}

func fromAST(n ast.Node, po *parseOpts) (*value.Node, error) {
	switch n := n.(type) {
	case nil:
		return value.None(), nil
	case *ast.NullNode:
		return value.None(), nil
	case *ast.BoolNode:
		return value.Bool(n.Value), nil
	case *ast.IntegerNode:
		return fromInteger(n)
	case *ast.FloatNode:
		return value.F64(n.Value), nil
	case *ast.InfinityNode:
		return value.F64(n.Value), nil
	case *ast.NanNode:
		return value.F64(math.NaN()), nil
	case *ast.StringNode:
		return value.Str(n.Value), nil
	case *ast.LiteralNode:
		return value.Str(n.Value.Value), nil
	case *ast.SequenceNode:
		elems, err := elemsFromSeq(n, po)
		if err != nil {
			return nil, err
		}
		return value.Seq(elems...), nil
	case *ast.MappingNode:
		return mapFromPairs(n.Values, po)
	case *ast.MappingValueNode:
		return mapFromPairs([]*ast.MappingValueNode{n}, po)
	case *ast.TagNode:
		return fromTag(n, po)
	default:
		return nil, fmt.Errorf("%w: unsupported construct %T", ErrParse, n)
	}
}

func fromInteger(n *ast.IntegerNode) (*value.Node, error) {
	switch v := n.Value.(type) {
	case int64:
		return value.I64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return value.U64(v), nil
		}
		return value.I64(int64(v)), nil
	case int:
		return value.I64(int64(v)), nil
	default:
		return nil, fmt.Errorf("%w: integer token holds %T", ErrParse, n.Value)
	}
}

func elemsFromSeq(n *ast.SequenceNode, po *parseOpts) ([]*value.Node, error) {
	elems := make([]*value.Node, len(n.Values))
	for i, e := range n.Values {
		v, err := fromAST(e, po)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return elems, nil
}

// mapFromPairs keeps entries in source order; the encoder emits
// whatever order the model carries.
func mapFromPairs(kvs []*ast.MappingValueNode, po *parseOpts) (*value.Node, error) {
	pairs := make([]value.Pair, len(kvs))
	for i, kv := range kvs {
		k, err := fromAST(kv.Key, po)
		if err != nil {
			return nil, err
		}
		v, err := fromAST(kv.Value, po)
		if err != nil {
			return nil, err
		}
		pairs[i] = value.KV(k, v)
	}
	return value.MapOf(pairs...), nil
}

func fromTag(n *ast.TagNode, po *parseOpts) (*value.Node, error) {
	if po.json {
		return nil, fmt.Errorf("%w: tags are not valid in JSON input", ErrParse)
	}
	tag := n.Start.Value
	switch tag {
	case "!!binary":
		return bytesFromTag(n)
	case "!char":
		return charFromTag(n)
	case "!unit":
		if _, ok := n.Value.(*ast.NullNode); !ok && n.Value != nil {
			return nil, fmt.Errorf("%w: !unit takes no payload", ErrParse)
		}
		return value.Unit(), nil
	case "!none":
		if _, ok := n.Value.(*ast.NullNode); !ok && n.Value != nil {
			return nil, fmt.Errorf("%w: !none takes no payload", ErrParse)
		}
		return value.None(), nil
	case "!some":
		inner, err := fromAST(n.Value, po)
		if err != nil {
			return nil, err
		}
		return value.Some(inner), nil
	case "!tuple":
		seq, ok := n.Value.(*ast.SequenceNode)
		if !ok {
			return nil, fmt.Errorf("%w: !tuple requires a sequence", ErrParse)
		}
		elems, err := elemsFromSeq(seq, po)
		if err != nil {
			return nil, err
		}
		return value.Tuple(elems...), nil
	case "!i8", "!i16", "!i32", "!i64", "!u8", "!u16", "!u32", "!u64", "!f32", "!f64":
		return narrowed(tag, n.Value)
	case "!!str", "!!int", "!!float", "!!bool", "!!null", "!!map", "!!seq":
		return fromAST(n.Value, po)
	}
	if name, ok := strings.CutPrefix(tag, "!"); ok && isTypeName(name) {
		return shapeFromTag(name, n.Value, po)
	}
	return nil, fmt.Errorf("%w: unknown tag %q", ErrParse, tag)
}

func bytesFromTag(n *ast.TagNode) (*value.Node, error) {
	s, ok := n.Value.(*ast.StringNode)
	if !ok {
		return nil, fmt.Errorf("%w: !!binary requires a scalar", ErrParse)
	}
	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s.Value), ""))
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64 in !!binary: %w", ErrParse, err)
	}
	return value.Bytes(data), nil
}

func charFromTag(n *ast.TagNode) (*value.Node, error) {
	s, ok := n.Value.(*ast.StringNode)
	if !ok {
		return nil, fmt.Errorf("%w: !char requires a scalar", ErrParse)
	}
	r, size := utf8.DecodeRuneInString(s.Value)
	if size == 0 || size != len(s.Value) || (r == utf8.RuneError && size == 1) {
		return nil, fmt.Errorf("%w: !char requires exactly one character, got %q", ErrParse, s.Value)
	}
	return value.Char(r), nil
}

// shapeFromTag resolves an application tag (!Name or !Enum::Variant)
// against the payload shape: mapping for named fields, sequence for
// positional fields, null for the unit form, and a bare scalar for
// the single-field (newtype) form.
func shapeFromTag(name string, body ast.Node, po *parseOpts) (*value.Node, error) {
	enum, variant, isVariant := strings.Cut(name, "::")

	switch b := body.(type) {
	case nil:
		if isVariant {
			return value.Variant(enum, variant), nil
		}
		return value.UnitRecord(name), nil
	case *ast.NullNode:
		if isVariant {
			return value.Variant(enum, variant), nil
		}
		return value.UnitRecord(name), nil
	case *ast.MappingNode:
		fields, err := fieldsFromPairs(b.Values, po)
		if err != nil {
			return nil, err
		}
		if isVariant {
			return value.VariantRecord(enum, variant, fields...), nil
		}
		return value.Record(name, fields...), nil
	case *ast.MappingValueNode:
		fields, err := fieldsFromPairs([]*ast.MappingValueNode{b}, po)
		if err != nil {
			return nil, err
		}
		if isVariant {
			return value.VariantRecord(enum, variant, fields...), nil
		}
		return value.Record(name, fields...), nil
	case *ast.SequenceNode:
		elems, err := elemsFromSeq(b, po)
		if err != nil {
			return nil, err
		}
		if isVariant {
			return value.VariantTuple(enum, variant, elems...), nil
		}
		return value.Positional(name, elems...), nil
	default:
		single, err := fromAST(body, po)
		if err != nil {
			return nil, err
		}
		if isVariant {
			return value.VariantTuple(enum, variant, single), nil
		}
		return value.Positional(name, single), nil
	}
}

func fieldsFromPairs(kvs []*ast.MappingValueNode, po *parseOpts) ([]value.Field, error) {
	fields := make([]value.Field, len(kvs))
	for i, kv := range kvs {
		key, ok := kv.Key.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: record fields require string keys, got %T", ErrParse, kv.Key)
		}
		v, err := fromAST(kv.Value, po)
		if err != nil {
			return nil, err
		}
		fields[i] = value.F(key.Value, v)
	}
	return fields, nil
}

// isTypeName reports whether s looks like a bare type name or a
// Type::Variant path: identifier segments starting upper case.
func isTypeName(s string) bool {
	segs := strings.Split(s, "::")
	if len(segs) > 2 {
		return false
	}
	for _, seg := range segs {
		if seg == "" {
			return false
		}
		for i, r := range seg {
			if i == 0 && !unicode.IsUpper(r) {
				return false
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
	}
	return true
}
