package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"

	"github.com/Cerber-Ursi/uneval/value"
)

type intRange struct {
	min  int64
	max  uint64
	make func(int64, uint64) *value.Node
}

var intRanges = map[string]intRange{
	"!i8": {math.MinInt8, math.MaxInt8, func(i int64, _ uint64) *value.Node {
		return value.I8(int8(i))
	}},
	"!i16": {math.MinInt16, math.MaxInt16, func(i int64, _ uint64) *value.Node {
		return value.I16(int16(i))
	}},
	"!i32": {math.MinInt32, math.MaxInt32, func(i int64, _ uint64) *value.Node {
		return value.I32(int32(i))
	}},
	"!i64": {math.MinInt64, math.MaxInt64, func(i int64, _ uint64) *value.Node {
		return value.I64(i)
	}},
	"!u8": {0, math.MaxUint8, func(_ int64, u uint64) *value.Node {
		return value.U8(uint8(u))
	}},
	"!u16": {0, math.MaxUint16, func(_ int64, u uint64) *value.Node {
		return value.U16(uint16(u))
	}},
	"!u32": {0, math.MaxUint32, func(_ int64, u uint64) *value.Node {
		return value.U32(uint32(u))
	}},
	"!u64": {0, math.MaxUint64, func(_ int64, u uint64) *value.Node {
		return value.U64(u)
	}},
}

// narrowed applies a width tag to a numeric scalar, range-checking
// integers and accepting either float or integer bodies for the float
// widths.
func narrowed(tag string, body ast.Node) (*value.Node, error) {
	if tag == "!f32" || tag == "!f64" {
		f, err := floatBody(tag, body)
		if err != nil {
			return nil, err
		}
		if tag == "!f32" {
			return value.F32(float32(f)), nil
		}
		return value.F64(f), nil
	}

	r, ok := intRanges[tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown width tag %q", ErrParse, tag)
	}
	in, ok := body.(*ast.IntegerNode)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires an integer", ErrParse, tag)
	}
	switch v := in.Value.(type) {
	case int64:
		return r.checked(tag, v)
	case uint64:
		if v > r.max {
			return nil, fmt.Errorf("%w: %d out of range for %s", ErrParse, v, tag)
		}
		return r.make(int64(v), v), nil
	case int:
		return r.checked(tag, int64(v))
	default:
		return nil, fmt.Errorf("%w: integer token holds %T", ErrParse, in.Value)
	}
}

func (r intRange) checked(tag string, v int64) (*value.Node, error) {
	if v < r.min || (v >= 0 && uint64(v) > r.max) {
		return nil, fmt.Errorf("%w: %d out of range for %s", ErrParse, v, tag)
	}
	return r.make(v, uint64(v)), nil
}

func floatBody(tag string, body ast.Node) (float64, error) {
	switch b := body.(type) {
	case *ast.FloatNode:
		return b.Value, nil
	case *ast.InfinityNode:
		return b.Value, nil
	case *ast.NanNode:
		return math.NaN(), nil
	case *ast.IntegerNode:
		switch v := b.Value.(type) {
		case int64:
			return float64(v), nil
		case uint64:
			return float64(v), nil
		case int:
			return float64(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %s requires a number", ErrParse, tag)
}
