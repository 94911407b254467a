package bind

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"

	"github.com/Cerber-Ursi/uneval/encode"
	"github.com/Cerber-Ursi/uneval/value"
)

// Noder lets a type hand the binder a pre-built value tree instead of
// being reflected over.  This is how shapes Go cannot express
// natively (tagged-union variants, tuples of mixed type, explicit
// char or width choices) enter the model.
type Noder interface {
	UnevalNode() (*value.Node, error)
}

var noderType = reflect.TypeOf((*Noder)(nil)).Elem()

// FromGo builds a value tree from an arbitrary Go value.
//
//   - bool, sized ints/uints and floats map to the matching scalar
//     kinds; untyped int and uint widen to I64 and U64
//   - string maps to String, []byte to Bytes
//   - slices map to Seq, arrays to Tuple
//   - maps map to Map with entries sorted by their rendered key, so
//     repeated runs over the same value emit identical text (the
//     encoder itself never reorders; order is fixed here)
//   - nil pointers and interfaces map to None, non-nil pointers to
//     Some of the pointee
//   - structs map to Record named after the Go type, fields in
//     declaration order, renamed or skipped per the `uneval` tag;
//     field-less structs map to UnitRecord
//
// Channels, funcs, complex numbers and anonymous struct types have no
// unambiguous source rendering and yield a *BindError.
func FromGo(v any) (*value.Node, error) {
	if v == nil {
		return value.None(), nil
	}
	return fromValue(reflect.ValueOf(v), "", map[uintptr]string{})
}

func fromValue(val reflect.Value, path string, visited map[uintptr]string) (*value.Node, error) {
	typ := val.Type()
	if typ.Implements(noderType) && (typ.Kind() != reflect.Ptr || !val.IsNil()) {
		return val.Interface().(Noder).UnevalNode()
	}
	if typ.Kind() != reflect.Ptr && val.CanAddr() && reflect.PointerTo(typ).Implements(noderType) {
		return val.Addr().Interface().(Noder).UnevalNode()
	}

	switch typ.Kind() {
	case reflect.Bool:
		return value.Bool(val.Bool()), nil
	case reflect.Int8:
		return value.I8(int8(val.Int())), nil
	case reflect.Int16:
		return value.I16(int16(val.Int())), nil
	case reflect.Int32:
		return value.I32(int32(val.Int())), nil
	case reflect.Int64, reflect.Int:
		return value.I64(val.Int()), nil
	case reflect.Uint8:
		return value.U8(uint8(val.Uint())), nil
	case reflect.Uint16:
		return value.U16(uint16(val.Uint())), nil
	case reflect.Uint32:
		return value.U32(uint32(val.Uint())), nil
	case reflect.Uint64, reflect.Uint:
		return value.U64(val.Uint()), nil
	case reflect.Float32:
		return value.F32(float32(val.Float())), nil
	case reflect.Float64:
		return value.F64(val.Float()), nil
	case reflect.String:
		return value.Str(val.String()), nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return value.Bytes(bytes.Clone(val.Bytes())), nil
		}
		return fromSeq(val, path, visited)
	case reflect.Array:
		return fromArray(val, path, visited)
	case reflect.Map:
		return fromMap(val, path, visited)
	case reflect.Ptr:
		return fromPointer(val, path, visited)
	case reflect.Interface:
		if val.IsNil() {
			return value.None(), nil
		}
		return fromValue(val.Elem(), path, visited)
	case reflect.Struct:
		return fromStruct(val, path, visited)
	default:
		return nil, &BindError{
			FieldPath: path,
			Message:   fmt.Sprintf("cannot bind %s value", typ.Kind()),
		}
	}
}

func fromSeq(val reflect.Value, path string, visited map[uintptr]string) (*value.Node, error) {
	elems := make([]*value.Node, val.Len())
	for i := range elems {
		n, err := fromValue(val.Index(i), fmt.Sprintf("%s[%d]", path, i), visited)
		if err != nil {
			return nil, err
		}
		elems[i] = n
	}
	return value.Seq(elems...), nil
}

func fromArray(val reflect.Value, path string, visited map[uintptr]string) (*value.Node, error) {
	elems := make([]*value.Node, val.Len())
	for i := range elems {
		n, err := fromValue(val.Index(i), fmt.Sprintf("%s[%d]", path, i), visited)
		if err != nil {
			return nil, err
		}
		elems[i] = n
	}
	return value.Tuple(elems...), nil
}

// Go map iteration order is randomized, so entries are sorted by
// their rendered key before they enter the model.  The encoder
// preserves whatever order it is given; determinism across runs is
// this binder's job.
func fromMap(val reflect.Value, path string, visited map[uintptr]string) (*value.Node, error) {
	type entry struct {
		sortKey string
		pair    value.Pair
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k, err := fromValue(iter.Key(), path+"[key]", visited)
		if err != nil {
			return nil, err
		}
		v, err := fromValue(iter.Value(), path+"[val]", visited)
		if err != nil {
			return nil, err
		}
		rendered, err := renderKey(k)
		if err != nil {
			return nil, &BindError{FieldPath: path, Message: "cannot render map key", Err: err}
		}
		entries = append(entries, entry{sortKey: rendered, pair: value.KV(k, v)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].sortKey < entries[j].sortKey })
	pairs := make([]value.Pair, len(entries))
	for i, e := range entries {
		pairs[i] = e.pair
	}
	return value.MapOf(pairs...), nil
}

func renderKey(n *value.Node) (string, error) {
	var buf bytes.Buffer
	if err := encode.Encode(n, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func fromPointer(val reflect.Value, path string, visited map[uintptr]string) (*value.Node, error) {
	if val.IsNil() {
		return value.None(), nil
	}
	addr := val.Pointer()
	if prev, seen := visited[addr]; seen {
		return nil, &BindError{
			FieldPath: path,
			Message:   fmt.Sprintf("circular reference: also reachable at %q", prev),
		}
	}
	visited[addr] = path
	inner, err := fromValue(val.Elem(), path, visited)
	if err != nil {
		return nil, err
	}
	delete(visited, addr)
	return value.Some(inner), nil
}

func fromStruct(val reflect.Value, path string, visited map[uintptr]string) (*value.Node, error) {
	typ := val.Type()
	name := typ.Name()
	if name == "" {
		return nil, &BindError{
			FieldPath: path,
			Message:   "anonymous struct types have no constructor name",
		}
	}
	var fields []value.Field
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		fname, skip := fieldName(sf)
		if skip {
			continue
		}
		fpath := fname
		if path != "" {
			fpath = path + "." + fname
		}
		n, err := fromValue(val.Field(i), fpath, visited)
		if err != nil {
			return nil, err
		}
		fields = append(fields, value.F(fname, n))
	}
	if len(fields) == 0 {
		return value.UnitRecord(name), nil
	}
	return value.Record(name, fields...), nil
}
