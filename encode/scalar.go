package encode

import (
	"fmt"

	"github.com/Cerber-Ursi/uneval/literal"
	"github.com/Cerber-Ursi/uneval/value"
)

func (es *EncState) VisitBool(v bool) error {
	es.cur = Fragment{text: es.paint(ValueColor, literal.Bool(v))}
	return nil
}

func (es *EncState) VisitInt(k value.Kind, v int64) error {
	sfx, err := intSuffix(k)
	if err != nil {
		return err
	}
	es.cur = Fragment{text: es.paint(ValueColor, literal.Int(v, sfx))}
	return nil
}

func (es *EncState) VisitUint(k value.Kind, v uint64) error {
	sfx, err := intSuffix(k)
	if err != nil {
		return err
	}
	es.cur = Fragment{text: es.paint(ValueColor, literal.Uint(v, sfx))}
	return nil
}

func (es *EncState) VisitFloat(k value.Kind, v float64) error {
	var text string
	switch k {
	case value.F32Kind:
		text = literal.Float32(float32(v))
	case value.F64Kind:
		text = literal.Float64(v)
	default:
		return fmt.Errorf("%w: %s is not a float kind", ErrEncoding, k)
	}
	es.cur = Fragment{text: es.paint(ValueColor, text)}
	return nil
}

func (es *EncState) VisitChar(r rune) error {
	es.cur = Fragment{text: es.paint(StringColor, literal.QuoteChar(r))}
	return nil
}

// Strings are the one scalar whose natural literal type (borrowed
// text) differs from the usual declared type (owned text), so the
// fragment is marked for the conversion wrapper.
func (es *EncState) VisitString(s string) error {
	es.cur = Fragment{
		text:        es.paint(StringColor, literal.Quote(s)),
		convertible: true,
	}
	return nil
}

func (es *EncState) VisitUnit() error {
	es.cur = Fragment{text: es.paint(SepColor, "()")}
	return nil
}

func (es *EncState) VisitNone() error {
	es.cur = Fragment{text: es.paint(NameColor, "None")}
	return nil
}

func (es *EncState) VisitSome(inner *value.Node) error {
	f, err := es.fragment(inner)
	if err != nil {
		return err
	}
	es.cur = es.compose(es.paint(NameColor, "Some"), orderedArgs, nil, []Fragment{f})
	return nil
}

func intSuffix(k value.Kind) (string, error) {
	sfx, ok := map[value.Kind]string{
		value.I8Kind:  "i8",
		value.I16Kind: "i16",
		value.I32Kind: "i32",
		value.I64Kind: "i64",
		value.U8Kind:  "u8",
		value.U16Kind: "u16",
		value.U32Kind: "u32",
		value.U64Kind: "u64",
	}[k]
	if !ok {
		return "", fmt.Errorf("%w: %s is not an integer kind", ErrEncoding, k)
	}
	return sfx, nil
}
