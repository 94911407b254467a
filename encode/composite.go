package encode

import (
	"strconv"
	"strings"

	"github.com/Cerber-Ursi/uneval/literal"
	"github.com/Cerber-Ursi/uneval/value"
)

// Byte strings render as an ordered list of byte values, never as a
// string literal: a string form would re-introduce text-encoding
// ambiguity the byte shape exists to avoid.
func (es *EncState) VisitBytes(d []byte) error {
	parts := make([]string, len(d))
	for i, b := range d {
		parts[i] = es.paint(ValueColor, literal.Uint(uint64(b), "u8"))
	}
	es.cur = es.collectChain(parts)
	return nil
}

// Growable sequences are built through the collect chain even when
// empty: the target container is not assumed literal-constructible.
func (es *EncState) VisitSeq(elems []*value.Node) error {
	parts := make([]string, len(elems))
	for i, e := range elems {
		f, err := es.fragment(e)
		if err != nil {
			return err
		}
		parts[i] = es.embed(f)
	}
	es.cur = es.collectChain(parts)
	return nil
}

// Fixed-arity groupings cannot be rendered directly: the model does
// not say whether the declared type is a tuple or an array, and the
// two have different source syntax.  The emitted call defers that
// choice to a conversion helper resolved at the inclusion site (see
// the convert package).
func (es *EncState) VisitTuple(elems []*value.Node) error {
	var b strings.Builder
	b.WriteString(es.paint(SepColor, "("))
	for i, e := range elems {
		if i > 0 {
			b.WriteString(es.paint(SepColor, ", "))
		}
		f, err := es.fragment(e)
		if err != nil {
			return err
		}
		b.WriteString(es.embed(f))
	}
	b.WriteString(es.paint(SepColor, ")"))

	head := es.paint(NameColor, es.convertHead(len(elems)))
	es.cur = Fragment{text: head + es.paint(SepColor, "(") + b.String() + es.paint(SepColor, ")")}
	return nil
}

// Maps render as pair tuples through the same collect chain as
// sequences, in exactly the visited order.  Reordering would not
// change the reconstructed value, but emitted text must be stable
// across runs, so pairs are never sorted here.
func (es *EncState) VisitMap(pairs []value.Pair) error {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		k, err := es.fragment(p.Key)
		if err != nil {
			return err
		}
		v, err := es.fragment(p.Val)
		if err != nil {
			return err
		}
		parts[i] = es.paint(SepColor, "(") + es.embed(k) +
			es.paint(SepColor, ", ") + es.embed(v) + es.paint(SepColor, ")")
	}
	es.cur = es.collectChain(parts)
	return nil
}

func (es *EncState) convertHead(arity int) string {
	name := "convert_tuple_" + strconv.Itoa(arity)
	if es.convertPath == "" {
		return name
	}
	return es.convertPath + "::" + name
}
