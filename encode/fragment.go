package encode

import "strings"

// Fragment is one rendered piece of expression text.  A fragment is
// immutable once built; parents compose the text of already-rendered
// children and never reach back into them.
//
// convertible marks a literal whose natural type differs from the
// type the surrounding context declares (today: string literals,
// which are borrowed text where an owned string is expected).  Such a
// fragment is wrapped in the host conversion call when embedded.
type Fragment struct {
	text        string
	convertible bool
}

type composeKind int

const (
	orderedArgs composeKind = iota
	namedArgs
	noArgs
)

// embed renders f for use inside a parent expression, applying the
// conversion wrapper exactly when the fragment is marked convertible.
// The decision is structural and has no side effects.
func (es *EncState) embed(f Fragment) string {
	if !f.convertible {
		return f.text
	}
	return f.text + es.paint(ChainColor, ".into()")
}

// compose assembles a call or construction expression from a head
// token and already-rendered argument fragments.  names is consulted
// for namedArgs only and must then match args in length and order.
func (es *EncState) compose(head string, kind composeKind, names []string, args []Fragment) Fragment {
	switch kind {
	case noArgs:
		return Fragment{text: head}
	case orderedArgs:
		var b strings.Builder
		b.WriteString(head)
		b.WriteString(es.paint(SepColor, "("))
		for i, a := range args {
			if i > 0 {
				b.WriteString(es.paint(SepColor, ", "))
			}
			b.WriteString(es.embed(a))
		}
		b.WriteString(es.paint(SepColor, ")"))
		return Fragment{text: b.String()}
	default:
		var b strings.Builder
		b.WriteString(head)
		b.WriteString(es.paint(SepColor, " { "))
		for i, a := range args {
			if i > 0 {
				b.WriteString(es.paint(SepColor, ", "))
			}
			b.WriteString(es.paint(FieldColor, names[i]))
			b.WriteString(es.paint(SepColor, ": "))
			b.WriteString(es.embed(a))
		}
		b.WriteString(es.paint(SepColor, " }"))
		return Fragment{text: b.String()}
	}
}

// collectChain renders the build-from-iterator construction for
// container types that are not literal-constructible: a vec! literal
// of the already-rendered parts followed by the collect call.
func (es *EncState) collectChain(parts []string) Fragment {
	var b strings.Builder
	b.WriteString(es.paint(ChainColor, "vec!["))
	for i, p := range parts {
		if i > 0 {
			b.WriteString(es.paint(SepColor, ", "))
		}
		b.WriteString(p)
	}
	b.WriteString(es.paint(ChainColor, "]"))
	b.WriteString(es.paint(ChainColor, ".into_iter().collect()"))
	return Fragment{text: b.String()}
}
