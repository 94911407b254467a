package encode

import (
	"io"

	"github.com/Cerber-Ursi/uneval/value"
)

// DefaultConvertPath is where generated tuple expressions expect the
// conversion helpers (see the convert package) to live.
const DefaultConvertPath = "::uneval::convert"

// EncState carries one encode call's state.  It implements
// value.Visitor; each callback renders its node into cur, recursing
// through fragment for children, so no more than the current
// expression's ancestor chain is ever buffered.
type EncState struct {
	convertPath string
	cur         Fragment

	Color func(ColorAttr, string) string
}

// Encode renders node as a single Rust expression and writes it to w
// in one write.  The output parses as an expression and reconstructs
// a value equal to node's, provided every record and enum name the
// node carries is in unqualified scope at the inclusion site.
//
// Encoding faults wrap ErrEncoding or value.ErrBadNode; a sink write
// error is returned unchanged, with nothing partially committed by
// this function itself (w owns atomicity beyond the single write).
func Encode(node *value.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{convertPath: DefaultConvertPath}
	for _, opt := range opts {
		opt(es)
	}
	frag, err := es.fragment(node)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, es.embed(frag)); err != nil {
		return err
	}
	return nil
}

// fragment renders one node by walking it through the visitor
// callbacks and returning the fragment they produced.
func (es *EncState) fragment(n *value.Node) (Fragment, error) {
	if err := value.Walk(n, es); err != nil {
		return Fragment{}, err
	}
	return es.cur, nil
}

func (es *EncState) paint(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}
