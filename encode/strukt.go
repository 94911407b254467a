package encode

import "github.com/Cerber-Ursi/uneval/value"

func (es *EncState) VisitRecord(name string, fields []value.Field) error {
	f, err := es.namedShape(es.paint(NameColor, name), fields)
	if err != nil {
		return err
	}
	es.cur = f
	return nil
}

// Positional records keep the call form down to arity 1: the newtype
// case is still Name(expr), with the conversion policy applied to the
// single inner expression rather than the constructor call.
func (es *EncState) VisitPositional(name string, elems []*value.Node) error {
	f, err := es.orderedShape(es.paint(NameColor, name), elems)
	if err != nil {
		return err
	}
	es.cur = f
	return nil
}

// A unit record and a zero-field positional record both render as the
// bare constructor reference.  The model cannot tell the two apart,
// so the collision is resolved by policy: zero-field positional
// records are unsupported, and callers must declare the unit form.
func (es *EncState) VisitUnitRecord(name string) error {
	es.cur = es.compose(es.paint(NameColor, name), noArgs, nil, nil)
	return nil
}

func (es *EncState) orderedShape(head string, elems []*value.Node) (Fragment, error) {
	args := make([]Fragment, len(elems))
	for i, e := range elems {
		f, err := es.fragment(e)
		if err != nil {
			return Fragment{}, err
		}
		args[i] = f
	}
	return es.compose(head, orderedArgs, nil, args), nil
}

func (es *EncState) namedShape(head string, fields []value.Field) (Fragment, error) {
	names := make([]string, len(fields))
	args := make([]Fragment, len(fields))
	for i, fld := range fields {
		f, err := es.fragment(fld.Val)
		if err != nil {
			return Fragment{}, err
		}
		names[i] = fld.Name
		args[i] = f
	}
	return es.compose(head, namedArgs, names, args), nil
}
