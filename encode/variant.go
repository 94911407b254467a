package encode

import "github.com/Cerber-Ursi/uneval/value"

// variantHead renders the Enum::Variant path.  Only the unqualified
// enum name is available from the model, so the path is always a
// single Type::Variant form; if two in-scope enums share a variant
// name, which one the text resolves against is decided by the
// inclusion site, not here.
func (es *EncState) variantHead(enum, variant string) string {
	return es.paint(NameColor, enum) + es.paint(SepColor, "::") + es.paint(NameColor, variant)
}

func (es *EncState) VisitVariant(enum, variant string) error {
	es.cur = es.compose(es.variantHead(enum, variant), noArgs, nil, nil)
	return nil
}

func (es *EncState) VisitVariantTuple(enum, variant string, elems []*value.Node) error {
	f, err := es.orderedShape(es.variantHead(enum, variant), elems)
	if err != nil {
		return err
	}
	es.cur = f
	return nil
}

func (es *EncState) VisitVariantRecord(enum, variant string, fields []value.Field) error {
	f, err := es.namedShape(es.variantHead(enum, variant), fields)
	if err != nil {
		return err
	}
	es.cur = f
	return nil
}
