package parse

// ParseOption configures a call to Parse.
type ParseOption func(*parseOpts)

type parseOpts struct {
	json bool
}

// ParseJSON restricts the input to JSON: YAML tags are rejected, so
// only the plain shapes (maps, sequences, scalars) can appear.  JSON
// is a subset of YAML, so the same reader is used either way.
func ParseJSON() ParseOption {
	return func(po *parseOpts) {
		po.json = true
	}
}
