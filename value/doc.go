// Package value defines the structured-value model consumed by the
// encoder: a closed union of scalars, optionals, byte strings,
// sequences, tuples, ordered maps, named-field records, positional
// records, unit records and tagged-union variants.
//
// # Usage
//
//	n := value.Record("Point",
//	    value.F("x", value.I32(1)),
//	    value.F("y", value.I32(2)),
//	)
//	err := value.Walk(n, visitor)
//
// Names carried by records, enums and variants are unqualified: the
// model has no notion of module paths, and consumers must bring the
// named types into scope themselves.
//
// # Related Packages
//
//   - github.com/Cerber-Ursi/uneval/encode - render nodes as Rust expressions
//   - github.com/Cerber-Ursi/uneval/bind - build nodes from Go values
//   - github.com/Cerber-Ursi/uneval/parse - build nodes from YAML/JSON
package value
