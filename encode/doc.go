// Package encode renders value nodes as Rust expression text that
// reconstructs an equal value when compiled at the inclusion site.
//
// # Usage
//
//	node := value.Record("Point",
//	    value.F("x", value.I32(1)),
//	    value.F("y", value.I32(2)),
//	)
//	err := encode.Encode(node, w)
//	// Point { x: 1i32, y: 2i32 }
//
// The encoder is a pure function of the node tree: one depth-first
// walk, no shared state across calls, byte-identical output for
// identical input.  Independent encode calls may run concurrently as
// long as each has its own node tree and sink.
//
// The generated text is a single expression, not a statement.  It
// references every record and enum name unqualified; bringing those
// names into scope is the including program's responsibility.  Values
// whose serialized shape was customized rather than derived from
// their structure may produce expressions that compile but rebuild
// the wrong value; the model carries no marker to detect this, so it
// is a documented limitation rather than a checked fault.
//
// # Related Packages
//
//   - github.com/Cerber-Ursi/uneval/value - the node model
//   - github.com/Cerber-Ursi/uneval/convert - Rust-side tuple helpers
package encode
