// Package parse turns YAML or JSON documents into value trees, for
// generating Rust expressions from data files rather than from Go
// values.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`!Point {x: 1, y: 2}`))
//	// encode.MustString(node) == "Point { x: 1i64, y: 2i64 }"
//
// The plain YAML data model covers scalars, sequences and maps; tags
// name the shapes it cannot, see Parse for the full scheme.
//
// # Related Packages
//
//   - github.com/Cerber-Ursi/uneval/value - the node model
//   - github.com/Cerber-Ursi/uneval/encode - node to Rust expression
package parse
