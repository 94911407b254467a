// Package bind builds value trees from Go values by reflection, the
// way a derived serializer would: structs become named records,
// slices become sequences, pointers become optionals.
//
// # Usage
//
//	type Point struct {
//	    X int32 `uneval:"x"`
//	    Y int32 `uneval:"y"`
//	}
//	node, err := bind.FromGo(Point{X: 1, Y: 2})
//	// encode.MustString(node) == "Point { x: 1i32, y: 2i32 }"
//
// Types implementing Noder bypass reflection and supply their own
// tree; that is the route for variants and other shapes Go has no
// native spelling for.
//
// # Related Packages
//
//   - github.com/Cerber-Ursi/uneval/value - the node model
//   - github.com/Cerber-Ursi/uneval/encode - node to Rust expression
package bind
