package value

import "errors"

// ErrBadNode reports a node that does not satisfy the closed-union
// contract (nil, or an unknown Kind).
var ErrBadNode = errors.New("bad value node")
