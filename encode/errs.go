package encode

import "errors"

// ErrEncoding marks faults produced by the encoder itself, as opposed
// to sink write errors, which propagate unchanged.
var ErrEncoding = errors.New("encoding error")
