package parse

import "errors"

// ErrParse wraps every error returned from Parse, including syntax
// errors surfaced from the YAML reader.
var ErrParse = errors.New("parse error")
