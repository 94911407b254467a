package bind

import (
	"reflect"
	"strings"
)

// fieldName resolves the emitted field name for a struct field: the
// `uneval` tag when present, the Go field name otherwise.  A "-" tag
// skips the field entirely.
func fieldName(f reflect.StructField) (name string, skip bool) {
	tag, ok := f.Tag.Lookup("uneval")
	if !ok {
		return f.Name, false
	}
	if tag == "-" {
		return "", true
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return f.Name, false
	}
	return tag, false
}
