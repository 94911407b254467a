package bind

import "fmt"

// BindError reports a Go value that cannot be represented in the
// value model, with the path of the offending field.
type BindError struct {
	FieldPath string // e.g. "scene.shapes[3]"
	Message   string
	Err       error
}

func (e *BindError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("bind error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("bind error: %s", e.Message)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
