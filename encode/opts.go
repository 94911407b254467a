package encode

type EncodeOption func(*EncState)

// EncodeColors turns on terminal highlighting.  Colored output is a
// preview aid only; text meant for inclusion in a program must be
// encoded without colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// ConvertPath overrides the path prefix of the tuple conversion
// helpers.  The empty string emits bare convert_tuple_N calls, for
// callers that inline the helpers next to the generated expression.
func ConvertPath(p string) EncodeOption {
	return func(es *EncState) { es.convertPath = p }
}
