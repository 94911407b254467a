package literal

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Quote renders v as a double-quoted Rust string literal.  Quote
// characters, backslashes and every control character are escaped;
// the output never carries a raw control byte, so the literal
// reconstructs v exactly regardless of how the including file is
// handled by editors or diff tools.
//
// v must be valid UTF-8: a Rust String cannot hold anything else, so
// invalid bytes have no faithful rendering and are replaced with
// U+FFFD, the same substitution the host's lossy conversion applies.
// Callers holding arbitrary bytes must model them as a byte string,
// not text.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		d = appendEscaped(d, r, '"')
	}
	return string(append(d, '"'))
}

// QuoteChar renders r as a single-quoted Rust char literal.
func QuoteChar(r rune) string {
	d := append(make([]byte, 0, 8), '\'')
	d = appendEscaped(d, r, '\'')
	return string(append(d, '\''))
}

func appendEscaped(d []byte, r rune, quote byte) []byte {
	switch r {
	case rune(quote):
		return append(d, '\\', quote)
	case '\\':
		return append(d, '\\', '\\')
	case '\n':
		return append(d, '\\', 'n')
	case '\r':
		return append(d, '\\', 'r')
	case '\t':
		return append(d, '\\', 't')
	case 0:
		return append(d, '\\', '0')
	default:
		if unicode.IsControl(r) {
			d = append(d, '\\', 'u', '{')
			d = strconv.AppendUint(d, uint64(r), 16)
			return append(d, '}')
		}
		return utf8.AppendRune(d, r)
	}
}
