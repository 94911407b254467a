// Package convert generates the Rust-side support code that tuple
// expressions produced by the encoder call into.
//
// The value model does not distinguish a fixed-arity tuple from an
// array, and the two have different construction syntax, so the
// encoder defers the choice: it emits convert_tuple_N(( ... )) and
// lets a FromTuple trait with one impl per target shape resolve it at
// the inclusion site.  This package writes that trait and those impls
// as Rust source, either as a standalone module (Helpers) or as a
// block scoped next to a single expression (Inline).
package convert

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxArity matches the arity bound the helper module is
// generated with unless a caller asks otherwise.
const DefaultMaxArity = 32

// Helpers writes the shared helper module: the FromTuple trait plus
// array and tuple impls and a public convert_tuple_N function for
// every arity in 1..=maxArity.  The output is a complete Rust module
// body, intended to live at the path the encoder references
// (encode.DefaultConvertPath by default).
func Helpers(w io.Writer, maxArity int) error {
	if maxArity < 1 {
		return fmt.Errorf("helpers: max arity must be at least 1, got %d", maxArity)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "pub trait FromTuple<T> {\n    fn from_tuple(tuple: T) -> Self;\n}\n")
	for i := 1; i <= maxArity; i++ {
		writeArity(bw, i, true)
	}
	return bw.Flush()
}

// Inline writes a single-arity variant of the helpers, without pub
// visibility, for splicing into a block scope next to one generated
// expression.  The encoder must then be run with ConvertPath("").
func Inline(w io.Writer, arity int) error {
	if arity < 1 {
		return fmt.Errorf("helpers: arity must be at least 1, got %d", arity)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "trait FromTuple<T>: Sized {\n    fn from_tuple(tuple: T) -> Self;\n}\n")
	writeArity(bw, arity, false)
	return bw.Flush()
}

func writeArity(w io.Writer, n int, pub bool) {
	homog := "(" + strings.Repeat("T,", n) + ")"
	array := fmt.Sprintf("[T; %d]", n)

	idx := make([]string, n)
	params := make([]string, n)
	for i := 0; i < n; i++ {
		idx[i] = fmt.Sprintf("tuple.%d", i)
		params[i] = fmt.Sprintf("T%d", i)
	}
	mapping := "[" + strings.Join(idx, ", ") + "]"
	types := strings.Join(params, ", ")
	tuple := "(" + types + ",)"

	fmt.Fprintf(w, `
impl<T> FromTuple<%[1]s> for %[2]s {
    #[inline]
    fn from_tuple(tuple: %[1]s) -> Self {
        %[3]s
    }
}

impl<%[4]s> FromTuple<%[5]s> for %[5]s {
    #[inline]
    fn from_tuple(tuple: %[5]s) -> Self {
        tuple
    }
}
`, homog, array, mapping, types, tuple)

	vis := ""
	if pub {
		vis = "pub "
	}
	fmt.Fprintf(w, `
#[inline]
%sfn convert_tuple_%d<%s, Out: FromTuple<%s>>(tuple: %s) -> Out {
    Out::from_tuple(tuple)
}
`, vis, n, types, tuple, tuple)
}
