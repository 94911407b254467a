// Package literal renders primitive values as exact Rust literal
// text: suffixed integers and floats, escaped strings and chars, and
// boolean spellings.  Every literal parses back to the identical
// value; floats use the shortest decimal form that round-trips.
package literal
