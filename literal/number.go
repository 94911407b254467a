package literal

import (
	"math"
	"strconv"
)

func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Int renders a suffixed signed integer literal, e.g. Int(-3, "i16")
// gives "-3i16".  The suffix is mandatory: an unsuffixed literal
// would be inferred at the inclusion site and may not type-check.
func Int(v int64, suffix string) string {
	return strconv.FormatInt(v, 10) + suffix
}

// Uint renders a suffixed unsigned integer literal.
func Uint(v uint64, suffix string) string {
	return strconv.FormatUint(v, 10) + suffix
}

// Float32 renders the shortest decimal literal that parses back to
// the identical 32-bit float.  Non-finite values use the constant
// spellings, which are the only source forms Rust accepts for them.
func Float32(v float32) string {
	if c := floatConst("f32", float64(v)); c != "" {
		return c
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f32"
}

// Float64 is Float32 for 64-bit floats.
func Float64(v float64) string {
	if c := floatConst("f64", v); c != "" {
		return c
	}
	return strconv.FormatFloat(v, 'g', -1, 64) + "f64"
}

func floatConst(ty string, v float64) string {
	switch {
	case math.IsNaN(v):
		return ty + "::NAN"
	case math.IsInf(v, 1):
		return ty + "::INFINITY"
	case math.IsInf(v, -1):
		return ty + "::NEG_INFINITY"
	}
	return ""
}
