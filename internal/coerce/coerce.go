// Package coerce converts raw CSV cell text into typed optional values.
//
// No function in this package returns an error: an empty or unparsable
// token resolves to the documented null/false/empty default.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// OptionalInt parses s as a base-10 integer, returning nil if s is empty or
// not an integer literal.
func OptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalInt64 is OptionalInt for 64-bit values.
func OptionalInt64(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalFloat parses s as a float64, returning nil if s is empty, not a
// number, or a non-finite literal such as NaN or Inf.
func OptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Int64Or parses s as an int64, returning def if parsing fails or s is empty.
func Int64Or(s string, def int64) int64 {
	if v := OptionalInt64(s); v != nil {
		return *v
	}
	return def
}

// FloatOr parses s as a float64, returning def if parsing fails, s is empty,
// or the value is not finite.
func FloatOr(s string, def float64) float64 {
	if v := OptionalFloat(s); v != nil {
		return *v
	}
	return def
}

// Bool reports whether s is exactly trueToken. Matching is case-sensitive
// and unrecognized tokens are false.
func Bool(s, trueToken string) bool {
	return s == trueToken
}

// StringList splits a comma-separated cell into trimmed elements. The result
// is never nil: a blank cell yields an empty list. Empty middle tokens are
// kept ("a,,b" -> ["a", "", "b"]).
func StringList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// NullableString returns nil for an empty cell and s unchanged otherwise.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
