package util

import (
	"strconv"
	"strings"
)

// Number is the result of ParseNumeric
type Number struct {
	Int        int64
	Float      float64
	IsInt      bool
	IsFloat    bool
	IsNegative bool
}

// ParseNumeric parses integer literals (with 0x, 0o, 0 and 0b prefixes) and floating point
// literals. ok is false when s is not a number.
func ParseNumeric(s string) (num Number, ok bool) {
	if s == "" {
		return num, false
	}
	num.IsNegative = strings.HasPrefix(s, "-")

	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		num.Int = i
		num.IsInt = true
		return num, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		num.Float = f
		num.IsFloat = true
		return num, true
	}

	return Number{}, false
}

// IsNegativeNumber tells whether s is a negative number literal such as -5 or -0.5
func IsNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' || (s[1] != '.' && (s[1] < '0' || s[1] > '9')) {
		return false
	}
	_, ok := ParseNumeric(s)

	return ok
}
