package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  Number
		ok    bool
	}{
		{"42", Number{Int: 42, IsInt: true}, true},
		{"-7", Number{Int: -7, IsInt: true, IsNegative: true}, true},
		{"0x1f", Number{Int: 31, IsInt: true}, true},
		{"0o17", Number{Int: 15, IsInt: true}, true},
		{"0b101", Number{Int: 5, IsInt: true}, true},
		{"1_000", Number{Int: 1000, IsInt: true}, true},
		{"-9223372036854775808", Number{Int: math.MinInt64, IsInt: true, IsNegative: true}, true},
		{"0.25", Number{Float: 0.25, IsFloat: true}, true},
		{"-1e3", Number{Float: -1000, IsFloat: true, IsNegative: true}, true},
		{"", Number{}, false},
		{"five", Number{}, false},
		{"1.2.3", Number{}, false},
		{"--3", Number{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumeric(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNegativeNumber(t *testing.T) {
	for _, s := range []string{"-5", "-0.5", "-.5", "-1e3", "-0x10"} {
		assert.True(t, IsNegativeNumber(s), s)
	}
	for _, s := range []string{"5", "-", "-f", "--5", "-Inf", "-NaN", "-5x"} {
		assert.False(t, IsNegativeNumber(s), s)
	}
}
