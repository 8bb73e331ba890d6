package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{input: "30", expected: 30, ok: true},
		{input: "  42", expected: 42, ok: true},
		{input: "30min", expected: 30, ok: true},
		{input: "12.9", expected: 12, ok: true},
		{input: "-5", expected: -5, ok: true},
		{input: "+7", expected: 7, ok: true},
		{input: "", ok: false},
		{input: "abc", ok: false},
		{input: "-", ok: false},
		{input: "99999999999999999999999", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
