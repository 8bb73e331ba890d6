package utils

import (
	"strconv"
	"strings"
)

// ParseLeadingInt reads an optionally signed base-10 integer prefix,
// ignoring leading whitespace and anything after the digits:
// "30" and "30min" give 30, "abc" and "" fail.
func ParseLeadingInt(value string) (int, bool) {
	s := strings.TrimLeft(value, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
