package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"pixel-art/internal/core"
)

// ParseDimension reads the leading integer of s the way a form field would be
// coerced: surrounding space and trailing garbage are ignored, so "12px" is
// 12. Values below 1 become 1. Input without a leading integer returns 1 and
// an error wrapping core.ErrInvalidDimension.
func ParseDimension(s string) (int, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1, fmt.Errorf("%w: %q is not a number", core.ErrInvalidDimension, s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 1, fmt.Errorf("%w: %q: %v", core.ErrInvalidDimension, s, err)
	}
	return max(n, 1), nil
}

// CoerceDimension is ParseDimension without the error: anything unusable
// becomes 1.
func CoerceDimension(s string) int {
	n, _ := ParseDimension(s)
	return n
}
