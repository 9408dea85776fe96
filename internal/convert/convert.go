// Package convert decodes numeric literal text and classifies free-form text
// by its lexical shape.
package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeDecimal decodes a string of decimal digits.
func DecodeDecimal(s string) (int64, error) {
	if !IsDecimal(s) {
		return 0, fmt.Errorf("invalid decimal literal: %q", s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal literal: %q: %w", s, err)
	}
	return v, nil
}

// DecodeHex decodes a 0x-prefixed hexadecimal string.
func DecodeHex(s string) (int64, error) {
	if !IsHex(s) {
		return 0, fmt.Errorf("invalid hex literal: %q", s)
	}
	v, err := strconv.ParseInt(s[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex literal: %q: %w", s, err)
	}
	return v, nil
}

// DecodeDouble decodes digits with exactly one decimal point.
func DecodeDouble(s string) (float64, error) {
	if !IsDouble(s) {
		return 0, fmt.Errorf("invalid double literal: %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid double literal: %q: %w", s, err)
	}
	return v, nil
}

// IsDecimal reports whether s is a non-empty run of decimal digits.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsHex reports whether s is "0x" followed by at least one hex digit.
func IsHex(s string) bool {
	if len(s) < 3 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsDouble reports whether s consists of digits and exactly one '.', with at
// least one digit present.
func IsDouble(s string) bool {
	dots, digits := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
		case isDigit(s[i]):
			digits++
		default:
			return false
		}
	}
	return dots == 1 && digits > 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
