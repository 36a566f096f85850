package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHash parses a decimal content hash ("1498876634").
// Negative signed renderings of the same 32-bit value ("-1345459588") are accepted.
func ParseHash(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n), nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hash %q", s)
	}
	return uint32(int32(n)), nil
}

// FormatHash renders a content hash the way manifest tables key it.
func FormatHash(hash uint32) string {
	return strconv.FormatUint(uint64(hash), 10)
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}
