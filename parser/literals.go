package parser

import (
	"fmt"
	"strconv"

	"github.com/arnodel/spath/variant"
)

// MaxSafeInt and MinSafeInt bound RFC 7493's safe-integer range; index and
// step literals outside this range are a parse error. Carried over from
// the teacher's internal/jsonpath/parser/parse_literals.go, which enforces
// the identical bound on JSONPath integer selectors.
const (
	MaxSafeInt = 9007199254740991
	MinSafeInt = -9007199254740991
)

func parseIntText(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	if n > MaxSafeInt || n < MinSafeInt {
		return 0, fmt.Errorf("integer %q is out of the safe integer range", s)
	}
	return n, nil
}

func parseNumberText(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}

func numberValue(s string) (variant.Value, error) {
	f, err := parseNumberText(s)
	if err != nil {
		return nil, err
	}
	return variant.Float(f), nil
}
