package journal

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimalOrZero is the single coercion rule for numeric trade fields:
// surrounding space is trimmed, and anything that is not a number (including
// the empty string) becomes zero. It never fails, so a bad field never drops
// its record.
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseIntOrZero applies the same rule to integer fields. A decimal value
// such as "10.0" is truncated toward zero.
func ParseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return int(ParseDecimalOrZero(s).IntPart())
}

// ParseCTime parses a millisecond timestamp. Unlike the numeric fields the
// timestamp is strict: without it a record cannot be placed in time.
func ParseCTime(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
