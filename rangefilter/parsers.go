package rangefilter

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Int64Parser parses decimal, hexadecimal (0x), octal (0o) and binary (0b) integers.
func Int64Parser(text string) (int64, error) {
	return cast.ToInt64E(text)
}

// Float64Parser parses floating point numbers.
func Float64Parser(text string) (float64, error) {
	return cast.ToFloat64E(text)
}

// StringParser uses the text as it is.
func StringParser(text string) (string, error) {
	return text, nil
}

// TimeParser parses timestamps in the formats supported by cast.ToTimeE (RFC3339, RFC1123, "2006-01-02", ...).
func TimeParser(text string) (time.Time, error) {
	return cast.ToTimeE(strings.TrimSpace(text))
}
