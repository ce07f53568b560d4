package form

import (
	"strconv"
	"strings"
)

// Rating bounds, inclusive.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// isFilled reports whether the value has content once surrounding
// whitespace is removed.
func isFilled(value string) bool {
	return strings.TrimSpace(value) != ""
}

// parseRating parses the rating text as a decimal number.
func parseRating(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// isValidRating applies the rating rule: filled, no leading "0",
// a decimal number, within [MinRating, MaxRating].
//
// The leading "0" guard rejects "0", "0.5" and "05" alike.
func isValidRating(value string) bool {
	if !isFilled(value) {
		return false
	}
	if strings.HasPrefix(value, "0") {
		return false
	}
	rating, err := parseRating(value)
	if err != nil {
		return false
	}
	return rating >= MinRating && rating <= MaxRating
}
