package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when operator input cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

// ParseWholeNumber parses a base 10 integer such as a year, a runtime or a menu choice.
// Surrounding blanks are ignored.
func ParseWholeNumber(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, s)
	}

	return v, nil
}

// ParseDecimal parses a finite decimal number such as a rating or a price.
// Both "4.5" and "4,5" are accepted.
func ParseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidInput, s)
	}

	return v, nil
}
