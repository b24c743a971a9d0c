package domain

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// NumericInput is the outcome of parsing a raw numeric form value.
// Valid is false when the text could not be read as a finite number.
type NumericInput struct {
	Value float64
	Valid bool
}

// ParseNumeric reads raw form text as a floating-point number.
// Surrounding whitespace is ignored; empty text, NaN and infinities are invalid.
func ParseNumeric(raw string) NumericInput {
	text := strings.TrimSpace(raw)
	if text == "" {
		return NumericInput{}
	}
	v, err := cast.ToFloat64E(text)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return NumericInput{}
	}
	return NumericInput{Value: v, Valid: true}
}

// OrZero applies the form defaulting rule: input that does not parse counts as 0
// and is never reported back to the user as an error.
func (n NumericInput) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}
