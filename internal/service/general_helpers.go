package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundingPrecision is the multiplier used to round monetary values and
// percentages to two decimal places in API responses.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places.
//
// Example:
//
//	round(123.456789)  // returns 123.46
//	round(0.005)       // returns 0.01
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// parseAmount parses a decimal string, treating missing or unparseable
// input as zero. Monetary values cross the API boundary as strings; the
// zero fallback is what keeps a bad historical record from poisoning a
// whole aggregation.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// percentChange returns change/base*100, or 0 when base is not positive.
// Every derived ratio in the system uses this zero-denominator policy:
// "no signal" is reported as 0, never as NaN, infinity or an error.
func percentChange(change, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return change / base * 100
}
