// Package money validates and normalizes the decimal-string amounts used
// for chore payments, earnings, and pocket money. Amounts are exact
// decimals, never binary floats.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a non-negative decimal string and rounds it to cents
// (half-up on the third decimal place).
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d.Round(2), nil
}

// Sum adds a slice of amounts, returning zero for an empty slice.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Split returns the portion of total allocated by a whole-number percentage,
// rounded to cents.
func Split(total decimal.Decimal, percent int) decimal.Decimal {
	if percent <= 0 {
		return decimal.Zero
	}
	if percent >= 100 {
		return total
	}
	return total.Mul(decimal.New(int64(percent), -2)).Round(2)
}
