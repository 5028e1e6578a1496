package service

import "github.com/shopspring/decimal"

// parseAmount parses a user-supplied monetary amount. The value must be a
// positive decimal with at most two fractional digits; anything else is
// ErrInvalidAmount.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Exponent() < -2 {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
