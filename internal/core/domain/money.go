package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places money is stored with (pence).
const MoneyPlaces = 2

// RoundMoney rounds an amount to pence.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// RoundMoneyPtr rounds an optional amount, returning nil for nil.
func RoundMoneyPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := RoundMoney(*d)
	return &r
}

// IsNegativeMoney reports whether an optional amount is present and below zero.
func IsNegativeMoney(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}
