package utils

import (
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with exactly two decimal places, e.g. 1200 -> "1200.00".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(domain.MoneyPlaces)
}

// FormatMoneyPtr is FormatMoney for optional amounts; nil stays nil.
func FormatMoneyPtr(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	s := FormatMoney(*amount)
	return &s
}
