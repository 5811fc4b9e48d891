package domain

import "github.com/shopspring/decimal"

// DashboardStats summarises a business's year.
type DashboardStats struct {
	BusinessID        string
	Year              int
	Revenue           decimal.Decimal
	Expenses          decimal.Decimal
	Profit            decimal.Decimal // may be negative
	VATDue            decimal.Decimal
	PendingVATReturns int
}
