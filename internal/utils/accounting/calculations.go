package accounting

import (
	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the transaction amount signed from the business's point of view:
// income is positive, expense is negative.
func SignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.TransactionTypeExpense {
		return txn.Amount.Neg()
	}
	return txn.Amount
}

// Totals holds the income and expense sums of a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	VAT     decimal.Decimal // VAT recorded on income minus VAT recorded on expenses
}

// Profit is income minus expense. It may be negative.
func (t Totals) Profit() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// SumTransactions totals amounts by transaction type using exact decimal arithmetic.
func SumTransactions(transactions []domain.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero, VAT: decimal.Zero}
	for _, txn := range transactions {
		vat := decimal.Zero
		if txn.VATAmount != nil {
			vat = *txn.VATAmount
		}
		switch txn.Type {
		case domain.TransactionTypeIncome:
			totals.Income = totals.Income.Add(txn.Amount)
			totals.VAT = totals.VAT.Add(vat)
		case domain.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(txn.Amount)
			totals.VAT = totals.VAT.Sub(vat)
		}
	}
	return totals
}

// NetOfVAT returns amount minus vat, the default net amount when only gross and VAT are known.
func NetOfVAT(amount decimal.Decimal, vat *decimal.Decimal) *decimal.Decimal {
	if vat == nil {
		return nil
	}
	net := domain.RoundMoney(amount.Sub(*vat))
	return &net
}

// NetVATDue returns vatDue minus the reclaimed amount (zero when not given).
func NetVATDue(vatDue decimal.Decimal, reclaimed *decimal.Decimal) decimal.Decimal {
	if reclaimed == nil {
		return domain.RoundMoney(vatDue)
	}
	return domain.RoundMoney(vatDue.Sub(*reclaimed))
}

// VATFromRate computes VAT on a net amount at a percentage rate, e.g. 20 for 20%.
func VATFromRate(net decimal.Decimal, ratePercent decimal.Decimal) decimal.Decimal {
	return domain.RoundMoney(net.Mul(ratePercent).Div(decimal.NewFromInt(100)))
}
