package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines whether money came in or went out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single categorised income or expense line for a business.
type Transaction struct {
	ID              string           `json:"id"`
	BusinessID      string           `json:"businessId"`
	DocumentID      *string          `json:"documentId,omitempty"`
	Type            TransactionType  `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	VATAmount       *decimal.Decimal `json:"vatAmount,omitempty"`
	NetAmount       *decimal.Decimal `json:"netAmount,omitempty"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Vendor          *string          `json:"vendor,omitempty"`
	Reference       *string          `json:"reference,omitempty"`
	TransactionDate time.Time        `json:"transactionDate"`
	CreatedBy       string           `json:"createdBy"`
	AuditFields
}

type TransactionPatch struct {
	DocumentID      *string
	Type            *TransactionType
	Amount          *decimal.Decimal
	VATAmount       *decimal.Decimal
	NetAmount       *decimal.Decimal
	Description     *string
	Category        *string
	Vendor          *string
	Reference       *string
	TransactionDate *time.Time
	ExpectedVersion *int
}

func (t *Transaction) Apply(p TransactionPatch) {
	setOpt(&t.DocumentID, p.DocumentID)
	set(&t.Type, p.Type)
	if p.Amount != nil {
		t.Amount = RoundMoney(*p.Amount)
	}
	setOpt(&t.VATAmount, RoundMoneyPtr(p.VATAmount))
	setOpt(&t.NetAmount, RoundMoneyPtr(p.NetAmount))
	set(&t.Description, p.Description)
	set(&t.Category, p.Category)
	setOpt(&t.Vendor, p.Vendor)
	setOpt(&t.Reference, p.Reference)
	set(&t.TransactionDate, p.TransactionDate)
}
