package accounting_test

import (
	"testing"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSumTransactions(t *testing.T) {
	vat := dec("50.00")
	inputVAT := dec("10.00")
	txns := []domain.Transaction{
		{Type: domain.TransactionTypeIncome, Amount: dec("1000.00"), VATAmount: &vat},
		{Type: domain.TransactionTypeIncome, Amount: dec("500.00")},
		{Type: domain.TransactionTypeExpense, Amount: dec("300.00"), VATAmount: &inputVAT},
	}

	totals := accounting.SumTransactions(txns)
	assert.True(t, dec("1500.00").Equal(totals.Income))
	assert.True(t, dec("300.00").Equal(totals.Expense))
	assert.True(t, dec("1200.00").Equal(totals.Profit()))
	assert.True(t, dec("40.00").Equal(totals.VAT))
}

func TestSumTransactions_ExactDecimalArithmetic(t *testing.T) {
	txns := make([]domain.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		txns = append(txns, domain.Transaction{Type: domain.TransactionTypeIncome, Amount: dec("0.10")})
	}
	assert.Equal(t, "1.00", accounting.SumTransactions(txns).Income.StringFixed(2))
}

func TestSumTransactions_EmptyIsZero(t *testing.T) {
	totals := accounting.SumTransactions(nil)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Profit().IsZero())
}

func TestProfitMayBeNegative(t *testing.T) {
	totals := accounting.SumTransactions([]domain.Transaction{
		{Type: domain.TransactionTypeIncome, Amount: dec("100.00")},
		{Type: domain.TransactionTypeExpense, Amount: dec("250.00")},
	})
	assert.True(t, dec("-150.00").Equal(totals.Profit()))
}

func TestSignedAmount(t *testing.T) {
	assert.True(t, dec("10").Equal(accounting.SignedAmount(domain.Transaction{Type: domain.TransactionTypeIncome, Amount: dec("10")})))
	assert.True(t, dec("-10").Equal(accounting.SignedAmount(domain.Transaction{Type: domain.TransactionTypeExpense, Amount: dec("10")})))
}

func TestNetOfVAT(t *testing.T) {
	assert.Nil(t, accounting.NetOfVAT(dec("120"), nil))

	vat := dec("20")
	net := accounting.NetOfVAT(dec("120"), &vat)
	require.NotNil(t, net)
	assert.True(t, dec("100").Equal(*net))
}

func TestNetVATDue(t *testing.T) {
	assert.True(t, dec("500").Equal(accounting.NetVATDue(dec("500"), nil)))
	reclaimed := dec("120.50")
	assert.True(t, dec("379.50").Equal(accounting.NetVATDue(dec("500"), &reclaimed)))
}

func TestVATFromRate(t *testing.T) {
	assert.True(t, dec("20.00").Equal(accounting.VATFromRate(dec("100"), dec("20"))))
	assert.True(t, dec("2.47").Equal(accounting.VATFromRate(dec("12.34"), dec("20"))))
}
