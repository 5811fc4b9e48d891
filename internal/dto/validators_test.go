package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
	"github.com/SscSPs/taxbooks_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-31"`), &d))
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-31T10:15:00Z"`), &d))
	assert.Equal(t, 10, d.Hour())

	assert.Error(t, json.Unmarshal([]byte(`"31/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240331`), &d))
}

func decodeTransaction(t *testing.T, body string) dto.CreateTransactionRequest {
	t.Helper()
	var req dto.CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestMoneyValidation(t *testing.T) {
	dto.RegisterValidators()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid string amount", `{"type":"income","amount":"1000.00","description":"Consulting","category":"sales","transactionDate":"2024-01-15"}`, false},
		{"valid numeric amount", `{"type":"expense","amount":300,"description":"Laptop","category":"equipment","transactionDate":"2024-02-01"}`, false},
		{"zero amount", `{"type":"expense","amount":"0","description":"Void","category":"misc","transactionDate":"2024-02-01"}`, false},
		{"negative amount", `{"type":"income","amount":"-5.00","description":"Refund","category":"sales","transactionDate":"2024-01-15"}`, true},
		{"negative vat", `{"type":"income","amount":"5.00","vatAmount":"-1","description":"x","category":"sales","transactionDate":"2024-01-15"}`, true},
		{"missing amount", `{"type":"income","description":"x","category":"sales","transactionDate":"2024-01-15"}`, true},
		{"bad type", `{"type":"transfer","amount":"5.00","description":"x","category":"sales","transactionDate":"2024-01-15"}`, true},
		{"missing date", `{"type":"income","amount":"5.00","description":"x","category":"sales"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decodeTransaction(t, tt.body)
			err := binding.Validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToTransactionResponse_FormatsMoney(t *testing.T) {
	vat := decimal.RequireFromString("250")
	resp := dto.ToTransactionResponse(&domain.Transaction{
		ID:        "t1",
		Type:      domain.TransactionTypeIncome,
		Amount:    decimal.RequireFromString("1500"),
		VATAmount: &vat,
	})
	assert.Equal(t, "1500.00", resp.Amount)
	require.NotNil(t, resp.VATAmount)
	assert.Equal(t, "250.00", *resp.VATAmount)
	assert.Nil(t, resp.NetAmount)
}
