package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	date, err := ParseDate("2025-06-15")
	require.NoError(t, err)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense with category",
			transaction: Transaction{
				ID:          1,
				Amount:      decimal.NewFromFloat(42.50),
				Type:        TransactionTypeExpense,
				Category:    &Category{ID: 3, Name: "Groceries", Type: TransactionTypeExpense},
				Description: "Weekly shop",
				Date:        date,
			},
		},
		{
			name: "valid income without category",
			transaction: Transaction{
				ID:     2,
				Amount: decimal.NewFromFloat(2500),
				Type:   TransactionTypeIncome,
				Date:   date,
			},
		},
		{
			name: "unknown type",
			transaction: Transaction{
				Amount: decimal.NewFromFloat(10),
				Type:   "transfer",
				Date:   date,
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				Amount: decimal.Zero,
				Type:   TransactionTypeExpense,
				Date:   date,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				Amount: decimal.NewFromFloat(-5),
				Type:   TransactionTypeExpense,
				Date:   date,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "missing date",
			transaction: Transaction{
				Amount: decimal.NewFromFloat(10),
				Type:   TransactionTypeExpense,
			},
			wantErr: ErrMissingDate,
		},
		{
			name: "category type mismatch",
			transaction: Transaction{
				Amount:   decimal.NewFromFloat(10),
				Type:     TransactionTypeExpense,
				Category: &Category{ID: 9, Name: "Salary", Type: TransactionTypeIncome},
				Date:     date,
			},
			wantErr: ErrCategoryTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_CategoryName(t *testing.T) {
	withCategory := Transaction{Category: &Category{Name: "Rent", Type: TransactionTypeExpense}}
	assert.Equal(t, "Rent", withCategory.CategoryName())

	withoutCategory := Transaction{}
	assert.Equal(t, "", withoutCategory.CategoryName())
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	payload := `{
		"id": 7,
		"amount": 1200.5,
		"type": "income",
		"category": {"id": 2, "name": "Salary", "type": "income"},
		"description": "June salary",
		"date": "2025-06-01"
	}`

	var transaction Transaction
	require.NoError(t, json.Unmarshal([]byte(payload), &transaction))

	assert.Equal(t, 7, transaction.ID)
	assert.True(t, transaction.Amount.Equal(decimal.NewFromFloat(1200.5)))
	assert.True(t, transaction.IsIncome())
	assert.Equal(t, "Salary", transaction.CategoryName())
	assert.Equal(t, "2025-06-01", transaction.Date.String())
	assert.NoError(t, transaction.Validate())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("INCOME"))
	assert.False(t, IsValidTransactionType("transfer"))
}
