package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingDate            = errors.New("transaction date is required")
	ErrCategoryTypeMismatch   = errors.New("category type does not match transaction type")
)

// Transaction is a single recorded income or expense event as returned by
// the finance API. The client never mutates a transaction in place; it is
// created via the form and destroyed via an explicit delete keyed by ID.
type Transaction struct {
	ID          int             `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    *Category       `json:"category"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

// Validate checks the invariants the API promises for a transaction.
// Responses failing validation never reach a renderer.
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	// The transaction type partitions which categories are valid for it.
	if t.Category != nil && t.Category.Type != t.Type {
		return ErrCategoryTypeMismatch
	}

	return nil
}

// CategoryName returns the attached category name, or the empty string
// when no category is attached.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// IsIncome returns true for income transactions.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
