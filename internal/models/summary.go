package models

import "github.com/shopspring/decimal"

// Summary contains the aggregate totals the API derives from all
// transactions. The monthly figures cover the trailing 30 days.
type Summary struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	Balance         decimal.Decimal `json:"balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	MonthlyBalance  decimal.Decimal `json:"monthly_balance"`
}

// CategoryBreakdown contains per-category aggregate totals used for the
// expense chart.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Total    decimal.Decimal `json:"total"`
}

// Validate checks the invariants the API promises for a breakdown entry.
func (b *CategoryBreakdown) Validate() error {
	if b.Category == "" {
		return ErrMissingCategoryName
	}

	if !IsValidTransactionType(b.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}
