package views

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// DisplayDateLayout matches the locale-style date shown in the table.
	DisplayDateLayout = "01/02/2006"

	// NoCategoryLabel is rendered when a transaction has no category.
	NoCategoryLabel = "N/A"

	amountClassIncome  = "text-success"
	amountClassExpense = "text-danger"
)

// TransactionRow is the view model for one table row.
type TransactionRow struct {
	ID          int
	Date        string
	Description string
	Category    string
	Type        string
	Amount      string
	AmountClass string
}

// TransactionTable renders to exactly one row per transaction, or a
// single placeholder row when Empty is set. Never both.
type TransactionTable struct {
	Rows  []TransactionRow
	Empty bool
}

// BuildTransactionTable maps fetched transactions onto table rows in
// API order.
func BuildTransactionTable(transactions []models.Transaction) TransactionTable {
	if len(transactions) == 0 {
		return TransactionTable{Empty: true}
	}

	rows := make([]TransactionRow, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]

		category := t.CategoryName()
		if category == "" {
			category = NoCategoryLabel
		}

		amountClass := amountClassExpense
		if t.IsIncome() {
			amountClass = amountClassIncome
		}

		rows = append(rows, TransactionRow{
			ID:          t.ID,
			Date:        t.Date.Format(DisplayDateLayout),
			Description: t.Description,
			Category:    category,
			Type:        t.Type,
			Amount:      FormatSignedAmount(t.Amount, t.Type),
			AmountClass: amountClass,
		})
	}

	return TransactionTable{Rows: rows}
}

// FormatSignedAmount renders an amount with its type-derived sign and a
// currency prefix, always to two decimal places: 42.5/expense -> -$42.50.
func FormatSignedAmount(amount decimal.Decimal, transactionType string) string {
	sign := "-"
	if transactionType == models.TransactionTypeIncome {
		sign = "+"
	}
	return sign + FormatMoney(amount)
}

// FormatMoney renders an unsigned currency figure to two decimals.
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// SummaryPanel is the view model for the headline figures.
type SummaryPanel struct {
	TotalIncome     string
	TotalExpenses   string
	Balance         string
	MonthlyIncome   string
	MonthlyExpenses string
	MonthlyBalance  string
}

// BuildSummaryPanel formats the aggregate totals for display.
func BuildSummaryPanel(summary models.Summary) SummaryPanel {
	return SummaryPanel{
		TotalIncome:     FormatMoney(summary.TotalIncome),
		TotalExpenses:   FormatMoney(summary.TotalExpenses),
		Balance:         FormatMoney(summary.Balance),
		MonthlyIncome:   FormatMoney(summary.MonthlyIncome),
		MonthlyExpenses: FormatMoney(summary.MonthlyExpenses),
		MonthlyBalance:  FormatMoney(summary.MonthlyBalance),
	}
}

// CategoryOption is one entry of the category dropdown.
type CategoryOption struct {
	ID   int
	Name string
}

// BuildCategoryOptions returns the options for the currently selected
// transaction type, preserving API order. Categories of the other type
// never leak into the list.
func BuildCategoryOptions(categories []models.Category, selectedType string) []CategoryOption {
	filtered := models.FilterCategoriesByType(categories, selectedType)

	options := make([]CategoryOption, 0, len(filtered))
	for _, c := range filtered {
		options = append(options, CategoryOption{ID: c.ID, Name: c.Name})
	}
	return options
}

// DefaultDate returns today's local calendar date in form value format,
// used to restore the date input after a form reset.
func DefaultDate(now time.Time) string {
	return now.Format(models.DateLayout)
}
