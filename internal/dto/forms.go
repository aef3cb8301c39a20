package dto

import (
	"errors"
	"fmt"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Form conversion failures, distinguished so the controller can pick
// the matching notification text.
var (
	ErrInvalidAmountFormat = errors.New("amount is not a valid number")
	ErrInvalidDateFormat   = errors.New("date is not a valid YYYY-MM-DD value")
)

// AddTransactionForm carries the add-transaction form fields. Amount and
// category arrive as text and are coerced during conversion, mirroring
// the native form inputs.
type AddTransactionForm struct {
	Amount      string `form:"amount" validate:"required,positive_amount"`
	Type        string `form:"type" validate:"required,transaction_type"`
	CategoryID  int    `form:"category" validate:"omitempty,min=0"`
	Description string `form:"description"`
	Date        string `form:"date" validate:"required,calendar_date"`
}

// ToRequest coerces the form fields into an API create request.
func (f *AddTransactionForm) ToRequest() (apiclient.CreateTransactionRequest, error) {
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return apiclient.CreateTransactionRequest{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, f.Amount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return apiclient.CreateTransactionRequest{}, models.ErrInvalidAmount
	}

	date, err := models.ParseDate(f.Date)
	if err != nil {
		return apiclient.CreateTransactionRequest{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, f.Date)
	}

	req := apiclient.CreateTransactionRequest{
		Amount:      amount,
		Type:        f.Type,
		Description: f.Description,
		Date:        date,
	}
	if f.CategoryID > 0 {
		categoryID := f.CategoryID
		req.CategoryID = &categoryID
	}

	return req, nil
}

// DeleteTransactionForm carries the interactive confirmation flag. A
// declined confirmation must issue no upstream request.
type DeleteTransactionForm struct {
	Confirmed bool `form:"confirmed"`
}

// TransactionFilterQuery narrows the transaction table re-render.
type TransactionFilterQuery struct {
	Type      string `query:"type" validate:"omitempty,transaction_type"`
	StartDate string `query:"start_date" validate:"omitempty,calendar_date"`
	EndDate   string `query:"end_date" validate:"omitempty,calendar_date"`
}

// ToFilters converts the query into API client filters.
func (q *TransactionFilterQuery) ToFilters() (apiclient.TransactionFilters, error) {
	filters := apiclient.TransactionFilters{Type: q.Type}

	if q.StartDate != "" {
		start, err := models.ParseDate(q.StartDate)
		if err != nil {
			return filters, fmt.Errorf("%w: %q", ErrInvalidDateFormat, q.StartDate)
		}
		filters.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := models.ParseDate(q.EndDate)
		if err != nil {
			return filters, fmt.Errorf("%w: %q", ErrInvalidDateFormat, q.EndDate)
		}
		filters.EndDate = &end
	}

	return filters, nil
}

// CategoryOptionsQuery selects which category type populates the dropdown.
type CategoryOptionsQuery struct {
	Type string `query:"type" validate:"omitempty,transaction_type"`
}
