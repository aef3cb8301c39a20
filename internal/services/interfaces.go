package services

import (
	"context"
	"io"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/models"
)

// DashboardServiceInterface owns the dashboard's application state and
// drives the view-refresh protocol: every successful mutation re-fetches
// transactions, summary and category breakdown from the API before the
// action completes.
type DashboardServiceInterface interface {
	// Bootstrap loads categories plus the three dependent views for the
	// initial page render.
	Bootstrap(ctx context.Context) (DashboardState, error)

	// RefreshAll re-fetches the three dependent views and commits them
	// to the state unless a newer refresh superseded this one.
	RefreshAll(ctx context.Context) (DashboardState, error)

	// FilterTransactions re-fetches only the transaction list with the
	// given filters. Summary and chart state are left untouched.
	FilterTransactions(ctx context.Context, filters apiclient.TransactionFilters) ([]models.Transaction, error)

	// CreateTransaction performs the add mutation. Callers follow up with
	// RefreshAll per the consistency contract.
	CreateTransaction(ctx context.Context, req apiclient.CreateTransactionRequest) (*models.Transaction, error)

	// DeleteTransaction performs the delete mutation for a confirmed
	// request. Callers follow up with RefreshAll.
	DeleteTransaction(ctx context.Context, id int) error

	// ImportCSV uploads a CSV file and returns the server-supplied result.
	ImportCSV(ctx context.Context, filename string, file io.Reader) (*apiclient.ImportResult, error)

	// ExportCSV fetches the full dataset as opaque CSV bytes.
	ExportCSV(ctx context.Context) ([]byte, error)

	// ReloadCategories re-fetches the category set and caches it.
	ReloadCategories(ctx context.Context) ([]models.Category, error)

	// Categories returns the cached category set without a network call;
	// the type-change dropdown repopulation uses it.
	Categories() []models.Category

	// State returns a snapshot of the current dashboard state.
	State() DashboardState
}
