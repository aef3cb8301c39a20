package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/models"

	"golang.org/x/sync/errgroup"
)

// DashboardState is the explicit application-state object: the category
// cache plus the last committed render data. It replaces module-level
// mutable globals; the service owns the single instance and hands out
// copies.
type DashboardState struct {
	Categories   []models.Category
	Transactions []models.Transaction
	Summary      models.Summary
	Breakdown    []models.CategoryBreakdown
}

type dashboardService struct {
	api     apiclient.Client
	runner  *ActionRunner
	metrics *DashboardMetrics

	mu    sync.RWMutex
	state DashboardState
}

// NewDashboardService creates the dashboard service on top of the API client.
func NewDashboardService(api apiclient.Client, metrics *DashboardMetrics) DashboardServiceInterface {
	return &dashboardService{
		api:     api,
		runner:  NewActionRunner(),
		metrics: metrics,
	}
}

func (s *dashboardService) Bootstrap(ctx context.Context) (DashboardState, error) {
	var (
		fetched DashboardState
		g, gctx = errgroup.WithContext(ctx)
	)

	g.Go(func() error {
		categories, err := s.api.ListCategories(gctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		fetched.Categories = categories
		return nil
	})
	g.Go(func() error {
		transactions, err := s.api.ListTransactions(gctx, apiclient.TransactionFilters{})
		if err != nil {
			return fmt.Errorf("transactions: %w", err)
		}
		fetched.Transactions = transactions
		return nil
	})
	g.Go(func() error {
		summary, err := s.api.GetSummary(gctx)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		fetched.Summary = *summary
		return nil
	})
	g.Go(func() error {
		breakdown, err := s.api.GetCategoryBreakdown(gctx)
		if err != nil {
			return fmt.Errorf("breakdown: %w", err)
		}
		fetched.Breakdown = breakdown
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardState{}, err
	}

	s.mu.Lock()
	s.state = fetched
	s.mu.Unlock()

	slog.Info("dashboard bootstrapped",
		"categories", len(fetched.Categories),
		"transactions", len(fetched.Transactions))

	return fetched, nil
}

// RefreshAll is the consistency contract of the dashboard: the three
// dependent views are always re-fetched from the API after a mutation,
// never computed locally. A refresh superseded by a newer one commits
// nothing and reports ErrSuperseded.
func (s *dashboardService) RefreshAll(ctx context.Context) (DashboardState, error) {
	var fetched struct {
		transactions []models.Transaction
		summary      *models.Summary
		breakdown    []models.CategoryBreakdown
	}

	err := s.runner.Do(ctx, ActionRefresh, func(runCtx context.Context) error {
		g, gctx := errgroup.WithContext(runCtx)

		g.Go(func() error {
			transactions, err := s.api.ListTransactions(gctx, apiclient.TransactionFilters{})
			if err != nil {
				return fmt.Errorf("transactions: %w", err)
			}
			fetched.transactions = transactions
			return nil
		})
		g.Go(func() error {
			summary, err := s.api.GetSummary(gctx)
			if err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			fetched.summary = summary
			return nil
		})
		g.Go(func() error {
			breakdown, err := s.api.GetCategoryBreakdown(gctx)
			if err != nil {
				return fmt.Errorf("breakdown: %w", err)
			}
			fetched.breakdown = breakdown
			return nil
		})

		return g.Wait()
	}, func() {
		s.mu.Lock()
		s.state.Transactions = fetched.transactions
		s.state.Summary = *fetched.summary
		s.state.Breakdown = fetched.breakdown
		s.mu.Unlock()
	})

	if err != nil {
		s.metrics.RecordRefresh("error")
		return DashboardState{}, err
	}

	s.metrics.RecordRefresh("ok")
	return s.State(), nil
}

func (s *dashboardService) FilterTransactions(ctx context.Context, filters apiclient.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.runner.Do(ctx, ActionFilter, func(runCtx context.Context) error {
		fetched, err := s.api.ListTransactions(runCtx, filters)
		if err != nil {
			return err
		}
		transactions = fetched
		return nil
	}, func() {
		s.mu.Lock()
		s.state.Transactions = transactions
		s.mu.Unlock()
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (s *dashboardService) CreateTransaction(ctx context.Context, req apiclient.CreateTransactionRequest) (*models.Transaction, error) {
	created, err := s.api.CreateTransaction(ctx, req)
	if err != nil {
		s.metrics.RecordAction(ActionAdd, "error")
		return nil, err
	}

	s.metrics.RecordAction(ActionAdd, "ok")
	slog.Info("transaction created", "id", created.ID, "type", created.Type)
	return created, nil
}

func (s *dashboardService) DeleteTransaction(ctx context.Context, id int) error {
	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		s.metrics.RecordAction(ActionDelete, "error")
		return err
	}

	s.metrics.RecordAction(ActionDelete, "ok")
	slog.Info("transaction deleted", "id", id)
	return nil
}

func (s *dashboardService) ImportCSV(ctx context.Context, filename string, file io.Reader) (*apiclient.ImportResult, error) {
	result, err := s.api.ImportCSV(ctx, filename, file)
	if err != nil {
		s.metrics.RecordAction(ActionImport, "error")
		return nil, err
	}

	s.metrics.RecordAction(ActionImport, "ok")
	slog.Info("csv imported", "filename", filename, "message", result.Message)
	return result, nil
}

func (s *dashboardService) ExportCSV(ctx context.Context) ([]byte, error) {
	data, err := s.api.ExportCSV(ctx)
	if err != nil {
		s.metrics.RecordAction(ActionExport, "error")
		return nil, err
	}

	s.metrics.RecordAction(ActionExport, "ok")
	return data, nil
}

func (s *dashboardService) ReloadCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state.Categories = categories
	s.mu.Unlock()

	return categories, nil
}

// Categories serves the dropdown repopulation on type change: a pure
// read of the cache, no network call.
func (s *dashboardService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.state.Categories))
	copy(out, s.state.Categories)
	return out
}

func (s *dashboardService) State() DashboardState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := DashboardState{Summary: s.state.Summary}
	state.Categories = append([]models.Category(nil), s.state.Categories...)
	state.Transactions = append([]models.Transaction(nil), s.state.Transactions...)
	state.Breakdown = append([]models.CategoryBreakdown(nil), s.state.Breakdown...)
	return state
}
