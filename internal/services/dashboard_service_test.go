package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/apiclient/client_mocks"
	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockAPI *client_mocks.MockClient
	svc     DashboardServiceInterface
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = client_mocks.NewMockClient(s.ctrl)
	s.svc = NewDashboardService(s.mockAPI, nil)
}

func (s *DashboardServiceTestSuite) sampleData() ([]models.Category, []models.Transaction, *models.Summary, []models.CategoryBreakdown) {
	date, _ := models.ParseDate("2025-06-01")

	categories := []models.Category{
		{ID: 1, Name: "Salary", Type: models.TransactionTypeIncome},
		{ID: 2, Name: "Food", Type: models.TransactionTypeExpense},
	}
	transactions := []models.Transaction{
		{
			ID:          1,
			Amount:      decimal.NewFromFloat(gofakeit.Float64Range(1.0, 1000.0)),
			Type:        models.TransactionTypeExpense,
			Description: gofakeit.Sentence(5),
			Date:        date,
		},
	}
	summary := &models.Summary{
		TotalIncome:   decimal.NewFromInt(3000),
		TotalExpenses: decimal.NewFromFloat(42.5),
		Balance:       decimal.NewFromFloat(2957.5),
	}
	breakdown := []models.CategoryBreakdown{
		{Category: "Food", Type: models.TransactionTypeExpense, Total: decimal.NewFromFloat(42.5)},
	}
	return categories, transactions, summary, breakdown
}

func (s *DashboardServiceTestSuite) TestBootstrap_LoadsEverything() {
	categories, transactions, summary, breakdown := s.sampleData()

	s.mockAPI.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)
	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), apiclient.TransactionFilters{}).Return(transactions, nil)
	s.mockAPI.EXPECT().GetSummary(gomock.Any()).Return(summary, nil)
	s.mockAPI.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(breakdown, nil)

	state, err := s.svc.Bootstrap(context.Background())

	s.NoError(err)
	s.Equal(categories, state.Categories)
	s.Equal(transactions, state.Transactions)
	s.True(state.Summary.Balance.Equal(summary.Balance))
	s.Equal(breakdown, state.Breakdown)

	// Cached categories serve the dropdown without another network call
	s.Equal(categories, s.svc.Categories())
}

func (s *DashboardServiceTestSuite) TestBootstrap_PartialFailureCommitsNothing() {
	categories, transactions, _, breakdown := s.sampleData()

	s.mockAPI.EXPECT().ListCategories(gomock.Any()).Return(categories, nil).AnyTimes()
	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(transactions, nil).AnyTimes()
	s.mockAPI.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("summary down"))
	s.mockAPI.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(breakdown, nil).AnyTimes()

	_, err := s.svc.Bootstrap(context.Background())

	s.Error(err)
	s.Empty(s.svc.State().Transactions)
	s.Empty(s.svc.Categories())
}

func (s *DashboardServiceTestSuite) TestRefreshAll_RefetchesDependentViews() {
	_, transactions, summary, breakdown := s.sampleData()

	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), apiclient.TransactionFilters{}).Return(transactions, nil)
	s.mockAPI.EXPECT().GetSummary(gomock.Any()).Return(summary, nil)
	s.mockAPI.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(breakdown, nil)

	state, err := s.svc.RefreshAll(context.Background())

	s.NoError(err)
	s.Equal(transactions, state.Transactions)
	s.Equal(breakdown, state.Breakdown)
}

func (s *DashboardServiceTestSuite) TestRefreshAll_Idempotent() {
	_, transactions, summary, breakdown := s.sampleData()

	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), apiclient.TransactionFilters{}).Return(transactions, nil).Times(2)
	s.mockAPI.EXPECT().GetSummary(gomock.Any()).Return(summary, nil).Times(2)
	s.mockAPI.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(breakdown, nil).Times(2)

	first, err := s.svc.RefreshAll(context.Background())
	s.NoError(err)
	second, err := s.svc.RefreshAll(context.Background())
	s.NoError(err)

	s.Equal(first, second)
}

func (s *DashboardServiceTestSuite) TestRefreshAll_FailureLeavesStateUntouched() {
	categories, transactions, summary, breakdown := s.sampleData()

	s.mockAPI.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)
	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(transactions, nil)
	s.mockAPI.EXPECT().GetSummary(gomock.Any()).Return(summary, nil)
	s.mockAPI.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(breakdown, nil)

	_, err := s.svc.Bootstrap(context.Background())
	s.Require().NoError(err)

	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	s.mockAPI.EXPECT().GetSummary(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	s.mockAPI.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()

	_, err = s.svc.RefreshAll(context.Background())
	s.Error(err)

	// The last committed state still renders
	s.Equal(transactions, s.svc.State().Transactions)
}

func (s *DashboardServiceTestSuite) TestFilterTransactions_PassesFiltersThrough() {
	start, _ := models.ParseDate("2025-01-01")
	filters := apiclient.TransactionFilters{Type: models.TransactionTypeExpense, StartDate: &start}
	_, transactions, _, _ := s.sampleData()

	s.mockAPI.EXPECT().ListTransactions(gomock.Any(), filters).Return(transactions, nil)

	got, err := s.svc.FilterTransactions(context.Background(), filters)

	s.NoError(err)
	s.Equal(transactions, got)
	s.Equal(transactions, s.svc.State().Transactions)
}

func (s *DashboardServiceTestSuite) TestCreateTransaction_DelegatesToAPI() {
	date, _ := models.ParseDate("2025-06-01")
	req := apiclient.CreateTransactionRequest{
		Amount: decimal.NewFromFloat(10),
		Type:   models.TransactionTypeExpense,
		Date:   date,
	}
	created := &models.Transaction{ID: 42, Amount: req.Amount, Type: req.Type, Date: date}

	s.mockAPI.EXPECT().CreateTransaction(gomock.Any(), req).Return(created, nil)

	got, err := s.svc.CreateTransaction(context.Background(), req)

	s.NoError(err)
	s.Equal(42, got.ID)
}

func (s *DashboardServiceTestSuite) TestDeleteTransaction_PropagatesError() {
	s.mockAPI.EXPECT().DeleteTransaction(gomock.Any(), 7).Return(errors.New("gone"))

	err := s.svc.DeleteTransaction(context.Background(), 7)

	s.Error(err)
}

func (s *DashboardServiceTestSuite) TestImportCSV_Delegates() {
	s.mockAPI.EXPECT().
		ImportCSV(gomock.Any(), "data.csv", gomock.Any()).
		Return(&apiclient.ImportResult{Message: "Imported 3 transactions"}, nil)

	result, err := s.svc.ImportCSV(context.Background(), "data.csv", strings.NewReader("a,b\n"))

	s.NoError(err)
	s.Equal("Imported 3 transactions", result.Message)
}

func (s *DashboardServiceTestSuite) TestExportCSV_Delegates() {
	payload := []byte("id,amount\n1,10\n")
	s.mockAPI.EXPECT().ExportCSV(gomock.Any()).Return(payload, nil)

	data, err := s.svc.ExportCSV(context.Background())

	s.NoError(err)
	s.Equal(payload, data)
}

func (s *DashboardServiceTestSuite) TestReloadCategories_UpdatesCache() {
	categories := []models.Category{{ID: 5, Name: "Travel", Type: models.TransactionTypeExpense}}
	s.mockAPI.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)

	got, err := s.svc.ReloadCategories(context.Background())

	s.NoError(err)
	s.Equal(categories, got)
	s.Equal(categories, s.svc.Categories())
}

func (s *DashboardServiceTestSuite) TestState_ReturnsDefensiveCopy() {
	categories := []models.Category{{ID: 1, Name: "Food", Type: models.TransactionTypeExpense}}
	s.mockAPI.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)

	_, err := s.svc.ReloadCategories(context.Background())
	s.Require().NoError(err)

	state := s.svc.State()
	state.Categories[0].Name = "mutated"

	s.Equal("Food", s.svc.State().Categories[0].Name)
}
