package views

import (
	"encoding/json"
	"testing"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExpenseChart_ExpensesOnly(t *testing.T) {
	breakdown := []models.CategoryBreakdown{
		{Category: "Salary", Type: models.TransactionTypeIncome, Total: decimal.NewFromFloat(3000)},
		{Category: "Food", Type: models.TransactionTypeExpense, Total: decimal.NewFromFloat(320.4)},
		{Category: "Rent", Type: models.TransactionTypeExpense, Total: decimal.NewFromFloat(900)},
	}

	chart := BuildExpenseChart(breakdown)

	assert.Equal(t, []string{"Food", "Rent"}, chart.Labels)
	assert.Equal(t, []string{"320.40", "900.00"}, chart.Values)
	assert.Len(t, chart.Colors, 2)
}

func TestBuildExpenseChart_IncomeOnlyYieldsNoSegments(t *testing.T) {
	breakdown := []models.CategoryBreakdown{
		{Category: "Salary", Type: models.TransactionTypeIncome, Total: decimal.NewFromFloat(3000)},
	}

	chart := BuildExpenseChart(breakdown)

	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Values)
	assert.Empty(t, chart.Colors)
}

func TestBuildExpenseChart_PaletteCycles(t *testing.T) {
	breakdown := make([]models.CategoryBreakdown, 0, 10)
	for i := 0; i < 10; i++ {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category: string(rune('A' + i)),
			Type:     models.TransactionTypeExpense,
			Total:    decimal.NewFromInt(int64(i + 1)),
		})
	}

	chart := BuildExpenseChart(breakdown)

	require.Len(t, chart.Colors, 10)
	// Ninth segment wraps back to the first palette color
	assert.Equal(t, chart.Colors[0], chart.Colors[8])
	assert.Equal(t, chart.Colors[1], chart.Colors[9])
}

func TestExpenseChart_DatasetJSON(t *testing.T) {
	chart := BuildExpenseChart([]models.CategoryBreakdown{
		{Category: "Food", Type: models.TransactionTypeExpense, Total: decimal.NewFromFloat(12.5)},
	})

	dataset, err := chart.DatasetJSON()
	require.NoError(t, err)

	var decoded struct {
		Labels []string `json:"labels"`
		Values []string `json:"values"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(dataset), &decoded))
	assert.Equal(t, []string{"Food"}, decoded.Labels)
	assert.Equal(t, []string{"12.50"}, decoded.Values)
}

func TestExpenseChart_EmptyDatasetIsValidJSON(t *testing.T) {
	dataset, err := BuildExpenseChart(nil).DatasetJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":[],"values":[],"colors":[]}`, string(dataset))
}
