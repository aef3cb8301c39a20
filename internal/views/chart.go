package views

import (
	"encoding/json"
	"html/template"

	"finance-dashboard/internal/models"
)

// chartPalette holds the segment colors, cycled when a breakdown has
// more categories than colors.
var chartPalette = []string{
	"#FF6384",
	"#36A2EB",
	"#FFCE56",
	"#4BC0C0",
	"#9966FF",
	"#FF9F40",
	"#FF6384",
	"#C9CBCF",
}

// ExpenseChart is the doughnut dataset for the category chart. Only
// expense-type breakdown entries become segments; an income-only
// breakdown yields zero segments.
type ExpenseChart struct {
	Labels []string `json:"labels"`
	Values []string `json:"values"`
	Colors []string `json:"colors"`
}

// BuildExpenseChart filters the breakdown to expenses and maps category
// names to segment labels and totals to segment values, in API order.
func BuildExpenseChart(breakdown []models.CategoryBreakdown) ExpenseChart {
	chart := ExpenseChart{
		Labels: []string{},
		Values: []string{},
		Colors: []string{},
	}

	for i := range breakdown {
		b := &breakdown[i]
		if b.Type != models.TransactionTypeExpense {
			continue
		}

		chart.Labels = append(chart.Labels, b.Category)
		chart.Values = append(chart.Values, b.Total.StringFixed(2))
		chart.Colors = append(chart.Colors, chartPalette[(len(chart.Labels)-1)%len(chartPalette)])
	}

	return chart
}

// DatasetJSON serializes the chart for embedding into the page script.
// The script destroys any previous chart instance before constructing a
// new one from this dataset.
func (c ExpenseChart) DatasetJSON() (template.JS, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
