package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the dashboard endpoints. Fragment endpoints live
// under /partials so the page script can tell full renders apart from
// targeted re-renders.
func RegisterRoutes(e *echo.Echo, dashboard *DashboardHandler, transactions *TransactionHandler, csv *CSVHandler, health *HealthCheckHandler) {
	e.GET("/", dashboard.Dashboard)
	e.GET("/health", health.HealthCheck)
	e.GET("/partials/transactions", dashboard.FilterTransactions)
	e.GET("/partials/categories", dashboard.CategoryOptions)

	e.POST("/transactions", transactions.AddTransaction)
	e.POST("/transactions/:id/delete", transactions.DeleteTransaction)

	e.POST("/import", csv.ImportCSV)
	e.GET("/export", csv.ExportCSV)
}
