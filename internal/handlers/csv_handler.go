package handlers

import (
	"log/slog"
	"net/http"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/notify"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// exportFilename matches the download name users already expect.
const exportFilename = "transactions.csv"

// CSVHandler handles bulk import and export of transactions.
type CSVHandler struct {
	dashboard *DashboardHandler
	svc       services.DashboardServiceInterface
	notifier  *notify.Center
}

// NewCSVHandler creates the CSV handler.
func NewCSVHandler(dashboard *DashboardHandler, svc services.DashboardServiceInterface, notifier *notify.Center) *CSVHandler {
	return &CSVHandler{
		dashboard: dashboard,
		svc:       svc,
		notifier:  notifier,
	}
}

// ImportCSV uploads a CSV file to the API and refreshes the dependent
// views. Imports can introduce new categories, so the cached category
// set is reloaded as part of the same action.
func (h *CSVHandler) ImportCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.dashboard.renderNotificationError(c, errors.ImportMissingFile, "")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.dashboard.renderNotificationError(c, errors.ImportFailed, "")
	}
	defer file.Close()

	result, err := h.svc.ImportCSV(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		slog.Warn("csv import failed",
			"trace_id", getTraceID(c),
			"filename", fileHeader.Filename,
			"error", err)
		message := apiclient.ErrorMessage(err, errors.GetErrorMessage(errors.ImportFailed))
		return h.dashboard.renderNotificationError(c, errors.ImportFailed, message)
	}

	if _, err := h.svc.ReloadCategories(c.Request().Context()); err != nil {
		slog.Warn("category reload after import failed", "trace_id", getTraceID(c), "error", err)
	}

	slog.Info("csv imported", "trace_id", getTraceID(c), "filename", fileHeader.Filename)
	message := result.Message
	if message == "" {
		message = "CSV imported successfully"
	}
	h.notifier.Success(message)

	return h.dashboard.refreshViews(c)
}

// ExportCSV streams the upstream CSV export as a file download.
func (h *CSVHandler) ExportCSV(c echo.Context) error {
	data, err := h.svc.ExportCSV(c.Request().Context())
	if err != nil {
		slog.Warn("csv export failed", "trace_id", getTraceID(c), "error", err)
		return h.dashboard.renderNotificationError(c, errors.ExportFailed, "")
	}

	// The response body is the download itself; the notification shows
	// up with the next rendered fragment.
	h.notifier.Success("Transactions exported successfully")

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
