package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/notify"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/views"

	"github.com/labstack/echo/v4"
)

// timeNow is swapped in tests that pin the default form date.
var timeNow = time.Now

// DashboardHandler is the interaction controller: it binds user actions
// to API calls and re-renders the affected views. Every action catches
// failures at its own boundary and surfaces them as a notification.
type DashboardHandler struct {
	svc      services.DashboardServiceInterface
	bindings views.Bindings
	notifier *notify.Center
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(svc services.DashboardServiceInterface, bindings views.Bindings, notifier *notify.Center) *DashboardHandler {
	return &DashboardHandler{
		svc:      svc,
		bindings: bindings,
		notifier: notifier,
	}
}

// dashboardPage is the full-page view model.
type dashboardPage struct {
	Summary       views.SummaryPanel
	Table         views.TransactionTable
	ChartJSON     template.JS
	Options       []views.CategoryOption
	SelectedType  string
	DefaultDate   string
	Notifications []notify.Notification
	Bindings      views.Bindings
}

// refreshFragment carries the three dependent views re-rendered after a
// mutation, plus the notification stack.
type refreshFragment struct {
	Summary       views.SummaryPanel
	Table         views.TransactionTable
	ChartJSON     template.JS
	Notifications []notify.Notification
	Bindings      views.Bindings
}

// Dashboard serves the full dashboard page.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	state, err := h.svc.Bootstrap(c.Request().Context())
	if err != nil {
		slog.Error("dashboard bootstrap failed", "trace_id", getTraceID(c), "error", err)
		h.notifier.Error(errors.GetErrorMessage(errors.TransactionRefreshFailed))
		state = h.svc.State()
	}

	page, err := h.buildPage(state, models.TransactionTypeExpense)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.Render(http.StatusOK, h.bindings.Page.Template, page)
}

// FilterTransactions re-renders only the transaction table using the
// selected filters. Summary and chart are not touched.
func (h *DashboardHandler) FilterTransactions(c echo.Context) error {
	var query dto.TransactionFilterQuery
	if err := c.Bind(&query); err != nil {
		return h.renderNotificationError(c, errors.ValidationGeneral, "")
	}
	if err := c.Validate(&query); err != nil {
		return h.renderNotificationError(c, validationErrorCode(err), "")
	}

	filters, err := query.ToFilters()
	if err != nil {
		return h.renderNotificationError(c, errors.ValidationInvalidDate, "")
	}

	transactions, err := h.svc.FilterTransactions(c.Request().Context(), filters)
	if err != nil {
		if err == services.ErrSuperseded {
			return c.NoContent(http.StatusNoContent)
		}
		slog.Warn("transaction filter failed", "trace_id", getTraceID(c), "error", err)
		return h.renderNotificationError(c, errors.TransactionRefreshFailed, "")
	}

	return c.Render(http.StatusOK, h.bindings.Table.Template, views.BuildTransactionTable(transactions))
}

// CategoryOptions repopulates the category dropdown for the selected
// type from the cached category set. No upstream call.
func (h *DashboardHandler) CategoryOptions(c echo.Context) error {
	var query dto.CategoryOptionsQuery
	if err := c.Bind(&query); err != nil {
		return h.renderNotificationError(c, errors.ValidationGeneral, "")
	}
	if err := c.Validate(&query); err != nil {
		return h.renderNotificationError(c, validationErrorCode(err), "")
	}

	selectedType := query.Type
	if selectedType == "" {
		selectedType = models.TransactionTypeExpense
	}

	options := views.BuildCategoryOptions(h.svc.Categories(), selectedType)
	return c.Render(http.StatusOK, h.bindings.Dropdown.Template, options)
}

// refreshViews runs the post-mutation refresh protocol and renders the
// three dependent views. A refresh failure keeps the stale views and
// surfaces an error notification; the mutation itself stays applied
// server-side.
func (h *DashboardHandler) refreshViews(c echo.Context) error {
	state, err := h.svc.RefreshAll(c.Request().Context())
	if err != nil {
		if err == services.ErrSuperseded {
			return c.NoContent(http.StatusNoContent)
		}
		slog.Warn("view refresh failed after mutation", "trace_id", getTraceID(c), "error", err)
		return h.renderNotificationError(c, errors.TransactionRefreshFailed, "")
	}

	fragment, err := h.buildRefreshFragment(state)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.Render(http.StatusOK, "refresh_fragment", fragment)
}

// renderNotificationError pushes an error notification and renders the
// notification stack with the code's HTTP status. message overrides the
// code's default text when non-empty.
func (h *DashboardHandler) renderNotificationError(c echo.Context, code errors.ErrorCode, message string) error {
	if message == "" {
		message = errors.GetErrorMessage(code)
	}
	h.notifier.Error(message)

	return c.Render(errors.GetHTTPStatus(code), h.bindings.Notifications.Template, h.notifier.Active())
}

func (h *DashboardHandler) buildPage(state services.DashboardState, selectedType string) (dashboardPage, error) {
	chartJSON, err := views.BuildExpenseChart(state.Breakdown).DatasetJSON()
	if err != nil {
		return dashboardPage{}, err
	}

	return dashboardPage{
		Summary:       views.BuildSummaryPanel(state.Summary),
		Table:         views.BuildTransactionTable(state.Transactions),
		ChartJSON:     chartJSON,
		Options:       views.BuildCategoryOptions(state.Categories, selectedType),
		SelectedType:  selectedType,
		DefaultDate:   views.DefaultDate(timeNow()),
		Notifications: h.notifier.Active(),
		Bindings:      h.bindings,
	}, nil
}

func (h *DashboardHandler) buildRefreshFragment(state services.DashboardState) (refreshFragment, error) {
	chartJSON, err := views.BuildExpenseChart(state.Breakdown).DatasetJSON()
	if err != nil {
		return refreshFragment{}, err
	}

	return refreshFragment{
		Summary:       views.BuildSummaryPanel(state.Summary),
		Table:         views.BuildTransactionTable(state.Transactions),
		ChartJSON:     chartJSON,
		Notifications: h.notifier.Active(),
		Bindings:      h.bindings,
	}, nil
}
