package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/notify"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles the add and delete actions. Both run the
// refresh protocol on success so the table, summary and chart reflect
// the new upstream state.
type TransactionHandler struct {
	dashboard *DashboardHandler
	svc       services.DashboardServiceInterface
	notifier  *notify.Center
}

// NewTransactionHandler creates the transaction handler.
func NewTransactionHandler(dashboard *DashboardHandler, svc services.DashboardServiceInterface, notifier *notify.Center) *TransactionHandler {
	return &TransactionHandler{
		dashboard: dashboard,
		svc:       svc,
		notifier:  notifier,
	}
}

// AddTransaction creates a transaction from the form and refreshes the
// dependent views. Validation failures never reach the upstream API.
func (h *TransactionHandler) AddTransaction(c echo.Context) error {
	var form dto.AddTransactionForm
	if err := c.Bind(&form); err != nil {
		return h.dashboard.renderNotificationError(c, errors.TransactionCreateFailed, "")
	}
	if err := c.Validate(&form); err != nil {
		return h.dashboard.renderNotificationError(c, validationErrorCode(err), "")
	}

	req, err := form.ToRequest()
	if err != nil {
		return h.dashboard.renderNotificationError(c, formErrorCode(err), "")
	}

	created, err := h.svc.CreateTransaction(c.Request().Context(), req)
	if err != nil {
		slog.Warn("transaction create failed",
			"trace_id", getTraceID(c),
			"type", req.Type,
			"error", err)
		message := apiclient.ErrorMessage(err, errors.GetErrorMessage(errors.TransactionCreateFailed))
		return h.dashboard.renderNotificationError(c, errors.TransactionCreateFailed, message)
	}

	slog.Info("transaction created",
		"trace_id", getTraceID(c),
		"transaction_id", created.ID,
		"type", created.Type)
	h.notifier.Success("Transaction added successfully")

	return h.dashboard.refreshViews(c)
}

// DeleteTransaction deletes a transaction after explicit confirmation.
// A declined confirmation is a no-op: no upstream request is issued and
// the views are left untouched.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return h.dashboard.renderNotificationError(c, errors.TransactionInvalidID, "")
	}

	var form dto.DeleteTransactionForm
	if err := c.Bind(&form); err != nil {
		return h.dashboard.renderNotificationError(c, errors.TransactionDeleteFailed, "")
	}
	if !form.Confirmed {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.svc.DeleteTransaction(c.Request().Context(), id); err != nil {
		slog.Warn("transaction delete failed",
			"trace_id", getTraceID(c),
			"transaction_id", id,
			"error", err)
		code := errors.TransactionDeleteFailed
		if apiclient.IsNotFound(err) {
			code = errors.TransactionNotFound
		}
		return h.dashboard.renderNotificationError(c, code, "")
	}

	slog.Info("transaction deleted", "trace_id", getTraceID(c), "transaction_id", id)
	h.notifier.Success("Transaction deleted successfully")

	return h.dashboard.refreshViews(c)
}

// formErrorCode maps form conversion failures onto validation codes.
func formErrorCode(err error) errors.ErrorCode {
	switch {
	case stderrors.Is(err, dto.ErrInvalidAmountFormat), stderrors.Is(err, models.ErrInvalidAmount):
		return errors.ValidationInvalidAmount
	case stderrors.Is(err, dto.ErrInvalidDateFormat):
		return errors.ValidationInvalidDate
	default:
		return errors.ValidationGeneral
	}
}
