package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_api_requests_total",
			Help: "Total number of requests issued against the finance API",
		},
		[]string{"operation", "outcome"},
	)
	upstreamRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "finance_api_request_duration_milliseconds",
			Help:    "Finance API request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

// Client defines the operations the dashboard performs against the
// remote finance API. Every call is a single best-effort attempt: no
// retries, no backoff. Callers cancel via the context.
type Client interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error)
	ListTransactions(ctx context.Context, filters TransactionFilters) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int, req UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) error
	GetSummary(ctx context.Context) (*models.Summary, error)
	GetCategoryBreakdown(ctx context.Context) ([]models.CategoryBreakdown, error)
	ImportCSV(ctx context.Context, filename string, file io.Reader) (*ImportResult, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// TransactionFilters narrows ListTransactions. Zero values are omitted
// from the query string.
type TransactionFilters struct {
	Type      string
	StartDate *models.Date
	EndDate   *models.Date
}

// CreateTransactionRequest carries the fields of the add-transaction form.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	CategoryID  *int            `json:"category_id"`
	Description string          `json:"description"`
	Date        models.Date     `json:"date"`
}

// UpdateTransactionRequest carries a partial update; nil fields are left
// unchanged by the API.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty"`
	CategoryID  *int             `json:"category_id,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *models.Date     `json:"date,omitempty"`
}

// CreateCategoryRequest carries the fields for a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=income expense"`
}

// ImportResult is the API's response to a CSV import. The body is parsed
// as JSON regardless of status so the server message survives failures.
type ImportResult struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// New creates a Client against the configured API root.
func New(cfg config.APIConfig) Client {
	return &httpClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *httpClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "list_categories", "/categories", nil, &categories); err != nil {
		return nil, err
	}

	for i := range categories {
		if err := categories[i].Validate(); err != nil {
			return nil, newPayloadError(fmt.Errorf("category %d: %w", categories[i].ID, err))
		}
	}

	return categories, nil
}

func (c *httpClient) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.sendJSON(ctx, "create_category", http.MethodPost, "/categories", req, &category); err != nil {
		return nil, err
	}

	if err := category.Validate(); err != nil {
		return nil, newPayloadError(err)
	}

	return &category, nil
}

func (c *httpClient) ListTransactions(ctx context.Context, filters TransactionFilters) ([]models.Transaction, error) {
	query := url.Values{}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.StartDate != nil {
		query.Set("start_date", filters.StartDate.String())
	}
	if filters.EndDate != nil {
		query.Set("end_date", filters.EndDate.String())
	}

	var transactions []models.Transaction
	if err := c.getJSON(ctx, "list_transactions", "/transactions", query, &transactions); err != nil {
		return nil, err
	}

	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return nil, newPayloadError(fmt.Errorf("transaction %d: %w", transactions[i].ID, err))
		}
	}

	return transactions, nil
}

func (c *httpClient) GetTransaction(ctx context.Context, id int) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := c.getJSON(ctx, "get_transaction", "/transactions/"+strconv.Itoa(id), nil, &transaction); err != nil {
		return nil, err
	}

	if err := transaction.Validate(); err != nil {
		return nil, newPayloadError(err)
	}

	return &transaction, nil
}

func (c *httpClient) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := c.sendJSON(ctx, "create_transaction", http.MethodPost, "/transactions", createTransactionBody(req), &transaction); err != nil {
		return nil, err
	}

	if err := transaction.Validate(); err != nil {
		return nil, newPayloadError(err)
	}

	return &transaction, nil
}

func (c *httpClient) UpdateTransaction(ctx context.Context, id int, req UpdateTransactionRequest) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := c.sendJSON(ctx, "update_transaction", http.MethodPut, "/transactions/"+strconv.Itoa(id), updateTransactionBody(req), &transaction); err != nil {
		return nil, err
	}

	if err := transaction.Validate(); err != nil {
		return nil, newPayloadError(err)
	}

	return &transaction, nil
}

func (c *httpClient) DeleteTransaction(ctx context.Context, id int) error {
	resp, err := c.do(ctx, "delete_transaction", http.MethodDelete, "/transactions/"+strconv.Itoa(id), nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return newStatusError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	return nil
}

func (c *httpClient) GetSummary(ctx context.Context) (*models.Summary, error) {
	var summary models.Summary
	if err := c.getJSON(ctx, "get_summary", "/analytics/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *httpClient) GetCategoryBreakdown(ctx context.Context) ([]models.CategoryBreakdown, error) {
	var breakdown []models.CategoryBreakdown
	if err := c.getJSON(ctx, "get_category_breakdown", "/analytics/by-category", nil, &breakdown); err != nil {
		return nil, err
	}

	for i := range breakdown {
		if err := breakdown[i].Validate(); err != nil {
			return nil, newPayloadError(fmt.Errorf("breakdown %q: %w", breakdown[i].Category, err))
		}
	}

	return breakdown, nil
}

func (c *httpClient) ImportCSV(ctx context.Context, filename string, file io.Reader) (*ImportResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, newPayloadError(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, newPayloadError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, newPayloadError(err)
	}

	resp, err := c.do(ctx, "import_csv", http.MethodPost, "/import/csv", body, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The import body is parsed as JSON regardless of status so the
	// server-supplied message or error text reaches the user.
	var result ImportResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
		if !is2xx(resp.StatusCode) {
			return nil, newStatusError(resp.StatusCode, "")
		}
		return nil, newPayloadError(err)
	}

	if !is2xx(resp.StatusCode) {
		apiErr := newStatusError(resp.StatusCode, result.Error)
		apiErr.Code = errors.ImportFailed
		return nil, apiErr
	}

	return &result, nil
}

func (c *httpClient) ExportCSV(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, "export_csv", http.MethodGet, "/export/csv", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, newStatusError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newPayloadError(err)
	}

	return data, nil
}

// createTransactionBody converts the request to the wire shape the API
// expects: amounts travel as JSON numbers.
func createTransactionBody(req CreateTransactionRequest) map[string]any {
	body := map[string]any{
		"amount":      req.Amount.InexactFloat64(),
		"type":        req.Type,
		"description": req.Description,
		"date":        req.Date.String(),
	}
	if req.CategoryID != nil {
		body["category_id"] = *req.CategoryID
	}
	return body
}

func updateTransactionBody(req UpdateTransactionRequest) map[string]any {
	body := map[string]any{}
	if req.Amount != nil {
		body["amount"] = req.Amount.InexactFloat64()
	}
	if req.Type != nil {
		body["type"] = *req.Type
	}
	if req.CategoryID != nil {
		body["category_id"] = *req.CategoryID
	}
	if req.Description != nil {
		body["description"] = *req.Description
	}
	if req.Date != nil {
		body["date"] = req.Date.String()
	}
	return body
}

func (c *httpClient) getJSON(ctx context.Context, operation, path string, query url.Values, out any) error {
	target := path
	if len(query) > 0 {
		target = path + "?" + query.Encode()
	}

	resp, err := c.do(ctx, operation, http.MethodGet, target, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return newStatusError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newPayloadError(err)
	}

	return nil
}

func (c *httpClient) sendJSON(ctx context.Context, operation, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return newPayloadError(err)
	}

	resp, err := c.do(ctx, operation, method, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return newStatusError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newPayloadError(err)
	}

	return nil
}

func (c *httpClient) do(ctx context.Context, operation, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, newTransportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	upstreamRequestDuration.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		upstreamRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		slog.Error("finance API request failed",
			"operation", operation,
			"method", method,
			"path", path,
			"error", err)
		return nil, newTransportError(err)
	}

	upstreamRequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// readErrorMessage extracts {"error": "..."} from an error body, best effort.
func readErrorMessage(r io.Reader) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
