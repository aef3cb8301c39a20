package apiclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"finance-dashboard/internal/errors"
)

// APIError describes a failed call against the finance API. Code carries
// the dashboard taxonomy, StatusCode the upstream HTTP status (zero for
// transport failures), and Message any server-supplied error text.
type APIError struct {
	Code       errors.ErrorCode
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("finance api: %s (%s)", e.Message, e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("finance api: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("finance api: %s", e.Code)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return stderrors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ErrorMessage extracts the server-supplied message from err, or the
// fallback when the error carries none.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func newTransportError(err error) *APIError {
	code := errors.UpstreamUnreachable
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		code = errors.UpstreamTimeout
	}
	return &APIError{Code: code, Err: err}
}

func newStatusError(statusCode int, message string) *APIError {
	code := errors.UpstreamBadStatus
	switch statusCode {
	case http.StatusNotFound:
		code = errors.TransactionNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = errors.ValidationGeneral
	}
	return &APIError{Code: code, StatusCode: statusCode, Message: message}
}

func newPayloadError(err error) *APIError {
	return &APIError{Code: errors.UpstreamInvalidPayload, Err: err}
}
