package errors

// ErrorCode represents a standardized error code used throughout the dashboard
type ErrorCode string

// Upstream API error codes (UPSTREAM_*)
const (
	UpstreamUnreachable    ErrorCode = "UPSTREAM_001"
	UpstreamBadStatus      ErrorCode = "UPSTREAM_002"
	UpstreamInvalidPayload ErrorCode = "UPSTREAM_003"
	UpstreamTimeout        ErrorCode = "UPSTREAM_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidType   ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionCreateFailed  ErrorCode = "TRANSACTION_002"
	TransactionDeleteFailed  ErrorCode = "TRANSACTION_003"
	TransactionInvalidID     ErrorCode = "TRANSACTION_004"
	TransactionNotConfirmed  ErrorCode = "TRANSACTION_005"
	TransactionUpdateFailed  ErrorCode = "TRANSACTION_006"
	TransactionRefreshFailed ErrorCode = "TRANSACTION_007"
)

// Category error codes (CATEGORY_*)
const (
	CategoryLoadFailed   ErrorCode = "CATEGORY_001"
	CategoryInvalidType  ErrorCode = "CATEGORY_002"
	CategoryCreateFailed ErrorCode = "CATEGORY_003"
)

// Import/export error codes (IMPORT_*, EXPORT_*)
const (
	ImportFailed      ErrorCode = "IMPORT_001"
	ImportMissingFile ErrorCode = "IMPORT_002"
	ExportFailed      ErrorCode = "EXPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemTemplateError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Upstream errors
	UpstreamUnreachable:    "Finance API is unreachable",
	UpstreamBadStatus:      "Finance API returned an unexpected status",
	UpstreamInvalidPayload: "Finance API returned an unexpected payload",
	UpstreamTimeout:        "Finance API request was cancelled or timed out",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Amount must be a positive number",
	ValidationInvalidType:   "Type must be 'income' or 'expense'",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionCreateFailed:  "Error adding transaction",
	TransactionDeleteFailed:  "Error deleting transaction",
	TransactionInvalidID:     "Invalid transaction ID",
	TransactionNotConfirmed:  "Deletion requires confirmation",
	TransactionUpdateFailed:  "Error updating transaction",
	TransactionRefreshFailed: "Error loading transactions",

	// Category errors
	CategoryLoadFailed:   "Error loading categories",
	CategoryInvalidType:  "Invalid category type",
	CategoryCreateFailed: "Error creating category",

	// Import/export errors
	ImportFailed:      "Error importing CSV",
	ImportMissingFile: "No file provided",
	ExportFailed:      "Error exporting transactions",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemTemplateError:      "Failed to render the requested view",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
