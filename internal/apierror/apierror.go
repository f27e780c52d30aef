// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// DetailedError carries the identifiers behind the failure (e.g. products a
// supplier does not offer) so clients can point at the offending values.
type DetailedError struct {
	Detail string   `json:"detail"`
	IDs    []string `json:"ids,omitempty"`
}

func WithIDs(msg string, ids []string) *DetailedError {
	return &DetailedError{Detail: msg, IDs: ids}
}
