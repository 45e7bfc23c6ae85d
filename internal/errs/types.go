package errs

import "strings"

// FieldError represents a single field-level validation error.
type FieldError struct {
	// Field is the field name the error relates to (e.g. "limit").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type surfaced to API clients.
//
// Only Detail (and Errors, when present) are serialized; Code and
// Status stay internal and drive logging and status code selection.
type HTTPError struct {
	Code   string `json:"-"`
	Detail string `json:"detail"`
	Status int    `json:"-"`

	// Errors holds field-level validation errors, when applicable.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Detail
}

// Is reports whether target is also an *HTTPError, so that
// errors.Is(err, &HTTPError{}) matches any API error regardless of
// code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithDetail returns a copy of the error with Detail replaced.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Code:   e.Code,
		Detail: detail,
		Status: e.Status,
		Errors: e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts HTTP status text into a stable
// machine-readable code, e.g. "Not Found" -> "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
