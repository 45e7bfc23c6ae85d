package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError with optional
// field-level errors.
func NewBadRequestError(detail string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Detail: detail,
		Status: http.StatusBadRequest,
		Errors: fieldErrors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(detail string) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Detail: detail,
		Status: http.StatusNotFound,
	}
}

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// Used for request payloads that parse but fail validation, and for
// bodies that cannot be bound at all.
func NewUnprocessableEntityError(detail string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Detail: detail,
		Status: http.StatusUnprocessableEntity,
		Errors: fieldErrors,
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The detail is the bare status text; internal failure causes are
// logged, never sent to clients.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Detail: http.StatusText(http.StatusInternalServerError),
		Status: http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 422 HTTPError.
func ValidationError(err error) *HTTPError {
	return NewUnprocessableEntityError("Validation failed: "+err.Error(), nil)
}
