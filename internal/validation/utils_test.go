package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"borders-api/internal/errs"
)

var testValidate = validator.New()

type pageRequest struct {
	Offset int  `query:"offset" validate:"gte=0"`
	Limit  *int `query:"limit" validate:"omitempty,gte=0,lte=100"`
}

func (r *pageRequest) Validate() error {
	return testValidate.Struct(r)
}

type notePayload struct {
	Text string `json:"text" validate:"required,max=10"`
}

func (r *notePayload) Validate() error {
	return testValidate.Struct(r)
}

func newContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, http.MethodGet, "/?offset=5&limit=10", "")

	var payload pageRequest
	if err := BindAndValidate(c, &payload); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if payload.Offset != 5 {
		t.Fatalf("expected offset 5, got %d", payload.Offset)
	}
	if payload.Limit == nil || *payload.Limit != 10 {
		t.Fatalf("expected limit 10, got %v", payload.Limit)
	}
}

func TestBindAndValidateAbsentOptionalStaysNil(t *testing.T) {
	c := newContext(t, http.MethodGet, "/", "")

	var payload pageRequest
	if err := BindAndValidate(c, &payload); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if payload.Limit != nil {
		t.Fatalf("expected nil limit, got %d", *payload.Limit)
	}
}

func TestBindAndValidateRangeViolation(t *testing.T) {
	c := newContext(t, http.MethodGet, "/?limit=101", "")

	var payload pageRequest
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "limit" {
		t.Fatalf("expected field error on limit, got %+v", httpErr.Errors)
	}
	if httpErr.Errors[0].Error != "must not exceed 100" {
		t.Fatalf("unexpected message %q", httpErr.Errors[0].Error)
	}
}

func TestBindAndValidateRequiredViolation(t *testing.T) {
	c := newContext(t, http.MethodPost, "/", `{}`)

	var payload notePayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "text" {
		t.Fatalf("expected field error on text, got %+v", httpErr.Errors)
	}
	if httpErr.Errors[0].Error != "is required" {
		t.Fatalf("unexpected message %q", httpErr.Errors[0].Error)
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(t, http.MethodPost, "/", `{"text": `)

	var payload notePayload
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", httpErr.Status)
	}
}

func TestBindAndValidateTypeMismatch(t *testing.T) {
	c := newContext(t, http.MethodGet, "/?limit=abc", "")

	var payload pageRequest
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", httpErr.Status)
	}
}

func TestExtractValidationErrorStringLength(t *testing.T) {
	payload := notePayload{Text: "this is far too long"}
	_, fieldErrors := validateStruct(&payload)
	if len(fieldErrors) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fieldErrors))
	}
	if fieldErrors[0].Error != "must not exceed 10 characters" {
		t.Fatalf("unexpected message %q", fieldErrors[0].Error)
	}
}

func TestExtractCustomValidationErrors(t *testing.T) {
	err := CustomValidationErrors{
		{Field: "limit", Message: "must be positive"},
	}
	msg, fieldErrors := extractValidationError(err)
	if msg != "Validation failed" {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "limit" || fieldErrors[0].Error != "must be positive" {
		t.Fatalf("unexpected field errors %+v", fieldErrors)
	}
}
