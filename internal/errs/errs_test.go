package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Not Found", "NOT_FOUND"},
		{"Unprocessable Entity", "UNPROCESSABLE_ENTITY"},
		{"OK", "OK"},
	}
	for _, tt := range tests {
		if got := MakeUpperCaseWithUnderscores(tt.in); got != tt.want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotFoundErrorShape(t *testing.T) {
	err := NewNotFoundError("Border not found")

	if err.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", err.Status)
	}
	if err.Code != "NOT_FOUND" {
		t.Fatalf("expected code NOT_FOUND, got %q", err.Code)
	}
	if err.Error() != "Border not found" {
		t.Fatalf("unexpected Error() %q", err.Error())
	}
}

func TestHTTPErrorSerializesDetailOnly(t *testing.T) {
	out, err := json.Marshal(NewNotFoundError("Task not found"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"detail":"Task not found"}` {
		t.Fatalf("unexpected JSON: %s", out)
	}
}

func TestHTTPErrorSerializesFieldErrors(t *testing.T) {
	httpErr := NewUnprocessableEntityError("Validation failed", []FieldError{
		{Field: "limit", Error: "must not exceed 100"},
	})
	out, err := json.Marshal(httpErr)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"detail":"Validation failed","errors":[{"field":"limit","error":"must not exceed 100"}]}`
	if string(out) != want {
		t.Fatalf("unexpected JSON: %s", out)
	}
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewInternalServerError()
	if !errors.Is(err, &HTTPError{}) {
		t.Fatal("expected Is to match any HTTPError")
	}
}

func TestWithDetail(t *testing.T) {
	orig := NewNotFoundError("Resource not found")
	changed := orig.WithDetail("Border not found")

	if changed.Detail != "Border not found" {
		t.Fatalf("unexpected detail %q", changed.Detail)
	}
	if changed.Status != orig.Status || changed.Code != orig.Code {
		t.Fatal("status/code must be preserved")
	}
	if orig.Detail != "Resource not found" {
		t.Fatal("original must not be mutated")
	}
}
