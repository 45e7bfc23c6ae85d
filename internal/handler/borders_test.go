package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"borders-api/internal/domain"
	"borders-api/internal/errs"
	"borders-api/internal/middleware"
)

// stubService returns canned results so the HTTP pipeline can be
// exercised without a database.
type stubService struct {
	border  domain.Border
	borders []domain.Border
	tasks   []domain.Task
	task    domain.Task
	err     error

	gotOffset int
	gotLimit  int
	gotText   domain.NullableString
}

func (s *stubService) CreateBorder(ctx context.Context) (domain.Border, error) {
	return s.border, s.err
}

func (s *stubService) GetBorder(ctx context.Context, id int64) (domain.Border, error) {
	return s.border, s.err
}

func (s *stubService) ListBorders(ctx context.Context, offset, limit int) ([]domain.Border, error) {
	s.gotOffset = offset
	s.gotLimit = limit
	return s.borders, s.err
}

func (s *stubService) AddTask(ctx context.Context, borderID int64) ([]domain.Task, error) {
	return s.tasks, s.err
}

func (s *stubService) UpdateTask(ctx context.Context, borderID, taskID int64, text domain.NullableString) (domain.Task, error) {
	s.gotText = text
	return s.task, s.err
}

func (s *stubService) DeleteBorder(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubService) DeleteTask(ctx context.Context, borderID, taskID int64) error {
	return s.err
}

// newTestRouter wires a BordersHandler onto a fresh Echo instance with
// the real global error handler, so responses match production wiring.
func newTestRouter(svc *stubService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(nil).GlobalErrorHandler

	h := NewBordersHandler(nil, svc)
	borders := e.Group("/borders")
	borders.POST("/", h.Create())
	borders.GET("/", h.List())
	borders.GET("/:border_id", h.Get())
	borders.DELETE("/:border_id", h.Delete())
	borders.POST("/:border_id/tasks/", h.AddTask())
	borders.PATCH("/:border_id/tasks/:task_id", h.UpdateTask())
	borders.DELETE("/:border_id/tasks/:task_id", h.DeleteTask())

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateBorderResponse(t *testing.T) {
	svc := &stubService{border: domain.Border{ID: 1, Tasks: []domain.Task{}}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodPost, "/borders/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.Border
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.ID != 1 || len(got.Tasks) != 0 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateBorderDiscardsSubmittedTasks(t *testing.T) {
	svc := &stubService{border: domain.Border{ID: 1, Tasks: []domain.Task{}}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodPost, "/borders/", `{"tasks": [{"text": "smuggled"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.Border
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(got.Tasks) != 0 {
		t.Fatalf("expected tasks discarded, got %d", len(got.Tasks))
	}
}

func TestListBordersPassesPagination(t *testing.T) {
	svc := &stubService{borders: []domain.Border{}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodGet, "/borders/?offset=3&limit=7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotOffset != 3 || svc.gotLimit != 7 {
		t.Fatalf("expected offset=3 limit=7, got offset=%d limit=%d", svc.gotOffset, svc.gotLimit)
	}
}

func TestListBordersDefaultsLimit(t *testing.T) {
	svc := &stubService{borders: []domain.Border{}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodGet, "/borders/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotLimit != domain.MaxPageSize {
		t.Fatalf("expected default limit %d, got %d", domain.MaxPageSize, svc.gotLimit)
	}
}

func TestListBordersAcceptsLimitAtMax(t *testing.T) {
	svc := &stubService{borders: []domain.Border{}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodGet, "/borders/?limit=100", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotLimit != 100 {
		t.Fatalf("expected limit 100, got %d", svc.gotLimit)
	}
}

func TestListBordersRejectsNegativeOffset(t *testing.T) {
	svc := &stubService{borders: []domain.Border{}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodGet, "/borders/?offset=-1", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var body struct {
		Errors []errs.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Errors) == 0 || body.Errors[0].Field != "offset" {
		t.Fatalf("expected field error on offset, got %+v", body.Errors)
	}
}

func TestListBordersRejectsOversizedLimit(t *testing.T) {
	svc := &stubService{borders: []domain.Border{}}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodGet, "/borders/?limit=101", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var body struct {
		Detail string            `json:"detail"`
		Errors []errs.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Detail == "" {
		t.Fatal("expected detail message")
	}
	if len(body.Errors) == 0 || body.Errors[0].Field != "limit" {
		t.Fatalf("expected field error on limit, got %+v", body.Errors)
	}
}

func TestGetBorderNotFoundBody(t *testing.T) {
	svc := &stubService{err: errs.NewNotFoundError("Border not found")}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodGet, "/borders/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["detail"] != "Border not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if _, ok := body["status"]; ok {
		t.Fatal("status must not be serialized")
	}
}

func TestDeleteBorderOKBody(t *testing.T) {
	svc := &stubService{}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodDelete, "/borders/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"ok":true}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateTaskPassesNullableText(t *testing.T) {
	svc := &stubService{}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodPatch, "/borders/1/tasks/2", `{"text": null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.gotText.Set || svc.gotText.Value != nil {
		t.Fatalf("expected explicit null, got %+v", svc.gotText)
	}

	rec = doRequest(e, http.MethodPatch, "/borders/1/tasks/2", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotText.Set {
		t.Fatalf("expected absent text, got %+v", svc.gotText)
	}
}

func TestUpdateTaskMalformedBody(t *testing.T) {
	svc := &stubService{}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodPatch, "/borders/1/tasks/2", `{"text":`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestDeleteTaskNotFoundBody(t *testing.T) {
	svc := &stubService{err: errs.NewNotFoundError("Task not found")}
	e := newTestRouter(svc)

	rec := doRequest(e, http.MethodDelete, "/borders/1/tasks/5", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["detail"] != "Task not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUnknownRouteBody(t *testing.T) {
	e := newTestRouter(&stubService{})

	rec := doRequest(e, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body["detail"] != "Route not found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
