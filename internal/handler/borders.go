package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"borders-api/internal/domain"
	"borders-api/internal/server"
)

// borderService is the business-layer surface the handler depends on.
type borderService interface {
	CreateBorder(ctx context.Context) (domain.Border, error)
	GetBorder(ctx context.Context, id int64) (domain.Border, error)
	ListBorders(ctx context.Context, offset, limit int) ([]domain.Border, error)
	AddTask(ctx context.Context, borderID int64) ([]domain.Task, error)
	UpdateTask(ctx context.Context, borderID, taskID int64, text domain.NullableString) (domain.Task, error)
	DeleteBorder(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, borderID, taskID int64) error
}

// BordersHandler exposes the border and task endpoints.
type BordersHandler struct {
	Handler
	service borderService
}

// NewBordersHandler constructs a BordersHandler.
func NewBordersHandler(s *server.Server, service borderService) *BordersHandler {
	return &BordersHandler{
		Handler: NewHandler(s),
		service: service,
	}
}

// Create handles POST /borders/. Any submitted task data is discarded;
// the border starts empty.
func (h *BordersHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.CreateBorderRequest) (domain.Border, error) {
		return h.service.CreateBorder(c.Request().Context())
	}, http.StatusOK)
}

// List handles GET /borders/ with offset/limit pagination.
func (h *BordersHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.ListBordersRequest) ([]domain.Border, error) {
		return h.service.ListBorders(c.Request().Context(), req.Offset, req.EffectiveLimit())
	}, http.StatusOK)
}

// Get handles GET /borders/:border_id.
func (h *BordersHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.GetBorderRequest) (domain.Border, error) {
		return h.service.GetBorder(c.Request().Context(), req.BorderID)
	}, http.StatusOK)
}

// Delete handles DELETE /borders/:border_id, removing the border and
// all of its tasks.
func (h *BordersHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.DeleteBorderRequest) (domain.OKResponse, error) {
		if err := h.service.DeleteBorder(c.Request().Context(), req.BorderID); err != nil {
			return domain.OKResponse{}, err
		}
		return domain.OKResponse{OK: true}, nil
	}, http.StatusOK)
}

// AddTask handles POST /borders/:border_id/tasks/ and responds with
// the border's full updated task list.
func (h *BordersHandler) AddTask() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.CreateTaskRequest) ([]domain.Task, error) {
		return h.service.AddTask(c.Request().Context(), req.BorderID)
	}, http.StatusOK)
}

// UpdateTask handles PATCH /borders/:border_id/tasks/:task_id with
// partial-update semantics on the text field.
func (h *BordersHandler) UpdateTask() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.UpdateTaskRequest) (domain.Task, error) {
		return h.service.UpdateTask(c.Request().Context(), req.BorderID, req.TaskID, req.Text)
	}, http.StatusOK)
}

// DeleteTask handles DELETE /borders/:border_id/tasks/:task_id.
func (h *BordersHandler) DeleteTask() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *domain.DeleteTaskRequest) (domain.OKResponse, error) {
		if err := h.service.DeleteTask(c.Request().Context(), req.BorderID, req.TaskID); err != nil {
			return domain.OKResponse{}, err
		}
		return domain.OKResponse{OK: true}, nil
	}, http.StatusOK)
}
