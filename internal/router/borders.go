package router

import (
	"github.com/labstack/echo/v4"

	"borders-api/internal/handler"
)

// registerBorderRoutes wires the border collection and the nested
// task sub-resource. Collection paths keep their trailing slash so
// clients hitting either form resolve without a redirect.
func registerBorderRoutes(r *echo.Echo, h *handler.Handlers) {
	borders := r.Group("/borders")

	borders.POST("/", h.Borders.Create())
	borders.GET("/", h.Borders.List())
	borders.GET("/:border_id", h.Borders.Get())
	borders.DELETE("/:border_id", h.Borders.Delete())

	borders.POST("/:border_id/tasks/", h.Borders.AddTask())
	borders.PATCH("/:border_id/tasks/:task_id", h.Borders.UpdateTask())
	borders.DELETE("/:border_id/tasks/:task_id", h.Borders.DeleteTask())
}
