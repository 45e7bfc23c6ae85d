// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"borders-api/internal/handler"
	"borders-api/internal/middleware"
)

// New builds the Echo instance with the global middleware chain and
// all route registrations. Middleware order matters: the request ID
// and transaction middlewares run first so everything downstream can
// attach to the request-scoped logger and trace.
func New(h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(mw.Tracing.NewRelicMiddleware())
	r.Use(mw.ContextEnhancer.EnhanceContext())
	r.Use(mw.Tracing.EnhanceTracing())
	r.Use(mw.Global.RequestLogger())
	r.Use(mw.Global.CORS())
	r.Use(mw.Global.Recover())
	r.Use(mw.Global.Secure())

	registerSystemRoutes(r, h)
	registerBorderRoutes(r, h)

	return r
}
