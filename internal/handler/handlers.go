package handler

import (
	"borders-api/internal/server"
	"borders-api/internal/service"
)

// Handlers is the container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Borders *BordersHandler // border and task CRUD endpoints
	Health  *HealthHandler  // service health endpoint
	OpenAPI *OpenAPIHandler // API documentation endpoints
}

// NewHandlers constructs the handler container from the application
// container and the business layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Borders: NewBordersHandler(s, services.Borders),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
