package service

import (
	"borders-api/internal/repository"
	"borders-api/internal/server"
)

// Services is the container for all business-layer services.
type Services struct {
	Borders *BorderService
}

// NewServices constructs the service container from the repository
// container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Borders: NewBorderService(repos.Borders, repos.Tasks),
	}
}
