package repository

import (
	"borders-api/internal/server"
)

// Repositories is the container for all repository instances, wired
// once at startup and handed to the service layer.
type Repositories struct {
	Borders *BordersRepo
	Tasks   *TasksRepo
}

// NewRepositories constructs the repository container on top of the
// shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Borders: NewBordersRepo(s),
		Tasks:   NewTasksRepo(s),
	}
}
