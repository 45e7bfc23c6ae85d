package service

import (
	"context"
	"errors"

	"borders-api/internal/domain"
	"borders-api/internal/errs"
	"borders-api/internal/repository"
)

// Messages returned in the detail field of 404 responses. A task that
// exists but belongs to a different border is reported exactly like a
// missing task.
const (
	borderNotFoundDetail = "Border not found"
	taskNotFoundDetail   = "Task not found"
)

// BorderStore is the persistence surface the service needs for border
// rows.
type BorderStore interface {
	Create(ctx context.Context) (domain.Border, error)
	Get(ctx context.Context, id int64) (domain.Border, error)
	List(ctx context.Context, offset, limit int) ([]domain.Border, error)
	DeleteWithTasks(ctx context.Context, id int64) error
}

// TaskStore is the persistence surface the service needs for task rows.
type TaskStore interface {
	Create(ctx context.Context, ownerID int64) (domain.Task, error)
	Get(ctx context.Context, id int64) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	SetText(ctx context.Context, id int64, text *string) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// BorderService implements the border/task operations on top of the
// two stores.
type BorderService struct {
	borders BorderStore
	tasks   TaskStore
}

func NewBorderService(borders BorderStore, tasks TaskStore) *BorderService {
	return &BorderService{
		borders: borders,
		tasks:   tasks,
	}
}

// notFoundAs maps the repository sentinel onto the given 404 detail
// and passes every other error through.
func notFoundAs(err error, detail string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(detail)
	}
	return err
}

// CreateBorder creates an empty border. Any task data submitted with
// the request has already been discarded by the handler: borders always
// start with zero tasks.
func (s *BorderService) CreateBorder(ctx context.Context) (domain.Border, error) {
	return s.borders.Create(ctx)
}

// GetBorder returns a border with its full task list. The tasks are
// fetched with an explicit owner-filtered query rather than any form of
// lazy loading.
func (s *BorderService) GetBorder(ctx context.Context, id int64) (domain.Border, error) {
	border, err := s.borders.Get(ctx, id)
	if err != nil {
		return domain.Border{}, notFoundAs(err, borderNotFoundDetail)
	}

	tasks, err := s.tasks.ListByOwner(ctx, id)
	if err != nil {
		return domain.Border{}, err
	}

	border.Tasks = tasks
	return border, nil
}

// ListBorders returns a page of borders ordered by id ascending, each
// carrying its nested task list.
func (s *BorderService) ListBorders(ctx context.Context, offset, limit int) ([]domain.Border, error) {
	borders, err := s.borders.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	for i := range borders {
		tasks, err := s.tasks.ListByOwner(ctx, borders[i].ID)
		if err != nil {
			return nil, err
		}
		borders[i].Tasks = tasks
	}

	return borders, nil
}

// AddTask creates a task owned by the given border and returns the
// border's full updated task list. The new task starts with text unset.
func (s *BorderService) AddTask(ctx context.Context, borderID int64) ([]domain.Task, error) {
	border, err := s.borders.Get(ctx, borderID)
	if err != nil {
		return nil, notFoundAs(err, borderNotFoundDetail)
	}

	if _, err := s.tasks.Create(ctx, border.ID); err != nil {
		return nil, err
	}

	return s.tasks.ListByOwner(ctx, border.ID)
}

// UpdateTask applies a partial update to a task after verifying the
// border exists and owns the task. An absent text field leaves the
// stored value untouched; an explicit null clears it.
func (s *BorderService) UpdateTask(ctx context.Context, borderID, taskID int64, text domain.NullableString) (domain.Task, error) {
	border, err := s.borders.Get(ctx, borderID)
	if err != nil {
		return domain.Task{}, notFoundAs(err, borderNotFoundDetail)
	}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return domain.Task{}, notFoundAs(err, taskNotFoundDetail)
	}
	if task.OwnerID != border.ID {
		return domain.Task{}, errs.NewNotFoundError(taskNotFoundDetail)
	}

	if !text.Set {
		return task, nil
	}

	updated, err := s.tasks.SetText(ctx, task.ID, text.Value)
	if err != nil {
		return domain.Task{}, notFoundAs(err, taskNotFoundDetail)
	}

	return updated, nil
}

// DeleteBorder removes a border and all of its tasks, tasks first.
func (s *BorderService) DeleteBorder(ctx context.Context, id int64) error {
	if err := s.borders.DeleteWithTasks(ctx, id); err != nil {
		return notFoundAs(err, borderNotFoundDetail)
	}
	return nil
}

// DeleteTask removes a single task after verifying the border exists
// and owns it.
func (s *BorderService) DeleteTask(ctx context.Context, borderID, taskID int64) error {
	border, err := s.borders.Get(ctx, borderID)
	if err != nil {
		return notFoundAs(err, borderNotFoundDetail)
	}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return notFoundAs(err, taskNotFoundDetail)
	}
	if task.OwnerID != border.ID {
		return errs.NewNotFoundError(taskNotFoundDetail)
	}

	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return notFoundAs(err, taskNotFoundDetail)
	}

	return nil
}
