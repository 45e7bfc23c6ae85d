package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"borders-api/internal/domain"
	"borders-api/internal/server"
)

// TasksRepo persists task rows.
type TasksRepo struct {
	pool *pgxpool.Pool
}

func NewTasksRepo(s *server.Server) *TasksRepo {
	return &TasksRepo{pool: s.DB.Pool}
}

// Create inserts a task owned by the given border. Text starts NULL.
func (r *TasksRepo) Create(ctx context.Context, ownerID int64) (domain.Task, error) {
	var task domain.Task

	err := r.pool.QueryRow(ctx,
		`INSERT INTO task (owner_id) VALUES ($1) RETURNING id, text, owner_id`, ownerID,
	).Scan(&task.ID, &task.Text, &task.OwnerID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("inserting task for border %d: %w", ownerID, err)
	}

	return task, nil
}

// Get fetches a single task row by id.
func (r *TasksRepo) Get(ctx context.Context, id int64) (domain.Task, error) {
	var task domain.Task

	err := r.pool.QueryRow(ctx,
		`SELECT id, text, owner_id FROM task WHERE id = $1`, id,
	).Scan(&task.ID, &task.Text, &task.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("selecting task %d: %w", id, err)
	}

	return task, nil
}

// ListByOwner returns all tasks of a border in insertion order.
func (r *TasksRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, text, owner_id FROM task WHERE owner_id = $1 ORDER BY id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("selecting tasks of border %d: %w", ownerID, err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Text, &task.OwnerID); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	return tasks, nil
}

// SetText overwrites the text column (nil writes NULL) and returns the
// updated row.
func (r *TasksRepo) SetText(ctx context.Context, id int64, text *string) (domain.Task, error) {
	var task domain.Task

	err := r.pool.QueryRow(ctx,
		`UPDATE task SET text = $2 WHERE id = $1 RETURNING id, text, owner_id`, id, text,
	).Scan(&task.ID, &task.Text, &task.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, ErrNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("updating task %d: %w", id, err)
	}

	return task, nil
}

// Delete removes a single task row.
func (r *TasksRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM task WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
