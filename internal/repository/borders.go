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

// BordersRepo persists border rows.
type BordersRepo struct {
	pool *pgxpool.Pool
}

func NewBordersRepo(s *server.Server) *BordersRepo {
	return &BordersRepo{pool: s.DB.Pool}
}

// Create inserts an empty border row and returns it with its
// store-generated id.
func (r *BordersRepo) Create(ctx context.Context) (domain.Border, error) {
	var border domain.Border

	err := r.pool.QueryRow(ctx,
		`INSERT INTO border DEFAULT VALUES RETURNING id`,
	).Scan(&border.ID)
	if err != nil {
		return domain.Border{}, fmt.Errorf("inserting border: %w", err)
	}

	border.Tasks = []domain.Task{}
	return border, nil
}

// Get fetches a single border row by id. Tasks are not loaded here;
// the service assembles them from the task repository.
func (r *BordersRepo) Get(ctx context.Context, id int64) (domain.Border, error) {
	var border domain.Border

	err := r.pool.QueryRow(ctx,
		`SELECT id FROM border WHERE id = $1`, id,
	).Scan(&border.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Border{}, ErrNotFound
	}
	if err != nil {
		return domain.Border{}, fmt.Errorf("selecting border %d: %w", id, err)
	}

	border.Tasks = []domain.Task{}
	return border, nil
}

// List returns a page of border rows ordered by primary key ascending.
func (r *BordersRepo) List(ctx context.Context, offset, limit int) ([]domain.Border, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM border ORDER BY id OFFSET $1 LIMIT $2`, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("selecting borders: %w", err)
	}
	defer rows.Close()

	borders := []domain.Border{}
	for rows.Next() {
		var border domain.Border
		if err := rows.Scan(&border.ID); err != nil {
			return nil, fmt.Errorf("scanning border row: %w", err)
		}
		border.Tasks = []domain.Task{}
		borders = append(borders, border)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating border rows: %w", err)
	}

	return borders, nil
}

// DeleteWithTasks removes a border and all of its tasks in one
// transaction, deleting the owned task rows first. The store is never
// asked to cascade.
func (r *BordersRepo) DeleteWithTasks(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning border delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM task WHERE owner_id = $1`, id); err != nil {
		return fmt.Errorf("deleting tasks of border %d: %w", id, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM border WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting border %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing border delete: %w", err)
	}

	return nil
}
