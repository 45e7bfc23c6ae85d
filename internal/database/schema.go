package database

import (
	"context"
	"fmt"
)

// schemaStatements create the two tables if they do not exist yet.
//
// Task deletion order is handled explicitly in the repository layer;
// the foreign key is declared without ON DELETE CASCADE so the store
// never deletes rows on its own.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS border (
		id BIGSERIAL PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS task (
		id BIGSERIAL PRIMARY KEY,
		text TEXT,
		owner_id BIGINT NOT NULL REFERENCES border (id)
	)`,
	`CREATE INDEX IF NOT EXISTS task_owner_id_idx ON task (owner_id)`,
}

// EnsureSchema creates the schema at process startup if absent.
// There is no migration mechanism; the statements are idempotent.
func (db *Database) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring database schema: %w", err)
		}
	}

	db.log.Info().Msg("database schema ensured")
	return nil
}
