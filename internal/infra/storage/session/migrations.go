package session

import (
	"context"
	"fmt"
)

// schema таблица сессий: снапшот движка хранится как непрозрачный JSONB блоб
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id         UUID PRIMARY KEY,
    state      JSONB       NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создает схему, если её ещё нет. Идемпотентно.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: Migrate - create sessions table: %v", ErrExecQuery, err)
	}
	return nil
}
