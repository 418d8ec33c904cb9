package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
    id        TEXT PRIMARY KEY,
    position  INTEGER NOT NULL,
    name      TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS dish_stories (
    id              TEXT PRIMARY KEY,
    restaurant_id   TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
    position        INTEGER NOT NULL,
    restaurant_name TEXT NOT NULL,
    dish_name       TEXT NOT NULL,
    price           DOUBLE PRECISION NOT NULL,
    base_price      DOUBLE PRECISION NOT NULL,
    media           JSONB NOT NULL,
    ingredients     JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS dish_stories_restaurant_idx ON dish_stories (restaurant_id, position);
`

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating catalog schema: %w", err)
	}
	return nil
}
