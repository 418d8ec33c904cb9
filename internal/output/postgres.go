package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutput inserts each event as a row of the table mapped from its
// topic. Event keys become snake_case columns.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

const eventTables = `
CREATE TABLE IF NOT EXISTS %s (
    timestamp      BIGINT NOT NULL,
    event_type     TEXT NOT NULL,
    session_id     TEXT NOT NULL,
    viewer_id      TEXT,
    story_id       TEXT,
    restaurant_id  TEXT,
    media_index    INTEGER,
    progress       DOUBLE PRECISION,
    ingredient_id  TEXT,
    hotspot_id     TEXT,
    substitution   TEXT,
    entry_id       TEXT,
    price          DOUBLE PRECISION,
    modifications  INTEGER,
    customizations TEXT
);
`

func NewPostgresOutput(ctx context.Context, databaseURL string) (*PostgresOutput, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	p := &PostgresOutput{pool: pool}
	if err := p.ensureTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresOutput) ensureTables(ctx context.Context) error {
	seen := make(map[string]bool)
	for _, topic := range []string{"story_events", "interaction_events", "cart_events"} {
		table := topicToTable(topic)
		if seen[table] {
			continue
		}
		seen[table] = true
		if _, err := p.pool.Exec(ctx, fmt.Sprintf(eventTables, table)); err != nil {
			return fmt.Errorf("creating %s: %w", table, err)
		}
	}
	return nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	table := topicToTable(topic)
	cols, vals, placeholders, err := buildInsertComponents(event)
	if err != nil {
		return fmt.Errorf("building insert for %s: %w", topic, err)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, placeholders)

	return p.execWithRetry(context.Background(), 3, func(ctx context.Context) error {
		if _, err := p.pool.Exec(ctx, query, vals...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return nil
	})
}

func (p *PostgresOutput) execWithRetry(ctx context.Context, maxRetries int, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err = fn(ctx); err == nil || !isRetryableError(err) {
			return err
		}
		time.Sleep(time.Duration(attempt+1) * 50 * time.Millisecond)
	}
	return err
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", // serialization_failure
		"40P01", // deadlock_detected
		"55P03": // lock_not_available
		return true
	}
	return false
}

func topicToTable(topic string) string {
	tableMap := map[string]string{
		"story_events":       "fact_story_navigation",
		"interaction_events": "fact_story_interaction",
		"cart_events":        "fact_cart",
	}
	if table, ok := tableMap[topic]; ok {
		return table
	}
	return "fact_" + strings.TrimSuffix(topic, "_events")
}

// buildInsertComponents returns columns, values and placeholders in sorted
// key order so the same event shape always yields the same statement.
func buildInsertComponents(event map[string]interface{}) (string, []interface{}, string, error) {
	keys := make([]string, 0, len(event))
	for k := range event {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	columns := make([]string, 0, len(keys))
	values := make([]interface{}, 0, len(keys))
	placeholders := make([]string, 0, len(keys))
	for i, key := range keys {
		val := event[key]
		switch v := val.(type) {
		case float64:
			// JSON numbers: keep integral values integral for INTEGER/BIGINT columns
			if v == float64(int64(v)) && key != "price" && key != "progress" {
				val = int64(v)
			}
		case map[string]interface{}, []interface{}:
			raw, err := json.Marshal(v)
			if err != nil {
				return "", nil, "", fmt.Errorf("encoding column %s: %w", key, err)
			}
			val = string(raw)
		}
		columns = append(columns, snakeCaseKey(key))
		values = append(values, val)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	return strings.Join(columns, ", "), values, strings.Join(placeholders, ", "), nil
}

func snakeCaseKey(key string) string {
	var result strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}
