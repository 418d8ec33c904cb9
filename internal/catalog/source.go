package catalog

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodstories/internal/cloudwriter"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FromConfig builds the provider named by config.CatalogSource. Remote
// sources are wrapped in a TTL cache. The returned close function releases
// any connection the provider holds.
func FromConfig(ctx context.Context, config *models.Config) (Provider, func(), error) {
	noop := func() {}
	switch config.CatalogSource {
	case "", models.CatalogSourceMock:
		return Mock(), noop, nil
	case models.CatalogSourceFile:
		if config.CatalogPath == "" {
			return nil, nil, fmt.Errorf("catalog_path is required for the file catalog")
		}
		return File{Path: config.CatalogPath}, noop, nil
	case models.CatalogSourceS3:
		factory, err := cloudwriter.NewS3WriterFactory(ctx, config.S3Region)
		if err != nil {
			return nil, nil, err
		}
		src := S3{Reader: factory, Bucket: config.S3Bucket, Key: config.S3Key}
		return NewCached(src, config.CatalogCacheTTL), noop, nil
	case models.CatalogSourcePostgres:
		pool, err := pgxpool.New(ctx, config.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to catalog database: %w", err)
		}
		src := NewPostgres(pool)
		return NewCached(src, config.CatalogCacheTTL), pool.Close, nil
	case models.CatalogSourceGenerated:
		return &Generated{Config: config}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported catalog source: %s", config.CatalogSource)
	}
}

func NewPostgres(pool *pgxpool.Pool) Postgres {
	return Postgres{
		RestaurantRepo: postgres.NewRestaurantRepository(pool),
		StoryRepo:      postgres.NewStoryRepository(pool),
	}
}
