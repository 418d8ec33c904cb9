package catalog

import (
	"context"
	"time"

	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const cacheKey = "restaurants"

// Cached keeps the result of a slow provider for a TTL.
type Cached struct {
	next  Provider
	cache *cache.Cache
}

func NewCached(next Provider, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	if v, ok := c.cache.Get(cacheKey); ok {
		return v.([]models.Restaurant), nil
	}
	restaurants, err := c.next.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(cacheKey, restaurants)
	logger.Debug("catalog cached", zap.Int("restaurants", len(restaurants)))
	return restaurants, nil
}

// Invalidate drops the cached catalog.
func (c *Cached) Invalidate() {
	c.cache.Delete(cacheKey)
}
