package catalog

import (
	"context"
	"sync"

	"github.com/chrisdamba/foodstories/internal/factories"
	"github.com/chrisdamba/foodstories/internal/models"
)

// Generated builds a synthetic catalog once and serves it afterwards.
type Generated struct {
	Config *models.Config

	once        sync.Once
	restaurants []models.Restaurant
}

func (g *Generated) Restaurants(context.Context) ([]models.Restaurant, error) {
	g.once.Do(func() {
		factories.Seed(g.Config.Seed)
		var rf factories.RestaurantFactory
		g.restaurants = rf.CreateCatalog(g.Config)
	})
	return g.restaurants, nil
}
