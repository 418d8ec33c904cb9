package catalog

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/repositories"
	"go.uber.org/zap"
)

// Postgres assembles the catalog from the restaurant and story tables.
type Postgres struct {
	RestaurantRepo repositories.RestaurantRepository
	StoryRepo      repositories.StoryRepository
}

func (p Postgres) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := p.RestaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading restaurants: %w", err)
	}
	stories, err := p.StoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stories: %w", err)
	}

	restaurants := make([]models.Restaurant, len(rows))
	index := make(map[string]int, len(rows))
	for i, r := range rows {
		restaurants[i] = *r
		index[r.ID] = i
	}
	for _, s := range stories {
		i, ok := index[s.RestaurantID]
		if !ok {
			logger.Warn("story without restaurant", zap.String("story_id", s.ID), zap.String("restaurant_id", s.RestaurantID))
			continue
		}
		restaurants[i].Stories = append(restaurants[i].Stories, *s)
	}
	return restaurants, nil
}

// Store replaces the stored catalog with restaurants.
func (p Postgres) Store(ctx context.Context, restaurants []models.Restaurant) error {
	if err := p.StoryRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing stories: %w", err)
	}
	if err := p.RestaurantRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing restaurants: %w", err)
	}

	rs := make([]*models.Restaurant, len(restaurants))
	var stories []*models.DishStory
	for i := range restaurants {
		rs[i] = &restaurants[i]
		for j := range restaurants[i].Stories {
			stories = append(stories, &restaurants[i].Stories[j])
		}
	}
	if err := p.RestaurantRepo.BulkCreate(ctx, rs); err != nil {
		return fmt.Errorf("inserting restaurants: %w", err)
	}
	if err := p.StoryRepo.BulkCreate(ctx, stories); err != nil {
		return fmt.Errorf("inserting stories: %w", err)
	}
	logger.Info("catalog stored", zap.Int("restaurants", len(rs)), zap.Int("stories", len(stories)))
	return nil
}
