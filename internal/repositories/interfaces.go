package repositories

import (
	"context"

	"github.com/chrisdamba/foodstories/internal/models"
)

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant, position int) error
	GetAll(ctx context.Context) ([]*models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type StoryRepository interface {
	BulkCreate(ctx context.Context, stories []*models.DishStory) error
	Create(ctx context.Context, story *models.DishStory, position int) error
	GetAll(ctx context.Context) ([]*models.DishStory, error)
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.DishStory, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
