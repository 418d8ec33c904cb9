package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoryRepository stores dish stories with their media and ingredients as
// JSONB documents.
type StoryRepository struct {
	pool *pgxpool.Pool
}

func NewStoryRepository(pool *pgxpool.Pool) *StoryRepository {
	return &StoryRepository{pool: pool}
}

const storyColumns = `id, restaurant_id, restaurant_name, dish_name, price, base_price, media, ingredients`

func encodeStory(story *models.DishStory) (media, ingredients json.RawMessage, err error) {
	media, err = json.Marshal(story.Media)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding media of story %s: %w", story.ID, err)
	}
	ingredients, err = json.Marshal(story.Ingredients)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding ingredients of story %s: %w", story.ID, err)
	}
	return media, ingredients, nil
}

// BulkCreate inserts stories; the position is the index among stories of
// the same restaurant, in slice order.
func (r *StoryRepository) BulkCreate(ctx context.Context, stories []*models.DishStory) error {
	positions := make(map[string]int)
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"dish_stories"},
		[]string{
			"id", "restaurant_id", "position", "restaurant_name", "dish_name",
			"price", "base_price", "media", "ingredients",
		},
		pgx.CopyFromSlice(len(stories), func(i int) ([]interface{}, error) {
			s := stories[i]
			media, ingredients, err := encodeStory(s)
			if err != nil {
				return nil, err
			}
			pos := positions[s.RestaurantID]
			positions[s.RestaurantID] = pos + 1
			return []interface{}{
				s.ID,
				s.RestaurantID,
				pos,
				s.RestaurantName,
				s.DishName,
				s.Price,
				s.BasePrice,
				media,
				ingredients,
			}, nil
		}),
	)
	return err
}

func (r *StoryRepository) Create(ctx context.Context, story *models.DishStory, position int) error {
	media, ingredients, err := encodeStory(story)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO dish_stories (
            id, restaurant_id, position, restaurant_name, dish_name,
            price, base_price, media, ingredients
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9
        )
    `
	_, err = r.pool.Exec(ctx, query,
		story.ID,
		story.RestaurantID,
		position,
		story.RestaurantName,
		story.DishName,
		story.Price,
		story.BasePrice,
		media,
		ingredients,
	)
	return err
}

// GetAll returns every story ordered by restaurant position, then story
// position.
func (r *StoryRepository) GetAll(ctx context.Context) ([]*models.DishStory, error) {
	query := `
        SELECT s.id, s.restaurant_id, s.restaurant_name, s.dish_name, s.price, s.base_price, s.media, s.ingredients
        FROM dish_stories s
        JOIN restaurants r ON r.id = s.restaurant_id
        ORDER BY r.position, s.position
    `
	return r.query(ctx, query)
}

func (r *StoryRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.DishStory, error) {
	query := `SELECT ` + storyColumns + ` FROM dish_stories WHERE restaurant_id = $1 ORDER BY position`
	return r.query(ctx, query, restaurantID)
}

func (r *StoryRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.DishStory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []*models.DishStory
	for rows.Next() {
		var media, ingredients []byte
		story := &models.DishStory{}
		err := rows.Scan(
			&story.ID,
			&story.RestaurantID,
			&story.RestaurantName,
			&story.DishName,
			&story.Price,
			&story.BasePrice,
			&media,
			&ingredients,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(media, &story.Media); err != nil {
			return nil, fmt.Errorf("decoding media of story %s: %w", story.ID, err)
		}
		if err := json.Unmarshal(ingredients, &story.Ingredients); err != nil {
			return nil, fmt.Errorf("decoding ingredients of story %s: %w", story.ID, err)
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

func (r *StoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dish_stories").Scan(&count)
	return count, err
}

func (r *StoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE dish_stories")
	return err
}
