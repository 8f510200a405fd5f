package repository

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// dishRepository implements the DishRepository interface using PostgreSQL.
type dishRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDishRepository creates a new PostgreSQL-backed dish repository.
func NewDishRepository(pool *pgxpool.Pool, logger zerolog.Logger) DishRepository {
	return &dishRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dish").Logger(),
	}
}

// List retrieves all dishes with their restaurant names, ordered by name.
// A dangling restaurant reference yields the 'N/A' placeholder rather than
// dropping the row.
func (r *dishRepository) List(ctx context.Context) ([]model.Dish, error) {
	query := `
		SELECT d.dishid, d.name, COALESCE(d.ingredients, ''), COALESCE(d.price, 0),
		       d.restaurantid, COALESCE(rest.name, 'N/A')
		FROM dish d
		LEFT JOIN restaurant rest ON d.restaurantid = rest.restaurantid
		ORDER BY d.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []model.Dish
	for rows.Next() {
		var d model.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Ingredients, &d.Price, &d.RestaurantID, &d.RestaurantName); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}

// ListByRestaurant retrieves a restaurant's dishes ordered by name.
func (r *dishRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	query := `
		SELECT dishid, name, COALESCE(ingredients, ''), COALESCE(price, 0), restaurantid
		FROM dish
		WHERE restaurantid = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		r.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []model.Dish
	for rows.Next() {
		var d model.Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Ingredients, &d.Price, &d.RestaurantID); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}

// GetPrices retrieves the current price for each of the given dish ids,
// treating a stored NULL price as 0.
func (r *dishRepository) GetPrices(ctx context.Context, ids []int64) (map[int64]float64, error) {
	prices := make(map[int64]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	query := `
		SELECT dishid, COALESCE(price, 0)
		FROM dish
		WHERE dishid = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query dish prices")
		return nil, fmt.Errorf("failed to query dish prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    int64
			price float64
		)
		if err := rows.Scan(&id, &price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish price row")
			return nil, fmt.Errorf("failed to scan dish price: %w", err)
		}
		prices[id] = price
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish price rows")
		return nil, fmt.Errorf("error iterating dish prices: %w", err)
	}

	return prices, nil
}

// Create inserts a dish, filling in the generated id.
func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	query := `
		INSERT INTO dish (name, ingredients, price, restaurantid)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING dishid
	`

	err := r.pool.QueryRow(ctx, query, dish.Name, dish.Ingredients, dish.Price, dish.RestaurantID).
		Scan(&dish.ID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("name", dish.Name).
			Int64("restaurant_id", dish.RestaurantID).
			Msg("failed to create dish")
		return fmt.Errorf("failed to create dish: %w", err)
	}

	r.logger.Debug().Int64("dish_id", dish.ID).Msg("dish created successfully")

	return nil
}
