package repository

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cuisineRepository implements the CuisineRepository interface using PostgreSQL.
type cuisineRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCuisineRepository creates a new PostgreSQL-backed cuisine repository.
func NewCuisineRepository(pool *pgxpool.Pool, logger zerolog.Logger) CuisineRepository {
	return &cuisineRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cuisine").Logger(),
	}
}

// List retrieves all cuisines ordered by name.
func (r *cuisineRepository) List(ctx context.Context) ([]model.Cuisine, error) {
	query := `
		SELECT cuisineid, cuisinename
		FROM cuisine
		ORDER BY cuisinename
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query cuisines")
		return nil, fmt.Errorf("failed to query cuisines: %w", err)
	}
	defer rows.Close()

	var cuisines []model.Cuisine
	for rows.Next() {
		var c model.Cuisine
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cuisine row")
			return nil, fmt.Errorf("failed to scan cuisine: %w", err)
		}
		cuisines = append(cuisines, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cuisine rows")
		return nil, fmt.Errorf("error iterating cuisines: %w", err)
	}

	return cuisines, nil
}

// ListByRestaurant retrieves the cuisines associated with a restaurant.
func (r *cuisineRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Cuisine, error) {
	query := `
		SELECT c.cuisineid, c.cuisinename
		FROM cuisine c
		JOIN restaurantcuisine rc ON c.cuisineid = rc.cuisineid
		WHERE rc.restaurantid = $1
		ORDER BY c.cuisinename
	`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		r.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to query cuisines")
		return nil, fmt.Errorf("failed to query cuisines: %w", err)
	}
	defer rows.Close()

	var cuisines []model.Cuisine
	for rows.Next() {
		var c model.Cuisine
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cuisine row")
			return nil, fmt.Errorf("failed to scan cuisine: %w", err)
		}
		cuisines = append(cuisines, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cuisine rows")
		return nil, fmt.Errorf("error iterating cuisines: %w", err)
	}

	return cuisines, nil
}
