package repository

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// restaurantRepository implements the RestaurantRepository interface using PostgreSQL.
type restaurantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantRepository creates a new PostgreSQL-backed restaurant repository.
func NewRestaurantRepository(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantRepository {
	return &restaurantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "restaurant").Logger(),
	}
}

// List retrieves restaurants matching the filter, ordered by name. Empty
// filter fields are ignored; populated fields are AND-combined.
func (r *restaurantRepository) List(ctx context.Context, filter model.RestaurantFilter) ([]model.Restaurant, error) {
	query := `
		SELECT r.restaurantid, r.name, COALESCE(r.location, 'N/A'), COALESCE(r.pricerange, 'N/A')
		FROM restaurant r
		WHERE ($1 = '' OR r.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR r.pricerange = $2)
		  AND ($3 = '' OR r.location = $3)
		  AND ($4 = '' OR EXISTS (
			SELECT 1
			FROM restaurantcuisine rc
			JOIN cuisine c ON c.cuisineid = rc.cuisineid
			WHERE rc.restaurantid = r.restaurantid AND c.cuisinename = $4
		  ))
		ORDER BY r.name
	`

	rows, err := r.pool.Query(ctx, query, filter.Search, filter.PriceRange, filter.Location, filter.Cuisine)
	if err != nil {
		r.logger.Error().Err(err).
			Str("search", filter.Search).
			Str("cuisine", filter.Cuisine).
			Msg("failed to query restaurants")
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.PriceRange); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan restaurant row")
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating restaurant rows")
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}

// GetByID retrieves a single restaurant by id.
func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	query := `
		SELECT restaurantid, name, COALESCE(location, 'N/A'), COALESCE(pricerange, 'N/A')
		FROM restaurant
		WHERE restaurantid = $1
	`

	var rest model.Restaurant
	err := r.pool.QueryRow(ctx, query, id).Scan(&rest.ID, &rest.Name, &rest.Location, &rest.PriceRange)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("restaurant_id", id).Msg("restaurant not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("restaurant_id", id).Msg("failed to query restaurant")
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}

	return &rest, nil
}

// Create inserts a restaurant and its cuisine associations in one transaction.
func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant, cuisineIDs []int64) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	insertQuery := `
		INSERT INTO restaurant (name, location, pricerange)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING restaurantid
	`

	err = tx.QueryRow(ctx, insertQuery, restaurant.Name, restaurant.Location, restaurant.PriceRange).
		Scan(&restaurant.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", restaurant.Name).Msg("failed to create restaurant")
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	if len(cuisineIDs) > 0 {
		assocQuery := `
			INSERT INTO restaurantcuisine (restaurantid, cuisineid)
			VALUES ($1, $2)
		`

		batch := &pgx.Batch{}
		for _, cuisineID := range cuisineIDs {
			batch.Queue(assocQuery, restaurant.ID, cuisineID)
		}

		results := tx.SendBatch(ctx, batch)
		for i := 0; i < len(cuisineIDs); i++ {
			if _, execErr := results.Exec(); execErr != nil {
				_ = results.Close()
				r.logger.Error().Err(execErr).
					Int64("restaurant_id", restaurant.ID).
					Int64("cuisine_id", cuisineIDs[i]).
					Msg("failed to associate cuisine")
				err = fmt.Errorf("failed to associate cuisine: %w", execErr)
				return err
			}
		}
		if err = results.Close(); err != nil {
			return fmt.Errorf("failed to associate cuisines: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("restaurant_id", restaurant.ID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Int64("restaurant_id", restaurant.ID).
		Int("cuisine_count", len(cuisineIDs)).
		Msg("restaurant created successfully")

	return nil
}
