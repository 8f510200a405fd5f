package repository

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// List retrieves all reviews with restaurant and user names, newest first.
func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	query := `
		SELECT rev.reviewid, rev.userid, rev.restaurantid, rev.rating, COALESCE(rev.comment, ''),
		       COALESCE(rest.name, 'N/A'), COALESCE(u.username, 'N/A')
		FROM review rev
		LEFT JOIN restaurant rest ON rev.restaurantid = rest.restaurantid
		LEFT JOIN users u ON rev.userid = u.userid
		ORDER BY rev.reviewid DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.RestaurantID, &rev.Rating, &rev.Comment,
			&rev.RestaurantName, &rev.Username)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// ListByRestaurant retrieves a restaurant's reviews, newest first.
func (r *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Review, error) {
	query := `
		SELECT rev.reviewid, rev.userid, rev.restaurantid, rev.rating, COALESCE(rev.comment, ''),
		       COALESCE(u.username, 'N/A')
		FROM review rev
		LEFT JOIN users u ON rev.userid = u.userid
		WHERE rev.restaurantid = $1
		ORDER BY rev.reviewid DESC
	`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		r.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.RestaurantID, &rev.Rating, &rev.Comment, &rev.Username)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// Create inserts a review, filling in the generated id.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO review (userid, restaurantid, rating, comment)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING reviewid
	`

	err := r.pool.QueryRow(ctx, query, review.UserID, review.RestaurantID, review.Rating, review.Comment).
		Scan(&review.ID)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("user_id", review.UserID).
			Int64("restaurant_id", review.RestaurantID).
			Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Debug().Int64("review_id", review.ID).Msg("review created successfully")

	return nil
}
