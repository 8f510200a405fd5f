package service

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/repository"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "review").Logger(),
	}
}

// Create records a user's review of a restaurant. Ratings outside 1..5 are
// rejected before anything is written.
func (s *reviewService) Create(ctx context.Context, userID, restaurantID int64, req *model.CreateReviewRequest) (*model.Review, error) {
	if req == nil {
		return nil, model.ErrInvalidRating
	}
	if req.Rating < 1 || req.Rating > 5 {
		s.logger.Warn().
			Int("rating", req.Rating).
			Int64("restaurant_id", restaurantID).
			Msg("review rejected for out-of-range rating")
		return nil, model.ErrInvalidRating
	}

	review := &model.Review{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if refErr := classifyReferenceError(err); refErr != err {
			s.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("review create hit invalid reference")
			return nil, refErr
		}
		s.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info().
		Int64("review_id", review.ID).
		Int64("restaurant_id", restaurantID).
		Int("rating", review.Rating).
		Msg("review created")

	return review, nil
}

// List retrieves all reviews, newest first.
func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
