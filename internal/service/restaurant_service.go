package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/repository"

	"github.com/rs/zerolog"
)

// restaurantService implements RestaurantService.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	cuisineRepo    repository.CuisineRepository
	reviewRepo     repository.ReviewRepository
	orderRepo      repository.OrderRepository
	logger         zerolog.Logger
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	dishRepo repository.DishRepository,
	cuisineRepo repository.CuisineRepository,
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		dishRepo:       dishRepo,
		cuisineRepo:    cuisineRepo,
		reviewRepo:     reviewRepo,
		orderRepo:      orderRepo,
		logger:         logger.With().Str("service", "restaurant").Logger(),
	}
}

// List retrieves restaurants matching the filter.
func (s *restaurantService) List(ctx context.Context, filter model.RestaurantFilter) ([]model.Restaurant, error) {
	restaurants, err := s.restaurantRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list restaurants")
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID retrieves a single restaurant. Returns nil if absent.
func (s *restaurantService) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("restaurant_id", id).Msg("failed to get restaurant")
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return restaurant, nil
}

// GetDetails retrieves a restaurant with its related collections.
func (s *restaurantService) GetDetails(ctx context.Context, id int64) (*model.RestaurantDetails, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("restaurant_id", id).Msg("failed to get restaurant")
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if restaurant == nil {
		s.logger.Debug().Int64("restaurant_id", id).Msg("restaurant not found")
		return nil, nil
	}

	dishes, err := s.dishRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant dishes: %w", err)
	}

	reviews, err := s.reviewRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant reviews: %w", err)
	}

	cuisines, err := s.cuisineRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant cuisines: %w", err)
	}

	orders, err := s.orderRepo.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant orders: %w", err)
	}

	return &model.RestaurantDetails{
		Restaurant: *restaurant,
		Dishes:     dishes,
		Reviews:    reviews,
		Cuisines:   cuisines,
		Orders:     orders,
	}, nil
}

// Create creates a restaurant with optional cuisine associations.
func (s *restaurantService) Create(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrNameRequired
	}

	restaurant := &model.Restaurant{
		Name:       strings.TrimSpace(req.Name),
		Location:   strings.TrimSpace(req.Location),
		PriceRange: strings.TrimSpace(req.PriceRange),
	}

	if err := s.restaurantRepo.Create(ctx, restaurant, req.CuisineIDs); err != nil {
		if refErr := classifyReferenceError(err); refErr != err {
			s.logger.Warn().Err(err).Str("name", restaurant.Name).Msg("restaurant create hit invalid reference")
			return nil, refErr
		}
		s.logger.Error().Err(err).Str("name", restaurant.Name).Msg("failed to create restaurant")
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.logger.Info().
		Int64("restaurant_id", restaurant.ID).
		Str("name", restaurant.Name).
		Msg("restaurant created")

	return restaurant, nil
}

// AddDish adds a dish to a restaurant.
func (s *restaurantService) AddDish(ctx context.Context, restaurantID int64, req *model.CreateDishRequest) (*model.Dish, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrNameRequired
	}
	if req.Price < 0 {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed, "Price must not be negative")
	}

	dish := &model.Dish{
		Name:         strings.TrimSpace(req.Name),
		Ingredients:  strings.TrimSpace(req.Ingredients),
		Price:        req.Price,
		RestaurantID: restaurantID,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		if refErr := classifyReferenceError(err); refErr != err {
			s.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("dish create hit invalid reference")
			return nil, refErr
		}
		s.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to add dish")
		return nil, fmt.Errorf("failed to add dish: %w", err)
	}

	s.logger.Info().
		Int64("dish_id", dish.ID).
		Int64("restaurant_id", restaurantID).
		Msg("dish added")

	return dish, nil
}

// ListDishes retrieves all dishes with restaurant names.
func (s *restaurantService) ListDishes(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.dishRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list dishes")
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	return dishes, nil
}

// DishesFor retrieves a restaurant's dishes.
func (s *restaurantService) DishesFor(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	dishes, err := s.dishRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to list restaurant dishes")
		return nil, fmt.Errorf("failed to list restaurant dishes: %w", err)
	}
	return dishes, nil
}

// ListCuisines retrieves all cuisines.
func (s *restaurantService) ListCuisines(ctx context.Context) ([]model.Cuisine, error) {
	cuisines, err := s.cuisineRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list cuisines")
		return nil, fmt.Errorf("failed to list cuisines: %w", err)
	}
	return cuisines, nil
}
