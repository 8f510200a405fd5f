package service

import (
	"context"
	"errors"
	"strings"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// AuthService defines session lifecycle operations.
type AuthService interface {
	// Login authenticates a user by username and password and returns the
	// user together with a signed session token.
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

// UserService defines operations over the user directory.
type UserService interface {
	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]model.User, error)
}

// RestaurantService defines operations for restaurants, their dishes and
// cuisines.
type RestaurantService interface {
	// List retrieves restaurants matching the filter.
	List(ctx context.Context, filter model.RestaurantFilter) ([]model.Restaurant, error)

	// GetByID retrieves a single restaurant. Returns nil if absent.
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)

	// GetDetails retrieves a restaurant with its dishes, reviews, cuisines
	// and orders. Returns nil if the restaurant is absent.
	GetDetails(ctx context.Context, id int64) (*model.RestaurantDetails, error)

	// Create creates a restaurant with optional cuisine associations.
	Create(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error)

	// AddDish adds a dish to a restaurant.
	AddDish(ctx context.Context, restaurantID int64, req *model.CreateDishRequest) (*model.Dish, error)

	// ListDishes retrieves all dishes with restaurant names.
	ListDishes(ctx context.Context) ([]model.Dish, error)

	// DishesFor retrieves a restaurant's dishes.
	DishesFor(ctx context.Context, restaurantID int64) ([]model.Dish, error)

	// ListCuisines retrieves all cuisines.
	ListCuisines(ctx context.Context) ([]model.Cuisine, error)
}

// ReviewService defines operations for restaurant reviews.
type ReviewService interface {
	// Create records a user's review of a restaurant.
	Create(ctx context.Context, userID, restaurantID int64, req *model.CreateReviewRequest) (*model.Review, error)

	// List retrieves all reviews, newest first.
	List(ctx context.Context) ([]model.Review, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create places an order for the given user at the given restaurant.
	Create(ctx context.Context, userID, restaurantID int64, req *model.CreateOrderRequest) (*model.OrderDetails, error)

	// GetByID retrieves an order with its line items. Returns nil if absent.
	GetByID(ctx context.Context, id int64) (*model.OrderDetails, error)

	// List retrieves all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
}

// classifyReferenceError maps a foreign-key violation (SQLSTATE 23503) to a
// domain error naming the missing reference, keyed off the constraint name
// from the fixed DDL. Any other error is returned unchanged.
func classifyReferenceError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return err
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "cuisineid"):
		return model.NewInvalidReference("cuisine")
	case strings.Contains(pgErr.ConstraintName, "dishid"):
		return model.NewInvalidReference("dish")
	case strings.Contains(pgErr.ConstraintName, "userid"):
		return model.NewInvalidReference("user")
	case strings.Contains(pgErr.ConstraintName, "restaurantid"):
		return model.NewInvalidReference("restaurant")
	default:
		return model.NewInvalidReference("row")
	}
}
