package repository

import (
	"context"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// GetByUsername retrieves a user by exact username. Returns nil if absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// GetByID retrieves a user by id. Returns nil if absent.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// List retrieves all users ordered by username.
	List(ctx context.Context) ([]model.User, error)
}

// RestaurantRepository defines the interface for restaurant data access operations.
type RestaurantRepository interface {
	// List retrieves restaurants matching the filter, ordered by name.
	List(ctx context.Context, filter model.RestaurantFilter) ([]model.Restaurant, error)

	// GetByID retrieves a single restaurant by id. Returns nil if absent.
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)

	// Create inserts a restaurant and its cuisine associations in one
	// transaction, filling in the generated id.
	Create(ctx context.Context, restaurant *model.Restaurant, cuisineIDs []int64) error
}

// DishRepository defines the interface for dish data access operations.
type DishRepository interface {
	// List retrieves all dishes with their restaurant names, ordered by name.
	List(ctx context.Context) ([]model.Dish, error)

	// ListByRestaurant retrieves a restaurant's dishes ordered by name.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Dish, error)

	// GetPrices retrieves the current price for each of the given dish ids.
	// A stored NULL price is reported as 0. Ids absent from the result did
	// not match any dish.
	GetPrices(ctx context.Context, ids []int64) (map[int64]float64, error)

	// Create inserts a dish, filling in the generated id.
	Create(ctx context.Context, dish *model.Dish) error
}

// CuisineRepository defines the interface for cuisine data access operations.
type CuisineRepository interface {
	// List retrieves all cuisines ordered by name.
	List(ctx context.Context) ([]model.Cuisine, error)

	// ListByRestaurant retrieves the cuisines associated with a restaurant.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Cuisine, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// List retrieves all reviews with restaurant and user names, newest first.
	List(ctx context.Context) ([]model.Review, error)

	// ListByRestaurant retrieves a restaurant's reviews, newest first.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Review, error)

	// Create inserts a review, filling in the generated id.
	Create(ctx context.Context, review *model.Review) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction,
	// filling in the generated id and server-assigned date.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the provided
	// transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by id along with its items and dish names.
	// Returns a nil order if absent.
	GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error)

	// List retrieves all orders with restaurant and user names, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// ListByRestaurant retrieves a restaurant's orders, newest first.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error)
}
