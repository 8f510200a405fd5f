package repository

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction. The
// generated id and the server-assigned date are written back to the order.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (userid, restaurantid, totalprice)
		VALUES ($1, $2, $3)
		RETURNING orderid, date
	`

	err := tx.QueryRow(ctx, query, order.UserID, order.RestaurantID, order.TotalPrice).
		Scan(&order.ID, &order.Date)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", order.UserID).
			Int64("restaurant_id", order.RestaurantID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts the order's line items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO orderitem (orderid, dishid, quantity, price)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.DishID, item.Quantity, item.Price)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Int64("order_id", items[i].OrderID).
				Int64("dish_id", items[i].DishID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by id along with its items and dish names.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error) {
	orderQuery := `
		SELECT o.orderid, o.userid, o.restaurantid, o.date, o.totalprice,
		       COALESCE(rest.name, 'N/A'), COALESCE(u.username, 'N/A')
		FROM orders o
		LEFT JOIN restaurant rest ON o.restaurantid = rest.restaurantid
		LEFT JOIN users u ON o.userid = u.userid
		WHERE o.orderid = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.UserID,
		&order.RestaurantID,
		&order.Date,
		&order.TotalPrice,
		&order.RestaurantName,
		&order.Username,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT oi.orderitemid, oi.orderid, oi.dishid, oi.quantity, oi.price,
		       COALESCE(d.name, 'N/A')
		FROM orderitem oi
		LEFT JOIN dish d ON oi.dishid = d.dishid
		WHERE oi.orderid = $1
		ORDER BY oi.orderitemid
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.Quantity, &item.Price, &item.DishName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &order, items, nil
}

// List retrieves all orders with restaurant and user names, newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT o.orderid, o.userid, o.restaurantid, o.date, o.totalprice,
		       COALESCE(rest.name, 'N/A'), COALESCE(u.username, 'N/A')
		FROM orders o
		LEFT JOIN restaurant rest ON o.restaurantid = rest.restaurantid
		LEFT JOIN users u ON o.userid = u.userid
		ORDER BY o.date DESC, o.orderid DESC
	`

	return r.queryOrders(ctx, query)
}

// ListByRestaurant retrieves a restaurant's orders, newest first.
func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	query := `
		SELECT o.orderid, o.userid, o.restaurantid, o.date, o.totalprice,
		       COALESCE(rest.name, 'N/A'), COALESCE(u.username, 'N/A')
		FROM orders o
		LEFT JOIN restaurant rest ON o.restaurantid = rest.restaurantid
		LEFT JOIN users u ON o.userid = u.userid
		WHERE o.restaurantid = $1
		ORDER BY o.date DESC, o.orderid DESC
	`

	return r.queryOrders(ctx, query, restaurantID)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.Date, &o.TotalPrice,
			&o.RestaurantName, &o.Username)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
