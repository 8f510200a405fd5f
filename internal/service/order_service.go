package service

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	dishRepo  repository.DishRepository
	userRepo  repository.UserRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	dishRepo repository.DishRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		dishRepo:  dishRepo,
		userRepo:  userRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create places an order. Line item prices are captured from the dish rows
// at submission time and the total is computed once; the order row and all
// item rows are written in a single transaction, so either the whole order
// becomes visible or none of it does.
func (s *orderService) Create(ctx context.Context, userID, restaurantID int64, req *model.CreateOrderRequest) (*model.OrderDetails, error) {
	items, err := s.validateOrderRequest(req)
	if err != nil {
		return nil, err
	}

	// Sessions outlive account removal; make sure the user still exists
	// before pricing anything.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to verify session user")
		return nil, fmt.Errorf("failed to verify session user: %w", err)
	}
	if user == nil {
		s.logger.Warn().Int64("user_id", userID).Msg("order attempt by vanished user")
		return nil, model.ErrUnknownUser
	}

	dishIDs := make([]int64, len(items))
	for i, item := range items {
		dishIDs[i] = item.DishID
	}

	prices, err := s.dishRepo.GetPrices(ctx, dishIDs)
	if err != nil {
		s.logger.Error().Err(err).Int("dish_count", len(dishIDs)).Msg("failed to price dishes")
		return nil, fmt.Errorf("failed to price dishes: %w", err)
	}

	var total float64
	orderItems := make([]model.OrderItem, len(items))
	for i, item := range items {
		price, ok := prices[item.DishID]
		if !ok {
			s.logger.Warn().Int64("dish_id", item.DishID).Msg("order references unknown dish")
			return nil, model.ErrDishNotFound
		}
		orderItems[i] = model.OrderItem{
			DishID:   item.DishID,
			Quantity: item.Quantity,
			Price:    price,
		}
		total += price * float64(item.Quantity)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Any non-commit exit rolls the whole order back.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	order := &model.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		TotalPrice:   total,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		if refErr := classifyReferenceError(err); refErr != err {
			s.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("order create hit invalid reference")
			return nil, refErr
		}
		s.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		if refErr := classifyReferenceError(err); refErr != err {
			s.logger.Warn().Err(err).Int64("order_id", order.ID).Msg("order items hit invalid reference")
			return nil, refErr
		}
		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("user_id", userID).
		Int64("restaurant_id", restaurantID).
		Float64("total", total).
		Int("item_count", len(orderItems)).
		Msg("order created successfully")

	return &model.OrderDetails{
		Order: *order,
		Items: orderItems,
	}, nil
}

// GetByID retrieves an order with its line items.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, nil
	}

	return &model.OrderDetails{
		Order: *order,
		Items: items,
	}, nil
}

// List retrieves all orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// validateOrderRequest drops invalid (dish, quantity) pairs and fails when
// nothing valid survives.
func (s *orderService) validateOrderRequest(req *model.CreateOrderRequest) ([]model.OrderItemRequest, error) {
	if req == nil {
		return nil, model.ErrEmptyOrder
	}

	valid := make([]model.OrderItemRequest, 0, len(req.Items))
	for i, item := range req.Items {
		if item.DishID <= 0 || item.Quantity <= 0 {
			s.logger.Debug().
				Int("item_index", i).
				Int64("dish_id", item.DishID).
				Int("quantity", item.Quantity).
				Msg("discarding invalid order line")
			continue
		}
		valid = append(valid, item)
	}

	if len(valid) == 0 {
		return nil, model.ErrEmptyOrder
	}

	return valid, nil
}
