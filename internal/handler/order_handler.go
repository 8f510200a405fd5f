package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/laurenrich/4111-Database-Project/internal/middleware"
	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service     service.OrderService
	restaurants service.RestaurantService
	logger      zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, restaurants service.RestaurantService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:     service,
		restaurants: restaurants,
		logger:      logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /orders/{orderID} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "orderID")
	if err != nil {
		writeNotFound(w, "Order not found")
		return
	}

	details, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if details == nil {
		writeNotFound(w, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, details)
}

// addOrderForm is the GET /restaurants/{restaurantID}/add-order response
// body: the restaurant plus the dishes available to order from it.
type addOrderForm struct {
	Form       string           `json:"form"`
	Restaurant model.Restaurant `json:"restaurant"`
	Dishes     []model.Dish     `json:"dishes"`
}

// Form handles GET /restaurants/{restaurantID}/add-order requests.
func (h *OrderHandler) Form(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "restaurantID")
	if err != nil {
		writeNotFound(w, "Restaurant not found")
		return
	}

	restaurant, err := h.restaurants.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if restaurant == nil {
		writeNotFound(w, "Restaurant not found")
		return
	}

	dishes, err := h.restaurants.DishesFor(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if dishes == nil {
		dishes = []model.Dish{}
	}

	writeJSON(w, http.StatusOK, addOrderForm{
		Form:       "add-order",
		Restaurant: *restaurant,
		Dishes:     dishes,
	})
}

// Create handles POST /restaurants/{restaurantID}/add-order requests. The
// form carries parallel dish_id and quantity arrays, one pair per line;
// pairs that fail to parse are dropped rather than failing the order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantID")
	if err != nil {
		writeNotFound(w, "Restaurant not found")
		return
	}

	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, "login required", h.logger)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid form body", h.logger)
		return
	}

	req := &model.CreateOrderRequest{
		Items: parseOrderLines(r.Form["dish_id"], r.Form["quantity"]),
	}

	details, err := h.service.Create(r.Context(), session.UserID, restaurantID, req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	redirect(w, r, fmt.Sprintf("/orders/%d", details.Order.ID))
}

// parseOrderLines pairs the dish_id and quantity form arrays positionally.
// A line whose id or quantity is not numeric is skipped; range checks are
// left to the order service.
func parseOrderLines(dishIDs, quantities []string) []model.OrderItemRequest {
	n := len(dishIDs)
	if len(quantities) < n {
		n = len(quantities)
	}

	items := make([]model.OrderItemRequest, 0, n)
	for i := 0; i < n; i++ {
		dishID, err := strconv.ParseInt(dishIDs[i], 10, 64)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(quantities[i])
		if err != nil {
			continue
		}
		items = append(items, model.OrderItemRequest{DishID: dishID, Quantity: quantity})
	}
	return items
}
