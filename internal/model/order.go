package model

import "time"

// Order represents a placed order. TotalPrice is computed once at creation
// from the dish prices at submission time and never recomputed.
type Order struct {
	ID           int64     `json:"id" db:"orderid"`
	UserID       int64     `json:"userId" db:"userid"`
	RestaurantID int64     `json:"restaurantId" db:"restaurantid"`
	Date         time.Time `json:"date" db:"date"`
	TotalPrice   float64   `json:"totalPrice" db:"totalprice"`

	// Joined display fields, populated on list/detail views.
	RestaurantName string `json:"restaurantName,omitempty"`
	Username       string `json:"username,omitempty"`
}

// OrderItem is one line of an order. Price is the dish price captured at
// order time so later dish price changes do not alter stored orders.
type OrderItem struct {
	ID       int64   `json:"id" db:"orderitemid"`
	OrderID  int64   `json:"orderId" db:"orderid"`
	DishID   int64   `json:"dishId" db:"dishid"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`

	DishName string `json:"dishName,omitempty"`
}

// OrderDetails is an order together with its line items.
type OrderDetails struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

// OrderItemRequest is a single (dish, quantity) pair from the order form.
type OrderItemRequest struct {
	DishID   int64 `json:"dishId"`
	Quantity int   `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order at a restaurant.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}
