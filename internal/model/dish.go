package model

// Dish belongs to exactly one restaurant. A missing price in the store is
// surfaced as 0.
type Dish struct {
	ID           int64   `json:"id" db:"dishid"`
	Name         string  `json:"name" db:"name"`
	Ingredients  string  `json:"ingredients" db:"ingredients"`
	Price        float64 `json:"price" db:"price"`
	RestaurantID int64   `json:"restaurantId" db:"restaurantid"`

	// RestaurantName is populated on list views via a left join.
	RestaurantName string `json:"restaurantName,omitempty"`
}

// CreateDishRequest is the payload for adding a dish to a restaurant.
type CreateDishRequest struct {
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`
}
