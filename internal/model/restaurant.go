package model

// Restaurant represents a restaurant in the directory.
type Restaurant struct {
	ID         int64  `json:"id" db:"restaurantid"`
	Name       string `json:"name" db:"name"`
	Location   string `json:"location" db:"location"`
	PriceRange string `json:"priceRange" db:"pricerange"`
}

// RestaurantFilter holds the optional list filters. Empty fields are
// ignored; populated fields are AND-combined.
type RestaurantFilter struct {
	Search     string // substring match on name
	Cuisine    string // exact cuisine name association
	PriceRange string // exact price range
	Location   string // exact location
}

// RestaurantDetails is a restaurant together with its related collections.
type RestaurantDetails struct {
	Restaurant Restaurant `json:"restaurant"`
	Dishes     []Dish     `json:"dishes"`
	Reviews    []Review   `json:"reviews"`
	Cuisines   []Cuisine  `json:"cuisines"`
	Orders     []Order    `json:"orders"`
}

// CreateRestaurantRequest is the payload for creating a restaurant,
// optionally with cuisine associations.
type CreateRestaurantRequest struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	PriceRange string  `json:"priceRange"`
	CuisineIDs []int64 `json:"cuisineIds"`
}
