package model

// Cuisine is a named cuisine; restaurants associate with cuisines
// many-to-many through the restaurantcuisine table.
type Cuisine struct {
	ID   int64  `json:"id" db:"cuisineid"`
	Name string `json:"name" db:"cuisinename"`
}
