package model

// Review is a user's rating of a restaurant. Rating is constrained to 1..5.
type Review struct {
	ID           int64  `json:"id" db:"reviewid"`
	UserID       int64  `json:"userId" db:"userid"`
	RestaurantID int64  `json:"restaurantId" db:"restaurantid"`
	Rating       int    `json:"rating" db:"rating"`
	Comment      string `json:"comment" db:"comment"`

	RestaurantName string `json:"restaurantName,omitempty"`
	Username       string `json:"username,omitempty"`
}

// CreateReviewRequest is the payload for reviewing a restaurant.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
