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

// ReviewHandler handles review HTTP requests.
type ReviewHandler struct {
	service     service.ReviewService
	restaurants service.RestaurantService
	logger      zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, restaurants service.RestaurantService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:     service,
		restaurants: restaurants,
		logger:      logger.With().Str("handler", "review").Logger(),
	}
}

// List handles GET /reviews requests.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if reviews == nil {
		reviews = []model.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// addReviewForm is the GET /restaurants/{restaurantID}/add-review response
// body.
type addReviewForm struct {
	Form       string           `json:"form"`
	Restaurant model.Restaurant `json:"restaurant"`
}

// Form handles GET /restaurants/{restaurantID}/add-review requests.
func (h *ReviewHandler) Form(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, addReviewForm{Form: "add-review", Restaurant: *restaurant})
}

// Create handles POST /restaurants/{restaurantID}/add-review requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed,
			model.ErrInvalidRating.Message, h.logger)
		return
	}

	req := &model.CreateReviewRequest{
		Rating:  rating,
		Comment: r.PostFormValue("comment"),
	}

	if _, err := h.service.Create(r.Context(), session.UserID, restaurantID, req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	redirect(w, r, fmt.Sprintf("/restaurants/%d", restaurantID))
}
