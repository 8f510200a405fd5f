package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/service"

	"github.com/rs/zerolog"
)

// RestaurantHandler handles restaurant, dish and cuisine HTTP requests.
type RestaurantHandler struct {
	service service.RestaurantService
	logger  zerolog.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(service service.RestaurantService, logger zerolog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger.With().Str("handler", "restaurant").Logger(),
	}
}

// List handles GET /restaurants requests with optional filters.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.RestaurantFilter{
		Search:     query.Get("search"),
		Cuisine:    query.Get("cuisine"),
		PriceRange: query.Get("price_range"),
		Location:   query.Get("location"),
	}

	restaurants, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if restaurants == nil {
		restaurants = []model.Restaurant{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

// GetByID handles GET /restaurants/{restaurantID} requests.
func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "restaurantID")
	if err != nil {
		writeNotFound(w, "Restaurant not found")
		return
	}

	details, err := h.service.GetDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if details == nil {
		writeNotFound(w, "Restaurant not found")
		return
	}

	writeJSON(w, http.StatusOK, details)
}

// addRestaurantForm is the GET /restaurants/add response body.
type addRestaurantForm struct {
	Form     string          `json:"form"`
	Cuisines []model.Cuisine `json:"cuisines"`
}

// AddForm handles GET /restaurants/add requests.
func (h *RestaurantHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.service.ListCuisines(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, addRestaurantForm{Form: "add-restaurant", Cuisines: cuisines})
}

// Create handles POST /restaurants/add requests.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid form body", h.logger)
		return
	}

	req := &model.CreateRestaurantRequest{
		Name:       r.PostFormValue("name"),
		Location:   r.PostFormValue("location"),
		PriceRange: r.PostFormValue("price_range"),
	}
	for _, raw := range r.PostForm["cuisine_id"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			continue
		}
		req.CuisineIDs = append(req.CuisineIDs, id)
	}

	restaurant, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	redirect(w, r, fmt.Sprintf("/restaurants/%d", restaurant.ID))
}

// addDishForm is the GET /restaurants/{restaurantID}/add-dish response body.
type addDishForm struct {
	Form       string           `json:"form"`
	Restaurant model.Restaurant `json:"restaurant"`
}

// DishForm handles GET /restaurants/{restaurantID}/add-dish requests.
func (h *RestaurantHandler) DishForm(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.parentRestaurant(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, addDishForm{Form: "add-dish", Restaurant: *restaurant})
}

// AddDish handles POST /restaurants/{restaurantID}/add-dish requests.
func (h *RestaurantHandler) AddDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "restaurantID")
	if err != nil {
		writeNotFound(w, "Restaurant not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid form body", h.logger)
		return
	}

	req := &model.CreateDishRequest{
		Name:        r.PostFormValue("name"),
		Ingredients: r.PostFormValue("ingredients"),
	}
	if rawPrice := r.PostFormValue("price"); rawPrice != "" {
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed,
				"price must be a number", h.logger)
			return
		}
		req.Price = price
	}

	if _, err := h.service.AddDish(r.Context(), id, req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	redirect(w, r, fmt.Sprintf("/restaurants/%d", id))
}

// ListDishes handles GET /dishes requests.
func (h *RestaurantHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.service.ListDishes(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if dishes == nil {
		dishes = []model.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

// ListCuisines handles GET /cuisines requests.
func (h *RestaurantHandler) ListCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.service.ListCuisines(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	if cuisines == nil {
		cuisines = []model.Cuisine{}
	}
	writeJSON(w, http.StatusOK, cuisines)
}

// parentRestaurant resolves the {restaurantID} path parameter for the
// create forms, answering 404 when the parent does not exist.
func (h *RestaurantHandler) parentRestaurant(w http.ResponseWriter, r *http.Request) (*model.Restaurant, bool) {
	id, err := pathID(r, "restaurantID")
	if err != nil {
		writeNotFound(w, "Restaurant not found")
		return nil, false
	}

	restaurant, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return nil, false
	}
	if restaurant == nil {
		writeNotFound(w, "Restaurant not found")
		return nil, false
	}

	return restaurant, true
}
