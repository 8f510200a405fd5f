package router

import (
	"net/http"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/handler"
	"github.com/laurenrich/4111-Database-Project/internal/middleware"
	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Restaurant *handler.RestaurantHandler
	Order      *handler.OrderHandler
	Review     *handler.ReviewHandler
	User       *handler.UserHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.TokenManager, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Sessions(tokens, logger))

	adminOnly := middleware.RequireRoles(logger, model.RoleAdmin)
	anyUser := middleware.RequireRoles(logger, model.RoleAdmin, model.RoleCust)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/restaurants", http.StatusFound)
	})

	r.Get("/login", h.Auth.LoginForm)
	r.Post("/login", h.Auth.Login)
	r.Get("/logout", h.Auth.Logout)

	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", h.Restaurant.List)

		// Static segments before the {restaurantID} wildcard.
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/add", h.Restaurant.AddForm)
			r.Post("/add", h.Restaurant.Create)
		})

		r.Route("/{restaurantID}", func(r chi.Router) {
			r.Get("/", h.Restaurant.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/add-dish", h.Restaurant.DishForm)
				r.Post("/add-dish", h.Restaurant.AddDish)
			})

			r.Group(func(r chi.Router) {
				r.Use(anyUser)
				r.Get("/add-review", h.Review.Form)
				r.Post("/add-review", h.Review.Create)
				r.Get("/add-order", h.Order.Form)
				r.Post("/add-order", h.Order.Create)
			})
		})
	})

	r.Get("/dishes", h.Restaurant.ListDishes)
	r.Get("/cuisines", h.Restaurant.ListCuisines)
	r.Get("/reviews", h.Review.List)
	r.Get("/users", h.User.List)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.Order.List)
		r.Get("/{orderID}", h.Order.GetByID)
	})

	return r
}
