package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/config"
	"github.com/laurenrich/4111-Database-Project/internal/database"
	"github.com/laurenrich/4111-Database-Project/internal/handler"
	"github.com/laurenrich/4111-Database-Project/internal/repository"
	"github.com/laurenrich/4111-Database-Project/internal/router"
	"github.com/laurenrich/4111-Database-Project/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting eatery API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	restaurantRepo := repository.NewRestaurantRepository(pool, logger)
	dishRepo := repository.NewDishRepository(pool, logger)
	cuisineRepo := repository.NewCuisineRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize session token manager
	tokens := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, logger)
	userService := service.NewUserService(userRepo, logger)
	restaurantService := service.NewRestaurantService(restaurantRepo, dishRepo, cuisineRepo, reviewRepo, orderRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	orderService := service.NewOrderService(orderRepo, dishRepo, userRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg.Session.TTL, logger),
		Restaurant: handler.NewRestaurantHandler(restaurantService, logger),
		Order:      handler.NewOrderHandler(orderService, restaurantService, logger),
		Review:     handler.NewReviewHandler(reviewService, restaurantService, logger),
		User:       handler.NewUserHandler(userService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
