package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/config"
	"github.com/laurenrich/4111-Database-Project/internal/database"
	"github.com/laurenrich/4111-Database-Project/internal/handler"
	"github.com/laurenrich/4111-Database-Project/internal/repository"
	"github.com/laurenrich/4111-Database-Project/internal/router"
	"github.com/laurenrich/4111-Database-Project/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestEnv bundles the running application and its backing database for
// end-to-end tests.
type TestEnv struct {
	Server *httptest.Server
	Pool   *pgxpool.Pool
	Client *http.Client
}

// SetupTestEnv starts a PostgreSQL container, applies the schema and seed
// fixtures, and serves the fully wired application over httptest.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("eatery_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "eatery_test",
		Schema:          "public",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	applySchema(t, pool)

	userRepo := repository.NewUserRepository(pool, logger)
	restaurantRepo := repository.NewRestaurantRepository(pool, logger)
	dishRepo := repository.NewDishRepository(pool, logger)
	cuisineRepo := repository.NewCuisineRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	tokens := auth.NewTokenManager("integration-secret", time.Hour)

	authService := service.NewAuthService(userRepo, tokens, logger)
	userService := service.NewUserService(userRepo, logger)
	restaurantService := service.NewRestaurantService(restaurantRepo, dishRepo, cuisineRepo, reviewRepo, orderRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	orderService := service.NewOrderService(orderRepo, dishRepo, userRepo, logger)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, time.Hour, logger),
		Restaurant: handler.NewRestaurantHandler(restaurantService, logger),
		Order:      handler.NewOrderHandler(orderService, restaurantService, logger),
		Review:     handler.NewReviewHandler(reviewService, restaurantService, logger),
		User:       handler.NewUserHandler(userService, logger),
	}

	server := httptest.NewServer(router.New(handlers, tokens, logger))

	t.Cleanup(func() {
		server.Close()
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	client := &http.Client{
		// Redirects are assertions in these tests, not plumbing.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &TestEnv{
		Server: server,
		Pool:   pool,
		Client: client,
	}
}

// applySchema creates the application tables and seed rows. Seed passwords
// are bcrypt hashes generated here so login flows work end to end.
func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE restaurant (
			restaurantid BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT,
			pricerange TEXT
		);

		CREATE TABLE cuisine (
			cuisineid BIGSERIAL PRIMARY KEY,
			cuisinename TEXT NOT NULL UNIQUE
		);

		CREATE TABLE restaurantcuisine (
			restaurantid BIGINT NOT NULL,
			cuisineid BIGINT NOT NULL,
			PRIMARY KEY (restaurantid, cuisineid),
			CONSTRAINT restaurantcuisine_restaurantid_fkey
				FOREIGN KEY (restaurantid) REFERENCES restaurant (restaurantid) ON DELETE CASCADE,
			CONSTRAINT restaurantcuisine_cuisineid_fkey
				FOREIGN KEY (cuisineid) REFERENCES cuisine (cuisineid) ON DELETE CASCADE
		);

		CREATE TABLE dish (
			dishid BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			ingredients TEXT,
			price NUMERIC(10, 2),
			restaurantid BIGINT NOT NULL,
			CONSTRAINT dish_restaurantid_fkey
				FOREIGN KEY (restaurantid) REFERENCES restaurant (restaurantid) ON DELETE CASCADE
		);

		CREATE TABLE users (
			userid BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('Admin', 'Cust'))
		);

		CREATE TABLE review (
			reviewid BIGSERIAL PRIMARY KEY,
			userid BIGINT NOT NULL,
			restaurantid BIGINT NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT,
			CONSTRAINT review_userid_fkey
				FOREIGN KEY (userid) REFERENCES users (userid) ON DELETE CASCADE,
			CONSTRAINT review_restaurantid_fkey
				FOREIGN KEY (restaurantid) REFERENCES restaurant (restaurantid) ON DELETE CASCADE
		);

		CREATE TABLE orders (
			orderid BIGSERIAL PRIMARY KEY,
			userid BIGINT NOT NULL,
			restaurantid BIGINT NOT NULL,
			date TIMESTAMPTZ NOT NULL DEFAULT now(),
			totalprice NUMERIC(10, 2) NOT NULL DEFAULT 0,
			CONSTRAINT orders_userid_fkey
				FOREIGN KEY (userid) REFERENCES users (userid) ON DELETE CASCADE,
			CONSTRAINT orders_restaurantid_fkey
				FOREIGN KEY (restaurantid) REFERENCES restaurant (restaurantid) ON DELETE CASCADE
		);

		CREATE TABLE orderitem (
			orderitemid BIGSERIAL PRIMARY KEY,
			orderid BIGINT NOT NULL,
			dishid BIGINT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price NUMERIC(10, 2) NOT NULL,
			CONSTRAINT orderitem_orderid_fkey
				FOREIGN KEY (orderid) REFERENCES orders (orderid) ON DELETE CASCADE,
			CONSTRAINT orderitem_dishid_fkey
				FOREIGN KEY (dishid) REFERENCES dish (dishid)
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	adminHash, err := auth.HashPassword("admin-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	custHash, err := auth.HashPassword("cust-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	users := `
		INSERT INTO users (name, username, password, role) VALUES
			('Ada Admin', 'ada', $1, 'Admin'),
			('Carl Customer', 'carl', $2, 'Cust')
	`
	if _, err := pool.Exec(ctx, users, adminHash, custHash); err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	fixtures := `
		INSERT INTO cuisine (cuisinename) VALUES
			('Italian'), ('Mexican');

		INSERT INTO restaurant (name, location, pricerange) VALUES
			('Taco Corner', 'Harlem', '$');

		INSERT INTO restaurantcuisine (restaurantid, cuisineid) VALUES (1, 2);

		INSERT INTO dish (name, ingredients, price, restaurantid) VALUES
			('Carne Asada Taco', 'beef, onion, cilantro', 4.50, 1),
			('Chicken Quesadilla', 'chicken, cheese, tortilla', 4.00, 1);
	`

	if _, err := pool.Exec(ctx, fixtures); err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}
}
