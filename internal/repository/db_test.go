package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, applies the schema and seeds
// fixture rows all repository tests share.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("eatery_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	createSchema(t, pool)
	seedFixtures(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return pool
}

func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

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

	_, err := pool.Exec(context.Background(), schema)
	require.NoError(t, err)
}

func seedFixtures(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	fixtures := `
		INSERT INTO users (name, username, password, role) VALUES
			('Ada Admin', 'ada', 'x', 'Admin'),
			('Carl Customer', 'carl', 'x', 'Cust');

		INSERT INTO cuisine (cuisinename) VALUES
			('Italian'), ('Japanese'), ('Mexican');

		INSERT INTO restaurant (name, location, pricerange) VALUES
			('Bella Pasta', 'Morningside Heights', '$$'),
			('Sakura Sushi', 'Midtown', '$$$'),
			('Taco Corner', NULL, NULL);

		INSERT INTO restaurantcuisine (restaurantid, cuisineid) VALUES
			(1, 1), (2, 2), (3, 3);

		INSERT INTO dish (name, ingredients, price, restaurantid) VALUES
			('Spaghetti Carbonara', 'pasta, egg, guanciale', 16.50, 1),
			('Margherita Pizza', NULL, 14.00, 1),
			('Salmon Nigiri', 'salmon, rice', 6.50, 2),
			('Mystery Special', NULL, NULL, 3);
	`

	_, err := pool.Exec(context.Background(), fixtures)
	require.NoError(t, err)
}
