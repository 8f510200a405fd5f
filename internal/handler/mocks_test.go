package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/middleware"
	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockRestaurantService is a mock implementation of RestaurantService.
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) List(ctx context.Context, filter model.RestaurantFilter) ([]model.Restaurant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetDetails(ctx context.Context, id int64) (*model.RestaurantDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RestaurantDetails), args.Error(1)
}

func (m *MockRestaurantService) Create(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) AddDish(ctx context.Context, restaurantID int64, req *model.CreateDishRequest) (*model.Dish, error) {
	args := m.Called(ctx, restaurantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockRestaurantService) ListDishes(ctx context.Context) ([]model.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockRestaurantService) DishesFor(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockRestaurantService) ListCuisines(ctx context.Context) ([]model.Cuisine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cuisine), args.Error(1)
}

// MockReviewService is a mock implementation of ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, userID, restaurantID int64, req *model.CreateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, userID, restaurantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) List(ctx context.Context) ([]model.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, userID, restaurantID int64, req *model.CreateOrderRequest) (*model.OrderDetails, error) {
	args := m.Called(ctx, userID, restaurantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetails), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDetails), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// withURLParam attaches a chi route parameter to the request.
func withURLParam(r *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// serveWithSession runs the handler behind the session middleware with a
// freshly minted cookie for the given identity.
func serveWithSession(t *testing.T, h http.HandlerFunc, r *http.Request, session auth.Session) *httptest.ResponseRecorder {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue(session)
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	w := httptest.NewRecorder()
	middleware.Sessions(tokens, zerolog.Nop())(h).ServeHTTP(w, r)
	return w
}
