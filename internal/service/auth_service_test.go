package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceWithMocks(t *testing.T) (AuthService, *MockUserRepository, *auth.TokenManager) {
	t.Helper()
	userRepo := new(MockUserRepository)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	service := NewAuthService(userRepo, tokens, zerolog.Nop())
	return service, userRepo, tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	service, userRepo, tokens := newAuthServiceWithMocks(t)

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	userRepo.On("GetByUsername", ctx, "carl").Return(&model.User{
		ID:       7,
		Name:     "Carl Customer",
		Username: "carl",
		Password: hash,
		Role:     model.RoleCust,
	}, nil)

	user, token, err := service.Login(ctx, "carl", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "carl", user.Username)

	// The token carries the authenticated identity.
	session, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "carl", session.Username)
	assert.Equal(t, model.RoleCust, session.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _ := newAuthServiceWithMocks(t)

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	userRepo.On("GetByUsername", ctx, "carl").Return(&model.User{
		ID:       7,
		Username: "carl",
		Password: hash,
		Role:     model.RoleCust,
	}, nil)

	user, token, err := service.Login(ctx, "carl", "wrong")
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _ := newAuthServiceWithMocks(t)

	userRepo.On("GetByUsername", ctx, "nobody").Return(nil, nil)

	user, token, err := service.Login(ctx, "nobody", "anything")
	assert.Nil(t, user)
	assert.Empty(t, token)
	// Unknown usernames and wrong passwords are indistinguishable.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _ := newAuthServiceWithMocks(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "Empty username", username: "", password: "hunter2"},
		{name: "Empty password", username: "carl", password: ""},
		{name: "Both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := service.Login(ctx, tt.username, tt.password)
			assert.Nil(t, user)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}

	userRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _ := newAuthServiceWithMocks(t)

	userRepo.On("GetByUsername", ctx, "carl").Return(nil, errors.New("connection refused"))

	user, token, err := service.Login(ctx, "carl", "hunter2")
	assert.Nil(t, user)
	assert.Empty(t, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}
