package service

import (
	"context"
	"fmt"

	"github.com/laurenrich/4111-Database-Project/internal/auth"
	"github.com/laurenrich/4111-Database-Project/internal/model"
	"github.com/laurenrich/4111-Database-Project/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login authenticates a user and returns a signed session token. Unknown
// usernames burn a dummy bcrypt comparison so the failure path takes the
// same time either way.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if username == "" || password == "" {
		return nil, "", model.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to look up user")
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		auth.VerifyDummy(password)
		s.logger.Warn().Str("username", username).Msg("login attempt for unknown username")
		return nil, "", model.ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		s.logger.Warn().Str("username", username).Msg("login attempt with wrong password")
		return nil, "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to issue session token")
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("user logged in")

	return user, token, nil
}
