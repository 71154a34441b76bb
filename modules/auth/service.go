package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	domain "github.com/example/todo-api/domain/user"
)

// ErrInvalidCredentials is returned when login credentials are invalid.
// The same error covers an unknown email and a wrong password so the two
// cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles authentication against the fixed administrator identity.
type Service struct {
	config Config
	tokens *TokenManager
}

// NewService creates a new Service.
func NewService(config Config, tokens *TokenManager) *Service {
	return &Service{
		config: config,
		tokens: tokens,
	}
}

// Login checks the submitted email/password pair against the configured
// administrator credentials and returns a signed session token on success.
func (s *Service) Login(_ context.Context, email, password string) (string, *domain.Identity, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.config.AdminEmail)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.AdminPassword)) == 1
	if !emailMatch || !passwordMatch {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(s.config.AdminEmail, domain.RoleAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, &domain.Identity{
		Email: s.config.AdminEmail,
		Role:  domain.RoleAdmin,
	}, nil
}

// ValidateToken validates a session token and returns the embedded identity.
func (s *Service) ValidateToken(_ context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	return &domain.Identity{
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
