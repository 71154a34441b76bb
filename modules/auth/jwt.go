package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the token is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// Config holds token signing settings and the fixed administrator
// credentials. There is no user database; the admin identity is plain
// configuration.
type Config struct {
	SecretKey     string
	TokenDuration time.Duration
	Issuer        string
	AdminEmail    string
	AdminPassword string
}

// DefaultConfig returns a default configuration.
// In production, all values should be loaded from environment variables.
func DefaultConfig() Config {
	return Config{
		SecretKey:     "your-secret-key",
		TokenDuration: 24 * time.Hour,
		Issuer:        "todo-api",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
	}
}

// Claims represents the custom claims carried by a session token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates session tokens.
type TokenManager struct {
	config Config
}

// NewTokenManager creates a new TokenManager with the given configuration.
func NewTokenManager(config Config) *TokenManager {
	return &TokenManager{
		config: config,
	}
}

// Generate creates a new session token for the given identity. The token
// is valid for the configured duration; there is no refresh mechanism, so
// expiry requires a fresh login.
func (m *TokenManager) Generate(email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

// Validate checks the token signature and expiry and returns the claims
// if valid.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(m.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
