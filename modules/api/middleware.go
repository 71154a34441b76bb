package api

import (
	"strings"

	"github.com/example/todo-api/modules/auth"
	"github.com/gofiber/fiber/v2"
)

const (
	// UserContextKey is the key used to store the authenticated identity
	// in the Fiber context.
	UserContextKey = "user"
)

// AuthMiddleware creates a middleware that gates protected routes. An
// absent token and an invalid one are signalled differently: 401 tells
// the client to log in, 403 tells it the session is no longer good and a
// re-login is required.
func AuthMiddleware(authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fiber trims trailing whitespace from header values, so a bare
		// "Bearer " scheme arrives as "Bearer" and counts as absent.
		authHeader := c.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Message: "Access token required",
			})
		}

		identity, err := authPort.ValidateToken(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(MessageResponse{
				Message: "Invalid or expired token",
			})
		}

		c.Locals(UserContextKey, identity)

		return c.Next()
	}
}
