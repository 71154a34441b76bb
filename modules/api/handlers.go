package api

import (
	"log"
	"strings"
	"time"

	domain "github.com/example/todo-api/domain/user"
	"github.com/example/todo-api/modules/auth"
	"github.com/example/todo-api/modules/todo"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authPort auth.AuthPort
	todoPort todo.TodoPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.AuthPort, todoPort todo.TodoPort) *Handlers {
	return &Handlers{
		authPort: authPort,
		todoPort: todoPort,
	}
}

// Health handles GET /api/health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Login handles POST /api/login. Every credential failure produces the
// same 401 body; the client learns nothing about which part was wrong.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(AuthErrorResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	token, identity, err := h.authPort.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid email or password") {
			return c.Status(fiber.StatusUnauthorized).JSON(AuthErrorResponse{
				Success: false,
				Message: "Invalid email or password",
			})
		}
		log.Printf("[api] Login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(AuthErrorResponse{
			Success: false,
			Message: "An internal error occurred",
		})
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Success: true,
		Token:   token,
		User: UserPayload{
			Email: identity.Email,
			Role:  identity.Role,
		},
	})
}

// Verify handles GET /api/verify. Unlike the todo gate, both a missing
// and an invalid token answer 401 here.
func (h *Handlers) Verify(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(AuthErrorResponse{
			Success: false,
			Message: "No token provided",
		})
	}

	identity, err := h.authPort.ValidateToken(c.UserContext(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(AuthErrorResponse{
			Success: false,
			Message: "Invalid token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(VerifyResponse{
		Success: true,
		User: UserPayload{
			Email: identity.Email,
			Role:  identity.Role,
		},
	})
}

// ListTodos handles GET /api/todos.
func (h *Handlers) ListTodos(c *fiber.Ctx) error {
	identity := h.identityFromContext(c)
	if identity == nil {
		return unauthenticated(c)
	}

	todos, err := h.todoPort.ListTodos(c.UserContext(), identity.Email)
	if err != nil {
		return h.handleTodoError(c, err, "Error fetching todos")
	}

	return c.Status(fiber.StatusOK).JSON(todos)
}

// CreateTodo handles POST /api/todos.
func (h *Handlers) CreateTodo(c *fiber.Ctx) error {
	identity := h.identityFromContext(c)
	if identity == nil {
		return unauthenticated(c)
	}

	var body CreateTodoBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(body.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Title is required",
		})
	}

	created, err := h.todoPort.CreateTodo(c.UserContext(), &todo.CreateTodoRequest{
		UserID:      identity.Email,
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
		Tags:        body.Tags,
	})
	if err != nil {
		return h.handleTodoError(c, err, "Error creating todo")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateTodo handles PUT /api/todos/:id.
func (h *Handlers) UpdateTodo(c *fiber.Ctx) error {
	identity := h.identityFromContext(c)
	if identity == nil {
		return unauthenticated(c)
	}

	var body UpdateTodoBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Invalid request body",
		})
	}

	updated, err := h.todoPort.UpdateTodo(c.UserContext(), &todo.UpdateTodoRequest{
		UserID:      identity.Email,
		ID:          c.Params("id"),
		Title:       body.Title,
		Description: body.Description,
		Completed:   body.Completed,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
		Tags:        body.Tags,
	})
	if err != nil {
		return h.handleTodoError(c, err, "Error updating todo")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteTodo handles DELETE /api/todos/:id.
func (h *Handlers) DeleteTodo(c *fiber.Ctx) error {
	identity := h.identityFromContext(c)
	if identity == nil {
		return unauthenticated(c)
	}

	if err := h.todoPort.DeleteTodo(c.UserContext(), c.Params("id"), identity.Email); err != nil {
		return h.handleTodoError(c, err, "Error deleting todo")
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: "Todo deleted successfully",
	})
}

// ToggleTodo handles PATCH /api/todos/:id/toggle.
func (h *Handlers) ToggleTodo(c *fiber.Ctx) error {
	identity := h.identityFromContext(c)
	if identity == nil {
		return unauthenticated(c)
	}

	toggled, err := h.todoPort.ToggleTodo(c.UserContext(), c.Params("id"), identity.Email)
	if err != nil {
		return h.handleTodoError(c, err, "Error toggling todo")
	}

	return c.Status(fiber.StatusOK).JSON(toggled)
}

// identityFromContext returns the identity stored by AuthMiddleware.
func (h *Handlers) identityFromContext(c *fiber.Ctx) *domain.Identity {
	identity, _ := c.Locals(UserContextKey).(*domain.Identity)
	return identity
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
		Message: "Access token required",
	})
}

// handleTodoError translates todo service errors into HTTP responses.
// Errors cross the module boundary as strings, so known messages are
// matched the same way the services report them.
func (h *Handlers) handleTodoError(c *fiber.Ctx, err error, fallback string) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "todo not found"):
		return c.Status(fiber.StatusNotFound).JSON(MessageResponse{
			Message: "Todo not found",
		})
	case strings.Contains(errStr, "title is required"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Title is required",
		})
	case strings.Contains(errStr, "title must be"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Title must be 200 characters or fewer",
		})
	case strings.Contains(errStr, "description must be"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Description must be 1000 characters or fewer",
		})
	case strings.Contains(errStr, "invalid priority"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Message: "Priority must be low, medium, or high",
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] %s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
			Message: fallback,
		})
	}
}
