package api

import "time"

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload represents the authenticated identity in responses.
type UserPayload struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// VerifyResponse represents a successful session verification.
type VerifyResponse struct {
	Success bool        `json:"success"`
	User    UserPayload `json:"user"`
}

// AuthErrorResponse is the failure shape for login and verify.
type AuthErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a plain message body, used for todo errors and
// delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness check body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// CreateTodoBody is the request body for creating a todo. Omitted fields
// take their defaults.
type CreateTodoBody struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
}

// UpdateTodoBody is the request body for updating a todo. Nil fields are
// left unchanged.
type UpdateTodoBody struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        *[]string  `json:"tags"`
}
