package todo

import "time"

// ListTodosRequest represents a list request for one owner's todos.
type ListTodosRequest struct {
	UserID string `json:"userId"`
}

// ListTodosResponse represents a list of todos, newest first.
type ListTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

// CreateTodoRequest represents a create request.
type CreateTodoRequest struct {
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
}

// UpdateTodoRequest represents a partial update. Nil fields are left
// unchanged.
type UpdateTodoRequest struct {
	UserID      string     `json:"userId"`
	ID          string     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        *[]string  `json:"tags"`
}

// DeleteTodoRequest represents a delete request.
type DeleteTodoRequest struct {
	UserID string `json:"userId"`
	ID     string `json:"id"`
}

// DeleteTodoResponse represents a delete response.
type DeleteTodoResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// ToggleTodoRequest represents a completion toggle request.
type ToggleTodoRequest struct {
	UserID string `json:"userId"`
	ID     string `json:"id"`
}

// TodoResponse is the wire representation of a todo item.
type TodoResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
