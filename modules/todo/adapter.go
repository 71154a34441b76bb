package todo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TodoPort defines the interface other modules use to access todo storage.
// Every operation is scoped to the given owner.
type TodoPort interface {
	ListTodos(ctx context.Context, userID string) ([]TodoResponse, error)
	CreateTodo(ctx context.Context, req *CreateTodoRequest) (*TodoResponse, error)
	UpdateTodo(ctx context.Context, req *UpdateTodoRequest) (*TodoResponse, error)
	DeleteTodo(ctx context.Context, id, userID string) error
	ToggleTodo(ctx context.Context, id, userID string) (*TodoResponse, error)
}

// TodoAdapter implements TodoPort using the service container.
type TodoAdapter struct {
	container mono.ServiceContainer
}

// NewTodoAdapter creates a new TodoAdapter.
func NewTodoAdapter(container mono.ServiceContainer) *TodoAdapter {
	return &TodoAdapter{
		container: container,
	}
}

// ListTodos lists the owner's todos, newest first.
func (a *TodoAdapter) ListTodos(ctx context.Context, userID string) ([]TodoResponse, error) {
	req := ListTodosRequest{UserID: userID}
	var resp ListTodosResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-todos",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-todos request failed: %w", err)
	}

	if resp.Todos == nil {
		resp.Todos = []TodoResponse{}
	}
	return resp.Todos, nil
}

// CreateTodo creates a new todo owned by the caller.
func (a *TodoAdapter) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*TodoResponse, error) {
	var resp TodoResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-todo",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("create-todo request failed: %w", err)
	}

	return &resp, nil
}

// UpdateTodo applies a partial update to an owned todo.
func (a *TodoAdapter) UpdateTodo(ctx context.Context, req *UpdateTodoRequest) (*TodoResponse, error) {
	var resp TodoResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-todo",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("update-todo request failed: %w", err)
	}

	return &resp, nil
}

// DeleteTodo removes an owned todo.
func (a *TodoAdapter) DeleteTodo(ctx context.Context, id, userID string) error {
	req := DeleteTodoRequest{ID: id, UserID: userID}
	var resp DeleteTodoResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-todo",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("delete-todo request failed: %w", err)
	}

	return nil
}

// ToggleTodo flips the completion state of an owned todo.
func (a *TodoAdapter) ToggleTodo(ctx context.Context, id, userID string) (*TodoResponse, error) {
	req := ToggleTodoRequest{ID: id, UserID: userID}
	var resp TodoResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"toggle-todo",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("toggle-todo request failed: %w", err)
	}

	return &resp, nil
}
