package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/example/todo-api/domain/todo"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

var (
	// ErrTitleRequired is returned when a todo has no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrTitleTooLong is returned when the title exceeds the length limit.
	ErrTitleTooLong = errors.New("title must be 200 characters or fewer")
	// ErrDescriptionTooLong is returned when the description exceeds the length limit.
	ErrDescriptionTooLong = errors.New("description must be 1000 characters or fewer")
	// ErrInvalidPriority is returned when the priority is not a known level.
	ErrInvalidPriority = errors.New("invalid priority")
)

// createTodo handles the create-todo service request.
func (m *TodoModule) createTodo(_ context.Context, req CreateTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return TodoResponse{}, err
	}

	description := strings.TrimSpace(req.Description)
	if len(description) > domain.MaxDescriptionLength {
		return TodoResponse{}, ErrDescriptionTooLong
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return TodoResponse{}, ErrInvalidPriority
	}

	now := time.Now()
	item := &domain.Todo{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    priority,
		DueDate:     req.DueDate,
		Tags:        trimTags(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.repo.Create(item); err != nil {
		return TodoResponse{}, fmt.Errorf("failed to save todo: %w", err)
	}

	return toTodoResponse(item), nil
}

// listTodos handles the list-todos service request.
func (m *TodoModule) listTodos(_ context.Context, req ListTodosRequest, _ *mono.Msg) (ListTodosResponse, error) {
	todos, err := m.repo.FindAllByUser(req.UserID)
	if err != nil {
		return ListTodosResponse{}, err
	}

	response := ListTodosResponse{
		Todos: make([]TodoResponse, 0, len(todos)),
		Total: len(todos),
	}

	for _, item := range todos {
		response.Todos = append(response.Todos, toTodoResponse(item))
	}

	return response, nil
}

// updateTodo handles the update-todo service request. Only non-nil fields
// are applied; the same constraints as create are re-checked. The owner
// is taken from the caller's identity and can never be changed.
func (m *TodoModule) updateTodo(_ context.Context, req UpdateTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	item, err := m.repo.FindByIDAndUser(req.ID, req.UserID)
	if err != nil {
		return TodoResponse{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := validateTitle(title); err != nil {
			return TodoResponse{}, err
		}
		item.Title = title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if len(description) > domain.MaxDescriptionLength {
			return TodoResponse{}, ErrDescriptionTooLong
		}
		item.Description = description
	}
	if req.Completed != nil {
		item.Completed = *req.Completed
	}
	if req.Priority != nil {
		if !domain.ValidPriority(*req.Priority) {
			return TodoResponse{}, ErrInvalidPriority
		}
		item.Priority = *req.Priority
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Tags != nil {
		item.Tags = trimTags(*req.Tags)
	}
	item.UpdatedAt = time.Now()

	if err := m.repo.Save(item); err != nil {
		return TodoResponse{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return toTodoResponse(item), nil
}

// deleteTodo handles the delete-todo service request.
func (m *TodoModule) deleteTodo(_ context.Context, req DeleteTodoRequest, _ *mono.Msg) (DeleteTodoResponse, error) {
	if err := m.repo.DeleteByIDAndUser(req.ID, req.UserID); err != nil {
		return DeleteTodoResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteTodoResponse{Deleted: true, ID: req.ID}, nil
}

// toggleTodo handles the toggle-todo service request. Each call is a
// strict negation: two toggles return the todo to its original state.
func (m *TodoModule) toggleTodo(_ context.Context, req ToggleTodoRequest, _ *mono.Msg) (TodoResponse, error) {
	item, err := m.repo.FindByIDAndUser(req.ID, req.UserID)
	if err != nil {
		return TodoResponse{}, err
	}

	item.Completed = !item.Completed
	item.UpdatedAt = time.Now()

	if err := m.repo.Save(item); err != nil {
		return TodoResponse{}, fmt.Errorf("failed to toggle todo: %w", err)
	}

	return toTodoResponse(item), nil
}

// validateTitle enforces the title constraints shared by create and update.
func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > domain.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// trimTags trims whitespace from each tag; order and duplicates are kept.
func trimTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	trimmed := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed = append(trimmed, strings.TrimSpace(tag))
	}
	return trimmed
}

// toTodoResponse converts a Todo entity to a TodoResponse.
func toTodoResponse(item *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		Title:       item.Title,
		Description: item.Description,
		Completed:   item.Completed,
		Priority:    item.Priority,
		DueDate:     item.DueDate,
		Tags:        item.Tags,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
