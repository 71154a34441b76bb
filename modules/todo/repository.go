package todo

import (
	"errors"
	"fmt"

	domain "github.com/example/todo-api/domain/todo"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no todo matches both the id and the owner.
// A todo owned by someone else is indistinguishable from a nonexistent one.
var ErrNotFound = errors.New("todo not found")

// Repository provides access to todo storage. Every lookup is scoped by
// owner; there is no cross-owner query.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new todo repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new todo to the database.
func (r *Repository) Create(item *domain.Todo) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

// FindAllByUser retrieves all todos owned by userID, newest first.
func (r *Repository) FindAllByUser(userID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find todos: %w", err)
	}
	return todos, nil
}

// FindByIDAndUser retrieves a todo matching both id and owner.
func (r *Repository) FindByIDAndUser(id, userID string) (*domain.Todo, error) {
	var item domain.Todo
	err := r.db.First(&item, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return &item, nil
}

// Save writes back all fields of an existing todo. Concurrent writers on
// the same id race with last-writer-wins semantics; there is no version
// check.
func (r *Repository) Save(item *domain.Todo) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to save todo: %w", err)
	}
	return nil
}

// DeleteByIDAndUser removes a todo matching both id and owner.
func (r *Repository) DeleteByIDAndUser(id, userID string) error {
	result := r.db.Delete(&domain.Todo{}, "id = ? AND user_id = ?", id, userID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
