package todo

import (
	"time"
)

// Priority levels for a todo item.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Length limits enforced on create and update.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Todo represents a single todo item owned by one user. JSON field names
// follow the camelCase wire format consumed by the frontend.
type Todo struct {
	ID          string     `gorm:"primaryKey;type:text" json:"id"`
	UserID      string     `gorm:"index;not null;type:text" json:"userId"`
	Title       string     `gorm:"not null;size:200" json:"title"`
	Description string     `gorm:"size:1000" json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Priority    string     `gorm:"not null;default:medium" json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName returns the table name for the Todo entity.
func (Todo) TableName() string {
	return "todos"
}

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
