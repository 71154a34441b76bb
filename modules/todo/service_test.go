package todo

import (
	"context"
	"strings"
	"testing"
	"time"

	domain "github.com/example/todo-api/domain/todo"
)

// setupTestModule builds a TodoModule backed by an in-memory database.
func setupTestModule(t *testing.T) *TodoModule {
	t.Helper()

	db := setupTestDB(t)
	return &TodoModule{
		db:   db,
		repo: NewRepository(db),
	}
}

func TestCreateTodo_Defaults(t *testing.T) {
	m := setupTestModule(t)

	resp, err := m.createTodo(context.Background(), CreateTodoRequest{
		UserID: "admin@example.com",
		Title:  "Buy milk",
	}, nil)
	if err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	if resp.ID == "" {
		t.Error("created todo has no id")
	}
	if resp.UserID != "admin@example.com" {
		t.Errorf("UserID = %q, want %q", resp.UserID, "admin@example.com")
	}
	if resp.Completed {
		t.Error("new todo should start incomplete")
	}
	if resp.Priority != domain.PriorityMedium {
		t.Errorf("Priority = %q, want %q", resp.Priority, domain.PriorityMedium)
	}
	if resp.CreatedAt.IsZero() || resp.UpdatedAt.IsZero() {
		t.Error("timestamps should be set at creation")
	}
}

func TestCreateTodo_Validation(t *testing.T) {
	m := setupTestModule(t)

	tests := []struct {
		name    string
		req     CreateTodoRequest
		wantErr error
	}{
		{
			name:    "missing title",
			req:     CreateTodoRequest{UserID: "admin@example.com"},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "whitespace title",
			req:     CreateTodoRequest{UserID: "admin@example.com", Title: "   "},
			wantErr: ErrTitleRequired,
		},
		{
			name: "title too long",
			req: CreateTodoRequest{
				UserID: "admin@example.com",
				Title:  strings.Repeat("x", domain.MaxTitleLength+1),
			},
			wantErr: ErrTitleTooLong,
		},
		{
			name: "description too long",
			req: CreateTodoRequest{
				UserID:      "admin@example.com",
				Title:       "ok",
				Description: strings.Repeat("x", domain.MaxDescriptionLength+1),
			},
			wantErr: ErrDescriptionTooLong,
		},
		{
			name: "unknown priority",
			req: CreateTodoRequest{
				UserID:   "admin@example.com",
				Title:    "ok",
				Priority: "urgent",
			},
			wantErr: ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.createTodo(context.Background(), tt.req, nil)
			if err != tt.wantErr {
				t.Errorf("createTodo() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateTodo_TrimsFields(t *testing.T) {
	m := setupTestModule(t)

	due := time.Now().Add(48 * time.Hour)
	resp, err := m.createTodo(context.Background(), CreateTodoRequest{
		UserID:      "admin@example.com",
		Title:       "  Buy milk  ",
		Description: "  from the corner shop  ",
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
		Tags:        []string{" errands ", "shopping"},
	}, nil)
	if err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	if resp.Title != "Buy milk" {
		t.Errorf("Title = %q, want trimmed", resp.Title)
	}
	if resp.Description != "from the corner shop" {
		t.Errorf("Description = %q, want trimmed", resp.Description)
	}
	if resp.Tags[0] != "errands" {
		t.Errorf("Tags[0] = %q, want trimmed", resp.Tags[0])
	}
	if resp.DueDate == nil {
		t.Error("DueDate should be preserved")
	}
}

func TestListTodos_OwnerScoped(t *testing.T) {
	m := setupTestModule(t)
	ctx := context.Background()

	if _, err := m.createTodo(ctx, CreateTodoRequest{UserID: "admin@example.com", Title: "Mine"}, nil); err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}
	if _, err := m.createTodo(ctx, CreateTodoRequest{UserID: "other@example.com", Title: "Theirs"}, nil); err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	resp, err := m.listTodos(ctx, ListTodosRequest{UserID: "admin@example.com"}, nil)
	if err != nil {
		t.Fatalf("listTodos() error = %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Total = %d, want 1", resp.Total)
	}
	if resp.Todos[0].Title != "Mine" {
		t.Errorf("Title = %q, want %q", resp.Todos[0].Title, "Mine")
	}
}

func TestUpdateTodo(t *testing.T) {
	m := setupTestModule(t)
	ctx := context.Background()

	created, err := m.createTodo(ctx, CreateTodoRequest{UserID: "admin@example.com", Title: "Before"}, nil)
	if err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	t.Run("partial update", func(t *testing.T) {
		title := "After"
		completed := true
		resp, err := m.updateTodo(ctx, UpdateTodoRequest{
			UserID:    "admin@example.com",
			ID:        created.ID,
			Title:     &title,
			Completed: &completed,
		}, nil)
		if err != nil {
			t.Fatalf("updateTodo() error = %v", err)
		}
		if resp.Title != "After" {
			t.Errorf("Title = %q, want %q", resp.Title, "After")
		}
		if !resp.Completed {
			t.Error("Completed should be true")
		}
		// Untouched fields survive a partial update.
		if resp.Priority != domain.PriorityMedium {
			t.Errorf("Priority = %q, want unchanged", resp.Priority)
		}
		if !resp.UpdatedAt.After(created.UpdatedAt) {
			t.Error("UpdatedAt should be refreshed on mutation")
		}
	})

	t.Run("owner cannot change", func(t *testing.T) {
		resp, err := m.updateTodo(ctx, UpdateTodoRequest{
			UserID: "admin@example.com",
			ID:     created.ID,
		}, nil)
		if err != nil {
			t.Fatalf("updateTodo() error = %v", err)
		}
		if resp.UserID != "admin@example.com" {
			t.Errorf("UserID = %q, want unchanged", resp.UserID)
		}
	})

	t.Run("validation applies on update", func(t *testing.T) {
		empty := ""
		_, err := m.updateTodo(ctx, UpdateTodoRequest{
			UserID: "admin@example.com",
			ID:     created.ID,
			Title:  &empty,
		}, nil)
		if err != ErrTitleRequired {
			t.Errorf("updateTodo() error = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("foreign owner gets not found", func(t *testing.T) {
		title := "Hijack"
		_, err := m.updateTodo(ctx, UpdateTodoRequest{
			UserID: "other@example.com",
			ID:     created.ID,
			Title:  &title,
		}, nil)
		if err != ErrNotFound {
			t.Errorf("updateTodo() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("nonexistent id gets not found", func(t *testing.T) {
		_, err := m.updateTodo(ctx, UpdateTodoRequest{
			UserID: "admin@example.com",
			ID:     "no-such-id",
		}, nil)
		if err != ErrNotFound {
			t.Errorf("updateTodo() error = %v, want ErrNotFound", err)
		}
	})
}

func TestToggleTodo_FlipSemantics(t *testing.T) {
	m := setupTestModule(t)
	ctx := context.Background()

	created, err := m.createTodo(ctx, CreateTodoRequest{UserID: "admin@example.com", Title: "Flip me"}, nil)
	if err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	first, err := m.toggleTodo(ctx, ToggleTodoRequest{UserID: "admin@example.com", ID: created.ID}, nil)
	if err != nil {
		t.Fatalf("toggleTodo() error = %v", err)
	}
	if !first.Completed {
		t.Error("first toggle should complete the todo")
	}

	// Toggle is a strict negation, not idempotent: a second call returns
	// the todo to its original state.
	second, err := m.toggleTodo(ctx, ToggleTodoRequest{UserID: "admin@example.com", ID: created.ID}, nil)
	if err != nil {
		t.Fatalf("toggleTodo() error = %v", err)
	}
	if second.Completed {
		t.Error("second toggle should revert to incomplete")
	}
}

func TestToggleTodo_NotFound(t *testing.T) {
	m := setupTestModule(t)
	ctx := context.Background()

	created, err := m.createTodo(ctx, CreateTodoRequest{UserID: "admin@example.com", Title: "Mine"}, nil)
	if err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	if _, err := m.toggleTodo(ctx, ToggleTodoRequest{UserID: "other@example.com", ID: created.ID}, nil); err != ErrNotFound {
		t.Errorf("toggleTodo() error = %v, want ErrNotFound", err)
	}
	if _, err := m.toggleTodo(ctx, ToggleTodoRequest{UserID: "admin@example.com", ID: "no-such-id"}, nil); err != ErrNotFound {
		t.Errorf("toggleTodo() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTodo(t *testing.T) {
	m := setupTestModule(t)
	ctx := context.Background()

	created, err := m.createTodo(ctx, CreateTodoRequest{UserID: "admin@example.com", Title: "Delete me"}, nil)
	if err != nil {
		t.Fatalf("createTodo() error = %v", err)
	}

	resp, err := m.deleteTodo(ctx, DeleteTodoRequest{UserID: "admin@example.com", ID: created.ID}, nil)
	if err != nil {
		t.Fatalf("deleteTodo() error = %v", err)
	}
	if !resp.Deleted {
		t.Error("expected Deleted = true")
	}

	if _, err := m.deleteTodo(ctx, DeleteTodoRequest{UserID: "admin@example.com", ID: created.ID}, nil); err != ErrNotFound {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
