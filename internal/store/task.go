package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pzaichkin/taskdeck/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task. Returns ErrInvalidEntity if the owning user
	// or referenced category does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID. Returns ErrTaskNotFound if the task does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Update replaces a task's category, name, and deadline.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, name domain.TaskName, deadline *time.Time) error

	// ChangeCategory reassigns a task to the given category.
	// Returns ErrTaskNotFound if the task does not exist.
	ChangeCategory(ctx context.Context, id, categoryID uuid.UUID) error

	// Complete marks a task complete. Returns ErrTaskNotFound if the task
	// does not exist.
	Complete(ctx context.Context, id uuid.UUID) error

	// Uncomplete marks a task not complete. Returns ErrTaskNotFound if the
	// task does not exist.
	Uncomplete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns all tasks owned by the user, empty slice if none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// ListByUserAndCategory returns the user's tasks in the given category,
	// empty slice if none.
	ListByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]*domain.Task, error)

	// GetByID retrieves a task by ID. Returns ErrTaskNotFound if the task
	// does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}
