package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pzaichkin/taskdeck/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category. Returns ErrInvalidEntity if the owning
	// user does not exist.
	Create(ctx context.Context, category *domain.Category) error

	// UpdateTitle renames a category and returns its updated state.
	// Returns ErrCategoryNotFound if the category does not exist.
	UpdateTitle(ctx context.Context, id uuid.UUID, title domain.CategoryTitle) (*domain.Category, error)

	// Delete removes a category by ID. Returns ErrCategoryNotFound if the
	// category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns all categories owned by the user, empty slice if
	// none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)

	// GetByID retrieves a category by ID. Returns ErrCategoryNotFound if the
	// category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}
