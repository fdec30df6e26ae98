package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// CreateCategory creates a category for a user.
type CreateCategory struct {
	UserID uuid.UUID
	Title  string
}

// CreateCategoryHandler handles CreateCategory. It returns the created
// *domain.Category.
type CreateCategoryHandler struct {
	categories store.CategoryStore
	users      store.UserStore
	events     EventPublisher
}

// NewCreateCategoryHandler creates a CreateCategoryHandler with its
// dependencies.
func NewCreateCategoryHandler(
	categories store.CategoryStore,
	users store.UserStore,
	events EventPublisher,
) *CreateCategoryHandler {
	return &CreateCategoryHandler{categories: categories, users: users, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *CreateCategoryHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(CreateCategory)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	user, err := h.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrUserNotFound, cmd.UserID)
		}
		return nil, err
	}

	title, err := domain.NewCategoryTitle(cmd.Title)
	if err != nil {
		return nil, err
	}

	category := domain.NewCategory(cmd.UserID, title)
	user.AddCategory(category)

	if err := h.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, user); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category.
type UpdateCategory struct {
	CategoryID uuid.UUID
	NewTitle   string
}

// UpdateCategoryHandler handles UpdateCategory. It returns the updated
// *domain.Category.
type UpdateCategoryHandler struct {
	categories store.CategoryStore
	events     EventPublisher
}

// NewUpdateCategoryHandler creates an UpdateCategoryHandler with its
// dependencies.
func NewUpdateCategoryHandler(categories store.CategoryStore, events EventPublisher) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{categories: categories, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *UpdateCategoryHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(UpdateCategory)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	title, err := domain.NewCategoryTitle(cmd.NewTitle)
	if err != nil {
		return nil, err
	}

	category, err := h.categories.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, cmd.CategoryID)
		}
		return nil, err
	}
	category.UpdateTitle(title)

	updated, err := h.categories.UpdateTitle(ctx, cmd.CategoryID, title)
	if err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, category); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category from storage.
type DeleteCategory struct {
	CategoryID uuid.UUID
}

// DeleteCategoryHandler handles DeleteCategory. It returns a nil result.
type DeleteCategoryHandler struct {
	categories store.CategoryStore
	events     EventPublisher
}

// NewDeleteCategoryHandler creates a DeleteCategoryHandler with its
// dependencies.
func NewDeleteCategoryHandler(categories store.CategoryStore, events EventPublisher) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(DeleteCategory)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	category, err := h.categories.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, cmd.CategoryID)
		}
		return nil, err
	}

	category.Delete()
	if err := h.categories.Delete(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, category); err != nil {
		return nil, err
	}
	return nil, nil
}

// GetAllCategories lists a user's categories.
type GetAllCategories struct {
	UserID uuid.UUID
}

// GetAllCategoriesHandler handles GetAllCategories. It returns
// []*domain.Category, empty if the user has none.
type GetAllCategoriesHandler struct {
	categories store.CategoryStore
	users      store.UserStore
}

// NewGetAllCategoriesHandler creates a GetAllCategoriesHandler with its
// dependencies.
func NewGetAllCategoriesHandler(categories store.CategoryStore, users store.UserStore) *GetAllCategoriesHandler {
	return &GetAllCategoriesHandler{categories: categories, users: users}
}

// Handle implements mediator.CommandHandler.
func (h *GetAllCategoriesHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(GetAllCategories)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	if _, err := h.users.GetByID(ctx, cmd.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrUserNotFound, cmd.UserID)
		}
		return nil, err
	}

	categories, err := h.categories.ListByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return categories, nil
}
