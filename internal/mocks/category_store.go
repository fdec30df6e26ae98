package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, category *domain.Category) error
	UpdateTitleFn func(ctx context.Context, id uuid.UUID, title domain.CategoryTitle) (*domain.Category, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	ListByUserFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// Data for the default stateful implementation
	Categories map[uuid.UUID]*domain.Category
}

// Ensure MockCategoryStore implements store.CategoryStore
var _ store.CategoryStore = (*MockCategoryStore)(nil)

// NewMockCategoryStore creates a mock store with initialized state.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

// Create implements store.CategoryStore.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	m.Categories[category.ID] = category
	return nil
}

// UpdateTitle implements store.CategoryStore.
func (m *MockCategoryStore) UpdateTitle(ctx context.Context, id uuid.UUID, title domain.CategoryTitle) (*domain.Category, error) {
	if m.UpdateTitleFn != nil {
		return m.UpdateTitleFn(ctx, id, title)
	}
	category, ok := m.Categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	category.Title = title
	return category, nil
}

// Delete implements store.CategoryStore.
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// ListByUser implements store.CategoryStore.
func (m *MockCategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	result := []*domain.Category{}
	for _, category := range m.Categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

// GetByID implements store.CategoryStore.
func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	category, ok := m.Categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}
