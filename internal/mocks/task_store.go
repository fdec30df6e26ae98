package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn                func(ctx context.Context, task *domain.Task) error
	DeleteFn                func(ctx context.Context, id uuid.UUID) error
	UpdateFn                func(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, name domain.TaskName, deadline *time.Time) error
	ChangeCategoryFn        func(ctx context.Context, id, categoryID uuid.UUID) error
	CompleteFn              func(ctx context.Context, id uuid.UUID) error
	UncompleteFn            func(ctx context.Context, id uuid.UUID) error
	ListByUserFn            func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	ListByUserAndCategoryFn func(ctx context.Context, userID, categoryID uuid.UUID) ([]*domain.Task, error)
	GetByIDFn               func(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Data for the default stateful implementation
	Tasks map[uuid.UUID]*domain.Task

	// Writes counts mutating calls, letting tests assert that a failed
	// precondition performed no persistence write.
	Writes int
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store with initialized state.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	m.Writes++
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements store.TaskStore.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	m.Writes++
	delete(m.Tasks, id)
	return nil
}

// Update implements store.TaskStore.
func (m *MockTaskStore) Update(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, name domain.TaskName, deadline *time.Time) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, categoryID, name, deadline)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	m.Writes++
	task.Name = name
	task.Deadline = deadline
	task.CategoryID = categoryID
	return nil
}

// ChangeCategory implements store.TaskStore.
func (m *MockTaskStore) ChangeCategory(ctx context.Context, id, categoryID uuid.UUID) error {
	if m.ChangeCategoryFn != nil {
		return m.ChangeCategoryFn(ctx, id, categoryID)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	m.Writes++
	cid := categoryID
	task.CategoryID = &cid
	return nil
}

// Complete implements store.TaskStore.
func (m *MockTaskStore) Complete(ctx context.Context, id uuid.UUID) error {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, id)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	m.Writes++
	task.IsComplete = true
	return nil
}

// Uncomplete implements store.TaskStore.
func (m *MockTaskStore) Uncomplete(ctx context.Context, id uuid.UUID) error {
	if m.UncompleteFn != nil {
		return m.UncompleteFn(ctx, id)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	m.Writes++
	task.IsComplete = false
	return nil
}

// ListByUser implements store.TaskStore.
func (m *MockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	result := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

// ListByUserAndCategory implements store.TaskStore.
func (m *MockTaskStore) ListByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserAndCategoryFn != nil {
		return m.ListByUserAndCategoryFn(ctx, userID, categoryID)
	}
	result := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.UserID == userID && task.CategoryID != nil && *task.CategoryID == categoryID {
			result = append(result, task)
		}
	}
	return result, nil
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}
