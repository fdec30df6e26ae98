package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	ExistsByEmailFn      func(ctx context.Context, email string) (bool, error)
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFn             func(ctx context.Context, user *domain.User, password domain.HashedPassword) error
	DeleteFn             func(ctx context.Context, id uuid.UUID) error
	CredentialsByEmailFn func(ctx context.Context, email string) (uuid.UUID, domain.HashedPassword, error)

	// Data for the default stateful implementation
	Users  map[uuid.UUID]*domain.User
	Hashes map[string]domain.HashedPassword // keyed by email
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store with initialized state.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[uuid.UUID]*domain.User),
		Hashes: make(map[string]domain.HashedPassword),
	}
}

// AddUser seeds the store with a reconstructed user and its stored hash.
func (m *MockUserStore) AddUser(user *domain.User, hash domain.HashedPassword) {
	m.Users[user.ID] = user
	m.Hashes[user.Email.String()] = hash
}

// ExistsByEmail implements store.UserStore.
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}
	for _, user := range m.Users {
		if user.Email.String() == email {
			return true, nil
		}
	}
	return false, nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User, password domain.HashedPassword) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user, password)
	}
	for _, existing := range m.Users {
		if existing.Email.String() == user.Email.String() {
			return store.ErrEmailExists
		}
	}
	m.Users[user.ID] = user
	m.Hashes[user.Email.String()] = password
	return nil
}

// Delete implements store.UserStore.
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	user, ok := m.Users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	delete(m.Hashes, user.Email.String())
	delete(m.Users, id)
	return nil
}

// CredentialsByEmail implements store.UserStore.
func (m *MockUserStore) CredentialsByEmail(ctx context.Context, email string) (uuid.UUID, domain.HashedPassword, error) {
	if m.CredentialsByEmailFn != nil {
		return m.CredentialsByEmailFn(ctx, email)
	}
	for id, user := range m.Users {
		if user.Email.String() == email {
			return id, m.Hashes[email], nil
		}
	}
	return uuid.Nil, domain.HashedPassword{}, store.ErrUserNotFound
}
