package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pzaichkin/taskdeck/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// ExistsByEmail reports whether a user with the given email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetByID retrieves a user by ID, reconstructed with their stored
	// password hash. Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// Create saves a new user. The password is passed separately as a
	// HashedPassword so that a plaintext password can never reach storage.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User, password domain.HashedPassword) error

	// Delete removes a user by ID. Dependent categories and tasks are
	// removed by the schema's cascade rules. Returns ErrUserNotFound if the
	// user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CredentialsByEmail returns the ID and stored password hash of the user
	// with the given email. Returns ErrUserNotFound if no such user exists.
	CredentialsByEmail(ctx context.Context, email string) (uuid.UUID, domain.HashedPassword, error)
}
