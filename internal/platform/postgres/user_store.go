package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/platform/logger"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		log.Error("failed to check email existence",
			slog.String("error", err.Error()))
		return false, err
	}
	return exists, nil
}

// Create implements store.UserStore.Create
// It saves a new user together with their hashed password.
// Returns store.ErrEmailExists if the email address is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User, password domain.HashedPassword) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO users (id, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email.String(),
		password.String(),
		now,
		now,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique violation during user creation",
				slog.String("user_id", user.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// It retrieves a user by their unique ID, reconstructed with the stored
// password hash. Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.String("user_id", id.String()))

	query := `
		SELECT id, email, hashed_password
		FROM users
		WHERE id = $1
	`

	var (
		userID   uuid.UUID
		rawEmail string
		rawHash  string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&userID, &rawEmail, &rawHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		log.Error("stored email failed validation",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, fmt.Errorf("invalid stored email for user %s: %w", id, err)
	}

	return domain.ReconstructUser(userID, email, domain.NewHashedPassword(rawHash)), nil
}

// Delete implements store.UserStore.Delete
// It removes a user by ID. Dependent categories and tasks are removed by the
// schema's ON DELETE CASCADE rules.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		log.Debug("user not found for delete", slog.String("user_id", id.String()))
		return err
	}

	log.Info("user deleted successfully",
		slog.String("user_id", id.String()))
	return nil
}

// CredentialsByEmail implements store.UserStore.CredentialsByEmail
// It returns the ID and stored password hash of the user with the given
// email, for sign-in verification.
// Returns store.ErrUserNotFound if no such user exists.
func (s *PostgresUserStore) CredentialsByEmail(ctx context.Context, email string) (uuid.UUID, domain.HashedPassword, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, hashed_password
		FROM users
		WHERE email = $1
	`

	var (
		id      uuid.UUID
		rawHash string
	)
	err := s.db.QueryRowContext(ctx, query, email).Scan(&id, &rawHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The email is deliberately not logged here; sign-in failures
			// must not reveal which addresses are registered.
			log.Debug("credentials lookup missed")
			return uuid.Nil, domain.HashedPassword{}, store.ErrUserNotFound
		}
		log.Error("failed to look up credentials",
			slog.String("error", err.Error()))
		return uuid.Nil, domain.HashedPassword{}, err
	}

	return id, domain.NewHashedPassword(rawHash), nil
}
