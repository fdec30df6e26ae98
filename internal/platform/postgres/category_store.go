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

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the CategoryStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create
// It saves a new category.
// Returns store.ErrInvalidEntity if the owning user doesn't exist (foreign key violation).
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO categories (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.UserID,
		category.Title.String(),
		now,
		now,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during category creation",
				slog.String("category_id", category.ID.String()),
				slog.String("user_id", category.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, category.UserID)
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	log.Info("category created successfully",
		slog.String("category_id", category.ID.String()),
		slog.String("user_id", category.UserID.String()))
	return nil
}

// UpdateTitle implements store.CategoryStore.UpdateTitle
// It renames a category and returns its updated state.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) UpdateTitle(ctx context.Context, id uuid.UUID, title domain.CategoryTitle) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE categories
		SET title = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, user_id, title
	`

	var (
		categoryID uuid.UUID
		userID     uuid.UUID
		rawTitle   string
	)
	err := s.db.QueryRowContext(ctx, query, title.String(), time.Now().UTC(), id).
		Scan(&categoryID, &userID, &rawTitle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found for title update",
				slog.String("category_id", id.String()))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to update category title",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}

	stored, err := domain.NewCategoryTitle(rawTitle)
	if err != nil {
		return nil, fmt.Errorf("invalid stored title for category %s: %w", id, err)
	}

	log.Info("category title updated successfully",
		slog.String("category_id", id.String()))
	return domain.ReconstructCategory(categoryID, userID, stored), nil
}

// Delete implements store.CategoryStore.Delete
// It removes a category by ID. Tasks in the category are removed by the
// schema's ON DELETE CASCADE rules.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM categories WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		log.Debug("category not found for delete",
			slog.String("category_id", id.String()))
		return err
	}

	log.Info("category deleted successfully",
		slog.String("category_id", id.String()))
	return nil
}

// ListByUser implements store.CategoryStore.ListByUser
// It retrieves all categories owned by the user, ordered by creation time.
// Returns an empty slice if the user has no categories.
func (s *PostgresCategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query categories by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			log.Error("failed to scan category row",
				slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed categories by user",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(categories)))
	return categories, nil
}

// GetByID implements store.CategoryStore.GetByID
// It retrieves a category by its unique ID.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving category by ID", slog.String("category_id", id.String()))

	query := `
		SELECT id, user_id, title
		FROM categories
		WHERE id = $1
	`

	category, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.String("category_id", id.String()))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}

	return category, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows so the scan helpers can serve
// both single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		id       uuid.UUID
		userID   uuid.UUID
		rawTitle string
	)
	if err := row.Scan(&id, &userID, &rawTitle); err != nil {
		return nil, err
	}

	title, err := domain.NewCategoryTitle(rawTitle)
	if err != nil {
		return nil, fmt.Errorf("invalid stored title for category %s: %w", id, err)
	}
	return domain.ReconstructCategory(id, userID, title), nil
}
