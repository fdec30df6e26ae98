package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/platform/logger"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task.
// Returns store.ErrInvalidEntity if the owning user or referenced category
// doesn't exist (foreign key violation). The violated constraint name tells
// the two cases apart.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO tasks (id, user_id, category_id, name, is_complete, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.CategoryID,
		task.Name.String(),
		task.IsComplete,
		task.Deadline,
		now,
		now,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("task_id", task.ID.String()),
				slog.String("constraint", violatedConstraint(err)))
			if strings.Contains(violatedConstraint(err), "category") {
				return fmt.Errorf("%w: category not found", store.ErrInvalidEntity)
			}
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for delete", slog.String("task_id", id.String()))
		return err
	}

	log.Info("task deleted successfully",
		slog.String("task_id", id.String()))
	return nil
}

// Update implements store.TaskStore.Update
// It replaces the task's category, name, and deadline in one statement.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, name domain.TaskName, deadline *time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET category_id = $1, name = $2, deadline = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query, categoryID, name.String(), deadline, time.Now().UTC(), id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task update",
				slog.String("task_id", id.String()))
			return fmt.Errorf("%w: category not found", store.ErrInvalidEntity)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for update", slog.String("task_id", id.String()))
		return err
	}

	log.Info("task updated successfully",
		slog.String("task_id", id.String()))
	return nil
}

// ChangeCategory implements store.TaskStore.ChangeCategory
// Returns store.ErrTaskNotFound if the task does not exist and
// store.ErrInvalidEntity if the category does not exist.
func (s *PostgresTaskStore) ChangeCategory(ctx context.Context, id, categoryID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET category_id = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, categoryID, time.Now().UTC(), id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during category change",
				slog.String("task_id", id.String()),
				slog.String("category_id", categoryID.String()))
			return fmt.Errorf("%w: category with ID %s not found",
				store.ErrInvalidEntity, categoryID)
		}
		log.Error("failed to change task category",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for category change",
			slog.String("task_id", id.String()))
		return err
	}

	log.Info("task category changed successfully",
		slog.String("task_id", id.String()),
		slog.String("category_id", categoryID.String()))
	return nil
}

// Complete implements store.TaskStore.Complete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Complete(ctx context.Context, id uuid.UUID) error {
	return s.setCompletion(ctx, id, true)
}

// Uncomplete implements store.TaskStore.Uncomplete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Uncomplete(ctx context.Context, id uuid.UUID) error {
	return s.setCompletion(ctx, id, false)
}

func (s *PostgresTaskStore) setCompletion(ctx context.Context, id uuid.UUID, isComplete bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET is_complete = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, isComplete, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update task completion",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()),
			slog.Bool("is_complete", isComplete))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for completion update",
			slog.String("task_id", id.String()))
		return err
	}

	log.Info("task completion updated",
		slog.String("task_id", id.String()),
		slog.Bool("is_complete", isComplete))
	return nil
}

// ListByUser implements store.TaskStore.ListByUser
// It retrieves all tasks owned by the user, ordered by creation time.
// Returns an empty slice if the user has no tasks.
func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, category_id, name, is_complete, deadline
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at
	`
	return s.listTasks(ctx, query, userID)
}

// ListByUserAndCategory implements store.TaskStore.ListByUserAndCategory
// It retrieves the user's tasks in the given category, ordered by creation
// time. Returns an empty slice if none match.
func (s *PostgresTaskStore) ListByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]*domain.Task, error) {
	query := `
		SELECT id, user_id, category_id, name, is_complete, deadline
		FROM tasks
		WHERE user_id = $1 AND category_id = $2
		ORDER BY created_at
	`
	return s.listTasks(ctx, query, userID, categoryID)
}

func (s *PostgresTaskStore) listTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.String("task_id", id.String()))

	query := `
		SELECT id, user_id, category_id, name, is_complete, deadline
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	return task, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		id         uuid.UUID
		userID     uuid.UUID
		categoryID uuid.NullUUID
		rawName    string
		isComplete bool
		deadline   sql.NullTime
	)
	if err := row.Scan(&id, &userID, &categoryID, &rawName, &isComplete, &deadline); err != nil {
		return nil, err
	}

	name, err := domain.NewTaskName(rawName)
	if err != nil {
		return nil, fmt.Errorf("invalid stored name for task %s: %w", id, err)
	}

	var cid *uuid.UUID
	if categoryID.Valid {
		cid = &categoryID.UUID
	}
	var due *time.Time
	if deadline.Valid {
		utc := deadline.Time.UTC()
		due = &utc
	}
	return domain.ReconstructTask(id, userID, name, isComplete, due, cid), nil
}
