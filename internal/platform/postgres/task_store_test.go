package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/platform/postgres"
	"github.com/pzaichkin/taskdeck/internal/store"
)

func mustName(t *testing.T, raw string) domain.TaskName {
	t.Helper()
	name, err := domain.NewTaskName(raw)
	require.NoError(t, err)
	return name
}

func TestTaskStoreCreate(t *testing.T) {
	t.Run("inserts the task", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		task := domain.ReconstructTask(uuid.New(), uuid.New(), mustName(t, "Buy milk"), false, nil, nil)
		mock.ExpectExec("INSERT INTO tasks").
			WithArgs(task.ID, task.UserID, nil, "Buy milk", false, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, taskStore.Create(context.Background(), task))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing category constraint maps to ErrInvalidEntity", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		categoryID := uuid.New()
		task := domain.ReconstructTask(uuid.New(), uuid.New(), mustName(t, "Buy milk"), false, nil, &categoryID)
		mock.ExpectExec("INSERT INTO tasks").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "tasks_category_id_fkey"})

		err := taskStore.Create(context.Background(), task)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("missing user constraint maps to ErrInvalidEntity", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		task := domain.ReconstructTask(uuid.New(), uuid.New(), mustName(t, "Buy milk"), false, nil, nil)
		mock.ExpectExec("INSERT INTO tasks").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "tasks_user_id_fkey"})

		err := taskStore.Create(context.Background(), task)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "user")
	})
}

func TestTaskStoreDelete(t *testing.T) {
	t.Run("deletes an existing task", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, taskStore.Delete(context.Background(), id))
	})

	t.Run("zero rows affected maps to ErrTaskNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, taskStore.Delete(context.Background(), id), store.ErrTaskNotFound)
	})
}

func TestTaskStoreUpdate(t *testing.T) {
	t.Run("updates all mutable columns", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		categoryID := uuid.New()
		deadline := time.Now().UTC().Add(24 * time.Hour)
		mock.ExpectExec("UPDATE tasks").
			WithArgs(&categoryID, "New name", &deadline, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := taskStore.Update(context.Background(), id, &categoryID, mustName(t, "New name"), &deadline)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to ErrTaskNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		mock.ExpectExec("UPDATE tasks").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := taskStore.Update(context.Background(), id, nil, mustName(t, "New name"), nil)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskStoreChangeCategory(t *testing.T) {
	t.Run("reassigns the task", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		categoryID := uuid.New()
		mock.ExpectExec("UPDATE tasks").
			WithArgs(categoryID, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, taskStore.ChangeCategory(context.Background(), id, categoryID))
	})

	t.Run("missing category maps to ErrInvalidEntity", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		mock.ExpectExec("UPDATE tasks").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "tasks_category_id_fkey"})

		err := taskStore.ChangeCategory(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("zero rows affected maps to ErrTaskNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		mock.ExpectExec("UPDATE tasks").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := taskStore.ChangeCategory(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskStoreCompletion(t *testing.T) {
	t.Run("Complete sets the flag", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		mock.ExpectExec("UPDATE tasks").
			WithArgs(true, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, taskStore.Complete(context.Background(), id))
	})

	t.Run("Uncomplete clears the flag", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		mock.ExpectExec("UPDATE tasks").
			WithArgs(false, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, taskStore.Uncomplete(context.Background(), id))
	})

	t.Run("zero rows affected maps to ErrTaskNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		mock.ExpectExec("UPDATE tasks").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, taskStore.Complete(context.Background(), uuid.New()), store.ErrTaskNotFound)
	})
}

func TestTaskStoreListByUser(t *testing.T) {
	t.Run("reconstructs rows including nullable columns", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		userID := uuid.New()
		first := uuid.New()
		second := uuid.New()
		categoryID := uuid.New()
		deadline := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		mock.ExpectQuery("SELECT id, user_id, category_id, name, is_complete, deadline").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "name", "is_complete", "deadline"}).
				AddRow(first.String(), userID.String(), categoryID.String(), "Buy milk", false, deadline).
				AddRow(second.String(), userID.String(), nil, "Walk dog", true, nil))

		tasks, err := taskStore.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)

		require.NotNil(t, tasks[0].CategoryID)
		assert.Equal(t, categoryID, *tasks[0].CategoryID)
		require.NotNil(t, tasks[0].Deadline)
		assert.True(t, tasks[0].Deadline.Equal(deadline))
		assert.False(t, tasks[0].IsComplete)

		assert.Nil(t, tasks[1].CategoryID)
		assert.Nil(t, tasks[1].Deadline)
		assert.True(t, tasks[1].IsComplete)
	})

	t.Run("returns an empty slice for no rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		userID := uuid.New()
		mock.ExpectQuery("SELECT id, user_id, category_id, name, is_complete, deadline").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "name", "is_complete", "deadline"}))

		tasks, err := taskStore.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}

func TestTaskStoreListByUserAndCategory(t *testing.T) {
	db, mock := newMockDB(t)
	taskStore := postgres.NewPostgresTaskStore(db, nil)

	userID := uuid.New()
	categoryID := uuid.New()
	taskID := uuid.New()
	mock.ExpectQuery("SELECT id, user_id, category_id, name, is_complete, deadline").
		WithArgs(userID, categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "name", "is_complete", "deadline"}).
			AddRow(taskID.String(), userID.String(), categoryID.String(), "Buy milk", false, nil))

	tasks, err := taskStore.ListByUserAndCategory(context.Background(), userID, categoryID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, taskID, tasks[0].ID)
	require.NotNil(t, tasks[0].CategoryID)
	assert.Equal(t, categoryID, *tasks[0].CategoryID)
}

func TestTaskStoreGetByID(t *testing.T) {
	t.Run("reconstructs the stored task", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		userID := uuid.New()
		mock.ExpectQuery("SELECT id, user_id, category_id, name, is_complete, deadline").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "name", "is_complete", "deadline"}).
				AddRow(id.String(), userID.String(), nil, "Buy milk", false, nil))

		task, err := taskStore.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, task.ID)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, "Buy milk", task.Name.String())
	})

	t.Run("missing task maps to ErrTaskNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		taskStore := postgres.NewPostgresTaskStore(db, nil)

		id := uuid.New()
		mock.ExpectQuery("SELECT id, user_id, category_id, name, is_complete, deadline").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := taskStore.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
