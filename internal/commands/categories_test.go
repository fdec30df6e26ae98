package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaichkin/taskdeck/internal/commands"
	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mocks"
	"github.com/pzaichkin/taskdeck/internal/store"
)

func seedCategory(t *testing.T, categories *mocks.MockCategoryStore, userID uuid.UUID, title string) *domain.Category {
	t.Helper()
	categoryTitle, err := domain.NewCategoryTitle(title)
	require.NoError(t, err)
	category := domain.ReconstructCategory(uuid.New(), userID, categoryTitle)
	categories.Categories[category.ID] = category
	return category
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	t.Run("creates and attaches a category", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "a@b.com")
		categories := mocks.NewMockCategoryStore()
		handler := commands.NewCreateCategoryHandler(categories, users, nil)

		result, err := handler.Handle(context.Background(), commands.CreateCategory{
			UserID: user.ID,
			Title:  "Work",
		})
		require.NoError(t, err)

		category, ok := result.(*domain.Category)
		require.True(t, ok)
		assert.Equal(t, user.ID, category.UserID)
		assert.Len(t, categories.Categories, 1)
		require.Len(t, user.Categories, 1)

		events := user.PullEvents()
		require.Len(t, events, 1)
		assert.IsType(t, domain.CategoryCreated{}, events[0])
	})

	t.Run("unknown user fails", func(t *testing.T) {
		t.Parallel()

		handler := commands.NewCreateCategoryHandler(mocks.NewMockCategoryStore(), mocks.NewMockUserStore(), nil)
		_, err := handler.Handle(context.Background(), commands.CreateCategory{UserID: uuid.New(), Title: "Work"})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("empty title fails validation", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "a@b.com")
		handler := commands.NewCreateCategoryHandler(mocks.NewMockCategoryStore(), users, nil)

		_, err := handler.Handle(context.Background(), commands.CreateCategory{UserID: user.ID, Title: ""})
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Parallel()

	t.Run("persists the new title", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		category := seedCategory(t, categories, uuid.New(), "Old")
		handler := commands.NewUpdateCategoryHandler(categories, nil)

		result, err := handler.Handle(context.Background(), commands.UpdateCategory{
			CategoryID: category.ID,
			NewTitle:   "New",
		})
		require.NoError(t, err)

		updated, ok := result.(*domain.Category)
		require.True(t, ok)
		assert.Equal(t, "New", updated.Title.String())
	})

	t.Run("unknown category fails", func(t *testing.T) {
		t.Parallel()

		handler := commands.NewUpdateCategoryHandler(mocks.NewMockCategoryStore(), nil)
		_, err := handler.Handle(context.Background(), commands.UpdateCategory{CategoryID: uuid.New(), NewTitle: "New"})
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("store failure is not reported as not found", func(t *testing.T) {
		t.Parallel()

		infraErr := errors.New("connection refused")
		categories := mocks.NewMockCategoryStore()
		categories.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			return nil, infraErr
		}
		handler := commands.NewUpdateCategoryHandler(categories, nil)

		_, err := handler.Handle(context.Background(), commands.UpdateCategory{CategoryID: uuid.New(), NewTitle: "New"})
		assert.ErrorIs(t, err, infraErr)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing category", func(t *testing.T) {
		t.Parallel()

		categories := mocks.NewMockCategoryStore()
		category := seedCategory(t, categories, uuid.New(), "Work")
		handler := commands.NewDeleteCategoryHandler(categories, nil)

		_, err := handler.Handle(context.Background(), commands.DeleteCategory{CategoryID: category.ID})
		require.NoError(t, err)
		assert.Empty(t, categories.Categories)
	})

	t.Run("unknown category fails", func(t *testing.T) {
		t.Parallel()

		handler := commands.NewDeleteCategoryHandler(mocks.NewMockCategoryStore(), nil)
		_, err := handler.Handle(context.Background(), commands.DeleteCategory{CategoryID: uuid.New()})
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})
}

func TestGetAllCategories(t *testing.T) {
	t.Parallel()

	t.Run("returns the user's categories", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "a@b.com")
		categories := mocks.NewMockCategoryStore()
		seedCategory(t, categories, user.ID, "Work")
		seedCategory(t, categories, user.ID, "Home")
		seedCategory(t, categories, uuid.New(), "Someone else's")

		handler := commands.NewGetAllCategoriesHandler(categories, users)
		result, err := handler.Handle(context.Background(), commands.GetAllCategories{UserID: user.ID})
		require.NoError(t, err)

		list, ok := result.([]*domain.Category)
		require.True(t, ok)
		assert.Len(t, list, 2)
	})

	t.Run("empty list when the user has none", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "a@b.com")
		handler := commands.NewGetAllCategoriesHandler(mocks.NewMockCategoryStore(), users)

		result, err := handler.Handle(context.Background(), commands.GetAllCategories{UserID: user.ID})
		require.NoError(t, err)
		list, ok := result.([]*domain.Category)
		require.True(t, ok)
		assert.Empty(t, list)
	})

	t.Run("unknown user fails", func(t *testing.T) {
		t.Parallel()

		handler := commands.NewGetAllCategoriesHandler(mocks.NewMockCategoryStore(), mocks.NewMockUserStore())
		_, err := handler.Handle(context.Background(), commands.GetAllCategories{UserID: uuid.New()})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
