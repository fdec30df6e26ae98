package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pzaichkin/taskdeck/internal/api"
	"github.com/pzaichkin/taskdeck/internal/api/shared"
	"github.com/pzaichkin/taskdeck/internal/commands"
	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/mocks"
)

// testEnv wires the full command stack against in-memory stores so handler
// tests exercise real dispatch rather than stubbed handlers.
type testEnv struct {
	users      *mocks.MockUserStore
	categories *mocks.MockCategoryStore
	tasks      *mocks.MockTaskStore
	jwt        *mocks.MockJWTService
	mediator   *mediator.Mediator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:      mocks.NewMockUserStore(),
		categories: mocks.NewMockCategoryStore(),
		tasks:      mocks.NewMockTaskStore(),
		jwt:        &mocks.MockJWTService{Token: "signed-token"},
	}

	m := mediator.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.RegisterCommand(commands.CreateUser{},
		commands.NewCreateUserHandler(env.users, &mocks.MockPasswordHasher{}, nil))
	m.RegisterCommand(commands.DeleteUser{},
		commands.NewDeleteUserHandler(env.users, nil))
	m.RegisterCommand(commands.SignInUser{},
		commands.NewSignInUserHandler(env.users, &mocks.MockPasswordVerifier{ShouldSucceed: true}, env.jwt))
	m.RegisterCommand(commands.CreateCategory{},
		commands.NewCreateCategoryHandler(env.categories, env.users, nil))
	m.RegisterCommand(commands.UpdateCategory{},
		commands.NewUpdateCategoryHandler(env.categories, nil))
	m.RegisterCommand(commands.DeleteCategory{},
		commands.NewDeleteCategoryHandler(env.categories, nil))
	m.RegisterCommand(commands.GetAllCategories{},
		commands.NewGetAllCategoriesHandler(env.categories, env.users))
	m.RegisterCommand(commands.CreateTask{},
		commands.NewCreateTaskHandler(env.tasks, env.users, env.categories, nil))
	m.RegisterCommand(commands.CompleteTask{},
		commands.NewCompleteTaskHandler(env.tasks, nil))
	m.RegisterCommand(commands.UncompleteTask{},
		commands.NewUncompleteTaskHandler(env.tasks, nil))
	m.RegisterCommand(commands.DeleteTask{},
		commands.NewDeleteTaskHandler(env.tasks, nil))
	m.RegisterCommand(commands.ChangeTaskCategory{},
		commands.NewChangeTaskCategoryHandler(env.tasks, env.categories, nil))
	m.RegisterCommand(commands.UpdateTask{},
		commands.NewUpdateTaskHandler(env.tasks, nil))
	m.RegisterCommand(commands.GetAllTasks{},
		commands.NewGetAllTasksHandler(env.tasks, env.users))
	env.mediator = m

	return env
}

// router builds the API routes, with userID injected on the protected group
// in place of the JWT middleware.
func (env *testEnv) router(userID uuid.UUID) http.Handler {
	authHandler := api.NewAuthHandler(env.mediator, env.jwt)
	categoryHandler := api.NewCategoryHandler(env.mediator)
	taskHandler := api.NewTaskHandler(env.mediator)

	inject := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	r := chi.NewRouter()
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Group(func(r chi.Router) {
		r.Use(inject)
		r.Delete("/auth/me", authHandler.DeleteAccount)
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.List)
			r.Post("/", categoryHandler.Create)
			r.Put("/{id}", categoryHandler.Update)
			r.Delete("/{id}", categoryHandler.Delete)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
			r.Post("/{id}/complete", taskHandler.Complete)
			r.Post("/{id}/uncomplete", taskHandler.Uncomplete)
			r.Put("/{id}/category", taskHandler.ChangeCategory)
		})
	})
	return r
}

func (env *testEnv) seedUser(t *testing.T, email string) *domain.User {
	t.Helper()
	addr, err := domain.NewEmail(email)
	require.NoError(t, err)
	user := domain.ReconstructUser(uuid.New(), addr, domain.NewHashedPassword("hashed:Abc123!"))
	env.users.AddUser(user, domain.NewHashedPassword("hashed:Abc123!"))
	return user
}

func (env *testEnv) seedCategory(t *testing.T, userID uuid.UUID, title string) *domain.Category {
	t.Helper()
	categoryTitle, err := domain.NewCategoryTitle(title)
	require.NoError(t, err)
	category := domain.ReconstructCategory(uuid.New(), userID, categoryTitle)
	env.categories.Categories[category.ID] = category
	return category
}

func (env *testEnv) seedTask(t *testing.T, userID uuid.UUID, name string) *domain.Task {
	t.Helper()
	taskName, err := domain.NewTaskName(name)
	require.NoError(t, err)
	task := domain.ReconstructTask(uuid.New(), userID, taskName, false, nil, nil)
	env.tasks.Tasks[task.ID] = task
	return task
}
