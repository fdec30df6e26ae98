package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pzaichkin/taskdeck/internal/commands"
	"github.com/pzaichkin/taskdeck/internal/config"
	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/events"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/platform/postgres"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	categoryStore store.CategoryStore
	taskStore     store.TaskStore

	jwtService auth.JWTService
	mediator   *mediator.Mediator
}

// newApplication creates a new application instance with all dependencies
// initialized: stores, auth services, and the fully registered mediator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	app.mediator = buildMediator(app, hasher)

	logger.Info("Application initialized successfully")
	return app, nil
}

// buildMediator registers every command handler and every event handler.
// Registration is append-only; a missing registration surfaces as a
// not-registered error on first dispatch.
func buildMediator(app *application, hasher *auth.BcryptHasher) *mediator.Mediator {
	m := mediator.New(app.logger)

	m.RegisterCommand(commands.CreateUser{},
		commands.NewCreateUserHandler(app.userStore, hasher, m))
	m.RegisterCommand(commands.DeleteUser{},
		commands.NewDeleteUserHandler(app.userStore, m))
	m.RegisterCommand(commands.SignInUser{},
		commands.NewSignInUserHandler(app.userStore, hasher, app.jwtService))

	m.RegisterCommand(commands.CreateCategory{},
		commands.NewCreateCategoryHandler(app.categoryStore, app.userStore, m))
	m.RegisterCommand(commands.UpdateCategory{},
		commands.NewUpdateCategoryHandler(app.categoryStore, m))
	m.RegisterCommand(commands.DeleteCategory{},
		commands.NewDeleteCategoryHandler(app.categoryStore, m))
	m.RegisterCommand(commands.GetAllCategories{},
		commands.NewGetAllCategoriesHandler(app.categoryStore, app.userStore))

	m.RegisterCommand(commands.CreateTask{},
		commands.NewCreateTaskHandler(app.taskStore, app.userStore, app.categoryStore, m))
	m.RegisterCommand(commands.CompleteTask{},
		commands.NewCompleteTaskHandler(app.taskStore, m))
	m.RegisterCommand(commands.UncompleteTask{},
		commands.NewUncompleteTaskHandler(app.taskStore, m))
	m.RegisterCommand(commands.DeleteTask{},
		commands.NewDeleteTaskHandler(app.taskStore, m))
	m.RegisterCommand(commands.ChangeTaskCategory{},
		commands.NewChangeTaskCategoryHandler(app.taskStore, app.categoryStore, m))
	m.RegisterCommand(commands.UpdateTask{},
		commands.NewUpdateTaskHandler(app.taskStore, m))
	m.RegisterCommand(commands.GetAllTasks{},
		commands.NewGetAllTasksHandler(app.taskStore, app.userStore))

	audit := events.NewAuditHandler(app.logger)
	m.RegisterEvent(domain.UserCreated{}, audit)
	m.RegisterEvent(domain.UserDeleted{}, audit)
	m.RegisterEvent(domain.CategoryCreated{}, audit)
	m.RegisterEvent(domain.CategoryUpdated{}, audit)
	m.RegisterEvent(domain.CategoryDeleted{}, audit)
	m.RegisterEvent(domain.TaskCreated{}, audit)
	m.RegisterEvent(domain.TaskDeleted{}, audit)
	m.RegisterEvent(domain.TaskCompleted{}, audit)
	m.RegisterEvent(domain.TaskUncompleted{}, audit)
	m.RegisterEvent(domain.TaskCategoryChanged{}, audit)
	m.RegisterEvent(domain.TaskUpdated{}, audit)

	return m
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
