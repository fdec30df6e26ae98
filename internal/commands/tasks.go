package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// CreateTask creates a task for a user, optionally in a category and with a
// deadline.
type CreateTask struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	IsComplete bool
	Deadline   *time.Time
}

// CreateTaskHandler handles CreateTask. It returns the created *domain.Task.
type CreateTaskHandler struct {
	tasks      store.TaskStore
	users      store.UserStore
	categories store.CategoryStore
	events     EventPublisher
}

// NewCreateTaskHandler creates a CreateTaskHandler with its dependencies.
func NewCreateTaskHandler(
	tasks store.TaskStore,
	users store.UserStore,
	categories store.CategoryStore,
	events EventPublisher,
) *CreateTaskHandler {
	return &CreateTaskHandler{tasks: tasks, users: users, categories: categories, events: events}
}

// Handle implements mediator.CommandHandler. When a category is given it is
// checked before the user, so a missing category is reported even for an
// unknown user.
func (h *CreateTaskHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(CreateTask)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	var categoryID *uuid.UUID
	if cmd.CategoryID != nil {
		category, err := h.categories.GetByID(ctx, *cmd.CategoryID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, *cmd.CategoryID)
			}
			return nil, err
		}
		categoryID = &category.ID
	}

	user, err := h.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrUserNotFound, cmd.UserID)
		}
		return nil, err
	}

	name, err := domain.NewTaskName(cmd.Name)
	if err != nil {
		return nil, err
	}

	deadline := cmd.Deadline
	if deadline != nil {
		utc := deadline.UTC()
		deadline = &utc
	}

	task, err := domain.NewTask(user.ID, name, cmd.IsComplete, deadline, categoryID)
	if err != nil {
		return nil, err
	}
	user.AddTask(task)

	if err := h.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, user); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask marks a task complete.
type CompleteTask struct {
	TaskID uuid.UUID
}

// CompleteTaskHandler handles CompleteTask. It returns a nil result.
type CompleteTaskHandler struct {
	tasks  store.TaskStore
	events EventPublisher
}

// NewCompleteTaskHandler creates a CompleteTaskHandler with its dependencies.
func NewCompleteTaskHandler(tasks store.TaskStore, events EventPublisher) *CompleteTaskHandler {
	return &CompleteTaskHandler{tasks: tasks, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *CompleteTaskHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(CompleteTask)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrTaskNotFound, cmd.TaskID)
		}
		return nil, err
	}

	task.Complete()
	if err := h.tasks.Complete(ctx, cmd.TaskID); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, task); err != nil {
		return nil, err
	}
	return nil, nil
}

// UncompleteTask marks a task not complete.
type UncompleteTask struct {
	TaskID uuid.UUID
}

// UncompleteTaskHandler handles UncompleteTask. It returns a nil result.
type UncompleteTaskHandler struct {
	tasks  store.TaskStore
	events EventPublisher
}

// NewUncompleteTaskHandler creates an UncompleteTaskHandler with its
// dependencies.
func NewUncompleteTaskHandler(tasks store.TaskStore, events EventPublisher) *UncompleteTaskHandler {
	return &UncompleteTaskHandler{tasks: tasks, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *UncompleteTaskHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(UncompleteTask)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrTaskNotFound, cmd.TaskID)
		}
		return nil, err
	}

	task.Uncomplete()
	if err := h.tasks.Uncomplete(ctx, cmd.TaskID); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, task); err != nil {
		return nil, err
	}
	return nil, nil
}

// DeleteTask removes a task from storage.
type DeleteTask struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles DeleteTask. It returns a nil result.
type DeleteTaskHandler struct {
	tasks  store.TaskStore
	events EventPublisher
}

// NewDeleteTaskHandler creates a DeleteTaskHandler with its dependencies.
func NewDeleteTaskHandler(tasks store.TaskStore, events EventPublisher) *DeleteTaskHandler {
	return &DeleteTaskHandler{tasks: tasks, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *DeleteTaskHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(DeleteTask)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrTaskNotFound, cmd.TaskID)
		}
		return nil, err
	}

	task.Delete()
	if err := h.tasks.Delete(ctx, cmd.TaskID); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, task); err != nil {
		return nil, err
	}
	return nil, nil
}

// ChangeTaskCategory reassigns a task to another category.
type ChangeTaskCategory struct {
	TaskID     uuid.UUID
	CategoryID uuid.UUID
}

// ChangeTaskCategoryHandler handles ChangeTaskCategory. It returns a nil
// result.
type ChangeTaskCategoryHandler struct {
	tasks      store.TaskStore
	categories store.CategoryStore
	events     EventPublisher
}

// NewChangeTaskCategoryHandler creates a ChangeTaskCategoryHandler with its
// dependencies.
func NewChangeTaskCategoryHandler(
	tasks store.TaskStore,
	categories store.CategoryStore,
	events EventPublisher,
) *ChangeTaskCategoryHandler {
	return &ChangeTaskCategoryHandler{tasks: tasks, categories: categories, events: events}
}

// Handle implements mediator.CommandHandler. The category is checked before
// the task, matching the order the handler needs them.
func (h *ChangeTaskCategoryHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(ChangeTaskCategory)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	if _, err := h.categories.GetByID(ctx, cmd.CategoryID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrCategoryNotFound, cmd.CategoryID)
		}
		return nil, err
	}

	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrTaskNotFound, cmd.TaskID)
		}
		return nil, err
	}

	task.ChangeCategory(cmd.CategoryID)
	if err := h.tasks.ChangeCategory(ctx, cmd.TaskID, cmd.CategoryID); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, task); err != nil {
		return nil, err
	}
	return nil, nil
}

// UpdateTask replaces a task's name, deadline, and category.
type UpdateTask struct {
	TaskID     uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Deadline   *time.Time
}

// UpdateTaskHandler handles UpdateTask. It returns a nil result.
type UpdateTaskHandler struct {
	tasks  store.TaskStore
	events EventPublisher
}

// NewUpdateTaskHandler creates an UpdateTaskHandler with its dependencies.
func NewUpdateTaskHandler(tasks store.TaskStore, events EventPublisher) *UpdateTaskHandler {
	return &UpdateTaskHandler{tasks: tasks, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *UpdateTaskHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(UpdateTask)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrTaskNotFound, cmd.TaskID)
		}
		return nil, err
	}

	name, err := domain.NewTaskName(cmd.Name)
	if err != nil {
		return nil, err
	}
	if err := task.Update(cmd.CategoryID, name, cmd.Deadline); err != nil {
		return nil, err
	}

	if err := h.tasks.Update(ctx, cmd.TaskID, cmd.CategoryID, name, cmd.Deadline); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, task); err != nil {
		return nil, err
	}
	return nil, nil
}

// GetAllTasks lists a user's tasks. When CategoryID is set only tasks
// assigned to that category are returned.
type GetAllTasks struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
}

// GetAllTasksHandler handles GetAllTasks. It returns []*domain.Task, empty
// if the user has none.
type GetAllTasksHandler struct {
	tasks store.TaskStore
	users store.UserStore
}

// NewGetAllTasksHandler creates a GetAllTasksHandler with its dependencies.
func NewGetAllTasksHandler(tasks store.TaskStore, users store.UserStore) *GetAllTasksHandler {
	return &GetAllTasksHandler{tasks: tasks, users: users}
}

// Handle implements mediator.CommandHandler.
func (h *GetAllTasksHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(GetAllTasks)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	if _, err := h.users.GetByID(ctx, cmd.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrUserNotFound, cmd.UserID)
		}
		return nil, err
	}

	var (
		tasks []*domain.Task
		err   error
	)
	if cmd.CategoryID != nil {
		tasks, err = h.tasks.ListByUserAndCategory(ctx, cmd.UserID, *cmd.CategoryID)
	} else {
		tasks, err = h.tasks.ListByUser(ctx, cmd.UserID)
	}
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}
