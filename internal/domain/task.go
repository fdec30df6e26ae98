package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item owned by a user, optionally assigned to a
// category and optionally carrying a deadline.
type Task struct {
	EventRecorder

	ID         uuid.UUID
	UserID     uuid.UUID
	Name       TaskName
	IsComplete bool
	Deadline   *time.Time
	CategoryID *uuid.UUID
}

// NewTask creates a task owned by the given user. If a deadline is set it
// must be strictly in the future, otherwise ErrDeadlineInPast is returned.
// The creation event is recorded on the owning User aggregate (see
// User.AddTask), not here.
func NewTask(
	userID uuid.UUID,
	name TaskName,
	isComplete bool,
	deadline *time.Time,
	categoryID *uuid.UUID,
) (*Task, error) {
	if err := validateDeadline(deadline); err != nil {
		return nil, err
	}
	return &Task{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		IsComplete: isComplete,
		Deadline:   deadline,
		CategoryID: categoryID,
	}, nil
}

// ReconstructTask rebuilds a task from a persisted row. The deadline check is
// suppressed: a stored deadline may legitimately be in the past by now.
func ReconstructTask(
	id, userID uuid.UUID,
	name TaskName,
	isComplete bool,
	deadline *time.Time,
	categoryID *uuid.UUID,
) *Task {
	return &Task{
		ID:         id,
		UserID:     userID,
		Name:       name,
		IsComplete: isComplete,
		Deadline:   deadline,
		CategoryID: categoryID,
	}
}

func validateDeadline(deadline *time.Time) error {
	if deadline != nil && !deadline.After(time.Now()) {
		return ErrDeadlineInPast
	}
	return nil
}

// Delete records a TaskDeleted event. Removal from storage is the
// repository's concern.
func (t *Task) Delete() {
	t.Record(TaskDeleted{
		EventMeta: NewEventMeta(),
		TaskID:    t.ID,
	})
}

// Complete marks the task complete and records a TaskCompleted event.
func (t *Task) Complete() {
	t.IsComplete = true
	t.Record(TaskCompleted{
		EventMeta: NewEventMeta(),
		TaskID:    t.ID,
	})
}

// Uncomplete marks the task not complete and records a TaskUncompleted event.
func (t *Task) Uncomplete() {
	t.IsComplete = false
	t.Record(TaskUncompleted{
		EventMeta: NewEventMeta(),
		TaskID:    t.ID,
	})
}

// ChangeCategory reassigns the task to the given category and records a
// TaskCategoryChanged event.
func (t *Task) ChangeCategory(categoryID uuid.UUID) {
	t.Record(TaskCategoryChanged{
		EventMeta:  NewEventMeta(),
		TaskID:     t.ID,
		CategoryID: categoryID,
	})
	id := categoryID
	t.CategoryID = &id
}

// Update replaces the task's name, deadline, and category in one mutation,
// re-running the deadline-in-future check, and records a TaskUpdated event.
// On validation failure the task is left unchanged.
func (t *Task) Update(categoryID *uuid.UUID, name TaskName, deadline *time.Time) error {
	if err := validateDeadline(deadline); err != nil {
		return err
	}
	t.Name = name
	t.Deadline = deadline
	t.CategoryID = categoryID
	t.Record(TaskUpdated{
		EventMeta:  NewEventMeta(),
		TaskID:     t.ID,
		CategoryID: categoryID,
		Name:       name.String(),
		Deadline:   deadline,
	})
	return nil
}
