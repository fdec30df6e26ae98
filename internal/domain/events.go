package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a record of a state transition produced by an entity mutation.
// Events are buffered on the entity that produced them and drained with
// PullEvents at the end of a unit of work.
type Event interface {
	// EventID returns the unique identifier of this event occurrence.
	EventID() uuid.UUID
}

// EventMeta carries the identity and timestamp common to every event. Embed
// it in concrete event types.
type EventMeta struct {
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEventMeta stamps a fresh event identity.
func NewEventMeta() EventMeta {
	return EventMeta{
		ID:         uuid.New(),
		OccurredAt: time.Now().UTC(),
	}
}

// EventID implements Event.
func (m EventMeta) EventID() uuid.UUID {
	return m.ID
}

// UserCreated is emitted when a new user registers.
type UserCreated struct {
	EventMeta
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// UserDeleted is emitted when a user account is marked deleted.
type UserDeleted struct {
	EventMeta
	UserID uuid.UUID `json:"user_id"`
}

// CategoryCreated is emitted when a user creates a category.
type CategoryCreated struct {
	EventMeta
	CategoryID uuid.UUID `json:"category_id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
}

// CategoryUpdated is emitted when a category is renamed.
type CategoryUpdated struct {
	EventMeta
	CategoryID uuid.UUID `json:"category_id"`
	Title      string    `json:"title"`
}

// CategoryDeleted is emitted when a category is removed.
type CategoryDeleted struct {
	EventMeta
	CategoryID uuid.UUID `json:"category_id"`
}

// TaskCreated is emitted when a user creates a task.
type TaskCreated struct {
	EventMeta
	TaskID     uuid.UUID  `json:"task_id"`
	UserID     uuid.UUID  `json:"user_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       string     `json:"name"`
	IsComplete bool       `json:"is_complete"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// TaskDeleted is emitted when a task is removed.
type TaskDeleted struct {
	EventMeta
	TaskID uuid.UUID `json:"task_id"`
}

// TaskCompleted is emitted when a task is marked complete.
type TaskCompleted struct {
	EventMeta
	TaskID uuid.UUID `json:"task_id"`
}

// TaskUncompleted is emitted when a task is marked not complete.
type TaskUncompleted struct {
	EventMeta
	TaskID uuid.UUID `json:"task_id"`
}

// TaskCategoryChanged is emitted when a task is reassigned to a category.
type TaskCategoryChanged struct {
	EventMeta
	TaskID     uuid.UUID `json:"task_id"`
	CategoryID uuid.UUID `json:"category_id"`
}

// TaskUpdated is emitted when a task's name, deadline, or category changes
// through a full update.
type TaskUpdated struct {
	EventMeta
	TaskID     uuid.UUID  `json:"task_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       string     `json:"name"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}
