package domain

import "github.com/google/uuid"

// User is the aggregate owning categories and tasks. Its Secret field holds
// either a plaintext Password pending hashing (just-registered user) or a
// HashedPassword reconstructed from storage; only the latter is persisted.
type User struct {
	EventRecorder

	ID         uuid.UUID
	Email      Email
	Secret     Secret
	Categories []*Category
	Tasks      []*Task
	Deleted    bool
}

// NewUser creates a freshly registered user and records a UserCreated event.
func NewUser(email Email, password Password) *User {
	user := &User{
		ID:     uuid.New(),
		Email:  email,
		Secret: password,
	}
	user.Record(UserCreated{
		EventMeta: NewEventMeta(),
		UserID:    user.ID,
		Email:     email.String(),
	})
	return user
}

// ReconstructUser rebuilds a user from a persisted row. No event is recorded
// and no validation runs; the stored data is already known valid.
func ReconstructUser(id uuid.UUID, email Email, hashed HashedPassword) *User {
	return &User{
		ID:     id,
		Email:  email,
		Secret: hashed,
	}
}

// Delete soft-marks the user as deleted and records a UserDeleted event. It
// does not cascade to the user's tasks or categories; the persistence
// layer's foreign-key semantics decide what happens to dependent rows.
func (u *User) Delete() {
	u.Deleted = true
	u.Record(UserDeleted{
		EventMeta: NewEventMeta(),
		UserID:    u.ID,
	})
}

// AddCategory attaches a category to the user and records a CategoryCreated
// event.
func (u *User) AddCategory(category *Category) {
	u.Record(CategoryCreated{
		EventMeta:  NewEventMeta(),
		CategoryID: category.ID,
		UserID:     u.ID,
		Title:      category.Title.String(),
	})
	u.Categories = append(u.Categories, category)
}

// RemoveCategory detaches a category from the user and records a
// CategoryDeleted event.
func (u *User) RemoveCategory(category *Category) {
	u.Record(CategoryDeleted{
		EventMeta:  NewEventMeta(),
		CategoryID: category.ID,
	})
	for i, c := range u.Categories {
		if c.ID == category.ID {
			u.Categories = append(u.Categories[:i], u.Categories[i+1:]...)
			break
		}
	}
}

// AddTask attaches a task to the user and records a TaskCreated event.
func (u *User) AddTask(task *Task) {
	u.Record(TaskCreated{
		EventMeta:  NewEventMeta(),
		TaskID:     task.ID,
		UserID:     u.ID,
		CategoryID: task.CategoryID,
		Name:       task.Name.String(),
		IsComplete: task.IsComplete,
		Deadline:   task.Deadline,
	})
	u.Tasks = append(u.Tasks, task)
}

// RemoveTask detaches a task from the user and records a TaskDeleted event.
func (u *User) RemoveTask(task *Task) {
	u.Record(TaskDeleted{
		EventMeta: NewEventMeta(),
		TaskID:    task.ID,
	})
	for i, t := range u.Tasks {
		if t.ID == task.ID {
			u.Tasks = append(u.Tasks[:i], u.Tasks[i+1:]...)
			break
		}
	}
}
