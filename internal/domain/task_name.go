package domain

import "unicode/utf8"

// maxTaskNameLength is the upper bound on task name length.
const maxTaskNameLength = 150

// TaskName is a validated task name: non-empty, at most 150 characters.
type TaskName struct {
	value string
}

// NewTaskName validates the raw name and wraps it.
func NewTaskName(raw string) (TaskName, error) {
	if raw == "" {
		return TaskName{}, ErrEmptyTaskName
	}
	if utf8.RuneCountInString(raw) > maxTaskNameLength {
		return TaskName{}, ErrTaskNameTooLong
	}
	return TaskName{value: raw}, nil
}

// String returns the underlying name.
func (n TaskName) String() string {
	return n.value
}
