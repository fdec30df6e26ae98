package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is set on registration; login responses carry only the token.
	UserID *uuid.UUID `json:"user_id,omitempty"`

	// Token is the JWT used for API authorization.
	Token string `json:"token"`
}

// CategoryRequest defines the payload for creating or renaming a category.
type CategoryRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// CategoryResponse defines a single category in API responses.
type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// NewCategoryResponse converts a domain category to its API representation.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Title: category.Title.String(),
	}
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       string     `json:"name" validate:"required,max=150"`
	IsComplete bool       `json:"is_complete"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// UpdateTaskRequest defines the payload for the task update endpoint. The
// update is a full replacement: omitted category and deadline clear the
// stored values.
type UpdateTaskRequest struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       string     `json:"name" validate:"required,max=150"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// ChangeTaskCategoryRequest defines the payload for moving a task to another
// category.
type ChangeTaskCategoryRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
}

// TaskResponse defines a single task in API responses.
type TaskResponse struct {
	ID         uuid.UUID  `json:"id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       string     `json:"name"`
	IsComplete bool       `json:"is_complete"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// NewTaskResponse converts a domain task to its API representation.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:         task.ID,
		CategoryID: task.CategoryID,
		Name:       task.Name.String(),
		IsComplete: task.IsComplete,
		Deadline:   task.Deadline,
	}
}
