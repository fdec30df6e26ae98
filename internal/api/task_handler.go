package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/api/shared"
	"github.com/pzaichkin/taskdeck/internal/commands"
	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/platform/logger"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
)

// TaskHandler handles task API requests.
type TaskHandler struct {
	mediator  *mediator.Mediator
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(m *mediator.Mediator) *TaskHandler {
	return &TaskHandler{
		mediator:  m,
		validator: validator.New(),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	results, err := h.mediator.Handle(r.Context(), commands.CreateTask{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		IsComplete: req.IsComplete,
		Deadline:   req.Deadline,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, ok := results[0].(*domain.Task)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected create task result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// Update handles PUT /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	_, err := h.mediator.Handle(r.Context(), commands.UpdateTask{
		TaskID:     taskID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Deadline:   req.Deadline,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if _, err := h.mediator.Handle(r.Context(), commands.DeleteTask{TaskID: taskID}); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Complete handles POST /tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if _, err := h.mediator.Handle(r.Context(), commands.CompleteTask{TaskID: taskID}); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Uncomplete handles POST /tasks/{id}/uncomplete.
func (h *TaskHandler) Uncomplete(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if _, err := h.mediator.Handle(r.Context(), commands.UncompleteTask{TaskID: taskID}); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeCategory handles PUT /tasks/{id}/category.
func (h *TaskHandler) ChangeCategory(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	var req ChangeTaskCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	_, err := h.mediator.Handle(r.Context(), commands.ChangeTaskCategory{
		TaskID:     taskID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /tasks. An optional category_id query parameter narrows
// the result to one category.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	cmd := commands.GetAllTasks{UserID: userID}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category_id")
			return
		}
		cmd.CategoryID = &categoryID
	}

	results, err := h.mediator.Handle(r.Context(), cmd)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, ok := results[0].([]*domain.Task)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected list tasks result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list tasks")
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, NewTaskResponse(task))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
