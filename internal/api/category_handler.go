package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pzaichkin/taskdeck/internal/api/shared"
	"github.com/pzaichkin/taskdeck/internal/commands"
	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/platform/logger"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
)

// CategoryHandler handles category API requests.
type CategoryHandler struct {
	mediator  *mediator.Mediator
	validator *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler with the given
// dependencies.
func NewCategoryHandler(m *mediator.Mediator) *CategoryHandler {
	return &CategoryHandler{
		mediator:  m,
		validator: validator.New(),
	}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	results, err := h.mediator.Handle(r.Context(), commands.CreateCategory{
		UserID: userID,
		Title:  req.Title,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, ok := results[0].(*domain.Category)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected create category result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCategoryResponse(category))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	_, categoryID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	results, err := h.mediator.Handle(r.Context(), commands.UpdateCategory{
		CategoryID: categoryID,
		NewTitle:   req.Title,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, ok := results[0].(*domain.Category)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected update category result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCategoryResponse(category))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, categoryID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if _, err := h.mediator.Handle(r.Context(), commands.DeleteCategory{CategoryID: categoryID}); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	results, err := h.mediator.Handle(r.Context(), commands.GetAllCategories{UserID: userID})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	categories, ok := results[0].([]*domain.Category)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected list categories result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, NewCategoryResponse(category))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
