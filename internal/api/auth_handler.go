package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pzaichkin/taskdeck/internal/api/shared"
	"github.com/pzaichkin/taskdeck/internal/commands"
	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/platform/logger"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	mediator   *mediator.Mediator
	jwtService auth.JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(m *mediator.Mediator, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		mediator:   m,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	results, err := h.mediator.Handle(r.Context(), commands.CreateUser{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, ok := results[0].(*domain.User)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected register result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID: &user.ID,
		Token:  token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	results, err := h.mediator.Handle(r.Context(), commands.SignInUser{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	token, ok := results[0].(domain.AccessToken)
	if !ok {
		logger.FromContext(r.Context()).Error("unexpected login result type")
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{Token: token.String()})
}

// DeleteAccount handles DELETE /auth/me. It removes the authenticated user
// and everything they own.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	if _, err := h.mediator.Handle(r.Context(), commands.DeleteUser{UserID: userID}); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
