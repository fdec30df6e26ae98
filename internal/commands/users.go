package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
	"github.com/pzaichkin/taskdeck/internal/store"
)

// CreateUser registers a new user account.
type CreateUser struct {
	Email    string
	Password string
}

// CreateUserHandler handles CreateUser. It returns the created *domain.User.
type CreateUserHandler struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	events EventPublisher
}

// NewCreateUserHandler creates a CreateUserHandler with its dependencies.
func NewCreateUserHandler(users store.UserStore, hasher auth.PasswordHasher, events EventPublisher) *CreateUserHandler {
	return &CreateUserHandler{users: users, hasher: hasher, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *CreateUserHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(CreateUser)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	exists, err := h.users.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyRegistered, cmd.Email)
	}

	email, err := domain.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	password, err := domain.NewPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(email, password)

	hashed, err := h.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	if err := h.users.Create(ctx, user, hashed); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser marks a user deleted and removes them from storage.
type DeleteUser struct {
	UserID uuid.UUID
}

// DeleteUserHandler handles DeleteUser. It returns a nil result.
type DeleteUserHandler struct {
	users  store.UserStore
	events EventPublisher
}

// NewDeleteUserHandler creates a DeleteUserHandler with its dependencies.
func NewDeleteUserHandler(users store.UserStore, events EventPublisher) *DeleteUserHandler {
	return &DeleteUserHandler{users: users, events: events}
}

// Handle implements mediator.CommandHandler.
func (h *DeleteUserHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(DeleteUser)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	user, err := h.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", store.ErrUserNotFound, cmd.UserID)
		}
		return nil, err
	}

	user.Delete()
	if err := h.users.Delete(ctx, cmd.UserID); err != nil {
		return nil, err
	}
	if err := publishEvents(ctx, h.events, user); err != nil {
		return nil, err
	}
	return nil, nil
}

// SignInUser authenticates a user and issues an access token.
type SignInUser struct {
	Email    string
	Password string
}

// SignInUserHandler handles SignInUser. It returns a domain.AccessToken.
type SignInUserHandler struct {
	users    store.UserStore
	verifier auth.PasswordVerifier
	tokens   auth.JWTService
}

// NewSignInUserHandler creates a SignInUserHandler with its dependencies.
func NewSignInUserHandler(
	users store.UserStore,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
) *SignInUserHandler {
	return &SignInUserHandler{users: users, verifier: verifier, tokens: tokens}
}

// Handle implements mediator.CommandHandler.
func (h *SignInUserHandler) Handle(ctx context.Context, command mediator.Command) (any, error) {
	cmd, ok := command.(SignInUser)
	if !ok {
		return nil, fmt.Errorf("unexpected command type %T", command)
	}

	userID, hashed, err := h.users.CredentialsByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	if err := h.verifier.Compare(hashed, cmd.Password); err != nil {
		return nil, ErrNotAuthorized
	}

	signed, err := h.tokens.GenerateToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return domain.NewAccessToken(signed), nil
}
