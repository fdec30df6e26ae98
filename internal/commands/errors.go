package commands

import "errors"

// Application-level errors raised by command handlers. Not-found conditions
// reuse the store sentinel family (store.ErrUserNotFound and friends), so a
// caller can match any of them with errors.Is.
var (
	// ErrEmailAlreadyRegistered is returned by CreateUser when the email is
	// taken.
	ErrEmailAlreadyRegistered = errors.New("user with that email already exists")

	// ErrNotAuthorized is returned by SignInUser on a failed sign-in. The
	// message deliberately does not reveal whether the email or the password
	// was wrong.
	ErrNotAuthorized = errors.New("invalid email or password")
)
