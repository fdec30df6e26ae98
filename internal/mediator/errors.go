package mediator

import (
	"errors"
	"fmt"
)

// Mediator configuration errors. These indicate a wiring defect at startup,
// not a recoverable runtime condition, and should not be caught and hidden.
var (
	// ErrNotRegistered is the root of the not-registered error family.
	ErrNotRegistered = errors.New("handlers not registered")

	// ErrCommandHandlersNotRegistered is returned by Handle when no handlers
	// were registered for the command's type.
	ErrCommandHandlersNotRegistered = fmt.Errorf("%w for command", ErrNotRegistered)

	// ErrEventHandlersNotRegistered is returned by Publish when no handlers
	// were registered for an event's type.
	ErrEventHandlersNotRegistered = fmt.Errorf("%w for event", ErrNotRegistered)

	// ErrNoEvents is returned by Publish when called with an empty sequence.
	ErrNoEvents = errors.New("no events to publish")
)
