// Package mediator implements a synchronous in-process router from command
// and event types to their registered handler instances. Registration is
// static: the routing tables are populated once at startup and never mutated
// afterwards, so a missing entry is a wiring defect, not a runtime condition.
package mediator

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/pzaichkin/taskdeck/internal/domain"
)

// Command is a request to perform one state-changing or read operation.
// Concrete commands are immutable data records; routing is by their dynamic
// type.
type Command any

// CommandHandler processes a single command type. Implementations are bound
// to exactly one command type at registration time and may assume Handle is
// only ever called with that type.
type CommandHandler interface {
	Handle(ctx context.Context, command Command) (any, error)
}

// EventHandler processes domain events dispatched through Publish.
type EventHandler interface {
	Handle(ctx context.Context, event domain.Event) (any, error)
}

// Mediator routes commands and events to their handlers. It is safe for
// concurrent Handle/Publish calls once registration is finished; Register*
// calls must all happen before the mediator is used.
type Mediator struct {
	commands map[reflect.Type][]CommandHandler
	events   map[reflect.Type][]EventHandler
	logger   *slog.Logger
}

// New creates an empty mediator. If logger is nil the default logger is used.
func New(logger *slog.Logger) *Mediator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mediator{
		commands: make(map[reflect.Type][]CommandHandler),
		events:   make(map[reflect.Type][]EventHandler),
		logger:   logger.With(slog.String("component", "mediator")),
	}
}

// RegisterCommand associates handlers with the dynamic type of the given
// command value. Registration is append-only: registering the same type
// again extends its handler list in order.
func (m *Mediator) RegisterCommand(command Command, handlers ...CommandHandler) {
	t := reflect.TypeOf(command)
	m.commands[t] = append(m.commands[t], handlers...)
	m.logger.Debug("registered command handlers",
		slog.String("command", t.String()),
		slog.Int("handler_count", len(m.commands[t])))
}

// RegisterEvent associates handlers with the dynamic type of the given event
// value. Registration is append-only, as with RegisterCommand.
func (m *Mediator) RegisterEvent(event domain.Event, handlers ...EventHandler) {
	t := reflect.TypeOf(event)
	m.events[t] = append(m.events[t], handlers...)
	m.logger.Debug("registered event handlers",
		slog.String("event", t.String()),
		slog.Int("handler_count", len(m.events[t])))
}

// Handle routes the command to every handler registered for its type,
// invoking them sequentially in registration order and collecting their
// results in that order. A handler failure aborts the remaining invocations
// and propagates. If no handlers were ever registered for the type, Handle
// fails with ErrCommandHandlersNotRegistered before invoking anything.
func (m *Mediator) Handle(ctx context.Context, command Command) ([]any, error) {
	t := reflect.TypeOf(command)
	handlers, ok := m.commands[t]
	if !ok || len(handlers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCommandHandlersNotRegistered, t)
	}

	results := make([]any, 0, len(handlers))
	for _, handler := range handlers {
		result, err := handler.Handle(ctx, command)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Publish dispatches an ordered sequence of events. Every event's type must
// have registered handlers; an empty sequence or an event of an unregistered
// type fails with ErrEventHandlersNotRegistered without invoking any handler
// for that event (handlers for preceding events will already have run, with
// no rollback). Results from all handlers of all events are flattened
// into one ordered list.
func (m *Mediator) Publish(ctx context.Context, events []domain.Event) ([]any, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	var results []any
	for _, event := range events {
		t := reflect.TypeOf(event)
		handlers, ok := m.events[t]
		if !ok || len(handlers) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEventHandlersNotRegistered, t)
		}
		for _, handler := range handlers {
			result, err := handler.Handle(ctx, event)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}
