package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/mediator"
)

type pingCommand struct{ Value string }

type otherCommand struct{}

// recordingHandler returns its tag and remembers every command it saw.
type recordingHandler struct {
	tag  string
	seen []mediator.Command
	err  error
}

func (h *recordingHandler) Handle(_ context.Context, command mediator.Command) (any, error) {
	h.seen = append(h.seen, command)
	if h.err != nil {
		return nil, h.err
	}
	return h.tag, nil
}

type recordingEventHandler struct {
	tag  string
	seen []domain.Event
	err  error
}

func (h *recordingEventHandler) Handle(_ context.Context, event domain.Event) (any, error) {
	h.seen = append(h.seen, event)
	if h.err != nil {
		return nil, h.err
	}
	return h.tag, nil
}

func TestHandleUnregisteredCommand(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	results, err := m.Handle(context.Background(), pingCommand{})

	assert.ErrorIs(t, err, mediator.ErrCommandHandlersNotRegistered)
	assert.ErrorIs(t, err, mediator.ErrNotRegistered)
	assert.Nil(t, results)
}

func TestHandleInvokesHandlersInRegistrationOrder(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	first := &recordingHandler{tag: "first"}
	second := &recordingHandler{tag: "second"}

	m.RegisterCommand(pingCommand{}, first)
	// Re-registering the same type extends the handler list.
	m.RegisterCommand(pingCommand{}, second)

	results, err := m.Handle(context.Background(), pingCommand{Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []any{"first", "second"}, results)
	require.Len(t, first.seen, 1)
	assert.Equal(t, pingCommand{Value: "hello"}, first.seen[0])
}

func TestHandleRoutesByCommandType(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	pingHandler := &recordingHandler{tag: "ping"}
	m.RegisterCommand(pingCommand{}, pingHandler)

	_, err := m.Handle(context.Background(), otherCommand{})
	assert.ErrorIs(t, err, mediator.ErrCommandHandlersNotRegistered)
	assert.Empty(t, pingHandler.seen, "no handler runs for an unregistered type")
}

func TestHandleAbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	boom := errors.New("boom")
	failing := &recordingHandler{tag: "failing", err: boom}
	after := &recordingHandler{tag: "after"}
	m.RegisterCommand(pingCommand{}, failing, after)

	results, err := m.Handle(context.Background(), pingCommand{})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, results)
	assert.Empty(t, after.seen, "handlers after the failure are not invoked")
}

func TestPublishEmptySequence(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	results, err := m.Publish(context.Background(), nil)
	assert.ErrorIs(t, err, mediator.ErrNoEvents)
	assert.Nil(t, results)
}

func TestPublishUnregisteredEventType(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	handler := &recordingEventHandler{tag: "audit"}
	m.RegisterEvent(domain.TaskCompleted{}, handler)

	_, err := m.Publish(context.Background(), []domain.Event{
		domain.TaskDeleted{EventMeta: domain.NewEventMeta()},
	})
	assert.ErrorIs(t, err, mediator.ErrEventHandlersNotRegistered)
	assert.Empty(t, handler.seen)
}

func TestPublishFlattensResultsInOrder(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	completedHandler := &recordingEventHandler{tag: "completed"}
	deletedHandler := &recordingEventHandler{tag: "deleted"}
	m.RegisterEvent(domain.TaskCompleted{}, completedHandler)
	m.RegisterEvent(domain.TaskDeleted{}, deletedHandler)

	events := []domain.Event{
		domain.TaskCompleted{EventMeta: domain.NewEventMeta()},
		domain.TaskDeleted{EventMeta: domain.NewEventMeta()},
		domain.TaskCompleted{EventMeta: domain.NewEventMeta()},
	}

	results, err := m.Publish(context.Background(), events)
	require.NoError(t, err)
	assert.Equal(t, []any{"completed", "deleted", "completed"}, results)
	assert.Len(t, completedHandler.seen, 2)
	assert.Len(t, deletedHandler.seen, 1)
}

func TestPublishAbortsOnHandlerFailure(t *testing.T) {
	t.Parallel()

	m := mediator.New(nil)
	boom := errors.New("boom")
	failing := &recordingEventHandler{tag: "failing", err: boom}
	deletedHandler := &recordingEventHandler{tag: "deleted"}
	m.RegisterEvent(domain.TaskCompleted{}, failing)
	m.RegisterEvent(domain.TaskDeleted{}, deletedHandler)

	_, err := m.Publish(context.Background(), []domain.Event{
		domain.TaskCompleted{EventMeta: domain.NewEventMeta()},
		domain.TaskDeleted{EventMeta: domain.NewEventMeta()},
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, deletedHandler.seen, "later events are not dispatched after a failure")
}
