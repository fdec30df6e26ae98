package commands

import (
	"context"
	"fmt"

	"github.com/pzaichkin/taskdeck/internal/domain"
)

// EventPublisher dispatches drained domain events to their registered
// handlers. The mediator satisfies it. Handlers constructed with a nil
// publisher skip publication entirely.
type EventPublisher interface {
	Publish(ctx context.Context, events []domain.Event) ([]any, error)
}

// eventSource is any entity carrying a drainable event buffer.
type eventSource interface {
	PullEvents() []domain.Event
}

// publishEvents drains the entity's buffered events and dispatches them.
// Publication happens after the store write: the mutation is already
// persisted, so a publish failure surfaces as a wiring defect rather than
// rolling anything back.
func publishEvents(ctx context.Context, publisher EventPublisher, source eventSource) error {
	if publisher == nil {
		return nil
	}
	events := source.PullEvents()
	if len(events) == 0 {
		return nil
	}
	if _, err := publisher.Publish(ctx, events); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}
	return nil
}
