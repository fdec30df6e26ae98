package mocks

import (
	"context"

	"github.com/pzaichkin/taskdeck/internal/domain"
)

// MockEventPublisher records every event passed to Publish.
type MockEventPublisher struct {
	PublishFn func(ctx context.Context, events []domain.Event) ([]any, error)

	// Published collects the events seen by the default implementation.
	Published []domain.Event
}

// NewMockEventPublisher creates a publisher that accepts all events.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(ctx context.Context, events []domain.Event) ([]any, error) {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, events)
	}
	m.Published = append(m.Published, events...)
	return make([]any, len(events)), nil
}
