package events

import (
	"context"
	"log/slog"

	"github.com/pzaichkin/taskdeck/internal/domain"
	"github.com/pzaichkin/taskdeck/internal/platform/logger"
)

// AuditHandler is an event handler that writes a structured audit record for
// every domain event it receives. Registering it for all event types gives a
// complete trail of state transitions in the application log.
type AuditHandler struct {
	logger *slog.Logger
}

// NewAuditHandler creates an AuditHandler. If logger is nil, a default
// logger will be used.
func NewAuditHandler(log *slog.Logger) *AuditHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuditHandler{
		logger: log.With(slog.String("component", "audit")),
	}
}

// Handle writes one audit record for the event. It returns a nil result and
// never fails: an audit write problem must not abort the operation that
// produced the event.
func (h *AuditHandler) Handle(ctx context.Context, event domain.Event) (any, error) {
	log := logger.FromContextOrDefault(ctx, h.logger)

	attrs := []any{
		slog.String("event_id", event.EventID().String()),
	}
	switch e := event.(type) {
	case domain.UserCreated:
		attrs = append(attrs,
			slog.String("event", "user_created"),
			slog.String("user_id", e.UserID.String()))
	case domain.UserDeleted:
		attrs = append(attrs,
			slog.String("event", "user_deleted"),
			slog.String("user_id", e.UserID.String()))
	case domain.CategoryCreated:
		attrs = append(attrs,
			slog.String("event", "category_created"),
			slog.String("category_id", e.CategoryID.String()),
			slog.String("user_id", e.UserID.String()))
	case domain.CategoryUpdated:
		attrs = append(attrs,
			slog.String("event", "category_updated"),
			slog.String("category_id", e.CategoryID.String()))
	case domain.CategoryDeleted:
		attrs = append(attrs,
			slog.String("event", "category_deleted"),
			slog.String("category_id", e.CategoryID.String()))
	case domain.TaskCreated:
		attrs = append(attrs,
			slog.String("event", "task_created"),
			slog.String("task_id", e.TaskID.String()),
			slog.String("user_id", e.UserID.String()))
	case domain.TaskDeleted:
		attrs = append(attrs,
			slog.String("event", "task_deleted"),
			slog.String("task_id", e.TaskID.String()))
	case domain.TaskCompleted:
		attrs = append(attrs,
			slog.String("event", "task_completed"),
			slog.String("task_id", e.TaskID.String()))
	case domain.TaskUncompleted:
		attrs = append(attrs,
			slog.String("event", "task_uncompleted"),
			slog.String("task_id", e.TaskID.String()))
	case domain.TaskCategoryChanged:
		attrs = append(attrs,
			slog.String("event", "task_category_changed"),
			slog.String("task_id", e.TaskID.String()),
			slog.String("category_id", e.CategoryID.String()))
	case domain.TaskUpdated:
		attrs = append(attrs,
			slog.String("event", "task_updated"),
			slog.String("task_id", e.TaskID.String()))
	default:
		attrs = append(attrs, slog.String("event", "unknown"))
	}

	log.Info("domain event", attrs...)
	return nil, nil
}
