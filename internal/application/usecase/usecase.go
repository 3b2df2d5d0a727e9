package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// EventSink publishes an aggregate's accumulated domain events after a
// successful save. The save is already durable at that point, so publish
// failures are logged and swallowed rather than surfaced as operation
// failures.
type EventSink struct {
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEventSink wires a publisher and logger.
func NewEventSink(publisher port.EventPublisher, logger *slog.Logger) *EventSink {
	return &EventSink{publisher: publisher, logger: logger}
}

func (s *EventSink) publish(ctx context.Context, req model.FIRequest) {
	events := req.DomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("publish domain events",
			"request_id", req.ID(),
			"tenant_id", req.TenantID(),
			"event_count", len(events),
			"error", err)
	}
}

// checkVersion rejects writes based on a stale read.
func checkVersion(req model.FIRequest, expected int) error {
	if req.Version() != expected {
		return fmt.Errorf("version %d does not match current %d: %w",
			expected, req.Version(), valueobject.ErrConflict)
	}
	return nil
}
