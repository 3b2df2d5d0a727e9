package port

import (
	"context"
	"time"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/event"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// RequestRepository persists and retrieves financing requests. Save is
// conditioned on the aggregate's loaded version: when another writer won the
// race it fails with valueobject.ErrConflict and nothing is written. Status
// change, history append and version bump land in one atomic write; the
// returned aggregate carries the persisted version.
type RequestRepository interface {
	Save(ctx context.Context, req model.FIRequest) (model.FIRequest, error)
	FindByID(ctx context.Context, tenantID, id string) (model.FIRequest, error)
	FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.FIRequest, error)
}

// WorkflowRuleRepository loads tenant-scoped workflow rules. The core never
// writes rules.
type WorkflowRuleRepository interface {
	FindEnabledByTenant(ctx context.Context, tenantID string) ([]model.WorkflowRule, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// Notifier delivers fire-and-forget messages to an actor or role. Delivery
// failures never roll back a committed transition.
type Notifier interface {
	Notify(ctx context.Context, tenantID, recipient, message string) error
}

// DocumentValidator is the external OCR/credit-bureau provider. The core
// only records the returned verdict.
type DocumentValidator interface {
	Validate(ctx context.Context, documentURL, documentType string) (model.ValidationVerdict, error)
}

// Clock supplies the current time so tests control now() deterministically.
type Clock interface {
	Now() time.Time
}
