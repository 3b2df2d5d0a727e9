package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
)

const actionTimeout = 5 * time.Second

// ActionDispatcher executes workflow rule actions asynchronously. Actions
// are best-effort: a failed notification or document request is logged and
// dropped, never retried against the caller.
type ActionDispatcher struct {
	repo     port.RequestRepository
	notifier port.Notifier
	clock    port.Clock
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewActionDispatcher wires dependencies.
func NewActionDispatcher(repo port.RequestRepository, notifier port.Notifier, clock port.Clock, logger *slog.Logger) *ActionDispatcher {
	return &ActionDispatcher{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// Dispatch runs the actions in the background and returns immediately. Each
// batch gets its own deadline detached from the request context.
func (d *ActionDispatcher) Dispatch(tenantID, requestID, actorID string, actions []model.RuleAction) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		for _, action := range actions {
			d.execute(ctx, tenantID, requestID, actorID, action)
		}
	}()
}

// Wait blocks until all in-flight action batches finish. Used on shutdown
// and in tests.
func (d *ActionDispatcher) Wait() {
	d.wg.Wait()
}

func (d *ActionDispatcher) execute(ctx context.Context, tenantID, requestID, actorID string, action model.RuleAction) {
	var err error
	switch action.Type {
	case model.RuleActionNotify:
		err = d.notifier.Notify(ctx, tenantID, action.Recipient, action.Message)
	case model.RuleActionRequestDocument:
		err = d.requestDocument(ctx, tenantID, requestID, actorID, action)
	case model.RuleActionSetField:
		err = d.setField(ctx, tenantID, requestID, actorID, action)
	default:
		d.logger.Warn("unknown rule action type",
			"type", action.Type,
			"request_id", requestID)
		return
	}
	if err != nil {
		d.logger.Error("execute rule action",
			"type", action.Type,
			"tenant_id", tenantID,
			"request_id", requestID,
			"error", err)
	}
}

func (d *ActionDispatcher) requestDocument(ctx context.Context, tenantID, requestID, actorID string, action model.RuleAction) error {
	req, err := d.repo.FindByID(ctx, tenantID, requestID)
	if err != nil {
		return err
	}
	next, _, err := req.RequestDocument(
		action.DocumentName, action.DocumentType, "", action.Required,
		actorID, d.clock.Now(),
	)
	if err != nil {
		return err
	}
	_, err = d.repo.Save(ctx, next)
	return err
}

// setField only touches the note fields; rules cannot write arbitrary
// request state.
func (d *ActionDispatcher) setField(ctx context.Context, tenantID, requestID, actorID string, action model.RuleAction) error {
	req, err := d.repo.FindByID(ctx, tenantID, requestID)
	if err != nil {
		return err
	}

	var sellerNotes, fiManagerNotes *string
	switch action.Field {
	case "sellerNotes":
		sellerNotes = &action.Value
	case "fiManagerNotes":
		fiManagerNotes = &action.Value
	default:
		d.logger.Warn("set_field action targets unsupported field",
			"field", action.Field,
			"request_id", requestID)
		return nil
	}

	next, err := req.UpdateNotes(sellerNotes, fiManagerNotes, actorID, d.clock.Now())
	if err != nil {
		return err
	}
	_, err = d.repo.Save(ctx, next)
	return err
}
