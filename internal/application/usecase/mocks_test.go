package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/event"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

var testNow = time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)

// fixedClock returns the same instant on every call.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// mockRequestRepository is an in-memory stand-in with the same
// compare-and-swap save semantics as the Postgres adapter: an update only
// lands when the stored version equals the aggregate's loaded version, and
// the stored version is bumped on every update.
type mockRequestRepository struct {
	mu    sync.Mutex
	store map[string]model.FIRequestSnapshot

	saveFunc     func(ctx context.Context, req model.FIRequest) (model.FIRequest, error)
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.FIRequest, error)

	saveCalls int
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{store: make(map[string]model.FIRequestSnapshot)}
}

func storeKey(tenantID, id string) string { return tenantID + "/" + id }

func (m *mockRequestRepository) Save(ctx context.Context, req model.FIRequest) (model.FIRequest, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++

	snap := req.Snapshot()
	key := storeKey(snap.TenantID, snap.ID)

	stored, exists := m.store[key]
	if exists {
		if stored.Version != snap.Version {
			return model.FIRequest{}, fmt.Errorf("stale write at version %d: %w",
				snap.Version, valueobject.ErrConflict)
		}
		snap.Version++
	}
	m.store[key] = snap
	return model.FromSnapshot(snap)
}

func (m *mockRequestRepository) FindByID(ctx context.Context, tenantID, id string) (model.FIRequest, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap, ok := m.store[storeKey(tenantID, id)]
	if !ok {
		return model.FIRequest{}, fmt.Errorf("request %s: %w", id, valueobject.ErrNotFound)
	}
	return model.FromSnapshot(snap)
}

func (m *mockRequestRepository) FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.FIRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []model.FIRequest
	for _, snap := range m.store {
		if snap.TenantID != tenantID || snap.ClientID != clientID {
			continue
		}
		req, err := model.FromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, nil
}

type mockRuleRepository struct {
	rules []model.WorkflowRule
	err   error
}

func (m *mockRuleRepository) FindEnabledByTenant(ctx context.Context, tenantID string) ([]model.WorkflowRule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var enabled []model.WorkflowRule
	for _, r := range m.rules {
		if r.TenantID == tenantID && r.Enabled {
			enabled = append(enabled, r)
		}
	}
	return enabled, nil
}

type mockEventPublisher struct {
	mu        sync.Mutex
	published []event.DomainEvent
	err       error
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, events...)
	return nil
}

func (m *mockEventPublisher) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.published))
	for i, e := range m.published {
		types[i] = e.EventType()
	}
	return types
}

type notification struct {
	tenantID  string
	recipient string
	message   string
}

type mockNotifier struct {
	mu            sync.Mutex
	notifications []notification
	err           error
}

func (m *mockNotifier) Notify(ctx context.Context, tenantID, recipient, message string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, notification{tenantID, recipient, message})
	return nil
}

type mockValidator struct {
	verdict model.ValidationVerdict
	err     error
	calls   int
}

func (m *mockValidator) Validate(ctx context.Context, documentURL, documentType string) (model.ValidationVerdict, error) {
	m.calls++
	if m.err != nil {
		return model.ValidationVerdict{}, m.err
	}
	return m.verdict, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedDraft persists a fresh draft request in the mock repository and
// returns it at its stored version.
func seedDraft(t *testing.T, repo *mockRequestRepository) model.FIRequest {
	t.Helper()
	req, err := model.NewFIRequest(
		"tenant-001", "client-001", "seller-001",
		model.PersonalInfo{
			FirstName: "Maria",
			LastName:  "Lopez",
			Email:     "maria.lopez@example.com",
			Phone:     "+1-555-0101",
		},
		model.Employment{
			Employer:       "Acme Logistics",
			Position:       "Dispatcher",
			MonthsEmployed: 36,
			MonthlyIncome:  decimal.NewFromInt(4200),
		},
		model.CreditInfo{CreditRange: valueobject.CreditRangeGood},
		testNow,
	)
	require.NoError(t, err)

	saved, err := repo.Save(context.Background(), req)
	require.NoError(t, err)
	return saved
}
