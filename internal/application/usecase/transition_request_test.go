package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/application/usecase"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/service"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

type transitionFixture struct {
	repo       *mockRequestRepository
	ruleRepo   *mockRuleRepository
	publisher  *mockEventPublisher
	notifier   *mockNotifier
	dispatcher *usecase.ActionDispatcher
	uc         *usecase.TransitionRequestUseCase
}

func newTransitionFixture() *transitionFixture {
	repo := newMockRequestRepository()
	ruleRepo := &mockRuleRepository{}
	publisher := &mockEventPublisher{}
	notifier := &mockNotifier{}
	logger := testLogger()
	clock := fixedClock{now: testNow}

	dispatcher := usecase.NewActionDispatcher(repo, notifier, clock, logger)
	uc := usecase.NewTransitionRequestUseCase(
		repo,
		ruleRepo,
		usecase.NewEventSink(publisher, logger),
		service.NewApprovalScorer(service.DefaultScoringWeights()),
		service.NewCosignerCombiner(),
		service.NewRuleEngine(),
		dispatcher,
		clock,
		logger,
	)
	return &transitionFixture{
		repo:       repo,
		ruleRepo:   ruleRepo,
		publisher:  publisher,
		notifier:   notifier,
		dispatcher: dispatcher,
		uc:         uc,
	}
}

func (f *transitionFixture) transition(t *testing.T, req model.FIRequest, target string) dto.FIRequestResponse {
	t.Helper()
	resp, err := f.uc.Execute(context.Background(), dto.TransitionRequestRequest{
		TenantID:     req.TenantID(),
		RequestID:    req.ID(),
		ActorID:      "manager-001",
		TargetStatus: target,
		Version:      req.Version(),
	})
	require.NoError(t, err)
	return resp
}

func TestTransitionRequestUseCase(t *testing.T) {
	t.Run("submission computes the approval score in the same write", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)

		resp := f.transition(t, draft, "submitted")

		assert.Equal(t, "submitted", resp.Status)
		assert.Equal(t, 2, resp.Version)
		require.NotNil(t, resp.ApprovalScore)
		// credit good = 75, tenure 36mo = 75, no financing yet = 100.
		assert.Equal(t, 80, *resp.ApprovalScore)
		assert.Equal(t, "good", resp.ApprovalBand)
		assert.Nil(t, resp.CombinedScore)
		require.NotNil(t, resp.SubmittedAt)

		assert.Equal(t, []string{"fi.request.submitted"}, f.publisher.eventTypes())
	})

	t.Run("submission with a cosigner also computes the combined score", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)

		withCosigner, _, err := draft.AddCosigner("Jordan Ruiz", valueobject.CreditRangeExcellent, "seller-001", testNow)
		require.NoError(t, err)
		saved, err := f.repo.Save(context.Background(), withCosigner)
		require.NoError(t, err)

		resp := f.transition(t, saved, "submitted")

		require.NotNil(t, resp.ApprovalScore)
		require.NotNil(t, resp.CombinedScore)
		// 80*0.7 + 95*0.3 = 84.5 -> 85
		assert.Equal(t, 85, *resp.CombinedScore)
	})

	t.Run("approval without a score fails the precondition", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)
		submitted := f.transition(t, draft, "submitted")

		current, err := f.repo.FindByID(context.Background(), "tenant-001", submitted.ID)
		require.NoError(t, err)
		reviewing := f.transition(t, current, "under_review")

		// Strip the score to exercise the guard.
		snap, err := f.repo.FindByID(context.Background(), "tenant-001", reviewing.ID)
		require.NoError(t, err)
		bare := snap.Snapshot()
		bare.ApprovalScore = nil
		stripped, err := model.FromSnapshot(bare)
		require.NoError(t, err)
		_, err = f.repo.Save(context.Background(), stripped)
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), dto.TransitionRequestRequest{
			TenantID:     "tenant-001",
			RequestID:    reviewing.ID,
			ActorID:      "manager-001",
			TargetStatus: "approved",
			Version:      reviewing.Version + 1,
		})
		assert.ErrorIs(t, err, valueobject.ErrPreconditionFailed)
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)
		submitted := f.transition(t, draft, "submitted")
		current, err := f.repo.FindByID(context.Background(), "tenant-001", submitted.ID)
		require.NoError(t, err)
		reviewing := f.transition(t, current, "under_review")

		_, err = f.uc.Execute(context.Background(), dto.TransitionRequestRequest{
			TenantID:     "tenant-001",
			RequestID:    reviewing.ID,
			ActorID:      "manager-001",
			TargetStatus: "rejected",
			Version:      reviewing.Version,
		})
		assert.ErrorIs(t, err, valueobject.ErrValidationFailed)
	})

	t.Run("cancelling a cancelled request is a no-op without a save", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)
		cancelled := f.transition(t, draft, "cancelled")

		saves := f.repo.saveCalls
		current, err := f.repo.FindByID(context.Background(), "tenant-001", cancelled.ID)
		require.NoError(t, err)
		again := f.transition(t, current, "cancelled")

		assert.Equal(t, "cancelled", again.Status)
		assert.Equal(t, cancelled.Version, again.Version)
		assert.Equal(t, saves, f.repo.saveCalls)
	})

	t.Run("stale version is rejected before any state change", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)
		f.transition(t, draft, "submitted")

		_, err := f.uc.Execute(context.Background(), dto.TransitionRequestRequest{
			TenantID:     "tenant-001",
			RequestID:    draft.ID(),
			ActorID:      "manager-001",
			TargetStatus: "cancelled",
			Version:      draft.Version(), // already superseded
		})
		assert.ErrorIs(t, err, valueobject.ErrConflict)
	})

	t.Run("unknown target status is rejected", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)

		_, err := f.uc.Execute(context.Background(), dto.TransitionRequestRequest{
			TenantID:     "tenant-001",
			RequestID:    draft.ID(),
			ActorID:      "manager-001",
			TargetStatus: "archived",
			Version:      draft.Version(),
		})
		assert.ErrorContains(t, err, "parse target status")
	})

	t.Run("matched rules dispatch their actions after the commit", func(t *testing.T) {
		f := newTransitionFixture()
		f.ruleRepo.rules = []model.WorkflowRule{{
			ID:       "rule-1",
			TenantID: "tenant-001",
			Name:     "notify manager on submission",
			Enabled:  true,
			Trigger:  model.RuleTrigger{ToStatus: "submitted"},
			Actions: []model.RuleAction{
				{Type: model.RuleActionNotify, Recipient: "fi-manager", Message: "new request submitted"},
				{Type: model.RuleActionRequestDocument, DocumentName: "proof of income", DocumentType: "income", Required: true},
			},
		}}

		draft := seedDraft(t, f.repo)
		resp := f.transition(t, draft, "submitted")
		f.dispatcher.Wait()

		require.Len(t, f.notifier.notifications, 1)
		assert.Equal(t, "fi-manager", f.notifier.notifications[0].recipient)
		assert.Equal(t, "new request submitted", f.notifier.notifications[0].message)

		stored, err := f.repo.FindByID(context.Background(), "tenant-001", resp.ID)
		require.NoError(t, err)
		docs := stored.Documents()
		require.Len(t, docs, 1)
		assert.Equal(t, "proof of income", docs[0].Name)
		assert.True(t, docs[0].Required)
	})

	t.Run("rule load failure never fails the transition", func(t *testing.T) {
		f := newTransitionFixture()
		f.ruleRepo.err = errors.New("rules table unavailable")

		draft := seedDraft(t, f.repo)
		resp := f.transition(t, draft, "submitted")
		assert.Equal(t, "submitted", resp.Status)
	})

	t.Run("notifier failure never fails the transition", func(t *testing.T) {
		f := newTransitionFixture()
		f.notifier.err = errors.New("notification channel down")
		f.ruleRepo.rules = []model.WorkflowRule{{
			ID: "rule-1", TenantID: "tenant-001", Name: "notify", Enabled: true,
			Trigger: model.RuleTrigger{ToStatus: "submitted"},
			Actions: []model.RuleAction{{Type: model.RuleActionNotify, Recipient: "fi-manager", Message: "x"}},
		}}

		draft := seedDraft(t, f.repo)
		resp := f.transition(t, draft, "submitted")
		f.dispatcher.Wait()
		assert.Equal(t, "submitted", resp.Status)
	})
}

func TestTransitionConcurrency(t *testing.T) {
	t.Run("exactly one of two racing writers wins", func(t *testing.T) {
		f := newTransitionFixture()
		draft := seedDraft(t, f.repo)

		targets := []string{"submitted", "cancelled"}
		errs := make([]error, len(targets))

		var wg sync.WaitGroup
		for i, target := range targets {
			wg.Add(1)
			go func(i int, target string) {
				defer wg.Done()
				_, errs[i] = f.uc.Execute(context.Background(), dto.TransitionRequestRequest{
					TenantID:     "tenant-001",
					RequestID:    draft.ID(),
					ActorID:      "actor",
					TargetStatus: target,
					Version:      draft.Version(),
				})
			}(i, target)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.ErrorIs(t, err, valueobject.ErrConflict)
			}
		}
		assert.Equal(t, 1, winners)

		stored, err := f.repo.FindByID(context.Background(), "tenant-001", draft.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Version())
	})
}
