package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/usecase"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
)

func TestActionDispatcher(t *testing.T) {
	newDispatcher := func(repo *mockRequestRepository, notifier *mockNotifier) *usecase.ActionDispatcher {
		return usecase.NewActionDispatcher(repo, notifier, fixedClock{now: testNow}, testLogger())
	}

	t.Run("set_field writes note fields", func(t *testing.T) {
		repo := newMockRequestRepository()
		dispatcher := newDispatcher(repo, &mockNotifier{})
		draft := seedDraft(t, repo)

		dispatcher.Dispatch("tenant-001", draft.ID(), "system", []model.RuleAction{
			{Type: model.RuleActionSetField, Field: "fiManagerNotes", Value: "auto-flagged for review"},
		})
		dispatcher.Wait()

		stored, err := repo.FindByID(context.Background(), "tenant-001", draft.ID())
		require.NoError(t, err)
		assert.Equal(t, "auto-flagged for review", stored.FIManagerNotes())
	})

	t.Run("set_field refuses fields outside the notes", func(t *testing.T) {
		repo := newMockRequestRepository()
		dispatcher := newDispatcher(repo, &mockNotifier{})
		draft := seedDraft(t, repo)

		dispatcher.Dispatch("tenant-001", draft.ID(), "system", []model.RuleAction{
			{Type: model.RuleActionSetField, Field: "status", Value: "approved"},
			{Type: model.RuleActionSetField, Field: "approvalScore", Value: "100"},
		})
		dispatcher.Wait()

		stored, err := repo.FindByID(context.Background(), "tenant-001", draft.ID())
		require.NoError(t, err)
		assert.Equal(t, "draft", stored.Status().String())
		_, scored := stored.ApprovalScore()
		assert.False(t, scored)
		assert.Equal(t, draft.Version(), stored.Version())
	})

	t.Run("unknown action types are dropped", func(t *testing.T) {
		repo := newMockRequestRepository()
		notifier := &mockNotifier{}
		dispatcher := newDispatcher(repo, notifier)
		draft := seedDraft(t, repo)

		dispatcher.Dispatch("tenant-001", draft.ID(), "system", []model.RuleAction{
			{Type: "escalate"},
			{Type: model.RuleActionNotify, Recipient: "fi-manager", Message: "still delivered"},
		})
		dispatcher.Wait()

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, "still delivered", notifier.notifications[0].message)
	})

	t.Run("later actions run after an earlier failure", func(t *testing.T) {
		repo := newMockRequestRepository()
		notifier := &mockNotifier{}
		dispatcher := newDispatcher(repo, notifier)

		dispatcher.Dispatch("tenant-001", "missing-request", "system", []model.RuleAction{
			{Type: model.RuleActionRequestDocument, DocumentName: "proof of income", DocumentType: "income"},
			{Type: model.RuleActionNotify, Recipient: "fi-manager", Message: "delivered anyway"},
		})
		dispatcher.Wait()

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, "delivered anyway", notifier.notifications[0].message)
	})
}
