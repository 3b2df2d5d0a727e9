package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/application/usecase"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

func TestGetRequestUseCase(t *testing.T) {
	repo := newMockRequestRepository()
	uc := usecase.NewGetRequestUseCase(repo)
	draft := seedDraft(t, repo)

	t.Run("returns the stored request", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.GetRequestRequest{
			TenantID:  "tenant-001",
			RequestID: draft.ID(),
		})
		require.NoError(t, err)
		assert.Equal(t, draft.ID(), resp.ID)
		assert.Equal(t, "draft", resp.Status)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.GetRequestRequest{
			TenantID:  "tenant-001",
			RequestID: "missing",
		})
		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})

	t.Run("requests are invisible across tenants", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.GetRequestRequest{
			TenantID:  "tenant-002",
			RequestID: draft.ID(),
		})
		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})
}

func TestGetHistoryUseCase(t *testing.T) {
	repo := newMockRequestRepository()
	uc := usecase.NewGetHistoryUseCase(repo)
	draft := seedDraft(t, repo)

	submitted, err := draft.Submit("seller-001", testNow)
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), submitted)
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), dto.GetRequestRequest{
		TenantID:  "tenant-001",
		RequestID: draft.ID(),
	})
	require.NoError(t, err)

	assert.Equal(t, draft.ID(), resp.RequestID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "request_created", resp.Entries[0].Action)
	assert.Equal(t, "request_submitted", resp.Entries[1].Action)
}

func TestListRequestsUseCase(t *testing.T) {
	repo := newMockRequestRepository()
	uc := usecase.NewListRequestsUseCase(repo)

	seedDraft(t, repo)
	seedDraft(t, repo)

	other, err := model.NewFIRequest(
		"tenant-001", "client-002", "seller-001",
		model.PersonalInfo{FirstName: "Ben", LastName: "Okafor", Email: "ben@example.com", Phone: "+1-555-0102"},
		model.Employment{Employer: "Acme", Position: "Clerk", MonthsEmployed: 12, MonthlyIncome: decimal.NewFromInt(3000)},
		model.CreditInfo{CreditRange: valueobject.CreditRangeFair},
		testNow,
	)
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), other)
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), dto.ListRequestsRequest{
		TenantID: "tenant-001",
		ClientID: "client-001",
	})
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	for _, r := range resp {
		assert.Equal(t, "client-001", r.ClientID)
	}
}

func TestUpdateNotesUseCase(t *testing.T) {
	newUC := func(repo *mockRequestRepository) *usecase.UpdateNotesUseCase {
		return usecase.NewUpdateNotesUseCase(
			repo, usecase.NewEventSink(&mockEventPublisher{}, testLogger()), fixedClock{now: testNow})
	}

	t.Run("updates only the provided fields", func(t *testing.T) {
		repo := newMockRequestRepository()
		uc := newUC(repo)
		draft := seedDraft(t, repo)

		notes := "customer prefers a 60 month term"
		resp, err := uc.Execute(context.Background(), dto.UpdateNotesRequest{
			TenantID:    "tenant-001",
			RequestID:   draft.ID(),
			ActorID:     "seller-001",
			Version:     draft.Version(),
			SellerNotes: &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, notes, resp.SellerNotes)
		assert.Empty(t, resp.FIManagerNotes)
	})

	t.Run("rejects a no-op update", func(t *testing.T) {
		repo := newMockRequestRepository()
		uc := newUC(repo)
		draft := seedDraft(t, repo)

		_, err := uc.Execute(context.Background(), dto.UpdateNotesRequest{
			TenantID:  "tenant-001",
			RequestID: draft.ID(),
			ActorID:   "seller-001",
			Version:   draft.Version(),
		})
		assert.ErrorIs(t, err, valueobject.ErrValidationFailed)
	})
}

func TestRequestDocumentUseCase(t *testing.T) {
	repo := newMockRequestRepository()
	uc := usecase.NewRequestDocumentUseCase(
		repo, usecase.NewEventSink(&mockEventPublisher{}, testLogger()), fixedClock{now: testNow})
	draft := seedDraft(t, repo)

	resp, err := uc.Execute(context.Background(), dto.RequestDocumentRequest{
		TenantID:  "tenant-001",
		RequestID: draft.ID(),
		ActorID:   "seller-001",
		Version:   draft.Version(),
		Name:      "proof of income",
		Type:      "income",
		Required:  true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "pending", resp.Documents[0].Status)
	assert.True(t, resp.Documents[0].Required)
}

func TestRecordValidationUseCase(t *testing.T) {
	repo := newMockRequestRepository()
	uc := usecase.NewRecordValidationUseCase(
		repo, usecase.NewEventSink(&mockEventPublisher{}, testLogger()), fixedClock{now: testNow})

	req, doc := seedDraftWithDocument(t, repo)
	next, _, err := req.SubmitDocument(doc.ID, "s3://docs/income.pdf", "client-001", testNow)
	require.NoError(t, err)
	saved, err := repo.Save(context.Background(), next)
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), dto.RecordValidationRequest{
		TenantID:   "tenant-001",
		RequestID:  saved.ID(),
		DocumentID: doc.ID,
		ActorID:    "manager-001",
		Version:    saved.Version(),
		IsValid:    false,
		Confidence: decimal.RequireFromString("0.41"),
		Notes:      "illegible scan",
	})
	require.NoError(t, err)

	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "needs_review", resp.Documents[0].Status)
	require.NotNil(t, resp.Documents[0].IsValid)
	assert.False(t, *resp.Documents[0].IsValid)
}

func TestSubmitRequestUseCase(t *testing.T) {
	f := newTransitionFixture()
	uc := usecase.NewSubmitRequestUseCase(f.uc)
	draft := seedDraft(t, f.repo)

	resp, err := uc.Execute(context.Background(), dto.SubmitRequestRequest{
		TenantID:  "tenant-001",
		RequestID: draft.ID(),
		ActorID:   "seller-001",
		Version:   draft.Version(),
	})
	require.NoError(t, err)
	assert.Equal(t, "submitted", resp.Status)
	assert.NotNil(t, resp.ApprovalScore)
}
