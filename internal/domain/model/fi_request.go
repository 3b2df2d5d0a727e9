package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/event"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// FIRequest aggregate root (Finance & Insurance request lifecycle)
// ---------------------------------------------------------------------------

// FIRequest is an immutable aggregate. Every mutation returns a new copy;
// each transition validates its precondition, appends exactly one history
// entry and records a domain event. The stored version backs optimistic
// concurrency in the repository.
type FIRequest struct {
	id        string
	tenantID  string
	clientID  string
	createdBy string

	status       valueobject.RequestStatus
	personalInfo PersonalInfo
	employment   Employment
	creditInfo   CreditInfo

	financing     *FinancingCalculation
	approvalScore *ApprovalScore
	combinedScore *int
	cosigner      *Cosigner

	documents []RequestedDocument
	history   []HistoryEntry

	sellerNotes    string
	fiManagerNotes string

	submittedAt *time.Time
	reviewedAt  *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time

	domainEvents []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewFIRequest creates a brand-new request in draft status.
func NewFIRequest(
	tenantID, clientID, createdBy string,
	personal PersonalInfo,
	employment Employment,
	credit CreditInfo,
	now time.Time,
) (FIRequest, error) {
	if tenantID == "" {
		return FIRequest{}, fmt.Errorf("tenant ID is required: %w", valueobject.ErrValidationFailed)
	}
	if clientID == "" {
		return FIRequest{}, fmt.Errorf("client ID is required: %w", valueobject.ErrValidationFailed)
	}
	if createdBy == "" {
		return FIRequest{}, fmt.Errorf("creating actor ID is required: %w", valueobject.ErrValidationFailed)
	}

	id := uuid.New().String()
	req := FIRequest{
		id:           id,
		tenantID:     tenantID,
		clientID:     clientID,
		createdBy:    createdBy,
		status:       valueobject.RequestStatusDraft,
		personalInfo: personal,
		employment:   employment,
		creditInfo:   credit,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}
	req.history = []HistoryEntry{{
		ActorID:   createdBy,
		Action:    ActionRequestCreated,
		ToStatus:  req.status.String(),
		Timestamp: now,
	}}
	req.domainEvents = append(req.domainEvents,
		event.NewFIRequestCreated(id, tenantID, clientID, createdBy))
	return req, nil
}

// ---------------------------------------------------------------------------
// Generic transition entry point
// ---------------------------------------------------------------------------

// TransitionTo applies the transition toward target. The returned bool is
// false when the call was a legal no-op (cancelling an already-cancelled
// request); callers skip persistence in that case.
func (r FIRequest) TransitionTo(
	target valueobject.RequestStatus,
	actorID, reason string,
	now time.Time,
) (FIRequest, bool, error) {
	// Idempotent cancel: a second cancel is a no-op, not an error.
	if target.Equal(valueobject.RequestStatusCancelled) &&
		r.status.Equal(valueobject.RequestStatusCancelled) {
		return r, false, nil
	}

	if !r.status.CanTransitionTo(target) {
		return r, false, fmt.Errorf("%s -> %s: %w",
			r.status.String(), target.String(), valueobject.ErrInvalidTransition)
	}

	var (
		next FIRequest
		err  error
	)
	switch target {
	case valueobject.RequestStatusSubmitted:
		next, err = r.Submit(actorID, now)
	case valueobject.RequestStatusUnderReview:
		if r.status.Equal(valueobject.RequestStatusNeedsInfo) {
			next, err = r.ResubmitInfo(actorID, now)
		} else {
			next, err = r.StartReview(actorID, now)
		}
	case valueobject.RequestStatusApproved:
		next, err = r.Approve(actorID, now)
	case valueobject.RequestStatusRejected:
		next, err = r.Reject(actorID, reason, now)
	case valueobject.RequestStatusNeedsInfo:
		next, err = r.RequestInfo(actorID, reason, now)
	case valueobject.RequestStatusCompleted:
		next, err = r.Complete(actorID, now)
	case valueobject.RequestStatusCancelled:
		next, err = r.Cancel(actorID, now)
	default:
		return r, false, fmt.Errorf("%s -> %s: %w",
			r.status.String(), target.String(), valueobject.ErrInvalidTransition)
	}
	if err != nil {
		return r, false, err
	}
	return next, true, nil
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Submit transitions draft -> submitted. Required applicant fields must be
// present; submittedAt is set exactly once.
func (r FIRequest) Submit(actorID string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusDraft) {
		return r, fmt.Errorf("%s -> submitted: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}
	if err := r.validateForSubmit(); err != nil {
		return r, err
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusSubmitted
	if next.submittedAt == nil {
		t := now
		next.submittedAt = &t
	}
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionRequestSubmitted,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestSubmitted(r.id, r.tenantID, actorID))
	return next, nil
}

// StartReview transitions submitted -> under_review on reviewer pickup.
func (r FIRequest) StartReview(actorID string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusSubmitted) {
		return r, fmt.Errorf("%s -> under_review: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusUnderReview
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionReviewStarted,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestStatusChanged(r.id, r.tenantID, actorID,
			r.status.String(), next.status.String(), ""))
	return next, nil
}

// Approve transitions under_review -> approved. The approval score must be
// known and every required document must be valid.
func (r FIRequest) Approve(actorID string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusUnderReview) {
		return r, fmt.Errorf("%s -> approved: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}
	if r.approvalScore == nil {
		return r, fmt.Errorf("approval score not computed: %w", valueobject.ErrPreconditionFailed)
	}
	if !r.AllRequiredDocumentsValid() {
		return r, fmt.Errorf("required documents not all valid: %w", valueobject.ErrPreconditionFailed)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusApproved
	next.setReviewedAt(now)
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionRequestApproved,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestApproved(r.id, r.tenantID, actorID,
			r.approvalScore.Score, r.approvalScore.Band.String()))
	return next, nil
}

// Reject transitions under_review -> rejected. A reason is required.
func (r FIRequest) Reject(actorID, reason string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusUnderReview) {
		return r, fmt.Errorf("%s -> rejected: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}
	if reason == "" {
		return r, fmt.Errorf("rejection reason is required: %w", valueobject.ErrValidationFailed)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusRejected
	next.setReviewedAt(now)
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionRequestRejected,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
		Notes:      reason,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestRejected(r.id, r.tenantID, actorID, reason))
	return next, nil
}

// RequestInfo transitions under_review -> needs_info. At least one note or
// document request must exist so the applicant knows what is missing.
func (r FIRequest) RequestInfo(actorID, reason string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusUnderReview) {
		return r, fmt.Errorf("%s -> needs_info: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}
	if reason == "" && r.sellerNotes == "" && r.fiManagerNotes == "" && len(r.documents) == 0 {
		return r, fmt.Errorf("needs_info requires a note or an outstanding document request: %w",
			valueobject.ErrPreconditionFailed)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusNeedsInfo
	next.setReviewedAt(now)
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionInfoRequested,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
		Notes:      reason,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestStatusChanged(r.id, r.tenantID, actorID,
			r.status.String(), next.status.String(), reason))
	return next, nil
}

// ResubmitInfo transitions needs_info -> under_review when the requested
// information has been provided.
func (r FIRequest) ResubmitInfo(actorID string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusNeedsInfo) {
		return r, fmt.Errorf("%s -> under_review: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusUnderReview
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionInfoResubmitted,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestStatusChanged(r.id, r.tenantID, actorID,
			r.status.String(), next.status.String(), ""))
	return next, nil
}

// Complete transitions approved -> completed on contract finalization.
func (r FIRequest) Complete(actorID string, now time.Time) (FIRequest, error) {
	if !r.status.Equal(valueobject.RequestStatusApproved) {
		return r, fmt.Errorf("%s -> completed: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusCompleted
	next.setReviewedAt(now)
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionRequestCompleted,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestStatusChanged(r.id, r.tenantID, actorID,
			r.status.String(), next.status.String(), ""))
	return next, nil
}

// Cancel transitions any non-terminal pre-completion status to cancelled.
// Cancelling an already-cancelled request is handled by TransitionTo as a
// no-op; calling Cancel directly on one is treated the same way.
func (r FIRequest) Cancel(actorID string, now time.Time) (FIRequest, error) {
	if r.status.Equal(valueobject.RequestStatusCancelled) {
		return r, nil
	}
	if !r.status.CanTransitionTo(valueobject.RequestStatusCancelled) {
		return r, fmt.Errorf("%s -> cancelled: %w", r.status.String(), valueobject.ErrInvalidTransition)
	}

	next := r.mutate(now)
	next.status = valueobject.RequestStatusCancelled
	next.appendHistory(HistoryEntry{
		ActorID:    actorID,
		Action:     ActionRequestCancelled,
		FromStatus: r.status.String(),
		ToStatus:   next.status.String(),
		Timestamp:  now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFIRequestStatusChanged(r.id, r.tenantID, actorID,
			r.status.String(), next.status.String(), ""))
	return next, nil
}

// ---------------------------------------------------------------------------
// Non-status mutations
// ---------------------------------------------------------------------------

// SetFinancing replaces the stored financing calculation wholesale.
func (r FIRequest) SetFinancing(calc FinancingCalculation, actorID string, now time.Time) (FIRequest, error) {
	if r.status.IsTerminal() {
		return r, fmt.Errorf("request is %s: %w", r.status.String(), valueobject.ErrPreconditionFailed)
	}

	next := r.mutate(now)
	c := calc
	next.financing = &c
	next.appendHistory(HistoryEntry{
		ActorID:   actorID,
		Action:    ActionFinancingCalculated,
		Timestamp: now,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewFinancingCalculated(r.id, r.tenantID, calc.MonthlyPayment, calc.TotalAmount))
	return next, nil
}

// WithApprovalScore stores a scoring result without its own history entry;
// scoring always rides along another externally-visible operation.
func (r FIRequest) WithApprovalScore(score ApprovalScore, now time.Time) FIRequest {
	next := r.mutate(now)
	s := score
	next.approvalScore = &s
	return next
}

// WithCombinedScore stores the cosigner-adjusted score and marks the
// cosigner verified; the scoring pass is its verification.
func (r FIRequest) WithCombinedScore(score int, now time.Time) FIRequest {
	next := r.mutate(now)
	s := score
	next.combinedScore = &s
	if next.cosigner != nil {
		c := *next.cosigner
		c.Status = valueobject.CosignerStatusVerified
		next.cosigner = &c
	}
	return next
}

// AddCosigner embeds a co-signer. At most one per request.
func (r FIRequest) AddCosigner(name string, creditRange valueobject.CreditRange, actorID string, now time.Time) (FIRequest, Cosigner, error) {
	if r.status.IsTerminal() {
		return r, Cosigner{}, fmt.Errorf("request is %s: %w", r.status.String(), valueobject.ErrPreconditionFailed)
	}
	if r.cosigner != nil {
		return r, Cosigner{}, fmt.Errorf("request already has a cosigner: %w", valueobject.ErrValidationFailed)
	}
	if name == "" {
		return r, Cosigner{}, fmt.Errorf("cosigner name is required: %w", valueobject.ErrValidationFailed)
	}
	if creditRange.IsZero() {
		return r, Cosigner{}, fmt.Errorf("cosigner credit range is required: %w", valueobject.ErrValidationFailed)
	}

	cosigner := Cosigner{
		ID:         uuid.New().String(),
		Name:       name,
		CreditInfo: CreditInfo{CreditRange: creditRange},
		Status:     valueobject.CosignerStatusPending,
		AddedAt:    now,
	}

	next := r.mutate(now)
	next.cosigner = &cosigner
	next.appendHistory(HistoryEntry{
		ActorID:   actorID,
		Action:    ActionCosignerAdded,
		Timestamp: now,
		Notes:     name,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewCosignerAdded(r.id, r.tenantID, cosigner.ID, name, creditRange.String()))
	return next, cosigner, nil
}

// UpdateNotes sets seller and/or F&I manager notes. Nil leaves a field
// unchanged; notes are mutable at any status.
func (r FIRequest) UpdateNotes(sellerNotes, fiManagerNotes *string, actorID string, now time.Time) (FIRequest, error) {
	if sellerNotes == nil && fiManagerNotes == nil {
		return r, fmt.Errorf("no note fields provided: %w", valueobject.ErrValidationFailed)
	}

	next := r.mutate(now)
	if sellerNotes != nil {
		next.sellerNotes = *sellerNotes
	}
	if fiManagerNotes != nil {
		next.fiManagerNotes = *fiManagerNotes
	}
	next.appendHistory(HistoryEntry{
		ActorID:   actorID,
		Action:    ActionNotesUpdated,
		Timestamp: now,
	})
	return next, nil
}

// ---------------------------------------------------------------------------
// Document workflow
// ---------------------------------------------------------------------------

// RequestDocument appends a document request. Duplicates by name are legal;
// re-requesting after rejection is a normal flow.
func (r FIRequest) RequestDocument(name, docType, description string, required bool, actorID string, now time.Time) (FIRequest, RequestedDocument, error) {
	if r.status.IsTerminal() {
		return r, RequestedDocument{}, fmt.Errorf("request is %s: %w", r.status.String(), valueobject.ErrPreconditionFailed)
	}
	if name == "" {
		return r, RequestedDocument{}, fmt.Errorf("document name is required: %w", valueobject.ErrValidationFailed)
	}

	doc := RequestedDocument{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        docType,
		Description: description,
		Required:    required,
		Status:      valueobject.DocumentStatusPending,
		RequestedAt: now,
		RequestedBy: actorID,
	}

	next := r.mutate(now)
	next.documents = append(next.documents, doc)
	next.appendHistory(HistoryEntry{
		ActorID:   actorID,
		Action:    ActionDocumentRequested,
		Timestamp: now,
		Notes:     name,
	})
	next.domainEvents = append(next.domainEvents,
		event.NewDocumentRequested(r.id, r.tenantID, doc.ID, name, required))
	return next, doc, nil
}

// SubmitDocument transitions a document pending -> submitted and records
// the upload location.
func (r FIRequest) SubmitDocument(documentID, url, actorID string, now time.Time) (FIRequest, RequestedDocument, error) {
	idx := r.documentIndex(documentID)
	if idx < 0 {
		return r, RequestedDocument{}, fmt.Errorf("document %s: %w", documentID, valueobject.ErrNotFound)
	}
	doc := r.documents[idx]
	if !doc.Status.Equal(valueobject.DocumentStatusPending) {
		return r, RequestedDocument{}, fmt.Errorf("document %s is %s, expected pending: %w",
			documentID, doc.Status.String(), valueobject.ErrInvalidTransition)
	}

	doc.Status = valueobject.DocumentStatusSubmitted
	doc.URL = url

	next := r.mutate(now)
	next.documents[idx] = doc
	next.appendHistory(HistoryEntry{
		ActorID:   actorID,
		Action:    ActionDocumentSubmitted,
		Timestamp: now,
		Notes:     doc.Name,
	})
	return next, doc, nil
}

// RecordDocumentValidation stores an external validation verdict and moves
// the document submitted -> valid or submitted -> needs_review.
func (r FIRequest) RecordDocumentValidation(documentID string, verdict ValidationVerdict, actorID string, now time.Time) (FIRequest, RequestedDocument, error) {
	idx := r.documentIndex(documentID)
	if idx < 0 {
		return r, RequestedDocument{}, fmt.Errorf("document %s: %w", documentID, valueobject.ErrNotFound)
	}
	doc := r.documents[idx]
	if !doc.Status.Equal(valueobject.DocumentStatusSubmitted) {
		return r, RequestedDocument{}, fmt.Errorf("document %s is %s, expected submitted: %w",
			documentID, doc.Status.String(), valueobject.ErrInvalidTransition)
	}

	if verdict.IsValid {
		doc.Status = valueobject.DocumentStatusValid
	} else {
		doc.Status = valueobject.DocumentStatusNeedsReview
	}
	v := verdict
	doc.Verdict = &v

	next := r.mutate(now)
	next.documents[idx] = doc
	next.appendHistory(HistoryEntry{
		ActorID:   actorID,
		Action:    ActionDocumentValidated,
		Timestamp: now,
		Notes:     fmt.Sprintf("%s: %s", doc.Name, doc.Status.String()),
	})
	next.domainEvents = append(next.domainEvents,
		event.NewDocumentValidated(r.id, r.tenantID, doc.ID, doc.Status.String()))
	return next, doc, nil
}

// AllRequiredDocumentsValid reports whether every required document has
// reached valid status. Consumed by the approval guard.
func (r FIRequest) AllRequiredDocumentsValid() bool {
	for _, doc := range r.documents {
		if doc.Required && !doc.Status.Equal(valueobject.DocumentStatusValid) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r FIRequest) ID() string                            { return r.id }
func (r FIRequest) TenantID() string                      { return r.tenantID }
func (r FIRequest) ClientID() string                      { return r.clientID }
func (r FIRequest) CreatedBy() string                     { return r.createdBy }
func (r FIRequest) Status() valueobject.RequestStatus     { return r.status }
func (r FIRequest) PersonalInfo() PersonalInfo            { return r.personalInfo }
func (r FIRequest) Employment() Employment                { return r.employment }
func (r FIRequest) CreditInfo() CreditInfo                { return r.creditInfo }
func (r FIRequest) SellerNotes() string                   { return r.sellerNotes }
func (r FIRequest) FIManagerNotes() string                { return r.fiManagerNotes }
func (r FIRequest) Version() int                          { return r.version }
func (r FIRequest) CreatedAt() time.Time                  { return r.createdAt }
func (r FIRequest) UpdatedAt() time.Time                  { return r.updatedAt }
func (r FIRequest) DomainEvents() []event.DomainEvent     { return r.domainEvents }

// Financing returns the last stored calculation, if any.
func (r FIRequest) Financing() (FinancingCalculation, bool) {
	if r.financing == nil {
		return FinancingCalculation{}, false
	}
	return *r.financing, true
}

// ApprovalScore returns the primary scoring result, if computed.
func (r FIRequest) ApprovalScore() (ApprovalScore, bool) {
	if r.approvalScore == nil {
		return ApprovalScore{}, false
	}
	return *r.approvalScore, true
}

// CombinedScore returns the cosigner-adjusted score, if computed.
func (r FIRequest) CombinedScore() (int, bool) {
	if r.combinedScore == nil {
		return 0, false
	}
	return *r.combinedScore, true
}

// Cosigner returns the embedded co-signer, if any.
func (r FIRequest) Cosigner() (Cosigner, bool) {
	if r.cosigner == nil {
		return Cosigner{}, false
	}
	return *r.cosigner, true
}

// Documents returns a copy of the requested-document list in request order.
func (r FIRequest) Documents() []RequestedDocument {
	if len(r.documents) == 0 {
		return nil
	}
	out := make([]RequestedDocument, len(r.documents))
	copy(out, r.documents)
	return out
}

// History returns a copy of the audit log, ordered oldest-first.
func (r FIRequest) History() []HistoryEntry {
	if len(r.history) == 0 {
		return nil
	}
	out := make([]HistoryEntry, len(r.history))
	copy(out, r.history)
	return out
}

// SubmittedAt returns when the request first left draft.
func (r FIRequest) SubmittedAt() (time.Time, bool) {
	if r.submittedAt == nil {
		return time.Time{}, false
	}
	return *r.submittedAt, true
}

// ReviewedAt returns when the request first reached a review outcome.
func (r FIRequest) ReviewedAt() (time.Time, bool) {
	if r.reviewedAt == nil {
		return time.Time{}, false
	}
	return *r.reviewedAt, true
}

// ClearEvents returns a copy with an empty event list (call after publishing).
func (r FIRequest) ClearEvents() FIRequest {
	next := r
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// mutate returns a copy with its own slices, ready for modification.
func (r FIRequest) mutate(now time.Time) FIRequest {
	next := r
	next.updatedAt = now
	next.documents = copyDocuments(r.documents)
	next.history = copyHistory(r.history)
	next.domainEvents = copyEvents(r.domainEvents)
	return next
}

func (r *FIRequest) appendHistory(entry HistoryEntry) {
	r.history = append(r.history, entry)
}

// setReviewedAt records the first review outcome; later outcomes never
// rewrite it.
func (r *FIRequest) setReviewedAt(now time.Time) {
	if r.reviewedAt == nil {
		t := now
		r.reviewedAt = &t
	}
}

func (r FIRequest) validateForSubmit() error {
	if r.personalInfo.FirstName == "" || r.personalInfo.LastName == "" {
		return fmt.Errorf("applicant name is required: %w", valueobject.ErrValidationFailed)
	}
	if !r.employment.MonthlyIncome.IsPositive() {
		return fmt.Errorf("applicant monthly income is required: %w", valueobject.ErrValidationFailed)
	}
	if r.creditInfo.CreditRange.IsZero() {
		return fmt.Errorf("applicant credit range is required: %w", valueobject.ErrValidationFailed)
	}
	return nil
}

func (r FIRequest) documentIndex(documentID string) int {
	for i, doc := range r.documents {
		if doc.ID == documentID {
			return i
		}
	}
	return -1
}

func copyDocuments(src []RequestedDocument) []RequestedDocument {
	if len(src) == 0 {
		return nil
	}
	dst := make([]RequestedDocument, len(src))
	copy(dst, src)
	return dst
}

func copyHistory(src []HistoryEntry) []HistoryEntry {
	if len(src) == 0 {
		return nil
	}
	dst := make([]HistoryEntry, len(src))
	copy(dst, src)
	return dst
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
