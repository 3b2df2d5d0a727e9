package model

import (
	"fmt"
	"time"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// FIRequestSnapshot is the persistence representation of the aggregate:
// a closed, tagged record the document store serializes as one JSON
// document. Unknown or malformed shapes are rejected when loading, at the
// boundary.
type FIRequestSnapshot struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	ClientID  string `json:"client_id"`
	CreatedBy string `json:"created_by"`

	Status       valueobject.RequestStatus `json:"status"`
	PersonalInfo PersonalInfo              `json:"personal_info"`
	Employment   Employment                `json:"employment"`
	CreditInfo   CreditInfo                `json:"credit_info"`

	Financing     *FinancingCalculation `json:"financing_calculation,omitempty"`
	ApprovalScore *ApprovalScore        `json:"approval_score,omitempty"`
	CombinedScore *int                  `json:"combined_score,omitempty"`
	Cosigner      *Cosigner             `json:"cosigner,omitempty"`

	RequestedDocuments []RequestedDocument `json:"requested_documents,omitempty"`
	History            []HistoryEntry      `json:"history"`

	SellerNotes    string `json:"seller_notes,omitempty"`
	FIManagerNotes string `json:"fi_manager_notes,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot extracts the persistence representation of the aggregate.
// Domain events are not part of the snapshot.
func (r FIRequest) Snapshot() FIRequestSnapshot {
	return FIRequestSnapshot{
		ID:                 r.id,
		TenantID:           r.tenantID,
		ClientID:           r.clientID,
		CreatedBy:          r.createdBy,
		Status:             r.status,
		PersonalInfo:       r.personalInfo,
		Employment:         r.employment,
		CreditInfo:         r.creditInfo,
		Financing:          r.financing,
		ApprovalScore:      r.approvalScore,
		CombinedScore:      r.combinedScore,
		Cosigner:           r.cosigner,
		RequestedDocuments: copyDocuments(r.documents),
		History:            copyHistory(r.history),
		SellerNotes:        r.sellerNotes,
		FIManagerNotes:     r.fiManagerNotes,
		SubmittedAt:        r.submittedAt,
		ReviewedAt:         r.reviewedAt,
		Version:            r.version,
		CreatedAt:          r.createdAt,
		UpdatedAt:          r.updatedAt,
	}
}

// FromSnapshot rebuilds an aggregate from persistence without side-effects.
func FromSnapshot(s FIRequestSnapshot) (FIRequest, error) {
	if s.ID == "" || s.TenantID == "" {
		return FIRequest{}, fmt.Errorf("snapshot missing identity: %w", valueobject.ErrValidationFailed)
	}
	if s.Status.IsZero() {
		return FIRequest{}, fmt.Errorf("snapshot missing status: %w", valueobject.ErrValidationFailed)
	}
	if s.Version < 1 {
		return FIRequest{}, fmt.Errorf("snapshot version %d out of range: %w", s.Version, valueobject.ErrValidationFailed)
	}

	return FIRequest{
		id:             s.ID,
		tenantID:       s.TenantID,
		clientID:       s.ClientID,
		createdBy:      s.CreatedBy,
		status:         s.Status,
		personalInfo:   s.PersonalInfo,
		employment:     s.Employment,
		creditInfo:     s.CreditInfo,
		financing:      s.Financing,
		approvalScore:  s.ApprovalScore,
		combinedScore:  s.CombinedScore,
		cosigner:       s.Cosigner,
		documents:      copyDocuments(s.RequestedDocuments),
		history:        copyHistory(s.History),
		sellerNotes:    s.SellerNotes,
		fiManagerNotes: s.FIManagerNotes,
		submittedAt:    s.SubmittedAt,
		reviewedAt:     s.ReviewedAt,
		version:        s.Version,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}, nil
}
