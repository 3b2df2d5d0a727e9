package event

import (
	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateType = "FIRequest"

// ---------------------------------------------------------------------------
// Request lifecycle events
// ---------------------------------------------------------------------------

// FIRequestCreated is raised when a new financing request enters the system.
type FIRequestCreated struct {
	events.BaseEvent
	ClientID  string `json:"client_id"`
	CreatedBy string `json:"created_by"`
}

func NewFIRequestCreated(requestID, tenantID, clientID, createdBy string) FIRequestCreated {
	return FIRequestCreated{
		BaseEvent: events.NewBaseEvent("fi.request.created", requestID, aggregateType, tenantID),
		ClientID:  clientID,
		CreatedBy: createdBy,
	}
}

// FIRequestSubmitted is raised when a draft request is submitted.
type FIRequestSubmitted struct {
	events.BaseEvent
	ActorID string `json:"actor_id"`
}

func NewFIRequestSubmitted(requestID, tenantID, actorID string) FIRequestSubmitted {
	return FIRequestSubmitted{
		BaseEvent: events.NewBaseEvent("fi.request.submitted", requestID, aggregateType, tenantID),
		ActorID:   actorID,
	}
}

// FIRequestApproved is raised when a request is approved.
type FIRequestApproved struct {
	events.BaseEvent
	ActorID string `json:"actor_id"`
	Score   int    `json:"score"`
	Band    string `json:"band"`
}

func NewFIRequestApproved(requestID, tenantID, actorID string, score int, band string) FIRequestApproved {
	return FIRequestApproved{
		BaseEvent: events.NewBaseEvent("fi.request.approved", requestID, aggregateType, tenantID),
		ActorID:   actorID,
		Score:     score,
		Band:      band,
	}
}

// FIRequestRejected is raised when a request is rejected.
type FIRequestRejected struct {
	events.BaseEvent
	ActorID string `json:"actor_id"`
	Reason  string `json:"reason"`
}

func NewFIRequestRejected(requestID, tenantID, actorID, reason string) FIRequestRejected {
	return FIRequestRejected{
		BaseEvent: events.NewBaseEvent("fi.request.rejected", requestID, aggregateType, tenantID),
		ActorID:   actorID,
		Reason:    reason,
	}
}

// FIRequestStatusChanged is raised for the remaining transitions
// (review pickup, needs_info, resubmission, completion, cancellation).
type FIRequestStatusChanged struct {
	events.BaseEvent
	ActorID    string `json:"actor_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Reason     string `json:"reason,omitempty"`
}

func NewFIRequestStatusChanged(requestID, tenantID, actorID, fromStatus, toStatus, reason string) FIRequestStatusChanged {
	return FIRequestStatusChanged{
		BaseEvent:  events.NewBaseEvent("fi.request.status_changed", requestID, aggregateType, tenantID),
		ActorID:    actorID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Reason:     reason,
	}
}

// ---------------------------------------------------------------------------
// Non-status mutation events
// ---------------------------------------------------------------------------

// FinancingCalculated is raised when a financing calculation is stored on
// the request.
type FinancingCalculated struct {
	events.BaseEvent
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

func NewFinancingCalculated(requestID, tenantID string, monthlyPayment, totalAmount decimal.Decimal) FinancingCalculated {
	return FinancingCalculated{
		BaseEvent:      events.NewBaseEvent("fi.request.financing_calculated", requestID, aggregateType, tenantID),
		MonthlyPayment: monthlyPayment,
		TotalAmount:    totalAmount,
	}
}

// CosignerAdded is raised when a co-signer is embedded in a request.
type CosignerAdded struct {
	events.BaseEvent
	CosignerID  string `json:"cosigner_id"`
	Name        string `json:"name"`
	CreditRange string `json:"credit_range"`
}

func NewCosignerAdded(requestID, tenantID, cosignerID, name, creditRange string) CosignerAdded {
	return CosignerAdded{
		BaseEvent:   events.NewBaseEvent("fi.request.cosigner_added", requestID, aggregateType, tenantID),
		CosignerID:  cosignerID,
		Name:        name,
		CreditRange: creditRange,
	}
}

// DocumentRequested is raised when a document is added to the collection
// workflow.
type DocumentRequested struct {
	events.BaseEvent
	DocumentID string `json:"document_id"`
	Name       string `json:"name"`
	Required   bool   `json:"required"`
}

func NewDocumentRequested(requestID, tenantID, documentID, name string, required bool) DocumentRequested {
	return DocumentRequested{
		BaseEvent:  events.NewBaseEvent("fi.request.document_requested", requestID, aggregateType, tenantID),
		DocumentID: documentID,
		Name:       name,
		Required:   required,
	}
}

// DocumentValidated is raised when an external validation verdict is
// recorded against a submitted document.
type DocumentValidated struct {
	events.BaseEvent
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
}

func NewDocumentValidated(requestID, tenantID, documentID, status string) DocumentValidated {
	return DocumentValidated{
		BaseEvent:  events.NewBaseEvent("fi.request.document_validated", requestID, aggregateType, tenantID),
		DocumentID: documentID,
		Status:     status,
	}
}
