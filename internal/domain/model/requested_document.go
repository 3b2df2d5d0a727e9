package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// ValidationVerdict is the recorded outcome of an external document
// validation call. The core stores the verdict; it never performs OCR itself.
type ValidationVerdict struct {
	IsValid    bool            `json:"is_valid"`
	Confidence decimal.Decimal `json:"confidence"`
	Notes      string          `json:"notes,omitempty"`
}

// RequestedDocument is one entry in a request's document-collection workflow.
// Duplicate names are legal: a document may be re-requested after rejection.
type RequestedDocument struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Type        string                      `json:"type"`
	Description string                      `json:"description,omitempty"`
	Required    bool                        `json:"required"`
	Status      valueobject.DocumentStatus  `json:"status"`
	URL         string                      `json:"url,omitempty"`
	Verdict     *ValidationVerdict          `json:"verdict,omitempty"`
	RequestedAt time.Time                   `json:"requested_at"`
	RequestedBy string                      `json:"requested_by"`
}
