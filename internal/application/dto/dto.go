package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateRequestRequest carries the data needed to open a new financing
// request in draft.
type CreateRequestRequest struct {
	TenantID  string `json:"tenant_id"`
	ClientID  string `json:"client_id"`
	ActorID   string `json:"actor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Employer       string          `json:"employer"`
	Position       string          `json:"position"`
	MonthsEmployed int             `json:"months_employed"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`

	CreditRange string `json:"credit_range"`
}

// TransitionRequestRequest moves a request to a target status. Version is
// the caller's last-seen aggregate version.
type TransitionRequestRequest struct {
	TenantID     string `json:"tenant_id"`
	RequestID    string `json:"request_id"`
	ActorID      string `json:"actor_id"`
	TargetStatus string `json:"target_status"`
	Reason       string `json:"reason,omitempty"`
	Version      int    `json:"version"`
}

// SubmitRequestRequest submits a draft request for review.
type SubmitRequestRequest struct {
	TenantID  string `json:"tenant_id"`
	RequestID string `json:"request_id"`
	ActorID   string `json:"actor_id"`
	Version   int    `json:"version"`
}

// CalculateFinancingRequest recomputes a request's financing calculation.
type CalculateFinancingRequest struct {
	TenantID  string `json:"tenant_id"`
	RequestID string `json:"request_id"`
	ActorID   string `json:"actor_id"`
	Version   int    `json:"version"`

	VehiclePrice   decimal.Decimal `json:"vehicle_price"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	TradeInValue   decimal.Decimal `json:"trade_in_value"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	LoanTermMonths int             `json:"loan_term_months"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Fees           decimal.Decimal `json:"fees"`
}

// AddCosignerRequest attaches a cosigner to a request.
type AddCosignerRequest struct {
	TenantID    string `json:"tenant_id"`
	RequestID   string `json:"request_id"`
	ActorID     string `json:"actor_id"`
	Version     int    `json:"version"`
	Name        string `json:"name"`
	CreditRange string `json:"credit_range"`
}

// RequestDocumentRequest asks the client for a document.
type RequestDocumentRequest struct {
	TenantID    string `json:"tenant_id"`
	RequestID   string `json:"request_id"`
	ActorID     string `json:"actor_id"`
	Version     int    `json:"version"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// SubmitDocumentRequest records an uploaded document and optionally runs
// validation.
type SubmitDocumentRequest struct {
	TenantID   string `json:"tenant_id"`
	RequestID  string `json:"request_id"`
	DocumentID string `json:"document_id"`
	ActorID    string `json:"actor_id"`
	Version    int    `json:"version"`
	URL        string `json:"url"`
}

// RecordValidationRequest records an externally produced validation verdict
// for a submitted document.
type RecordValidationRequest struct {
	TenantID   string          `json:"tenant_id"`
	RequestID  string          `json:"request_id"`
	DocumentID string          `json:"document_id"`
	ActorID    string          `json:"actor_id"`
	Version    int             `json:"version"`
	IsValid    bool            `json:"is_valid"`
	Confidence decimal.Decimal `json:"confidence"`
	Notes      string          `json:"notes,omitempty"`
}

// UpdateNotesRequest updates seller and/or F&I manager notes. Nil fields
// are left unchanged.
type UpdateNotesRequest struct {
	TenantID       string  `json:"tenant_id"`
	RequestID      string  `json:"request_id"`
	ActorID        string  `json:"actor_id"`
	Version        int     `json:"version"`
	SellerNotes    *string `json:"seller_notes,omitempty"`
	FIManagerNotes *string `json:"fi_manager_notes,omitempty"`
}

// GetRequestRequest identifies a financing request to retrieve.
type GetRequestRequest struct {
	TenantID  string `json:"tenant_id"`
	RequestID string `json:"request_id"`
}

// ListRequestsRequest lists a client's financing requests.
type ListRequestsRequest struct {
	TenantID string `json:"tenant_id"`
	ClientID string `json:"client_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// FinancingResponse is the external representation of a financing
// calculation.
type FinancingResponse struct {
	VehiclePrice    decimal.Decimal  `json:"vehicle_price"`
	DownPayment     decimal.Decimal  `json:"down_payment"`
	TradeInValue    decimal.Decimal  `json:"trade_in_value"`
	InterestRate    decimal.Decimal  `json:"interest_rate"`
	LoanTermMonths  int              `json:"loan_term_months"`
	TaxRate         decimal.Decimal  `json:"tax_rate"`
	Fees            decimal.Decimal  `json:"fees"`
	MonthlyPayment  decimal.Decimal  `json:"monthly_payment"`
	TotalInterest   decimal.Decimal  `json:"total_interest"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	PrincipalAmount decimal.Decimal  `json:"principal_amount"`
	DTIRatio        *decimal.Decimal `json:"dti_ratio,omitempty"`
	Affordability   string           `json:"affordability,omitempty"`
}

// CosignerResponse is the external representation of a cosigner.
type CosignerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreditRange string    `json:"credit_range"`
	Status      string    `json:"status"`
	AddedAt     time.Time `json:"added_at"`
}

// DocumentResponse is the external representation of a requested document.
type DocumentResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required"`
	Status      string           `json:"status"`
	URL         string           `json:"url,omitempty"`
	IsValid     *bool            `json:"is_valid,omitempty"`
	Confidence  *decimal.Decimal `json:"confidence,omitempty"`
	RequestedAt time.Time        `json:"requested_at"`
}

// HistoryEntryResponse is one audit history entry.
type HistoryEntryResponse struct {
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
}

// FIRequestResponse is the external representation of a financing request.
type FIRequestResponse struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	ClientID  string `json:"client_id"`
	CreatedBy string `json:"created_by"`
	Status    string `json:"status"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Employer       string          `json:"employer"`
	Position       string          `json:"position"`
	MonthsEmployed int             `json:"months_employed"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	CreditRange    string          `json:"credit_range"`

	Financing     *FinancingResponse `json:"financing,omitempty"`
	ApprovalScore *int               `json:"approval_score,omitempty"`
	ApprovalBand  string             `json:"approval_band,omitempty"`
	CombinedScore *int               `json:"combined_score,omitempty"`
	Cosigner      *CosignerResponse  `json:"cosigner,omitempty"`

	Documents []DocumentResponse `json:"documents,omitempty"`

	SellerNotes    string `json:"seller_notes,omitempty"`
	FIManagerNotes string `json:"fi_manager_notes,omitempty"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HistoryResponse is the full audit history of a request.
type HistoryResponse struct {
	RequestID string                 `json:"request_id"`
	Entries   []HistoryEntryResponse `json:"entries"`
}
