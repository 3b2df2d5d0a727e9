package valueobject

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// DocumentStatus – immutable value object
// ---------------------------------------------------------------------------

// DocumentStatus represents the validation stage of a requested document.
type DocumentStatus struct {
	value string
}

const (
	documentStatusPending     = "pending"
	documentStatusSubmitted   = "submitted"
	documentStatusValid       = "valid"
	documentStatusNeedsReview = "needs_review"
)

var (
	DocumentStatusPending     = DocumentStatus{value: documentStatusPending}
	DocumentStatusSubmitted   = DocumentStatus{value: documentStatusSubmitted}
	DocumentStatusValid       = DocumentStatus{value: documentStatusValid}
	DocumentStatusNeedsReview = DocumentStatus{value: documentStatusNeedsReview}
)

var validDocumentStatuses = map[string]DocumentStatus{
	documentStatusPending:     DocumentStatusPending,
	documentStatusSubmitted:   DocumentStatusSubmitted,
	documentStatusValid:       DocumentStatusValid,
	documentStatusNeedsReview: DocumentStatusNeedsReview,
}

// NewDocumentStatus creates a DocumentStatus from a raw string.
func NewDocumentStatus(s string) (DocumentStatus, error) {
	v, ok := validDocumentStatuses[s]
	if !ok {
		return DocumentStatus{}, fmt.Errorf("invalid document status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s DocumentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s DocumentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s DocumentStatus) Equal(other DocumentStatus) bool { return s.value == other.value }

// MarshalJSON implements json.Marshaler.
func (s DocumentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown statuses.
func (s *DocumentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewDocumentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ---------------------------------------------------------------------------
// CosignerStatus – immutable value object
// ---------------------------------------------------------------------------

// CosignerStatus represents the verification stage of a co-signer.
type CosignerStatus struct {
	value string
}

const (
	cosignerStatusPending  = "pending"
	cosignerStatusVerified = "verified"
	cosignerStatusRejected = "rejected"
)

var (
	CosignerStatusPending  = CosignerStatus{value: cosignerStatusPending}
	CosignerStatusVerified = CosignerStatus{value: cosignerStatusVerified}
	CosignerStatusRejected = CosignerStatus{value: cosignerStatusRejected}
)

var validCosignerStatuses = map[string]CosignerStatus{
	cosignerStatusPending:  CosignerStatusPending,
	cosignerStatusVerified: CosignerStatusVerified,
	cosignerStatusRejected: CosignerStatusRejected,
}

// NewCosignerStatus creates a CosignerStatus from a raw string.
func NewCosignerStatus(s string) (CosignerStatus, error) {
	v, ok := validCosignerStatuses[s]
	if !ok {
		return CosignerStatus{}, fmt.Errorf("invalid cosigner status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s CosignerStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s CosignerStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s CosignerStatus) Equal(other CosignerStatus) bool { return s.value == other.value }

// MarshalJSON implements json.Marshaler.
func (s CosignerStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown statuses.
func (s *CosignerStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCosignerStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
