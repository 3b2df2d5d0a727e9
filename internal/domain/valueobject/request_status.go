package valueobject

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// RequestStatus – immutable value object
// ---------------------------------------------------------------------------

// RequestStatus represents the lifecycle stage of a financing request.
type RequestStatus struct {
	value string
}

const (
	requestStatusDraft       = "draft"
	requestStatusSubmitted   = "submitted"
	requestStatusUnderReview = "under_review"
	requestStatusApproved    = "approved"
	requestStatusRejected    = "rejected"
	requestStatusNeedsInfo   = "needs_info"
	requestStatusCompleted   = "completed"
	requestStatusCancelled   = "cancelled"
)

var (
	RequestStatusDraft       = RequestStatus{value: requestStatusDraft}
	RequestStatusSubmitted   = RequestStatus{value: requestStatusSubmitted}
	RequestStatusUnderReview = RequestStatus{value: requestStatusUnderReview}
	RequestStatusApproved    = RequestStatus{value: requestStatusApproved}
	RequestStatusRejected    = RequestStatus{value: requestStatusRejected}
	RequestStatusNeedsInfo   = RequestStatus{value: requestStatusNeedsInfo}
	RequestStatusCompleted   = RequestStatus{value: requestStatusCompleted}
	RequestStatusCancelled   = RequestStatus{value: requestStatusCancelled}
)

var validRequestStatuses = map[string]RequestStatus{
	requestStatusDraft:       RequestStatusDraft,
	requestStatusSubmitted:   RequestStatusSubmitted,
	requestStatusUnderReview: RequestStatusUnderReview,
	requestStatusApproved:    RequestStatusApproved,
	requestStatusRejected:    RequestStatusRejected,
	requestStatusNeedsInfo:   RequestStatusNeedsInfo,
	requestStatusCompleted:   RequestStatusCompleted,
	requestStatusCancelled:   RequestStatusCancelled,
}

// legalTransitions is the canonical transition table. A request may only move
// along these edges; everything else is an invalid transition.
var legalTransitions = map[string][]string{
	requestStatusDraft:       {requestStatusSubmitted, requestStatusCancelled},
	requestStatusSubmitted:   {requestStatusUnderReview, requestStatusCancelled},
	requestStatusUnderReview: {requestStatusApproved, requestStatusRejected, requestStatusNeedsInfo, requestStatusCancelled},
	requestStatusNeedsInfo:   {requestStatusUnderReview, requestStatusCancelled},
	requestStatusApproved:    {requestStatusCompleted},
	requestStatusRejected:    {},
	requestStatusCompleted:   {},
	requestStatusCancelled:   {},
}

// NewRequestStatus creates a RequestStatus from a raw string.
func NewRequestStatus(s string) (RequestStatus, error) {
	v, ok := validRequestStatuses[s]
	if !ok {
		return RequestStatus{}, fmt.Errorf("invalid request status: %q", s)
	}
	return v, nil
}

// AllRequestStatuses returns every defined status. Useful for exhaustive
// transition-table checks.
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusDraft, RequestStatusSubmitted, RequestStatusUnderReview,
		RequestStatusApproved, RequestStatusRejected, RequestStatusNeedsInfo,
		RequestStatusCompleted, RequestStatusCancelled,
	}
}

// String returns the string representation of the status.
func (s RequestStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s RequestStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s RequestStatus) Equal(other RequestStatus) bool { return s.value == other.value }

// IsTerminal reports whether the status ends the request lifecycle.
func (s RequestStatus) IsTerminal() bool {
	switch s.value {
	case requestStatusCompleted, requestStatusRejected, requestStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition table contains the edge
// from s to target.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, next := range legalTransitions[s.value] {
		if next == target.value {
			return true
		}
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (s RequestStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown statuses.
func (s *RequestStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewRequestStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
