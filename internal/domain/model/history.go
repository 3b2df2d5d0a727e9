package model

import "time"

// History actions. One entry is appended per externally-visible change;
// multiple field writes from a single API call collapse into one entry.
const (
	ActionRequestCreated      = "request_created"
	ActionRequestSubmitted    = "request_submitted"
	ActionReviewStarted       = "review_started"
	ActionRequestApproved     = "request_approved"
	ActionRequestRejected     = "request_rejected"
	ActionInfoRequested       = "info_requested"
	ActionInfoResubmitted     = "info_resubmitted"
	ActionRequestCompleted    = "request_completed"
	ActionRequestCancelled    = "request_cancelled"
	ActionFinancingCalculated = "financing_calculated"
	ActionCosignerAdded       = "cosigner_added"
	ActionNotesUpdated        = "notes_updated"
	ActionDocumentRequested   = "document_requested"
	ActionDocumentSubmitted   = "document_submitted"
	ActionDocumentValidated   = "document_validated"
)

// HistoryEntry is one record in a request's append-only audit log.
// FromStatus and ToStatus are empty for non-status mutations (note updates,
// document operations) so the log can still reconstruct the full status
// timeline from the entries that carry them.
type HistoryEntry struct {
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
}
