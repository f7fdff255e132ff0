package models

import "time"

// Replacement journal statuses.
const (
	ReplacePending = "pending"
	ReplaceDone    = "done"
	ReplaceFailed  = "failed"
)

// Replacement phases, in protocol order.
const (
	PhaseListing  = "listing"
	PhaseDeleting = "deleting"
	PhaseCreating = "creating"
	PhaseComplete = "complete"
)

// ReplaceEntry records one full replacement of a consultant's slots so a run
// that stopped partway can be retried.
type ReplaceEntry struct {
	ID           string      `json:"id" bson:"id"`
	ConsultantID int64       `json:"consultant_id" bson:"consultantId"`
	Drafts       []SlotDraft `json:"drafts" bson:"drafts"`
	Status       string      `json:"status" bson:"status"`
	Phase        string      `json:"phase" bson:"phase"`
	Attempts     int         `json:"attempts" bson:"attempts"`
	Deleted      int         `json:"deleted" bson:"deleted"`
	Created      int         `json:"created" bson:"created"`
	Error        string      `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updatedAt"`
}
