package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry in a session's message list. Messages are never
// mutated after creation except for the full in-place replacement of a
// pending placeholder with its resolved counterpart.
type ChatMessage struct {
	Id        uuid.UUID `json:"id"`
	Seq       int       `json:"seq"` // monotonic within a session
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state"`

	// Populated on resolved assistant messages only.
	EvidenceIds   []string `json:"evidence_ids,omitempty"`
	EvidenceCount int      `json:"evidence_count,omitempty"`
	ResponseTime  float64  `json:"response_time,omitempty"` // seconds
	HasPII        bool     `json:"has_pii,omitempty"`
	IsEvidenceLow bool     `json:"is_evidence_low,omitempty"`

	// Attachments captured on user messages. Only names are kept; file
	// contents never leave the client in this prototype.
	AttachedFiles []string `json:"attached_files,omitempty"`
}
