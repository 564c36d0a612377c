package dto

import "github.com/google/uuid"

// PublishQueryAnsweredMessage is the in-process event payload emitted when a
// pending message resolves; the usage consumer turns it into histogram
// increments.
type PublishQueryAnsweredMessage struct {
	SessionId      uuid.UUID `json:"session_id"`
	Department     string    `json:"department"`
	LatencySeconds float64   `json:"latency_seconds"`
	EvidenceCount  int       `json:"evidence_count"`
	HasPII         bool      `json:"has_pii"`
	IsEvidenceLow  bool      `json:"is_evidence_low"`
}
