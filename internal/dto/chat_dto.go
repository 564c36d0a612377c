package dto

import (
	"time"

	"github.com/google/uuid"

	"hananav-be/internal/entity"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllSessionsResponse struct {
	Id           uuid.UUID `json:"id"`
	Mode         string    `json:"mode"`
	FlowState    string    `json:"flow_state"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

type ChatMessageDTO struct {
	Id            uuid.UUID `json:"id"`
	Seq           int       `json:"seq"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	State         string    `json:"state"`
	EvidenceIds   []string  `json:"evidence_ids,omitempty"`
	EvidenceCount int       `json:"evidence_count,omitempty"`
	ResponseTime  float64   `json:"response_time,omitempty"`
	HasPII        bool      `json:"has_pii,omitempty"`
	IsEvidenceLow bool      `json:"is_evidence_low,omitempty"`
	AttachedFiles []string  `json:"attached_files,omitempty"`
}

type GetChatHistoryResponse struct {
	SessionId uuid.UUID          `json:"session_id"`
	Mode      string             `json:"mode"`
	FlowState string             `json:"flow_state"`
	Filters   entity.FilterState `json:"filters"`
	Messages  []ChatMessageDTO   `json:"messages"`
}

type SendQueryRequest struct {
	Text  string   `json:"text"`
	Files []string `json:"files,omitempty" validate:"max=5"`
}

// SendQueryResponse returns the pair appended by a submission: the user
// message and the pending assistant placeholder. The placeholder resolves in
// the background; clients pick the result up from history.
type SendQueryResponse struct {
	SessionId uuid.UUID      `json:"session_id"`
	Sent      ChatMessageDTO `json:"sent"`
	Pending   ChatMessageDTO `json:"pending"`
}

type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=quick precise summary"`
}

// SetFiltersRequest is a partial merge: nil fields keep their current value.
type SetFiltersRequest struct {
	Department   *string `json:"department,omitempty" validate:"omitempty,oneof=all hr finance it risk"`
	DateRange    *string `json:"date_range,omitempty" validate:"omitempty,oneof=all recent year"`
	DocumentType *string `json:"document_type,omitempty" validate:"omitempty,oneof=all policy manual notice"`
}

// FilterOptionsResponse lists the selectable values for each filter dimension
// so the client dropdowns stay in sync with the validation rules.
type FilterOptionsResponse struct {
	Departments   []string `json:"departments"`
	DateRanges    []string `json:"date_ranges"`
	DocumentTypes []string `json:"document_types"`
}

type RollbackResponse struct {
	Removed      int `json:"removed"`
	MessageCount int `json:"message_count"`
}

type FeedbackRequest struct {
	IsHelpful bool   `json:"is_helpful"`
	Reason    string `json:"reason,omitempty" validate:"max=500"`
}
