package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hananav-be/internal/constant"
	"hananav-be/internal/entity"
)

// Session is the in-memory state of one chat browsing session: the ordered
// message list, the active interaction mode, the session-scoped filters and
// the submission flow state. It is the single mutation point for everything
// the chat view renders.
type Session struct {
	ID           uuid.UUID            `json:"id"`
	Mode         string               `json:"mode"`       // "quick" | "precise" | "summary"
	FlowState    string               `json:"flow_state"` // "idle" | "pending" | "resolved"
	Filters      entity.FilterState   `json:"filters"`
	Messages     []entity.ChatMessage `json:"messages"`
	CreatedAt    time.Time            `json:"created_at"`
	LastActivity time.Time            `json:"last_activity"`

	// Evidence panel state for this session. Selected is nil when closed.
	PanelOpen        bool                 `json:"panel_open"`
	SelectedEvidence *entity.EvidenceItem `json:"selected_evidence,omitempty"`

	nextSeq int

	// Guards all fields above. Sessions are shared between the request
	// handlers and the background resolver; callers lock before any read or
	// write of session state.
	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New(),
		Mode:         constant.ChatModeQuick,
		FlowState:    constant.FlowStateIdle,
		Filters:      entity.DefaultFilterState(),
		Messages:     []entity.ChatMessage{},
		CreatedAt:    now,
		LastActivity: now,
		nextSeq:      1,
	}
}

// NextSeq hands out the per-session monotonic message sequence number.
func (s *Session) NextSeq() int {
	seq := s.nextSeq
	s.nextSeq++
	return seq
}

// PendingIndex returns the index of the most recent pending assistant message,
// or -1 when none exists.
func (s *Session) PendingIndex() int {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].State == constant.ChatMessageStatePending {
			return i
		}
	}
	return -1
}

func (s *Session) Touch() {
	s.LastActivity = time.Now()
}
