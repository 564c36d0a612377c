package entity

import "time"

// SavedDestination is a user-bookmarked question/answer pair with personal
// annotations. Lives only in memory; there is no persistence layer behind it.
type SavedDestination struct {
	Id               string    `json:"id"`
	Title            string    `json:"title"`
	Summary          string    `json:"summary"`
	OriginalQuestion string    `json:"original_question"`
	EvidenceCount    int       `json:"evidence_count"`
	SavedDate        time.Time `json:"saved_date"`
	Tags             []string  `json:"tags"`
	Category         string    `json:"category"`
	IsPinned         bool      `json:"is_pinned"`
	IsStarred        bool      `json:"is_starred"`
	PersonalNotes    string    `json:"personal_notes,omitempty"`
}
