package dto

import (
	"time"

	"hananav-be/internal/entity"
)

type SaveDestinationRequest struct {
	Id               string   `json:"id,omitempty"`
	Title            string   `json:"title" validate:"required,max=255"`
	Summary          string   `json:"summary" validate:"required"`
	OriginalQuestion string   `json:"original_question" validate:"required"`
	EvidenceCount    int      `json:"evidence_count" validate:"min=0"`
	Tags             []string `json:"tags" validate:"max=10"`
	Category         string   `json:"category" validate:"required"`
	PersonalNotes    string   `json:"personal_notes,omitempty"`
}

type UpdateDestinationRequest struct {
	Id               string   `json:"id" validate:"required"`
	Title            string   `json:"title" validate:"required,max=255"`
	Summary          string   `json:"summary" validate:"required"`
	OriginalQuestion string   `json:"original_question" validate:"required"`
	EvidenceCount    int      `json:"evidence_count" validate:"min=0"`
	Tags             []string `json:"tags" validate:"max=10"`
	Category         string   `json:"category" validate:"required"`
	IsPinned         bool     `json:"is_pinned"`
	IsStarred        bool     `json:"is_starred"`
	PersonalNotes    string   `json:"personal_notes,omitempty"`
}

type SavedDestinationResponse struct {
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

func ToSavedDestinationResponse(e entity.SavedDestination) SavedDestinationResponse {
	return SavedDestinationResponse{
		Id:               e.Id,
		Title:            e.Title,
		Summary:          e.Summary,
		OriginalQuestion: e.OriginalQuestion,
		EvidenceCount:    e.EvidenceCount,
		SavedDate:        e.SavedDate,
		Tags:             e.Tags,
		Category:         e.Category,
		IsPinned:         e.IsPinned,
		IsStarred:        e.IsStarred,
		PersonalNotes:    e.PersonalNotes,
	}
}
