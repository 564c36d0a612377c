package dto

import "hananav-be/internal/entity"

type SelectEvidenceRequest struct {
	EvidenceId string `json:"evidence_id" validate:"required"`
}

// EvidencePanelResponse mirrors the side panel state: Open false means no
// panel content should render.
type EvidencePanelResponse struct {
	Open     bool                 `json:"open"`
	Selected *entity.EvidenceItem `json:"selected,omitempty"`
}
