package entity

// EvidenceItem is a reference to a document excerpt supporting an assistant
// answer. Items are immutable and sourced from the fixed catalog; assistant
// messages reference them by id and never own them.
type EvidenceItem struct {
	Id             string `json:"id"`
	Title          string `json:"title"`
	Section        string `json:"section"`
	Page           *int   `json:"page,omitempty"`
	Confidence     int    `json:"confidence"` // 0-100
	Classification string `json:"classification"`
	Preview        string `json:"preview"`
}

// EvidenceDetail is the expanded view shown in the evidence panel.
type EvidenceDetail struct {
	Item       EvidenceItem `json:"item"`
	FullText   string       `json:"full_text"`
	Highlights []string     `json:"highlights"`
}
