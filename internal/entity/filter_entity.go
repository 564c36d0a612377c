package entity

import "hananav-be/internal/constant"

// FilterState scopes a chat session's retrieval filters. Each dimension is a
// closed enum with an "all" sentinel meaning no restriction.
type FilterState struct {
	Department   string `json:"department"`
	DateRange    string `json:"date_range"`
	DocumentType string `json:"document_type"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Department:   constant.FilterAll,
		DateRange:    constant.FilterAll,
		DocumentType: constant.FilterAll,
	}
}
