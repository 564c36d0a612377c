package entity

import "time"

// DocumentMeta describes a document in the viewer. The viewer renders sample
// data only; there is no document storage behind it.
type DocumentMeta struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	LastModified time.Time `json:"last_modified"`
	Version      string    `json:"version"`
	Author       string    `json:"author"`
	AccessLevel  string    `json:"access_level"`
	PageCount    int       `json:"page_count"`
	FileSize     string    `json:"file_size"`
}

type DocumentBookmark struct {
	Id         string `json:"id"`
	Title      string `json:"title"`
	PageNumber int    `json:"page_number"`
	Type       string `json:"type"` // "section" | "highlight" | "bookmark"
}

type DocumentTable struct {
	Id         string     `json:"id"`
	Title      string     `json:"title"`
	PageNumber int        `json:"page_number"`
	Headers    []string   `json:"headers"`
	Data       [][]string `json:"data"`
}

// DocumentPageHit is one page matched by a keyword search, with the matched
// highlight snippets on that page.
type DocumentPageHit struct {
	PageNumber int      `json:"page_number"`
	Highlights []string `json:"highlights"`
}
