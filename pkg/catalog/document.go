package catalog

import (
	"strings"
	"time"

	"hananav-be/internal/entity"
)

// The single sample document the viewer serves. Page 12 carries the
// childcare-leave highlights the chat answers cite.
var sampleDocument = entity.DocumentMeta{
	Id:           "hr-leave-policy",
	Title:        "HR_휴가정책_v3.2.pdf",
	Department:   "인사팀",
	LastModified: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
	Version:      "3.2",
	Author:       "김인사",
	AccessLevel:  "public",
	PageCount:    24,
	FileSize:     "2.4 MB",
}

var documentBookmarks = []entity.DocumentBookmark{
	{Id: "1", Title: "1. 개요", PageNumber: 1, Type: "section"},
	{Id: "2", Title: "2. 연차휴가", PageNumber: 3, Type: "section"},
	{Id: "3", Title: "3. 육아휴직", PageNumber: 12, Type: "section"},
	{Id: "4", Title: "4. 병가", PageNumber: 18, Type: "section"},
	{Id: "5", Title: "급여 지급 기준", PageNumber: 12, Type: "highlight"},
	{Id: "6", Title: "신청 절차", PageNumber: 14, Type: "bookmark"},
}

var documentTables = []entity.DocumentTable{
	{
		Id:         "1",
		Title:      "육아휴직 급여표",
		PageNumber: 13,
		Headers:    []string{"근속기간", "지급율", "최대기간"},
		Data: [][]string{
			{"6개월 이상", "40%", "1년"},
			{"1년 이상", "50%", "1년"},
			{"3년 이상", "60%", "1년"},
		},
	},
	{
		Id:         "2",
		Title:      "연차 사용 기준",
		PageNumber: 5,
		Headers:    []string{"입사년차", "연차일수", "비고"},
		Data: [][]string{
			{"1년차", "11일", "입사일 기준"},
			{"2년차", "15일", "근속년수 적용"},
			{"3년차 이상", "15일 + α", "근속가산"},
		},
	},
}

// Highlight terms per page of the sample document.
var documentPageHighlights = map[int][]string{
	12: {"육아휴직", "근속 6개월 이상"},
	13: {"급여 지급 기준", "기본급의 40%"},
	14: {"신청 절차"},
}

func Document(id string) (entity.DocumentMeta, bool) {
	if id != sampleDocument.Id {
		return entity.DocumentMeta{}, false
	}
	return sampleDocument, true
}

func DocumentBookmarks(id string) ([]entity.DocumentBookmark, bool) {
	if id != sampleDocument.Id {
		return nil, false
	}
	out := make([]entity.DocumentBookmark, len(documentBookmarks))
	copy(out, documentBookmarks)
	return out, true
}

func DocumentTables(id string) ([]entity.DocumentTable, bool) {
	if id != sampleDocument.Id {
		return nil, false
	}
	out := make([]entity.DocumentTable, len(documentTables))
	copy(out, documentTables)
	return out, true
}

// SearchDocumentPages returns pages whose highlight terms contain the
// keyword, case-insensitive.
func SearchDocumentPages(id, keyword string) ([]entity.DocumentPageHit, bool) {
	if id != sampleDocument.Id {
		return nil, false
	}
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var hits []entity.DocumentPageHit
	if kw == "" {
		return hits, true
	}
	for page := 1; page <= sampleDocument.PageCount; page++ {
		var matched []string
		for _, term := range documentPageHighlights[page] {
			if strings.Contains(strings.ToLower(term), kw) {
				matched = append(matched, term)
			}
		}
		if len(matched) > 0 {
			hits = append(hits, entity.DocumentPageHit{PageNumber: page, Highlights: matched})
		}
	}
	return hits, true
}
