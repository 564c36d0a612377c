// Package catalog holds the fixed mock corpus the prototype serves: evidence
// items, canned answers, the sample document and the home view data. A real
// deployment replaces this package with retrieval and document backends.
package catalog

import (
	"hananav-be/internal/constant"
	"hananav-be/internal/entity"
)

func intPtr(v int) *int { return &v }

var evidenceItems = []entity.EvidenceItem{
	{
		Id:             "1",
		Title:          "HR_휴가정책_v3.2.pdf",
		Section:        "섹션 3.1 - 육아휴직",
		Page:           intPtr(12),
		Confidence:     98,
		Classification: constant.EvidenceClassOfficial,
		Preview:        "근속 6개월 이상의 직원은 육아휴직을 신청할 수 있으며, 최대 1년까지 가능합니다...",
	},
	{
		Id:             "2",
		Title:          "사내 공지 2025-03-15",
		Section:        "육아휴직 급여 지급 안내",
		Confidence:     95,
		Classification: constant.EvidenceClassOfficial,
		Preview:        "육아휴직 기간 중에는 기본급의 40%를 육아휴직급여로 지급합니다...",
	},
	{
		Id:             "3",
		Title:          "IT_네트워크_가이드_v1.4.pdf",
		Section:        "섹션 5.2 - VPN 접속 장애",
		Page:           intPtr(31),
		Confidence:     91,
		Classification: constant.EvidenceClassUnofficial,
		Preview:        "VPN 접속 오류 발생 시 네트워크 설정을 초기화하고 인증서를 재설치합니다...",
	},
}

var evidenceFullText = map[string]string{
	"1": `3.1 육아휴직 신청 자격

하나은행 직원으로서 다음 조건을 만족하는 경우 육아휴직을 신청할 수 있습니다:

• 근속 6개월 이상의 정규직 직원
• 만 8세 이하 또는 초등학교 2학년 이하의 자녀를 양육하는 직원
• 배우자가 취업 중이거나 질병, 장애 등의 사유로 자녀를 돌볼 수 없는 경우

3.2 급여 지급 기준

육아휴직 기간 중 급여는 다음과 같이 지급됩니다:

근속기간별 지급율:
• 6개월 이상 1년 미만: 기본급의 40%
• 1년 이상 3년 미만: 기본급의 50%
• 3년 이상: 기본급의 60%

지급 방법:
• 매월 25일 본인 계좌로 입금
• 최대 지급 기간: 1년
• 4대보험 본인 부담분 공제 후 지급

3.3 신청 절차

1. 휴직 시작일 30일 전까지 신청서 제출
2. 인사시스템을 통한 온라인 신청
3. 필요 서류: 가족관계증명서, 주민등록등본
4. 부서장 및 인사팀 승인
5. 승인 완료 후 휴직 개시`,
	"2": `육아휴직 급여 지급 안내 (사내 공지 2025-03-15)

육아휴직 기간 중에는 기본급의 40%를 육아휴직급여로 지급합니다.
매월 25일 본인 계좌로 입금되며, 최대 지급 기간은 1년입니다.
자세한 내용은 인사팀으로 문의 바랍니다.`,
	"3": `5.2 VPN 접속 장애 조치

1. 네트워크 설정 초기화
2. 사내 인증서 재설치
3. 클라이언트 재시작 후 재접속
4. 지속 시 IT 헬프데스크(내선 5500) 문의`,
}

var evidenceHighlights = map[string][]string{
	"1": {"육아휴직", "근속 6개월 이상", "기본급의 40%"},
	"2": {"기본급의 40%", "매월 25일"},
	"3": {"네트워크 설정 초기화", "인증서 재설치"},
}

// Evidence returns the full immutable evidence catalog.
func Evidence() []entity.EvidenceItem {
	items := make([]entity.EvidenceItem, len(evidenceItems))
	copy(items, evidenceItems)
	return items
}

// FindEvidence resolves an evidence id against the catalog.
func FindEvidence(id string) (entity.EvidenceItem, bool) {
	for _, item := range evidenceItems {
		if item.Id == id {
			return item, true
		}
	}
	return entity.EvidenceItem{}, false
}

// EvidenceDetail returns the expanded excerpt for the panel view.
func EvidenceDetail(id string) (entity.EvidenceDetail, bool) {
	item, ok := FindEvidence(id)
	if !ok {
		return entity.EvidenceDetail{}, false
	}
	return entity.EvidenceDetail{
		Item:       item,
		FullText:   evidenceFullText[id],
		Highlights: evidenceHighlights[id],
	}, true
}
