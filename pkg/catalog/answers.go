package catalog

import "strings"

// CannedAnswer is one prepared response the simulated provider can serve.
type CannedAnswer struct {
	Keywords      []string // any-of match against the query, case-insensitive
	Content       string
	EvidenceIds   []string
	HasPII        bool
	IsEvidenceLow bool
}

var cannedAnswers = []CannedAnswer{
	{
		Keywords: []string{"육아휴직", "휴직", "급여"},
		Content: "육아휴직 급여 지급 기준에 대해 안내드리겠습니다.\n\n" +
			"근속 6개월 이상의 정규직 직원이 육아휴직을 신청할 수 있으며, 최대 1년까지 가능합니다. " +
			"육아휴직 기간 중에는 기본급의 40%를 육아휴직급여로 지급하며, 매월 25일에 계좌로 입금됩니다.\n\n" +
			"신청 절차는 휴직 시작일 30일 전까지 인사팀에 신청서를 제출하시면 됩니다.",
		EvidenceIds: []string{"1", "2"},
	},
	{
		Keywords: []string{"vpn", "네트워크", "접속"},
		Content: "VPN 접속 오류 해결 방법을 안내드리겠습니다.\n\n" +
			"먼저 네트워크 설정을 초기화한 뒤 사내 인증서를 재설치하고 클라이언트를 재시작해 주세요. " +
			"문제가 지속되면 IT 헬프데스크(내선 5500)로 문의 바랍니다.",
		EvidenceIds:   []string{"3"},
		IsEvidenceLow: true,
	},
}

// Fallback when no keyword matches; flagged low-evidence so the client shows
// the warning treatment.
var defaultAnswer = CannedAnswer{
	Content: "요청하신 내용과 정확히 일치하는 사내 문서를 찾지 못했습니다. " +
		"질문을 조금 더 구체적으로 입력하시거나, 부서 필터를 조정해 다시 시도해 보세요.",
	EvidenceIds:   []string{},
	IsEvidenceLow: true,
}

// MatchAnswer picks the canned answer for a query.
func MatchAnswer(query string) CannedAnswer {
	q := strings.ToLower(query)
	for _, a := range cannedAnswers {
		for _, kw := range a.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				return a
			}
		}
	}
	return defaultAnswer
}
