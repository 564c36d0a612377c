package catalog

import (
	"hananav-be/internal/constant"
	"hananav-be/internal/entity"
)

var popularQuestions = []entity.PopularQuestion{
	{Id: "1", Question: "고객 민원 처리 절차와 기준은?", Category: "소비자보호", Count: 234},
	{Id: "2", Question: "정기예금 중도해지 시 이자계산법", Category: "수신", Count: 189},
	{Id: "3", Question: "주택담보대출 금리 우대조건", Category: "여신", Count: 156},
	{Id: "4", Question: "개인연금 세액공제 한도 안내", Category: "연금", Count: 143},
	{Id: "5", Question: "소비자분쟁조정위원회 신청방법", Category: "소비자보호", Count: 98},
	{Id: "6", Question: "보이스피싱 내점 고객 처리방법", Category: "소비자보호", Count: 167},
}

var presetRoutes = []entity.PresetRoute{
	{
		Id:          "consumer",
		Title:       "소비자보호",
		Description: "민원 및 분쟁 처리 안내",
		Questions:   []string{"민원처리", "분쟁조정", "약관설명", "피해보상"},
	},
	{
		Id:          "deposit",
		Title:       "수신",
		Description: "예금 및 적금 업무 안내",
		Questions:   []string{"예금상품", "적금가입", "이자계산", "만기처리"},
	},
	{
		Id:          "loan",
		Title:       "여신",
		Description: "대출 업무 안내",
		Questions:   []string{"대출신청", "한도조회", "금리안내", "상환계획"},
	},
	{
		Id:          "pension",
		Title:       "연금",
		Description: "연금 상품 안내",
		Questions:   []string{"연금상품", "수령방법", "세제혜택", "가입조건"},
	},
}

var chatModes = []entity.ChatModeInfo{
	{Id: constant.ChatModeQuick, Name: "빠른답", Description: "즉시 답변"},
	{Id: constant.ChatModePrecise, Name: "정밀검증", Description: "상세 검증"},
	{Id: constant.ChatModeSummary, Name: "요약전용", Description: "핵심만"},
}

func PopularQuestions() []entity.PopularQuestion {
	out := make([]entity.PopularQuestion, len(popularQuestions))
	copy(out, popularQuestions)
	return out
}

func PresetRoutes() []entity.PresetRoute {
	out := make([]entity.PresetRoute, len(presetRoutes))
	copy(out, presetRoutes)
	return out
}

func ChatModes() []entity.ChatModeInfo {
	out := make([]entity.ChatModeInfo, len(chatModes))
	copy(out, chatModes)
	return out
}
