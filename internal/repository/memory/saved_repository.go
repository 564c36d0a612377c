package memory

import (
	"sync"
	"time"

	"hananav-be/internal/entity"
)

// SavedRepository holds the saved destinations list in memory, seeded with
// the sample catalog. All mutations are local slice transforms; there is no
// backing persistence.
type SavedRepository struct {
	mu      sync.RWMutex
	entries []entity.SavedDestination
}

func NewSavedRepository() *SavedRepository {
	return &SavedRepository{
		entries: seedDestinations(),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedDestinations() []entity.SavedDestination {
	return []entity.SavedDestination{
		{
			Id:               "1",
			Title:            "육아휴직 급여 지급 기준",
			Summary:          "근속 6개월 이상 직원, 기본급의 40%, 최대 1년까지 가능",
			OriginalQuestion: "육아휴직 급여 지급 기준이 뭔가요?",
			EvidenceCount:    3,
			SavedDate:        day(2025, 9, 7),
			Tags:             []string{"휴가", "급여", "복지"},
			Category:         "인사",
			IsPinned:         true,
			IsStarred:        true,
			PersonalNotes:    "내년 3월에 신청 예정. 인사팀 김대리와 상담 완료.",
		},
		{
			Id:               "2",
			Title:            "재택근무 신청 절차",
			Summary:          "온라인 신청 시스템을 통해 주 2회까지 가능",
			OriginalQuestion: "재택근무 신청 절차는 어떻게 되나요?",
			EvidenceCount:    2,
			SavedDate:        day(2025, 9, 6),
			Tags:             []string{"재택근무", "신청절차"},
			Category:         "인사",
		},
		{
			Id:               "3",
			Title:            "경비처리 시스템 사용법",
			Summary:          "모바일 앱을 통한 영수증 촬영 및 자동 처리 방법",
			OriginalQuestion: "경비처리 시스템 사용법을 알려주세요",
			EvidenceCount:    4,
			SavedDate:        day(2025, 9, 5),
			Tags:             []string{"경비", "시스템", "모바일"},
			Category:         "재무",
			IsStarred:        true,
		},
		{
			Id:               "4",
			Title:            "VPN 접속 오류 해결",
			Summary:          "네트워크 설정 초기화 및 인증서 재설치 방법",
			OriginalQuestion: "VPN 접속이 안 될 때 해결방법",
			EvidenceCount:    2,
			SavedDate:        day(2025, 9, 4),
			Tags:             []string{"VPN", "네트워크", "오류해결"},
			Category:         "IT",
		},
		{
			Id:               "5",
			Title:            "신용평가 시스템 권한",
			Summary:          "등급별 접근 권한 및 승인 절차 안내",
			OriginalQuestion: "신용평가 시스템 권한 신청",
			EvidenceCount:    5,
			SavedDate:        day(2025, 9, 3),
			Tags:             []string{"신용평가", "권한", "승인"},
			Category:         "리스크",
			IsPinned:         true,
		},
		{
			Id:               "6",
			Title:            "직원 할인 혜택",
			Summary:          "은행 상품 할인율 및 제휴사 할인 정보",
			OriginalQuestion: "직원 할인 혜택에 대해 알려주세요",
			EvidenceCount:    3,
			SavedDate:        day(2025, 9, 2),
			Tags:             []string{"할인", "복지", "혜택"},
			Category:         "복지",
			IsStarred:        true,
		},
	}
}

// All returns a copy of every entry in insertion order.
func (r *SavedRepository) All() []entity.SavedDestination {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.SavedDestination, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *SavedRepository) Find(id string) (entity.SavedDestination, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.Id == id {
			return e, true
		}
	}
	return entity.SavedDestination{}, false
}

// Insert adds a new entry. Returns false when the id is already present.
func (r *SavedRepository) Insert(entry entity.SavedDestination) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Id == entry.Id {
			return false
		}
	}
	r.entries = append(r.entries, entry)
	return true
}

// Replace swaps the entry with a matching id wholesale. No-op when absent.
func (r *SavedRepository) Replace(entry entity.SavedDestination) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.Id == entry.Id {
			r.entries[i] = entry
			return true
		}
	}
	return false
}

func (r *SavedRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.Id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Mutate applies fn to the entry with a matching id under the lock. No-op
// (returns false) when absent.
func (r *SavedRepository) Mutate(id string, fn func(*entity.SavedDestination)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].Id == id {
			fn(&r.entries[i])
			return true
		}
	}
	return false
}
