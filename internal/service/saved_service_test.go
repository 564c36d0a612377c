package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hananav-be/internal/dto"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/repository/memory"
)

func newTestSavedService() ISavedService {
	return NewSavedService(memory.NewSavedRepository(), nil, nopLogger{})
}

func TestSavedQuerySearchMatchesTitleSummaryAndTags(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	// "VPN" appears in one seeded entry's title and tags only.
	res, err := svc.Query(ctx, "VPN", "all")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "VPN 접속 오류 해결", res[0].Title)

	// Case-insensitive.
	res, err = svc.Query(ctx, "vpn", "all")
	require.NoError(t, err)
	require.Len(t, res, 1)

	// Summary match.
	res, err = svc.Query(ctx, "영수증", "all")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "경비처리 시스템 사용법", res[0].Title)
}

func TestSavedQueryCategoryFilter(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	res, err := svc.Query(ctx, "", "인사")
	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, e := range res {
		assert.Equal(t, "인사", e.Category)
	}

	// The all-sentinel passes everything through.
	res, err = svc.Query(ctx, "", "all")
	require.NoError(t, err)
	assert.Len(t, res, 6)
}

func TestSavedQueryOrderingPinnedStarredDate(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	res, err := svc.Query(ctx, "", "all")
	require.NoError(t, err)
	require.Len(t, res, 6)

	// Pinned+starred entry first, then pinned-only, then the unpinned group
	// ordered starred before unstarred, newest first within each group.
	titles := make([]string, 0, len(res))
	for _, e := range res {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{
		"육아휴직 급여 지급 기준",
		"신용평가 시스템 권한",
		"경비처리 시스템 사용법",
		"직원 할인 혜택",
		"재택근무 신청 절차",
		"VPN 접속 오류 해결",
	}, titles)
}

func TestSaveRejectsDuplicateId(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	req := &dto.SaveDestinationRequest{
		Id:               "1", // seeded id
		Title:            "중복 저장",
		Summary:          "이미 존재하는 id",
		OriginalQuestion: "중복?",
		Category:         "인사",
	}
	_, err := svc.Save(ctx, req)
	assert.ErrorIs(t, err, serverutils.ErrSaveConflict)

	req.Id = ""
	res, err := svc.Save(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Id)
}

func TestTogglePinIdempotentUnderDoubleApplication(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	// Entry "2" starts unpinned.
	first, err := svc.TogglePin(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.IsPinned)

	second, err := svc.TogglePin(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.False(t, second.IsPinned)
}

func TestSavedMutationsOnAbsentIdAreNoOps(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	res, err := svc.TogglePin(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = svc.ToggleStar(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = svc.Update(ctx, &dto.UpdateDestinationRequest{
		Id:               "missing",
		Title:            "t",
		Summary:          "s",
		OriginalQuestion: "q",
		Category:         "IT",
	})
	require.NoError(t, err)
	assert.Nil(t, res)

	require.NoError(t, svc.Delete(ctx, "missing"))

	// The catalog is untouched.
	all, err := svc.Query(ctx, "", "all")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestSavedUpdateReplacesEntryKeepingSavedDate(t *testing.T) {
	svc := newTestSavedService()
	ctx := context.Background()

	before, err := svc.Query(ctx, "VPN", "all")
	require.NoError(t, err)
	require.Len(t, before, 1)

	res, err := svc.Update(ctx, &dto.UpdateDestinationRequest{
		Id:               before[0].Id,
		Title:            "VPN 접속 가이드 (개정)",
		Summary:          before[0].Summary,
		OriginalQuestion: before[0].OriginalQuestion,
		EvidenceCount:    before[0].EvidenceCount,
		Tags:             before[0].Tags,
		Category:         before[0].Category,
		IsStarred:        true,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "VPN 접속 가이드 (개정)", res.Title)
	assert.True(t, res.IsStarred)
	assert.Equal(t, before[0].SavedDate, res.SavedDate)
}
