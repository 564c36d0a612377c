package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hananav-be/internal/constant"
	"hananav-be/internal/dto"
	"hananav-be/internal/pkg/logger"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/repository/memory"
	"hananav-be/pkg/answer"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

// fakeProvider resolves immediately so tests can observe the resolved state
// without waiting out the simulated delay.
type fakeProvider struct {
	result *answer.Result
	err    error
}

func (f *fakeProvider) SubmitQuery(ctx context.Context, req answer.Request) (*answer.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestChatService(provider answer.Provider) IChatService {
	repo := memory.NewSessionRepository(time.Hour)
	return NewChatService(repo, provider, time.Second, nopPublisher{}, nil, nopLogger{})
}

func defaultFakeProvider() *fakeProvider {
	return &fakeProvider{
		result: &answer.Result{
			Content:        "육아휴직 급여는 근속 6개월 이상부터 신청할 수 있습니다.",
			EvidenceIds:    []string{"1", "2"},
			LatencySeconds: 1.2,
		},
	}
}

func TestSendQueryAppendsUserAndPendingPair(t *testing.T) {
	svc := newTestChatService(defaultFakeProvider())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	res, err := svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "육아휴직 급여 기준이 뭔가요?"})
	require.NoError(t, err)

	assert.Equal(t, constant.ChatMessageRoleUser, res.Sent.Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, res.Pending.Role)
	assert.Equal(t, constant.ChatMessageStatePending, res.Pending.State)
	assert.Equal(t, res.Sent.Seq+1, res.Pending.Seq)

	history, err := svc.GetHistory(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, history.Messages[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, history.Messages[1].Role)
}

func TestSendQueryEmptyTextRejected(t *testing.T) {
	svc := newTestChatService(defaultFakeProvider())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "   "})
	assert.ErrorIs(t, err, serverutils.ErrEmptyQuery)

	// Attached files make an otherwise empty query valid.
	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "", Files: []string{"report.pdf"}})
	assert.NoError(t, err)
}

func TestSendQuerySecondSubmissionWhilePendingConflicts(t *testing.T) {
	// A provider that blocks until released keeps the first query pending.
	release := make(chan struct{})
	blocking := &blockingProvider{release: release}
	svc := newTestChatService(blocking)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "first"})
	require.NoError(t, err)

	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "second"})
	assert.ErrorIs(t, err, serverutils.ErrQueryInFlight)

	close(release)

	require.Eventually(t, func() bool {
		history, err := svc.GetHistory(ctx, created.Id)
		return err == nil && history.FlowState == constant.FlowStateResolved
	}, time.Second, 10*time.Millisecond)

	history, err := svc.GetHistory(ctx, created.Id)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 2)
}

type blockingProvider struct {
	release chan struct{}
}

func (b *blockingProvider) SubmitQuery(ctx context.Context, req answer.Request) (*answer.Result, error) {
	select {
	case <-b.release:
		return &answer.Result{Content: "done"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestResolutionReplacesPendingInPlace(t *testing.T) {
	svc := newTestChatService(defaultFakeProvider())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	res, err := svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "육아휴직"})
	require.NoError(t, err)
	pendingId := res.Pending.Id
	pendingSeq := res.Pending.Seq

	require.Eventually(t, func() bool {
		history, err := svc.GetHistory(ctx, created.Id)
		return err == nil && history.Messages[1].State == constant.ChatMessageStateComplete
	}, time.Second, 10*time.Millisecond)

	history, err := svc.GetHistory(ctx, created.Id)
	require.NoError(t, err)
	// Replacement, not append: same count, same id and seq as the placeholder.
	require.Len(t, history.Messages, 2)
	resolved := history.Messages[1]
	assert.Equal(t, pendingId, resolved.Id)
	assert.Equal(t, pendingSeq, resolved.Seq)
	assert.Equal(t, []string{"1", "2"}, resolved.EvidenceIds)
	assert.Equal(t, 2, resolved.EvidenceCount)
	assert.Equal(t, constant.FlowStateResolved, history.FlowState)
}

func TestResolutionFailureMarksWarning(t *testing.T) {
	svc := newTestChatService(&fakeProvider{err: errors.New("backend down")})
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "anything"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		history, err := svc.GetHistory(ctx, created.Id)
		return err == nil && history.Messages[1].State == constant.ChatMessageStateWarning
	}, time.Second, 10*time.Millisecond)

	history, err := svc.GetHistory(ctx, created.Id)
	require.NoError(t, err)
	assert.NotEmpty(t, history.Messages[1].Content)
	assert.Equal(t, constant.FlowStateResolved, history.FlowState)
}

func TestResolutionSetsPIIFlaggedState(t *testing.T) {
	svc := newTestChatService(&fakeProvider{
		result: &answer.Result{Content: "주민등록번호가 포함된 답변", HasPII: true},
	})
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "개인정보"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		history, err := svc.GetHistory(ctx, created.Id)
		return err == nil && history.Messages[1].State == constant.ChatMessageStatePIIFlagged
	}, time.Second, 10*time.Millisecond)
}

func TestRollbackRemovesLastExchange(t *testing.T) {
	svc := newTestChatService(defaultFakeProvider())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	// Rollback on an empty session is a no-op.
	res, err := svc.RollbackLastExchange(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Removed)
	assert.Equal(t, 0, res.MessageCount)

	_, err = svc.SendQuery(ctx, created.Id, &dto.SendQueryRequest{Text: "질문"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		history, err := svc.GetHistory(ctx, created.Id)
		return err == nil && history.FlowState == constant.FlowStateResolved
	}, time.Second, 10*time.Millisecond)

	res, err = svc.RollbackLastExchange(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Removed)
	assert.Equal(t, 0, res.MessageCount)

	history, err := svc.GetHistory(ctx, created.Id)
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
	assert.Equal(t, constant.FlowStateIdle, history.FlowState)
}

func TestSetModeAndFilters(t *testing.T) {
	svc := newTestChatService(defaultFakeProvider())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.SetMode(ctx, created.Id, constant.ChatModePrecise))

	dept := "hr"
	filters, err := svc.SetFilters(ctx, created.Id, &dto.SetFiltersRequest{Department: &dept})
	require.NoError(t, err)
	// Partial merge: untouched fields keep their sentinel.
	assert.Equal(t, "hr", filters.Department)
	assert.Equal(t, constant.FilterAll, filters.DateRange)
	assert.Equal(t, constant.FilterAll, filters.DocumentType)

	filters, err = svc.ClearFilters(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.FilterAll, filters.Department)

	history, err := svc.GetHistory(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.ChatModePrecise, history.Mode)
}

func TestSessionNotFound(t *testing.T) {
	svc := newTestChatService(defaultFakeProvider())
	ctx := context.Background()

	_, err := svc.GetHistory(ctx, uuid.New())
	assert.ErrorIs(t, err, serverutils.ErrSessionNotFound)

	err = svc.DeleteSession(ctx, uuid.New())
	assert.ErrorIs(t, err, serverutils.ErrSessionNotFound)
}
