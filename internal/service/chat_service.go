package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"hananav-be/internal/constant"
	"hananav-be/internal/dto"
	"hananav-be/internal/entity"
	"hananav-be/internal/pkg/logger"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/repository/memory"
	"hananav-be/pkg/admin/events"
	"hananav-be/pkg/answer"
	"hananav-be/pkg/store"
)

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	ListSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error)
	SendQuery(ctx context.Context, sessionId uuid.UUID, req *dto.SendQueryRequest) (*dto.SendQueryResponse, error)
	RollbackLastExchange(ctx context.Context, sessionId uuid.UUID) (*dto.RollbackResponse, error)
	SetMode(ctx context.Context, sessionId uuid.UUID, mode string) error
	SetFilters(ctx context.Context, sessionId uuid.UUID, req *dto.SetFiltersRequest) (entity.FilterState, error)
	ClearFilters(ctx context.Context, sessionId uuid.UUID) (entity.FilterState, error)
	SubmitFeedback(ctx context.Context, sessionId, messageId uuid.UUID, req *dto.FeedbackRequest) error
	GetFilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error)
}

// chatService owns the chat session operations. Sessions carry their own
// lock; every read or write of session state happens under it, including the
// background resolver's in-place replacement.
type chatService struct {
	sessionRepo      *memory.SessionRepository
	provider         answer.Provider
	queryTimeout     time.Duration
	publisherService IPublisherService
	eventPublisher   events.Publisher
	logger           logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	provider answer.Provider,
	queryTimeout time.Duration,
	publisherService IPublisherService,
	eventPublisher events.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:      sessionRepo,
		provider:         provider,
		queryTimeout:     queryTimeout,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           sysLogger,
	}
}

func (cs *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sess := store.NewSession()
	cs.sessionRepo.Save(sess)

	cs.logger.Info("CHAT", "Session created", map[string]interface{}{"session_id": sess.ID})
	return &dto.CreateSessionResponse{Id: sess.ID}, nil
}

func (cs *chatService) ListSessions(ctx context.Context) ([]*dto.GetAllSessionsResponse, error) {
	sessions := cs.sessionRepo.All()

	response := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, s := range sessions {
		s.Lock()
		response = append(response, &dto.GetAllSessionsResponse{
			Id:           s.ID,
			Mode:         s.Mode,
			FlowState:    s.FlowState,
			MessageCount: len(s.Messages),
			CreatedAt:    s.CreatedAt,
			LastActivity: s.LastActivity,
		})
		s.Unlock()
	}
	sort.Slice(response, func(i, j int) bool {
		return response[i].CreatedAt.After(response[j].CreatedAt)
	})
	return response, nil
}

func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if _, found := cs.sessionRepo.Get(sessionId); !found {
		return serverutils.ErrSessionNotFound
	}
	// A query dispatched for this session may still resolve on its timer;
	// resolution against a deleted session is discarded.
	cs.sessionRepo.Delete(sessionId)
	return nil
}

func (cs *chatService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	messages := make([]dto.ChatMessageDTO, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		messages = append(messages, toChatMessageDTO(m))
	}

	return &dto.GetChatHistoryResponse{
		SessionId: sess.ID,
		Mode:      sess.Mode,
		FlowState: sess.FlowState,
		Filters:   sess.Filters,
		Messages:  messages,
	}, nil
}

// SendQuery appends the user message and the pending assistant placeholder,
// moves the flow to pending and dispatches the answer provider. The reply
// arrives by in-place replacement of the placeholder; clients observe it via
// history. Only one query may be in flight per session.
func (cs *chatService) SendQuery(ctx context.Context, sessionId uuid.UUID, req *dto.SendQueryRequest) (*dto.SendQueryResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.ErrSessionNotFound
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && len(req.Files) == 0 {
		return nil, serverutils.ErrEmptyQuery
	}

	sess.Lock()

	if sess.FlowState == constant.FlowStatePending || sess.PendingIndex() >= 0 {
		sess.Unlock()
		return nil, serverutils.ErrQueryInFlight
	}

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Seq:           sess.NextSeq(),
		Role:          constant.ChatMessageRoleUser,
		Content:       text,
		Timestamp:     now,
		State:         constant.ChatMessageStateComplete,
		AttachedFiles: req.Files,
	}
	pendingMessage := entity.ChatMessage{
		Id:        uuid.New(),
		Seq:       sess.NextSeq(),
		Role:      constant.ChatMessageRoleAssistant,
		Timestamp: now,
		State:     constant.ChatMessageStatePending,
	}

	sess.Messages = append(sess.Messages, userMessage, pendingMessage)
	sess.FlowState = constant.FlowStatePending
	sess.Touch()
	cs.sessionRepo.Save(sess)

	request := answer.Request{
		Text:    text,
		Files:   req.Files,
		Mode:    sess.Mode,
		Filters: sess.Filters,
	}
	sess.Unlock()

	// The request context dies with the HTTP call; resolution runs on its
	// own clock bounded by the configured query timeout.
	go cs.resolve(sessionId, pendingMessage.Id, request)

	return &dto.SendQueryResponse{
		SessionId: sessionId,
		Sent:      toChatMessageDTO(userMessage),
		Pending:   toChatMessageDTO(pendingMessage),
	}, nil
}

func (cs *chatService) resolve(sessionId uuid.UUID, pendingId uuid.UUID, request answer.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), cs.queryTimeout)
	defer cancel()

	result, err := cs.provider.SubmitQuery(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = serverutils.ErrQueryTimeout
		} else {
			err = serverutils.ErrQueryFailed
		}
	}

	if rerr := cs.resolvePendingMessage(sessionId, pendingId, result, err); rerr != nil {
		cs.logger.Warn("CHAT", "Dropping query resolution", map[string]interface{}{
			"session_id": sessionId,
			"error":      rerr.Error(),
		})
		return
	}

	if err == nil && result != nil {
		cs.publishQueryAnswered(ctx, sessionId, request, result)
	}
}

// resolvePendingMessage replaces the most recent pending message in place
// with its resolved counterpart. Sequence number and id are preserved so the
// message count and ordering invariants hold. Resolving when no pending
// message exists is an error, not a silent no-op.
func (cs *chatService) resolvePendingMessage(sessionId uuid.UUID, pendingId uuid.UUID, result *answer.Result, submitErr error) error {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return serverutils.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	idx := sess.PendingIndex()
	if idx < 0 || sess.Messages[idx].Id != pendingId {
		return serverutils.ErrNoPendingMessage
	}

	placeholder := sess.Messages[idx]
	resolved := entity.ChatMessage{
		Id:        placeholder.Id,
		Seq:       placeholder.Seq,
		Role:      constant.ChatMessageRoleAssistant,
		Timestamp: time.Now(),
	}

	if submitErr != nil {
		resolved.State = constant.ChatMessageStateWarning
		resolved.Content = "답변 생성에 실패했습니다. 잠시 후 다시 시도해 주세요."
		cs.logger.Error("CHAT", "Query resolution failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      submitErr.Error(),
		})
	} else {
		resolved.Content = result.Content
		resolved.EvidenceIds = result.EvidenceIds
		resolved.EvidenceCount = len(result.EvidenceIds)
		resolved.ResponseTime = result.LatencySeconds
		resolved.HasPII = result.HasPII
		resolved.IsEvidenceLow = result.IsEvidenceLow
		switch {
		case result.HasPII:
			resolved.State = constant.ChatMessageStatePIIFlagged
		case result.IsEvidenceLow:
			resolved.State = constant.ChatMessageStateWarning
		default:
			resolved.State = constant.ChatMessageStateComplete
		}
	}

	sess.Messages[idx] = resolved
	sess.FlowState = constant.FlowStateResolved
	sess.Touch()
	cs.sessionRepo.Save(sess)
	return nil
}

func (cs *chatService) publishQueryAnswered(ctx context.Context, sessionId uuid.UUID, request answer.Request, result *answer.Result) {
	payload := dto.PublishQueryAnsweredMessage{
		SessionId:      sessionId,
		Department:     request.Filters.Department,
		LatencySeconds: result.LatencySeconds,
		EvidenceCount:  len(result.EvidenceIds),
		HasPII:         result.HasPII,
		IsEvidenceLow:  result.IsEvidenceLow,
	}
	payloadJson, err := json.Marshal(payload)
	if err == nil {
		if err := cs.publisherService.Publish(ctx, payloadJson); err != nil {
			cs.logger.Warn("CHAT", "Failed to publish usage message", map[string]interface{}{"error": err.Error()})
		}
	}

	if cs.eventPublisher != nil {
		cs.eventPublisher.PublishQueryAnswered(ctx, sessionId, request.Filters.Department,
			result.LatencySeconds, len(result.EvidenceIds), result.HasPII, result.IsEvidenceLow)
	}
}

// RollbackLastExchange removes the trailing assistant+user pair. With fewer
// than two messages it is a no-op.
func (cs *chatService) RollbackLastExchange(ctx context.Context, sessionId uuid.UUID) (*dto.RollbackResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	removed := 0
	if len(sess.Messages) >= 2 {
		// Rolling back a pending exchange discards the in-flight answer;
		// its late resolution will find no pending message and be dropped.
		sess.Messages = sess.Messages[:len(sess.Messages)-2]
		removed = 2
		if sess.PendingIndex() < 0 {
			sess.FlowState = constant.FlowStateIdle
		}
		sess.Touch()
		cs.sessionRepo.Save(sess)
	}

	return &dto.RollbackResponse{
		Removed:      removed,
		MessageCount: len(sess.Messages),
	}, nil
}

func (cs *chatService) SetMode(ctx context.Context, sessionId uuid.UUID, mode string) error {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return serverutils.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Mode = mode
	sess.Touch()
	cs.sessionRepo.Save(sess)
	return nil
}

func (cs *chatService) SetFilters(ctx context.Context, sessionId uuid.UUID, req *dto.SetFiltersRequest) (entity.FilterState, error) {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return entity.FilterState{}, serverutils.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	if req.Department != nil {
		sess.Filters.Department = *req.Department
	}
	if req.DateRange != nil {
		sess.Filters.DateRange = *req.DateRange
	}
	if req.DocumentType != nil {
		sess.Filters.DocumentType = *req.DocumentType
	}
	sess.Touch()
	cs.sessionRepo.Save(sess)
	return sess.Filters, nil
}

func (cs *chatService) ClearFilters(ctx context.Context, sessionId uuid.UUID) (entity.FilterState, error) {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return entity.FilterState{}, serverutils.ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Filters = entity.DefaultFilterState()
	sess.Touch()
	cs.sessionRepo.Save(sess)
	return sess.Filters, nil
}

// SubmitFeedback records helpful/not-helpful feedback on a chat
// message. Feedback only feeds telemetry; it does not alter the message.
func (cs *chatService) SubmitFeedback(ctx context.Context, sessionId, messageId uuid.UUID, req *dto.FeedbackRequest) error {
	sess, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return serverutils.ErrSessionNotFound
	}

	sess.Lock()
	known := false
	for i := range sess.Messages {
		if sess.Messages[i].Id == messageId {
			known = true
			break
		}
	}
	sess.Unlock()

	if !known {
		return serverutils.ErrMessageNotFound
	}

	cs.logger.Info("CHAT", "Feedback submitted", map[string]interface{}{
		"session_id": sessionId,
		"message_id": messageId,
		"is_helpful": req.IsHelpful,
	})
	if cs.eventPublisher != nil {
		cs.eventPublisher.PublishFeedbackSubmitted(ctx, sessionId, messageId, req.IsHelpful, req.Reason)
	}
	return nil
}

func (cs *chatService) GetFilterOptions(ctx context.Context) (*dto.FilterOptionsResponse, error) {
	return &dto.FilterOptionsResponse{
		Departments:   constant.FilterDepartments,
		DateRanges:    constant.FilterDateRanges,
		DocumentTypes: constant.FilterDocumentTypes,
	}, nil
}

func toChatMessageDTO(m entity.ChatMessage) dto.ChatMessageDTO {
	return dto.ChatMessageDTO{
		Id:            m.Id,
		Seq:           m.Seq,
		Role:          m.Role,
		Content:       m.Content,
		Timestamp:     m.Timestamp,
		State:         m.State,
		EvidenceIds:   m.EvidenceIds,
		EvidenceCount: m.EvidenceCount,
		ResponseTime:  m.ResponseTime,
		HasPII:        m.HasPII,
		IsEvidenceLow: m.IsEvidenceLow,
		AttachedFiles: m.AttachedFiles,
	}
}
