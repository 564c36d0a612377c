package service

import (
	"context"

	"github.com/google/uuid"

	"hananav-be/internal/dto"
	"hananav-be/internal/entity"
	"hananav-be/internal/pkg/logger"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/repository/memory"
	"hananav-be/pkg/catalog"
)

type IEvidenceService interface {
	Select(ctx context.Context, sessionId uuid.UUID, evidenceId string) (*dto.EvidencePanelResponse, error)
	ClosePanel(ctx context.Context, sessionId uuid.UUID) error
	GetPanel(ctx context.Context, sessionId uuid.UUID) (*dto.EvidencePanelResponse, error)
	GetDetail(ctx context.Context, evidenceId string) (*entity.EvidenceDetail, error)
}

// evidenceService manages the per-session evidence panel. Panel state lives
// on the session; the evidence content itself comes from the fixed catalog.
type evidenceService struct {
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
}

func NewEvidenceService(sessionRepo *memory.SessionRepository, sysLogger logger.ILogger) IEvidenceService {
	return &evidenceService{
		sessionRepo: sessionRepo,
		logger:      sysLogger,
	}
}

func (es *evidenceService) Select(ctx context.Context, sessionId uuid.UUID, evidenceId string) (*dto.EvidencePanelResponse, error) {
	sess, found := es.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.ErrSessionNotFound
	}

	item, found := catalog.FindEvidence(evidenceId)
	if !found {
		return nil, serverutils.ErrEvidenceNotFound
	}

	sess.Lock()
	sess.PanelOpen = true
	sess.SelectedEvidence = &item
	sess.Touch()
	sess.Unlock()
	es.sessionRepo.Save(sess)

	return &dto.EvidencePanelResponse{Open: true, Selected: &item}, nil
}

func (es *evidenceService) ClosePanel(ctx context.Context, sessionId uuid.UUID) error {
	sess, found := es.sessionRepo.Get(sessionId)
	if !found {
		return serverutils.ErrSessionNotFound
	}

	sess.Lock()
	sess.PanelOpen = false
	sess.SelectedEvidence = nil
	sess.Touch()
	sess.Unlock()
	es.sessionRepo.Save(sess)
	return nil
}

func (es *evidenceService) GetPanel(ctx context.Context, sessionId uuid.UUID) (*dto.EvidencePanelResponse, error) {
	sess, found := es.sessionRepo.Get(sessionId)
	if !found {
		return nil, serverutils.ErrSessionNotFound
	}
	sess.Lock()
	defer sess.Unlock()
	return &dto.EvidencePanelResponse{
		Open:     sess.PanelOpen,
		Selected: sess.SelectedEvidence,
	}, nil
}

func (es *evidenceService) GetDetail(ctx context.Context, evidenceId string) (*entity.EvidenceDetail, error) {
	detail, found := catalog.EvidenceDetail(evidenceId)
	if !found {
		return nil, serverutils.ErrEvidenceNotFound
	}
	return &detail, nil
}
