package service

import (
	"context"
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
)

type ISavedService interface {
	Query(ctx context.Context, search, category string) ([]dto.SavedDestinationResponse, error)
	Save(ctx context.Context, req *dto.SaveDestinationRequest) (*dto.SavedDestinationResponse, error)
	Update(ctx context.Context, req *dto.UpdateDestinationRequest) (*dto.SavedDestinationResponse, error)
	Delete(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (*dto.SavedDestinationResponse, error)
	ToggleStar(ctx context.Context, id string) (*dto.SavedDestinationResponse, error)
}

type savedService struct {
	savedRepo      *memory.SavedRepository
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewSavedService(savedRepo *memory.SavedRepository, eventPublisher events.Publisher, sysLogger logger.ILogger) ISavedService {
	return &savedService{
		savedRepo:      savedRepo,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

// Query filters by free-text search and category, then orders the result:
// pinned entries first, then starred, then saved date descending. The search
// term matches title, summary, or any tag, case-insensitively.
func (ss *savedService) Query(ctx context.Context, search, category string) ([]dto.SavedDestinationResponse, error) {
	entries := ss.savedRepo.All()

	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entity.SavedDestination, 0, len(entries))
	for _, e := range entries {
		if category != "" && category != constant.FilterAll && e.Category != category {
			continue
		}
		if needle != "" && !matchesSearch(e, needle) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		if a.IsStarred != b.IsStarred {
			return a.IsStarred
		}
		return a.SavedDate.After(b.SavedDate)
	})

	response := make([]dto.SavedDestinationResponse, 0, len(filtered))
	for _, e := range filtered {
		response = append(response, dto.ToSavedDestinationResponse(e))
	}
	return response, nil
}

func matchesSearch(e entity.SavedDestination, needle string) bool {
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Summary), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (ss *savedService) Save(ctx context.Context, req *dto.SaveDestinationRequest) (*dto.SavedDestinationResponse, error) {
	id := req.Id
	if id == "" {
		id = uuid.NewString()
	}

	entry := entity.SavedDestination{
		Id:               id,
		Title:            req.Title,
		Summary:          req.Summary,
		OriginalQuestion: req.OriginalQuestion,
		EvidenceCount:    req.EvidenceCount,
		SavedDate:        time.Now(),
		Tags:             req.Tags,
		Category:         req.Category,
		PersonalNotes:    req.PersonalNotes,
	}

	if !ss.savedRepo.Insert(entry) {
		return nil, serverutils.ErrSaveConflict
	}

	ss.logger.Info("SAVED", "Destination saved", map[string]interface{}{"id": id, "category": entry.Category})
	if ss.eventPublisher != nil {
		ss.eventPublisher.PublishAnswerSaved(ctx, id, entry.Category)
	}

	response := dto.ToSavedDestinationResponse(entry)
	return &response, nil
}

// Update replaces the matching entry wholesale. An absent id is a no-op and
// returns nil data.
func (ss *savedService) Update(ctx context.Context, req *dto.UpdateDestinationRequest) (*dto.SavedDestinationResponse, error) {
	current, found := ss.savedRepo.Find(req.Id)
	if !found {
		return nil, nil
	}

	entry := entity.SavedDestination{
		Id:               req.Id,
		Title:            req.Title,
		Summary:          req.Summary,
		OriginalQuestion: req.OriginalQuestion,
		EvidenceCount:    req.EvidenceCount,
		SavedDate:        current.SavedDate,
		Tags:             req.Tags,
		Category:         req.Category,
		IsPinned:         req.IsPinned,
		IsStarred:        req.IsStarred,
		PersonalNotes:    req.PersonalNotes,
	}
	ss.savedRepo.Replace(entry)

	response := dto.ToSavedDestinationResponse(entry)
	return &response, nil
}

func (ss *savedService) Delete(ctx context.Context, id string) error {
	ss.savedRepo.Delete(id)
	return nil
}

func (ss *savedService) TogglePin(ctx context.Context, id string) (*dto.SavedDestinationResponse, error) {
	return ss.toggle(id, func(e *entity.SavedDestination) {
		e.IsPinned = !e.IsPinned
	})
}

func (ss *savedService) ToggleStar(ctx context.Context, id string) (*dto.SavedDestinationResponse, error) {
	return ss.toggle(id, func(e *entity.SavedDestination) {
		e.IsStarred = !e.IsStarred
	})
}

func (ss *savedService) toggle(id string, fn func(*entity.SavedDestination)) (*dto.SavedDestinationResponse, error) {
	if !ss.savedRepo.Mutate(id, fn) {
		return nil, nil
	}
	entry, _ := ss.savedRepo.Find(id)
	response := dto.ToSavedDestinationResponse(entry)
	return &response, nil
}
