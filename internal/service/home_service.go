package service

import (
	"context"

	"hananav-be/internal/entity"
	"hananav-be/pkg/catalog"
)

type IHomeService interface {
	GetPopularQuestions(ctx context.Context) ([]entity.PopularQuestion, error)
	GetPresetRoutes(ctx context.Context) ([]entity.PresetRoute, error)
	GetChatModes(ctx context.Context) ([]entity.ChatModeInfo, error)
}

type homeService struct{}

func NewHomeService() IHomeService {
	return &homeService{}
}

func (hs *homeService) GetPopularQuestions(ctx context.Context) ([]entity.PopularQuestion, error) {
	return catalog.PopularQuestions(), nil
}

func (hs *homeService) GetPresetRoutes(ctx context.Context) ([]entity.PresetRoute, error) {
	return catalog.PresetRoutes(), nil
}

func (hs *homeService) GetChatModes(ctx context.Context) ([]entity.ChatModeInfo, error) {
	return catalog.ChatModes(), nil
}
