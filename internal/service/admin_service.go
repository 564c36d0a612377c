package service

import (
	"context"

	"hananav-be/internal/dto"
	"hananav-be/internal/entity"
	"hananav-be/internal/pkg/logger"
	"hananav-be/pkg/admin/dashboard"
)

type IAdminService interface {
	GetDashboard(ctx context.Context) (*dashboard.Stats, error)
	GetConnectors(ctx context.Context) ([]entity.KnowledgeConnector, error)
	GetQualityLeague(ctx context.Context) ([]entity.QualityMetric, error)
	GetUsage(ctx context.Context) ([]entity.UsageBucket, error)
	GetSystemLogs(ctx context.Context, req *dto.GetLogsRequest) (*dto.GetLogsResponse, error)
}

type adminService struct {
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(aggregator *dashboard.Aggregator, sysLogger logger.ILogger) IAdminService {
	return &adminService{
		aggregator: aggregator,
		logger:     sysLogger,
	}
}

func (as *adminService) GetDashboard(ctx context.Context) (*dashboard.Stats, error) {
	return as.aggregator.GetStats(), nil
}

func (as *adminService) GetConnectors(ctx context.Context) ([]entity.KnowledgeConnector, error) {
	return as.aggregator.Connectors(), nil
}

func (as *adminService) GetQualityLeague(ctx context.Context) ([]entity.QualityMetric, error) {
	return as.aggregator.QualityLeague(), nil
}

func (as *adminService) GetUsage(ctx context.Context) ([]entity.UsageBucket, error) {
	return as.aggregator.Usage(), nil
}

func (as *adminService) GetSystemLogs(ctx context.Context, req *dto.GetLogsRequest) (*dto.GetLogsResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	entries, err := as.logger.GetLogs(req.Level, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.GetLogsResponse{
		Logs:  entries,
		Count: len(entries),
	}, nil
}
