package dto

import "hananav-be/internal/pkg/logger"

type GetLogsRequest struct {
	Level  string `query:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type GetLogsResponse struct {
	Logs  []logger.LogEntry `json:"logs"`
	Count int               `json:"count"`
}
