package entity

import "time"

// KnowledgeConnector describes one upstream document source and its sync
// health. Connector integrations themselves are out of scope; the feed is
// seeded sample data.
type KnowledgeConnector struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"` // "SharePoint" | "Confluence" | "Drive"
	Status        string    `json:"status"`
	DocumentCount int       `json:"document_count"`
	LastSync      time.Time `json:"last_sync"`
	ErrorCount    int       `json:"error_count"`
}

const (
	ConnectorStatusConnected = "connected"
	ConnectorStatusError     = "error"
	ConnectorStatusSyncing   = "syncing"
)

// QualityMetric is one row of the per-department quality league.
type QualityMetric struct {
	Department         string  `json:"department"`
	ResponseTimeTarget int     `json:"response_time_target"` // % of queries under target
	EvidenceRate       int     `json:"evidence_rate"`
	PIICompliance      int     `json:"pii_compliance"`
	OverallScore       float64 `json:"overall_score"`
	Ranking            int     `json:"ranking"`
}

// UsageBucket is one cell of the hourly usage histogram.
type UsageBucket struct {
	Hour       string `json:"hour"`
	Department string `json:"department"`
	Queries    int    `json:"queries"`
}
