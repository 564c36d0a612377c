package dashboard

import (
	"time"

	"hananav-be/internal/entity"
	"hananav-be/internal/pkg/logger"
	"hananav-be/pkg/admin/usage"
)

// Aggregator assembles the admin console feed: connector health, the
// per-department quality league and the usage histogram. Connector and league
// rows are fixed sample data; usage comes from the live tracker.
type Aggregator struct {
	logger  logger.ILogger
	tracker *usage.Tracker
}

func NewAggregator(logger logger.ILogger, tracker *usage.Tracker) *Aggregator {
	return &Aggregator{
		logger:  logger,
		tracker: tracker,
	}
}

var knowledgeConnectors = []entity.KnowledgeConnector{
	{
		Id:            "1",
		Name:          "HR SharePoint",
		Type:          "SharePoint",
		Status:        entity.ConnectorStatusConnected,
		DocumentCount: 1247,
		LastSync:      time.Date(2025, 9, 8, 9, 15, 0, 0, time.UTC),
		ErrorCount:    0,
	},
	{
		Id:            "2",
		Name:          "IT Confluence",
		Type:          "Confluence",
		Status:        entity.ConnectorStatusSyncing,
		DocumentCount: 892,
		LastSync:      time.Date(2025, 9, 8, 8, 30, 0, 0, time.UTC),
		ErrorCount:    0,
	},
	{
		Id:            "3",
		Name:          "Finance Drive",
		Type:          "Drive",
		Status:        entity.ConnectorStatusError,
		DocumentCount: 634,
		LastSync:      time.Date(2025, 9, 7, 14, 20, 0, 0, time.UTC),
		ErrorCount:    3,
	},
	{
		Id:            "4",
		Name:          "Risk Management",
		Type:          "SharePoint",
		Status:        entity.ConnectorStatusConnected,
		DocumentCount: 445,
		LastSync:      time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC),
		ErrorCount:    0,
	},
}

var qualityLeague = []entity.QualityMetric{
	{Department: "인사팀", ResponseTimeTarget: 95, EvidenceRate: 98, PIICompliance: 100, OverallScore: 97.7, Ranking: 1},
	{Department: "리스크팀", ResponseTimeTarget: 88, EvidenceRate: 96, PIICompliance: 100, OverallScore: 94.7, Ranking: 2},
	{Department: "IT팀", ResponseTimeTarget: 82, EvidenceRate: 94, PIICompliance: 98, OverallScore: 91.3, Ranking: 3},
	{Department: "재무팀", ResponseTimeTarget: 79, EvidenceRate: 92, PIICompliance: 100, OverallScore: 90.3, Ranking: 4},
	{Department: "영업팀", ResponseTimeTarget: 76, EvidenceRate: 89, PIICompliance: 96, OverallScore: 87.0, Ranking: 5},
}

// Stats is the overview block of the dashboard.
type Stats struct {
	TotalDocuments   int                         `json:"total_documents"`
	ConnectedSources int                         `json:"connected_sources"`
	ErrorSources     int                         `json:"error_sources"`
	Connectors       []entity.KnowledgeConnector `json:"connectors"`
	QualityLeague    []entity.QualityMetric      `json:"quality_league"`
	Usage            []entity.UsageBucket        `json:"usage"`
}

func (a *Aggregator) GetStats() *Stats {
	totalDocs := 0
	connected := 0
	errored := 0
	for _, c := range knowledgeConnectors {
		totalDocs += c.DocumentCount
		switch c.Status {
		case entity.ConnectorStatusConnected:
			connected++
		case entity.ConnectorStatusError:
			errored++
		}
	}

	return &Stats{
		TotalDocuments:   totalDocs,
		ConnectedSources: connected,
		ErrorSources:     errored,
		Connectors:       a.Connectors(),
		QualityLeague:    a.QualityLeague(),
		Usage:            a.tracker.Snapshot(),
	}
}

func (a *Aggregator) Connectors() []entity.KnowledgeConnector {
	out := make([]entity.KnowledgeConnector, len(knowledgeConnectors))
	copy(out, knowledgeConnectors)
	return out
}

func (a *Aggregator) QualityLeague() []entity.QualityMetric {
	out := make([]entity.QualityMetric, len(qualityLeague))
	copy(out, qualityLeague)
	return out
}

func (a *Aggregator) Usage() []entity.UsageBucket {
	return a.tracker.Snapshot()
}
