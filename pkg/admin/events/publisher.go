package events

import (
	"context"
	"time"

	"hananav-be/internal/pkg/logger"
	pkgEvents "hananav-be/pkg/events"
	pktNats "hananav-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for the telemetry feed the admin
// console consumes.
type Publisher interface {
	PublishQueryAnswered(ctx context.Context, sessionId uuid.UUID, department string, latencySeconds float64, evidenceCount int, hasPII, isEvidenceLow bool)
	PublishAnswerSaved(ctx context.Context, destinationId, category string)
	PublishFeedbackSubmitted(ctx context.Context, sessionId, messageId uuid.UUID, isHelpful bool, reason string)
}

// NatsPublisher implements Publisher over NATS JetStream. All publishes are
// best-effort: telemetry must never fail a user request.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) PublishQueryAnswered(ctx context.Context, sessionId uuid.UUID, department string, latencySeconds float64, evidenceCount int, hasPII, isEvidenceLow bool) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "QUERY_ANSWERED",
		Data: map[string]interface{}{
			"session_id":      sessionId,
			"department":      department,
			"latency_seconds": latencySeconds,
			"evidence_count":  evidenceCount,
			"has_pii":         hasPII,
			"is_evidence_low": isEvidenceLow,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("TELEMETRY", "Failed to publish QUERY_ANSWERED event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishAnswerSaved(ctx context.Context, destinationId, category string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "ANSWER_SAVED",
		Data: map[string]interface{}{
			"destination_id": destinationId,
			"category":       category,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("TELEMETRY", "Failed to publish ANSWER_SAVED event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishFeedbackSubmitted(ctx context.Context, sessionId, messageId uuid.UUID, isHelpful bool, reason string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "FEEDBACK_SUBMITTED",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"message_id": messageId,
			"is_helpful": isHelpful,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("TELEMETRY", "Failed to publish FEEDBACK_SUBMITTED event", map[string]interface{}{"error": err.Error()})
	}
}
