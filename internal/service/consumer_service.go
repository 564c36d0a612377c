package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"hananav-be/internal/dto"
	"hananav-be/pkg/admin/usage"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains QUERY_ANSWERED messages off the in-process bus and
// feeds the usage tracker behind the admin histogram.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	tracker   *usage.Tracker
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	tracker *usage.Tracker,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		tracker:   tracker,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishQueryAnsweredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal usage message: %v", err)
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	cs.tracker.Record(payload.Department)
	msg.Ack()
}
