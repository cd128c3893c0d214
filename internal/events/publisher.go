package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/SAP-F-2025/profile-service/internal/models"
)

// TopicProfileEvents is the topic all profile lifecycle events go to.
const TopicProfileEvents = "profile.events"

// Event types
const (
	EventProfileCreated      = "profile.created"
	EventProfileUpdated      = "profile.updated"
	EventProfileDeleted      = "profile.deleted"
	EventProfileScoreUpdated = "profile.score_updated"
)

// ProfileEvent is the payload published on every profile mutation.
type ProfileEvent struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	UserID     uint            `json:"user_id"`
	Email      string          `json:"email,omitempty"`
	UserType   models.UserType `json:"user_type,omitempty"`
	Score      *float64        `json:"score,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewProfileEvent builds an event with a fresh ID and timestamp.
func NewProfileEvent(eventType string, user *models.User) ProfileEvent {
	ev := ProfileEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
	}
	if user != nil {
		ev.UserID = user.UserID
		ev.Email = user.Email
		ev.UserType = user.UserType
	}
	return ev
}

// EventPublisher publishes profile lifecycle events.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, event ProfileEvent) error
	Close() error
}

type watermillPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

// NewGoChannelPublisher creates an in-process publisher, used when no broker
// is configured.
func NewGoChannelPublisher(logger *slog.Logger) EventPublisher {
	pub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &watermillPublisher{publisher: pub, logger: logger}
}

// NewKafkaPublisher creates a Kafka-backed publisher for deployments with
// brokers configured.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	pub, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return &watermillPublisher{publisher: pub, logger: logger}, nil
}

func (p *watermillPublisher) PublishProfileEvent(ctx context.Context, event ProfileEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal profile event: %w", err)
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", event.EventType)

	if err := p.publisher.Publish(TopicProfileEvents, msg); err != nil {
		return fmt.Errorf("failed to publish profile event: %w", err)
	}

	p.logger.Debug("Published profile event",
		"event_id", event.EventID,
		"event_type", event.EventType,
		"user_id", event.UserID)

	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}
