package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Validator checks struct tags.
//
//go:generate mockgen -source=events.go -destination=mock_events.go -package=services
type Validator interface {
	Validate(s any) error
}

// Publisher records that a user's data changed.
type Publisher interface {
	Publish(ctx context.Context, activityType string, userID, resourceID uuid.UUID)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DefaultPublishTimeout bounds how long a request waits on the event writer.
const DefaultPublishTimeout = 500 * time.Millisecond

// ActivityPublisher publishes activity events to Kafka, keyed by user so one
// user's events stay ordered within a partition.
type ActivityPublisher struct {
	writer  KafkaWriter
	timeout time.Duration
}

// PublisherOption configures an ActivityPublisher.
type PublisherOption func(*ActivityPublisher)

// WithPublishTimeout sets the per-event write deadline.
func WithPublishTimeout(d time.Duration) PublisherOption {
	return func(p *ActivityPublisher) {
		p.timeout = d
	}
}

// NewActivityPublisher creates a publisher. A nil writer disables publishing.
func NewActivityPublisher(writer KafkaWriter, opts ...PublisherOption) *ActivityPublisher {
	p := &ActivityPublisher{writer: writer, timeout: DefaultPublishTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends the event. Failures are logged and never returned:
// the change it describes is already persisted. The write is detached from
// the request's cancellation and bounded by the publish timeout.
func (p *ActivityPublisher) Publish(ctx context.Context, activityType string, userID, resourceID uuid.UUID) {
	log := logger.FromContext(ctx)

	activity := models.Activity{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Type:       activityType,
		UserID:     userID.String(),
		ResourceID: resourceID.String(),
	}

	if p.writer == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_id", activity.EventID, "type", activityType)
		return
	}

	data, err := json.Marshal(activity)
	if err != nil {
		log.Errorw("Failed to marshal activity for Kafka", "event_id", activity.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(activity.UserID),
		Value: data,
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		log.Errorw("Failed to publish activity to Kafka", "event_id", activity.EventID, "error", err)
	} else {
		log.Infow("Activity published to Kafka", "event_id", activity.EventID, "type", activityType)
	}
}
