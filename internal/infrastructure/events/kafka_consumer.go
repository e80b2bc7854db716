package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/tuncanbit/bss/internal/domain"
)

type KafkaConsumer struct {
	reader *kafka.Reader
	logger zerolog.Logger
}

func NewKafkaConsumer(brokers []string, groupID, topic string, logger zerolog.Logger) (*KafkaConsumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka consumer requires at least one broker")
	}
	if groupID == "" {
		return nil, fmt.Errorf("kafka consumer requires group id")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  500 * time.Millisecond,
	})
	return &KafkaConsumer{
		reader: reader,
		logger: logger.With().Str("component", "kafka_consumer").Logger(),
	}, nil
}

// Run feeds every message to handler until ctx is cancelled. Undecodable
// messages and handler failures are logged and committed.
func (c *KafkaConsumer) Run(ctx context.Context, handler Handler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("failed to read kafka message: %w", err)
		}

		event, err := decodeMessage(msg)
		if err != nil {
			c.logger.Error().Err(err).Int64("offset", msg.Offset).Msg("Skipping undecodable event")
			continue
		}
		if err := handler(ctx, event); err != nil {
			c.logger.Error().
				Err(err).
				Str("event_type", string(event.Type)).
				Str("event_id", event.ID).
				Msg("Event handler failed")
		}
	}
}

func decodeMessage(msg kafka.Message) (domain.Event, error) {
	var event domain.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return domain.Event{}, fmt.Errorf("failed to decode event: %w", err)
	}
	return event, nil
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
