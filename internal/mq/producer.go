package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// StatsProducer publishes stats messages keyed by their idempotency id.
type StatsProducer struct {
	writer  MessageWriter
	metrics *Metrics
	logger  *zap.Logger
}

// NewStatsProducer creates a producer on writer.
func NewStatsProducer(writer MessageWriter, metrics *Metrics, logger *zap.Logger) *StatsProducer {
	return &StatsProducer{
		writer:  writer,
		metrics: metrics,
		logger:  logger,
	}
}

// Publish writes msg to the topic.
func (p *StatsProducer) Publish(ctx context.Context, msg model.StatsMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode stats message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Keys),
		Value: value,
	})
	if err != nil {
		p.metrics.observePublishFailure()
		return fmt.Errorf("failed to publish stats message %s: %w", msg.Keys, err)
	}

	p.logger.Debug("stats message published", zap.String("keys", msg.Keys))
	return nil
}

// Close flushes and closes the writer.
func (p *StatsProducer) Close() error {
	return p.writer.Close()
}
