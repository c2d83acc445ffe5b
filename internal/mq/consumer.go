package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/idempotency"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DefaultRetryDelay is the pause before a message is handled again.
const DefaultRetryDelay = time.Second

// Guard runs a handler at most once per message id.
type Guard interface {
	Process(ctx context.Context, id string, handle func(ctx context.Context) error) (idempotency.Outcome, error)
}

// StatsHandler applies one stats message.
type StatsHandler func(ctx context.Context, msg model.StatsMessage) error

// StatsConsumer reads stats messages and applies them through Guard.
//
// A message is committed once it is processed or known to be done. A
// failed message, or one another worker is still holding, is retried in
// place after RetryDelay; its offset is not committed in the meantime.
type StatsConsumer struct {
	reader     MessageReader
	guard      Guard
	handle     StatsHandler
	metrics    *Metrics
	logger     *zap.Logger
	retryDelay time.Duration
}

// NewStatsConsumer creates a consumer.
func NewStatsConsumer(reader MessageReader, guard Guard, handle StatsHandler, metrics *Metrics, logger *zap.Logger) *StatsConsumer {
	return &StatsConsumer{
		reader:     reader,
		guard:      guard,
		handle:     handle,
		metrics:    metrics,
		logger:     logger,
		retryDelay: DefaultRetryDelay,
	}
}

// Run consumes until ctx is cancelled or the reader fails.
func (c *StatsConsumer) Run(ctx context.Context) error {
	c.logger.Info("stats consumer started")
	defer c.logger.Info("stats consumer stopped")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, ErrBusClosed) {
				return nil
			}
			return fmt.Errorf("failed to fetch stats message: %w", err)
		}

		if err := c.consume(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// consume handles msg until it can be committed or ctx ends.
func (c *StatsConsumer) consume(ctx context.Context, msg kafka.Message) error {
	var stats model.StatsMessage
	if err := json.Unmarshal(msg.Value, &stats); err != nil {
		c.logger.Error("dropping undecodable stats message",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return c.commit(ctx, msg)
	}

	id := string(msg.Key)
	if id == "" {
		id = stats.Keys
	}

	for {
		outcome, err := c.guard.Process(ctx, id, func(ctx context.Context) error {
			return c.handle(ctx, stats)
		})
		c.metrics.observeOutcome(outcome)

		switch outcome {
		case idempotency.OutcomeProcessed:
			return c.commit(ctx, msg)
		case idempotency.OutcomeAlreadyDone:
			c.logger.Info("stats message already processed", zap.String("keys", id))
			return c.commit(ctx, msg)
		case idempotency.OutcomeInFlight:
			c.logger.Info("stats message is being processed elsewhere", zap.String("keys", id))
		default:
			c.logger.Error("failed to process stats message", zap.String("keys", id), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
}

func (c *StatsConsumer) commit(ctx context.Context, msg kafka.Message) error {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to commit stats message: %w", err)
	}
	return nil
}

// Close closes the reader.
func (c *StatsConsumer) Close() error {
	return c.reader.Close()
}
