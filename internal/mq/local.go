package mq

import (
	"context"
	"errors"
	"sync"

	"github.com/segmentio/kafka-go"
)

// ErrBusClosed is returned by a LocalBus after Close.
var ErrBusClosed = errors.New("local bus closed")

// LocalBus is an in-process topic implementing both MessageWriter and
// MessageReader. Commits are no-ops and nothing survives a restart.
type LocalBus struct {
	messages chan kafka.Message
	done     chan struct{}
	once     sync.Once
}

// NewLocalBus creates a bus buffering up to size messages.
func NewLocalBus(size int) *LocalBus {
	return &LocalBus{
		messages: make(chan kafka.Message, size),
		done:     make(chan struct{}),
	}
}

func (b *LocalBus) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	for _, msg := range msgs {
		select {
		case b.messages <- msg:
		case <-b.done:
			return ErrBusClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (b *LocalBus) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case msg := <-b.messages:
		return msg, nil
	case <-b.done:
		return kafka.Message{}, ErrBusClosed
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (b *LocalBus) CommitMessages(context.Context, ...kafka.Message) error {
	return nil
}

func (b *LocalBus) Close() error {
	b.once.Do(func() {
		close(b.done)
	})
	return nil
}
