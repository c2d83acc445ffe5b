// Package idempotency guards message handlers against redelivery.
//
// Each message id moves through three states kept under
// short-link:idempotent:{id}: absent, in progress ("0") and done ("1").
// Claiming relies on a single SetNX, so no lock is involved. Both markers
// expire after the safety TTL, which also lets a crashed worker's claim
// heal by itself.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/kv"
)

const (
	keyPrefix = "short-link:idempotent:"

	stateInProgress = "0"
	stateDone       = "1"

	// DefaultTTL bounds how long an in-progress or done marker lives.
	DefaultTTL = 2 * time.Minute
)

// Outcome describes what Process did with a message.
type Outcome string

const (
	// OutcomeProcessed means the handler ran and succeeded.
	OutcomeProcessed Outcome = "processed"
	// OutcomeAlreadyDone means an earlier delivery finished the message.
	OutcomeAlreadyDone Outcome = "already_done"
	// OutcomeInFlight means another worker is processing the message now.
	OutcomeInFlight Outcome = "in_flight"
	// OutcomeFailed means the handler or the store failed.
	OutcomeFailed Outcome = "failed"
)

// Guard implements the claim / complete / compensate protocol.
type Guard struct {
	store kv.Store
	ttl   time.Duration
}

// NewGuard creates a Guard. A non-positive ttl falls back to DefaultTTL.
func NewGuard(store kv.Store, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{store: store, ttl: ttl}
}

func markerKey(id string) string {
	return keyPrefix + id
}

// TryAcquire claims id. It returns busy == false only to the single caller
// that moved id from absent to in progress; that caller owns the message.
// busy == true means id was already in progress or done.
func (g *Guard) TryAcquire(ctx context.Context, id string) (busy bool, err error) {
	ok, err := g.store.SetNX(ctx, markerKey(id), stateInProgress, g.ttl)
	if err != nil {
		return false, fmt.Errorf("failed to claim message %s: %w", id, err)
	}
	return !ok, nil
}

// IsDone reports whether id has been marked done.
func (g *Guard) IsDone(ctx context.Context, id string) (bool, error) {
	state, found, err := g.store.Get(ctx, markerKey(id))
	if err != nil {
		return false, fmt.Errorf("failed to read message state %s: %w", id, err)
	}
	return found && state == stateDone, nil
}

// MarkDone records that id finished. The marker keeps the safety TTL, so a
// delivery arriving after it expires is treated as new.
func (g *Guard) MarkDone(ctx context.Context, id string) error {
	if err := g.store.Set(ctx, markerKey(id), stateDone, g.ttl); err != nil {
		return fmt.Errorf("failed to mark message %s done: %w", id, err)
	}
	return nil
}

// Release drops the marker of id so a later delivery can retry at once.
// Only the failure path calls it.
func (g *Guard) Release(ctx context.Context, id string) error {
	if err := g.store.Del(ctx, markerKey(id)); err != nil {
		return fmt.Errorf("failed to release message %s: %w", id, err)
	}
	return nil
}

// Process runs handle at most once per id across concurrent and repeated
// deliveries. A failing or panicking handler releases the claim before
// Process returns, and the caller should let the broker redeliver.
func (g *Guard) Process(ctx context.Context, id string, handle func(ctx context.Context) error) (outcome Outcome, err error) {
	busy, err := g.TryAcquire(ctx, id)
	if err != nil {
		return OutcomeFailed, err
	}

	if busy {
		done, err := g.IsDone(ctx, id)
		if err != nil {
			return OutcomeFailed, err
		}
		if done {
			return OutcomeAlreadyDone, nil
		}
		return OutcomeInFlight, nil
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		// the claim must go even when ctx is already cancelled
		if releaseErr := g.Release(context.WithoutCancel(ctx), id); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()

	if err := handle(ctx); err != nil {
		return OutcomeFailed, fmt.Errorf("failed to handle message %s: %w", id, err)
	}

	if err := g.MarkDone(ctx, id); err != nil {
		return OutcomeFailed, err
	}

	finished = true
	return OutcomeProcessed, nil
}
