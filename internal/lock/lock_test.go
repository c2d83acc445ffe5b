package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/clock"
	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStore() (*kv.MemoryStore, *clock.Mock) {
	clk := clock.NewMock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return kv.NewMemoryStore(clk), clk
}

func TestTryAcquire_MutualExclusion(t *testing.T) {
	// Arrange
	store, _ := newStore()
	locker := NewLocker(store, time.Minute)
	ctx := context.Background()

	const workers = 2
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		held  []*Lock
		busy  int
		start = make(chan struct{})
	)

	// Act
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			lk, err := locker.TryAcquire(ctx, "register:alice")
			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, ErrLockBusy) {
				busy++
				return
			}
			if assert.NoError(t, err) {
				held = append(held, lk)
			}
		}()
	}
	close(start)
	wg.Wait()

	// Assert
	require.Len(t, held, 1)
	assert.Equal(t, 1, busy)

	require.NoError(t, held[0].Release(ctx))
	third, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)
	assert.Equal(t, "register:alice", third.Name())
}

func TestTryAcquire_IndependentNames(t *testing.T) {
	store, _ := newStore()
	locker := NewLocker(store, time.Minute)
	ctx := context.Background()

	_, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)
	_, err = locker.TryAcquire(ctx, "register:bob")
	require.NoError(t, err)
}

func TestTryAcquire_ExpiresAfterTTL(t *testing.T) {
	store, clk := newStore()
	locker := NewLocker(store, 10*time.Second)
	ctx := context.Background()

	_, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)

	clk.Advance(5 * time.Second)
	_, err = locker.TryAcquire(ctx, "register:alice")
	require.ErrorIs(t, err, ErrLockBusy)

	clk.Advance(6 * time.Second)
	_, err = locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)
}

func TestRelease_DoesNotFreeForeignLock(t *testing.T) {
	// Arrange
	store, clk := newStore()
	locker := NewLocker(store, 10*time.Second)
	ctx := context.Background()

	stale, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)
	clk.Advance(11 * time.Second)
	_, err = locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)

	// Act
	require.NoError(t, stale.Release(ctx))

	// Assert
	_, err = locker.TryAcquire(ctx, "register:alice")
	require.ErrorIs(t, err, ErrLockBusy, "stale holder must not release the new owner's lock")
}

func TestNewLocker_DefaultTTL(t *testing.T) {
	store, clk := newStore()
	locker := NewLocker(store, 0)
	ctx := context.Background()

	_, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)

	clk.Advance(DefaultTTL - time.Second)
	_, err = locker.TryAcquire(ctx, "register:alice")
	require.ErrorIs(t, err, ErrLockBusy)

	clk.Advance(2 * time.Second)
	_, err = locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)
}

func TestWithLock(t *testing.T) {
	fnErr := errors.New("insert failed")

	tests := []struct {
		name    string
		fn      func(ctx context.Context) error
		wantErr error
	}{
		{
			name: "success",
			fn:   func(context.Context) error { return nil },
		},
		{
			name:    "fn error is returned",
			fn:      func(context.Context) error { return fnErr },
			wantErr: fnErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store, _ := newStore()
			locker := NewLocker(store, time.Minute)
			ctx := context.Background()

			// Act
			err := locker.WithLock(ctx, "register:alice", tt.fn)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			_, found, getErr := store.Get(ctx, "register:alice")
			require.NoError(t, getErr)
			assert.False(t, found, "lock must be released")
		})
	}
}

func TestWithLock_ReleasedOnPanic(t *testing.T) {
	store, _ := newStore()
	locker := NewLocker(store, time.Minute)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = locker.WithLock(ctx, "register:alice", func(context.Context) error {
			panic("boom")
		})
	})

	_, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)
}

func TestWithLock_Busy(t *testing.T) {
	store, _ := newStore()
	locker := NewLocker(store, time.Minute)
	ctx := context.Background()

	_, err := locker.TryAcquire(ctx, "register:alice")
	require.NoError(t, err)

	called := false
	err = locker.WithLock(ctx, "register:alice", func(context.Context) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, ErrLockBusy)
	assert.False(t, called)
}

func TestTryAcquire_StoreError(t *testing.T) {
	// Arrange
	store := mocks.NewMockStore(t)
	store.EXPECT().
		SetNX(mock.Anything, "register:alice", mock.AnythingOfType("string"), DefaultTTL).
		Return(false, kv.ErrStoreUnavailable).
		Once()
	locker := NewLocker(store, 0)

	// Act
	lk, err := locker.TryAcquire(context.Background(), "register:alice")

	// Assert
	require.ErrorIs(t, err, kv.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrLockBusy)
	assert.Nil(t, lk)
}
