package bloom

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/redis/go-redis/v9"
)

// maxRedisBits is the largest bitmap a single Redis string can hold.
const maxRedisBits = 1 << 32

// RedisBitmapFilter keeps the bit array in a Redis string so every replica
// shares one view. It needs nothing beyond SETBIT and GETBIT.
type RedisBitmapFilter struct {
	client redis.UniversalClient
	key    string
	m      uint64
	k      uint
}

// NewRedisBitmapFilter creates a filter stored under key.
func NewRedisBitmapFilter(client redis.UniversalClient, key string, sizing Sizing) (*RedisBitmapFilter, error) {
	if err := sizing.Validate(); err != nil {
		return nil, fmt.Errorf("bitmap filter %s: %w", key, err)
	}
	m, k := sizing.Params()
	if m > maxRedisBits {
		return nil, fmt.Errorf("bitmap filter %s needs %d bits, more than a redis string holds: %w", key, m, ErrInvalidSizing)
	}
	return &RedisBitmapFilter{client: client, key: key, m: m, k: k}, nil
}

func (f *RedisBitmapFilter) MightContain(ctx context.Context, key string) (bool, error) {
	locs := locations(key, f.m, f.k)
	cmds := make([]*redis.IntCmd, len(locs))

	_, err := f.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, loc := range locs {
			cmds[i] = pipe.GetBit(ctx, f.key, int64(loc))
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("bitmap filter %s: %w: %w", f.key, kv.ErrStoreUnavailable, err)
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (f *RedisBitmapFilter) Add(ctx context.Context, key string) error {
	locs := locations(key, f.m, f.k)

	_, err := f.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, loc := range locs {
			pipe.SetBit(ctx, f.key, int64(loc), 1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bitmap filter %s: %w: %w", f.key, kv.ErrStoreUnavailable, err)
	}
	return nil
}

// RedisBloomFilter delegates to the RedisBloom module (BF.* commands).
type RedisBloomFilter struct {
	client redis.UniversalClient
	key    string
}

// NewRedisBloomFilter reserves the filter under key if it does not exist yet.
func NewRedisBloomFilter(ctx context.Context, client redis.UniversalClient, key string, sizing Sizing) (*RedisBloomFilter, error) {
	if err := sizing.Validate(); err != nil {
		return nil, fmt.Errorf("bloom filter %s: %w", key, err)
	}

	err := client.Do(ctx, "BF.RESERVE", key, sizing.FalsePositiveRate, sizing.ExpectedInsertions).Err()
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "exists") {
		return nil, fmt.Errorf("bloom filter %s reserve: %w: %w", key, kv.ErrStoreUnavailable, err)
	}

	return &RedisBloomFilter{client: client, key: key}, nil
}

func (f *RedisBloomFilter) MightContain(ctx context.Context, key string) (bool, error) {
	exists, err := f.client.Do(ctx, "BF.EXISTS", f.key, key).Bool()
	if err != nil {
		return false, fmt.Errorf("bloom filter %s exists: %w: %w", f.key, kv.ErrStoreUnavailable, err)
	}
	return exists, nil
}

// Add records key. BF.ADD answering 0 only means the key was probably
// present already, which is not an error.
func (f *RedisBloomFilter) Add(ctx context.Context, key string) error {
	if err := f.client.Do(ctx, "BF.ADD", f.key, key).Err(); err != nil {
		return fmt.Errorf("bloom filter %s add: %w: %w", f.key, kv.ErrStoreUnavailable, err)
	}
	return nil
}
