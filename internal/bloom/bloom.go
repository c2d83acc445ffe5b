// Package bloom implements the existence filters that keep lookups for
// keys that certainly do not exist away from the database.
//
// MightContain returning false is a guarantee of absence; true means the
// caller has to ask the source of truth. Filters are additive only: there
// is no removal, so the false positive rate grows with the number of keys
// ever added. Capacity planning belongs to whoever sizes the filter.
package bloom

import (
	"context"
	"errors"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Keys of the shared filters in Redis.
const (
	LinksKey = "short-link:bloom:links"
	UsersKey = "short-link:bloom:users"
)

// Filter is a probabilistic membership set.
type Filter interface {
	// MightContain reports whether key may have been added. Store errors are
	// returned as errors, never as "absent".
	MightContain(ctx context.Context, key string) (bool, error)
	// Add records key. Adding the same key twice is harmless.
	Add(ctx context.Context, key string) error
}

// ErrInvalidSizing is returned for a non-positive capacity or an error rate
// outside (0, 1).
var ErrInvalidSizing = errors.New("invalid bloom filter sizing")

// Sizing describes the expected load of a filter.
type Sizing struct {
	// ExpectedInsertions is the number of keys the filter is planned for.
	ExpectedInsertions uint64
	// FalsePositiveRate is the target rate at ExpectedInsertions.
	FalsePositiveRate float64
}

// Validate checks the sizing parameters.
func (s Sizing) Validate() error {
	if s.ExpectedInsertions == 0 || s.FalsePositiveRate <= 0 || s.FalsePositiveRate >= 1 {
		return ErrInvalidSizing
	}
	return nil
}

// Params returns the bit count m and hash count k for the sizing.
func (s Sizing) Params() (m uint64, k uint) {
	n := float64(s.ExpectedInsertions)
	bits := math.Ceil(-n * math.Log(s.FalsePositiveRate) / (math.Ln2 * math.Ln2))
	m = uint64(bits)
	if m == 0 {
		m = 1
	}
	k = uint(math.Round(float64(m) / n * math.Ln2))
	if k == 0 {
		k = 1
	}
	return m, k
}

// locations returns the k bit positions of key in a filter of m bits using
// double hashing over the two halves of a 64-bit xxhash.
func locations(key string, m uint64, k uint) []uint64 {
	sum := xxhash.Sum64String(key)
	h1 := sum & 0xffffffff
	h2 := sum >> 32

	locs := make([]uint64, k)
	for i := uint(0); i < k; i++ {
		locs[i] = (h1 + uint64(i)*h2) % m
	}
	return locs
}
