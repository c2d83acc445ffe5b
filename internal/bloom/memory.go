package bloom

import (
	"context"
	"fmt"
	"sync"

	"github.com/willf/bitset"
)

// MemoryFilter keeps the bit array in process memory. Every replica has its
// own view, so it is only suitable for single-instance runs and tests.
type MemoryFilter struct {
	mutex sync.RWMutex
	bits  *bitset.BitSet
	m     uint64
	k     uint
}

// NewMemoryFilter creates an empty MemoryFilter.
func NewMemoryFilter(sizing Sizing) (*MemoryFilter, error) {
	if err := sizing.Validate(); err != nil {
		return nil, fmt.Errorf("memory filter: %w", err)
	}
	m, k := sizing.Params()
	return &MemoryFilter{
		bits: bitset.New(uint(m)),
		m:    m,
		k:    k,
	}, nil
}

func (f *MemoryFilter) MightContain(_ context.Context, key string) (bool, error) {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	for _, loc := range locations(key, f.m, f.k) {
		if !f.bits.Test(uint(loc)) {
			return false, nil
		}
	}
	return true, nil
}

func (f *MemoryFilter) Add(_ context.Context, key string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	for _, loc := range locations(key, f.m, f.k) {
		f.bits.Set(uint(loc))
	}
	return nil
}
