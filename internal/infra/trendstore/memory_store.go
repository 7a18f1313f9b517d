package trendstore

import (
	"context"
	"sort"
	"sync"

	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
)

// MemoryStore keeps occasion counters in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs an in-memory trend store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

func (s *MemoryStore) RecordOccasion(_ context.Context, occasion string) error {
	if occasion == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[occasion]++
	return nil
}

func (s *MemoryStore) TopOccasions(_ context.Context, limit int) ([]recommender.TrendingOccasion, error) {
	if limit <= 0 {
		limit = 10
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]recommender.TrendingOccasion, 0, len(s.counts))
	for occasion, count := range s.counts {
		out = append(out, recommender.TrendingOccasion{Occasion: occasion, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Occasion < out[j].Occasion
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ recommender.TrendStore = (*MemoryStore)(nil)
