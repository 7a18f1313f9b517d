package trendstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
)

// ValkeyStore persists occasion counters in a Valkey-compatible database,
// so trending survives restarts and is shared across replicas.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "outfits"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) RecordOccasion(ctx context.Context, occasion string) error {
	if occasion == "" {
		return nil
	}
	cmd := s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(occasion).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) TopOccasions(ctx context.Context, limit int) ([]recommender.TrendingOccasion, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]recommender.TrendingOccasion, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, recommender.TrendingOccasion{Occasion: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

var _ recommender.TrendStore = (*ValkeyStore)(nil)
