// Package redis caches per-feed fetch state so unchanged feeds can be
// skipped with conditional requests across service restarts. The cache is
// strictly best-effort; ingestion works identically without it.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/casefolio/casefolio/internal/ingest"
)

const keyPrefixFeed = "casefolio:feed:"

// DefaultStateTTL expires feed state that has not been refreshed; a feed
// removed from the source list leaves no residue.
const DefaultStateTTL = 7 * 24 * time.Hour

// FeedStateStore implements ingest.StateStore on Redis.
type FeedStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedStateStore creates a store; ttl <= 0 uses DefaultStateTTL.
func NewFeedStateStore(client *redis.Client, ttl time.Duration) *FeedStateStore {
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &FeedStateStore{client: client, ttl: ttl}
}

func feedKey(feedURL string) string {
	return keyPrefixFeed + feedURL
}

// GetFeedState returns the cached state for a feed, or nil on a miss.
func (s *FeedStateStore) GetFeedState(ctx context.Context, feedURL string) (*ingest.FeedState, error) {
	data, err := s.client.Get(ctx, feedKey(feedURL)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get feed state: %w", err)
	}

	var state ingest.FeedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode feed state: %w", err)
	}
	return &state, nil
}

// SetFeedState stores the state with the configured TTL.
func (s *FeedStateStore) SetFeedState(ctx context.Context, feedURL string, state *ingest.FeedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode feed state: %w", err)
	}
	if err := s.client.Set(ctx, feedKey(feedURL), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set feed state: %w", err)
	}
	return nil
}
