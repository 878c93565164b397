package ingest

import (
	"context"
	"time"
)

// FeedState holds the HTTP validators remembered between runs for one feed,
// so unchanged feeds can answer with 304 instead of a full body.
type FeedState struct {
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"lastModified,omitempty"`
	LastChecked  time.Time `json:"lastChecked"`
}

// StateStore persists per-feed fetch state between runs. Implementations are
// best-effort; the monitor treats every error as a cache miss.
type StateStore interface {
	GetFeedState(ctx context.Context, feedURL string) (*FeedState, error)
	SetFeedState(ctx context.Context, feedURL string, state *FeedState) error
}
