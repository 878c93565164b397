package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/casefolio/casefolio/internal/utils"
)

// maxFeedBytes caps how much of a feed body is read. Well-formed feeds are
// far smaller; the cap protects against misbehaving servers.
const maxFeedBytes = 10 << 20

// FetchResult is the outcome of one feed request.
type FetchResult struct {
	Body         string
	NotModified  bool
	ETag         string
	LastModified string
}

// Fetcher retrieves feed documents over HTTP with conditional-request
// support.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads a feed. When state carries validators from a previous run
// they are sent as conditional headers; a 304 response yields NotModified
// with an empty body. Any non-2xx status other than 304 is an error.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, state *FeedState) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", feedURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if state != nil {
		if state.ETag != "" {
			req.Header.Set("If-None-Match", state.ETag)
		}
		if state.LastModified != "" {
			req.Header.Set("If-Modified-Since", state.LastModified)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode == http.StatusNotModified {
		return &FetchResult{NotModified: true}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", feedURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", feedURL, err)
	}

	return &FetchResult{
		Body:         string(body),
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}
