package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/sources"
)

// maxCandidateDescription bounds the description copied into a pending
// submission. Moderators trim further at approval time.
const maxCandidateDescription = 500

// Queue is the moderation-side surface the monitor needs: the URLs already
// pending and a way to enqueue new candidates.
type Queue interface {
	URLs() []string
	Enqueue(subs []*domain.PendingSubmission, checkedAt time.Time) error
}

// CatalogURLs exposes the published record URLs for deduplication.
type CatalogURLs interface {
	URLs() []string
}

// RunResult summarizes one monitoring pass.
type RunResult struct {
	Sources    int `json:"sources"`
	Fetched    int `json:"fetched"`
	Entries    int `json:"entries"`
	Accepted   int `json:"accepted"`
	Duplicates int `json:"duplicates"`
	Failures   int `json:"failures"`
}

// Monitor runs the full ingestion pass: fetch all feeds, score entries,
// drop known URLs and push the survivors into the moderation queue.
type Monitor struct {
	sources       []sources.Source
	fetcher       *Fetcher
	scorer        *Scorer
	catalog       CatalogURLs
	queue         Queue
	states        StateStore // nil disables conditional fetches
	log           logger.Logger
	maxConcurrent int
	now           func() time.Time
}

// NewMonitor wires a monitor. states may be nil.
func NewMonitor(
	srcs []sources.Source,
	fetcher *Fetcher,
	scorer *Scorer,
	cat CatalogURLs,
	queue Queue,
	states StateStore,
	log logger.Logger,
	maxConcurrent int,
) *Monitor {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Monitor{
		sources:       srcs,
		fetcher:       fetcher,
		scorer:        scorer,
		catalog:       cat,
		queue:         queue,
		states:        states,
		log:           log,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

type fetchOutcome struct {
	entries     []FeedEntry
	notModified bool
	err         error
}

// Run executes one pass. Feeds are fetched concurrently; scoring and
// deduplication happen serially afterwards so the in-run duplicate window is
// deterministic. A failing feed is counted and skipped, never fatal.
func (m *Monitor) Run(ctx context.Context) (*RunResult, error) {
	now := m.now()
	res := &RunResult{Sources: len(m.sources)}

	outcomes := m.fetchAll(ctx, now)

	seen := NewURLSet(m.catalog.URLs(), m.queue.URLs())
	var candidates []*domain.PendingSubmission

	for i, src := range m.sources {
		out := outcomes[i]
		if out.err != nil {
			res.Failures++
			m.log.Warn("feed fetch failed",
				logger.String("source", src.Name),
				logger.Error(out.err))
			continue
		}
		res.Fetched++
		if out.notModified {
			m.log.Debug("feed unchanged", logger.String("source", src.Name))
			continue
		}
		res.Entries += len(out.entries)

		for _, entry := range out.entries {
			if seen.Has(entry.Link) {
				res.Duplicates++
				continue
			}
			score := m.scorer.Score(entry, src)
			if !m.scorer.Accept(score.Score) {
				continue
			}
			candidates = append(candidates, m.newSubmission(entry, src, score, now))
			seen.Add(entry.Link)
			res.Accepted++
		}
	}

	if err := m.queue.Enqueue(candidates, now); err != nil {
		return res, err
	}

	m.log.Info("feed check complete",
		logger.Int("sources", res.Sources),
		logger.Int("fetched", res.Fetched),
		logger.Int("accepted", res.Accepted),
		logger.Int("duplicates", res.Duplicates),
		logger.Int("failures", res.Failures))
	return res, nil
}

// fetchAll downloads every feed with bounded concurrency. The result slice
// is indexed by source position so downstream processing stays ordered.
func (m *Monitor) fetchAll(ctx context.Context, now time.Time) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(m.sources))
	sem := make(chan struct{}, m.maxConcurrent)
	done := make(chan int)

	for i := range m.sources {
		go func(i int) {
			sem <- struct{}{}
			defer func() { <-sem; done <- i }()
			outcomes[i] = m.fetchOne(ctx, m.sources[i], now)
		}(i)
	}
	for range m.sources {
		<-done
	}
	return outcomes
}

func (m *Monitor) fetchOne(ctx context.Context, src sources.Source, now time.Time) fetchOutcome {
	state := m.loadState(ctx, src.FeedURL)

	fr, err := m.fetcher.Fetch(ctx, src.FeedURL, state)
	if err != nil {
		return fetchOutcome{err: err}
	}
	m.saveState(ctx, src.FeedURL, fr, state, now)

	if fr.NotModified {
		return fetchOutcome{notModified: true}
	}

	entries, err := ParseFeed(fr.Body, now)
	if err != nil {
		return fetchOutcome{err: err}
	}
	return fetchOutcome{entries: entries}
}

// loadState reads cached validators; any error is a cache miss.
func (m *Monitor) loadState(ctx context.Context, feedURL string) *FeedState {
	if m.states == nil {
		return nil
	}
	state, err := m.states.GetFeedState(ctx, feedURL)
	if err != nil {
		m.log.Debug("feed state read failed",
			logger.String("feed", feedURL),
			logger.Error(err))
		return nil
	}
	return state
}

// saveState writes validators back best-effort. A 304 keeps the previous
// validators with a refreshed check time.
func (m *Monitor) saveState(ctx context.Context, feedURL string, fr *FetchResult, prev *FeedState, now time.Time) {
	if m.states == nil {
		return
	}
	next := &FeedState{ETag: fr.ETag, LastModified: fr.LastModified, LastChecked: now}
	if fr.NotModified && prev != nil {
		next.ETag = prev.ETag
		next.LastModified = prev.LastModified
	}
	if err := m.states.SetFeedState(ctx, feedURL, next); err != nil {
		m.log.Debug("feed state write failed",
			logger.String("feed", feedURL),
			logger.Error(err))
	}
}

func (m *Monitor) newSubmission(entry FeedEntry, src sources.Source, score Result, now time.Time) *domain.PendingSubmission {
	return &domain.PendingSubmission{
		ID:                "rss-" + uuid.NewString(),
		Title:             entry.Title,
		URL:               entry.Link,
		Description:       domain.TruncateRunes(entry.Description, maxCandidateDescription),
		SuggestedCategory: src.Category,
		Source:            src.Name,
		SourceType:        domain.SourceTypeRSS,
		SubmittedAt:       now.UTC().Format(time.RFC3339),
		Status:            domain.StatusPending,
		MatchScore:        score.Score,
		MatchedKeywords:   score.MatchedKeywords,
	}
}
