// Package moderation owns the pending submission queue and the approval
// state machine that turns accepted submissions into catalog records.
package moderation

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/casefolio/casefolio/internal/catalog"
	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/ingest"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/store"
)

// Action is a moderator decision.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Overrides are the optional moderator edits applied at approval time.
// Empty fields keep the submission's values.
type Overrides struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Company     string `json:"company,omitempty"`
	Format      string `json:"format,omitempty"`
}

// Decision is the outcome of Decide. CaseStudy is set only on approval.
type Decision struct {
	Action    Action            `json:"action"`
	CaseStudy *domain.CaseStudy `json:"caseStudy,omitempty"`
}

// SubmitRequest is a community submission.
type SubmitRequest struct {
	Title             string `json:"title"`
	URL               string `json:"url"`
	Description       string `json:"description"`
	SuggestedCategory string `json:"suggestedCategory"`
	Company           string `json:"company,omitempty"`
	SubmitterEmail    string `json:"submitterEmail,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// Engine serializes every queue mutation behind one mutex so that decide,
// submit and enqueue operations never interleave their read-modify-write
// cycles against the persisted files.
type Engine struct {
	mu       sync.Mutex
	queue    *domain.PendingQueue
	catalog  *catalog.Catalog
	records  store.CatalogSource
	pendings store.PendingSource
	access   *domain.AccessClassifier
	log      logger.Logger
	now      func() time.Time
}

// NewEngine loads the persisted queue. A failing read degrades to an empty
// queue with a warning so the service still starts; the first successful
// save rewrites the file.
func NewEngine(
	cat *catalog.Catalog,
	records store.CatalogSource,
	pendings store.PendingSource,
	access *domain.AccessClassifier,
	log logger.Logger,
) *Engine {
	q, err := pendings.LoadPending()
	if err != nil {
		log.Warn("pending queue load failed, starting empty", logger.Error(err))
		q = &domain.PendingQueue{}
	}

	return &Engine{
		queue:    q,
		catalog:  cat,
		records:  records,
		pendings: pendings,
		access:   access,
		log:      log,
		now:      time.Now,
	}
}

// List returns a snapshot of the queue, optionally filtered by status.
func (e *Engine) List(status domain.Status) *domain.PendingQueue {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := &domain.PendingQueue{
		LastChecked: e.queue.LastChecked,
		Submissions: make([]*domain.PendingSubmission, 0, len(e.queue.Submissions)),
	}
	for _, sub := range e.queue.Submissions {
		if status != "" && sub.Status != status {
			continue
		}
		cp := *sub
		out.Submissions = append(out.Submissions, &cp)
	}
	return out
}

// URLs returns every queued URL regardless of status, for deduplication.
func (e *Engine) URLs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	urls := make([]string, 0, len(e.queue.Submissions))
	for _, sub := range e.queue.Submissions {
		urls = append(urls, sub.URL)
	}
	return urls
}

// Count returns the number of queued submissions.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.queue.Submissions)
}

// Enqueue appends new submissions, stamps the check time and persists. It is
// the ingest monitor's entry point; an empty batch still updates LastChecked.
func (e *Engine) Enqueue(subs []*domain.PendingSubmission, checkedAt time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prevLen := len(e.queue.Submissions)
	prevChecked := e.queue.LastChecked

	e.queue.Submissions = append(e.queue.Submissions, subs...)
	e.queue.LastChecked = checkedAt.UTC().Format(time.RFC3339)

	if err := e.pendings.SavePending(e.queue); err != nil {
		e.queue.Submissions = e.queue.Submissions[:prevLen]
		e.queue.LastChecked = prevChecked
		return fmt.Errorf("persist pending queue: %w", err)
	}
	return nil
}

// Submit validates a community submission, rejects duplicates of catalog or
// queued URLs and persists the new pending entry.
func (e *Engine) Submit(req SubmitRequest) (*domain.PendingSubmission, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "required"}
	}
	if !domain.ValidURL(req.URL) {
		return nil, &domain.ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}
	if req.SuggestedCategory != "" && !domain.ValidCategory(req.SuggestedCategory) {
		return nil, &domain.ValidationError{
			Field:  "suggestedCategory",
			Reason: fmt.Sprintf("unknown category slug %q", req.SuggestedCategory),
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seen := ingest.NewURLSet(e.catalog.URLs(), e.queueURLsLocked())
	if seen.Has(req.URL) {
		return nil, &domain.DuplicateError{URL: req.URL}
	}

	sub := &domain.PendingSubmission{
		ID:                "community-" + uuid.NewString(),
		Title:             strings.TrimSpace(req.Title),
		URL:               req.URL,
		Description:       req.Description,
		SuggestedCategory: req.SuggestedCategory,
		Source:            "Community",
		SourceType:        domain.SourceTypeCommunity,
		SubmittedAt:       e.now().UTC().Format(time.RFC3339),
		Status:            domain.StatusPending,
		Company:           req.Company,
		SubmitterEmail:    req.SubmitterEmail,
		Notes:             req.Notes,
	}

	e.queue.Submissions = append(e.queue.Submissions, sub)
	if err := e.pendings.SavePending(e.queue); err != nil {
		e.queue.Submissions = e.queue.Submissions[:len(e.queue.Submissions)-1]
		return nil, fmt.Errorf("persist pending queue: %w", err)
	}

	e.log.Info("community submission queued",
		logger.String("id", sub.ID),
		logger.String("url", sub.URL))
	cp := *sub
	return &cp, nil
}

func (e *Engine) queueURLsLocked() []string {
	urls := make([]string, 0, len(e.queue.Submissions))
	for _, sub := range e.queue.Submissions {
		urls = append(urls, sub.URL)
	}
	return urls
}

// Decide applies a moderator decision. Approvals build the catalog record,
// persist the grown catalog first, then flip the submission status; if any
// persistence step fails the in-memory state rolls back and the submission
// stays pending.
func (e *Engine) Decide(id string, action Action, ov Overrides) (*Decision, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sub *domain.PendingSubmission
	for _, s := range e.queue.Submissions {
		if s.ID == id {
			sub = s
			break
		}
	}
	if sub == nil {
		return nil, &domain.NotFoundError{Kind: "submission", ID: id}
	}
	if sub.Status.Terminal() {
		return nil, &domain.InvalidStateError{ID: id, Status: sub.Status}
	}

	switch action {
	case ActionReject:
		sub.Status = domain.StatusRejected
		if err := e.pendings.SavePending(e.queue); err != nil {
			sub.Status = domain.StatusPending
			return nil, fmt.Errorf("persist pending queue: %w", err)
		}
		e.log.Info("submission rejected", logger.String("id", id))
		return &Decision{Action: ActionReject}, nil

	case ActionApprove:
		rec, err := e.buildRecord(sub, ov)
		if err != nil {
			return nil, err
		}
		if err := e.records.SaveRecords(append(e.catalog.All(), rec)); err != nil {
			return nil, fmt.Errorf("persist catalog: %w", err)
		}

		sub.Status = domain.StatusApproved
		if err := e.pendings.SavePending(e.queue); err != nil {
			sub.Status = domain.StatusPending
			return nil, fmt.Errorf("persist pending queue: %w", err)
		}
		e.catalog.Append(rec)

		e.log.Info("submission approved",
			logger.String("id", id),
			logger.String("slug", rec.Slug))
		return &Decision{Action: ActionApprove, CaseStudy: rec}, nil

	default:
		return nil, &domain.ValidationError{
			Field:  "action",
			Reason: fmt.Sprintf("unknown action %q", action),
		}
	}
}

// buildRecord assembles the catalog record for an approved submission,
// applying moderator overrides and the default fallbacks.
func (e *Engine) buildRecord(sub *domain.PendingSubmission, ov Overrides) (*domain.CaseStudy, error) {
	title := pick(ov.Title, sub.Title)
	description := pick(ov.Description, sub.Description)

	category := pick(ov.Category, sub.SuggestedCategory)
	if !domain.ValidCategory(category) {
		return nil, &domain.ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category slug %q", category),
		}
	}

	format := pick(ov.Format, string(sub.Format))
	if format == "" {
		format = string(domain.FormatArticle)
	}
	if !domain.ValidFormat(format) {
		return nil, &domain.ValidationError{
			Field:  "format",
			Reason: fmt.Sprintf("unknown format %q", format),
		}
	}

	company := pick(ov.Company, sub.Company)
	if company == "" {
		company = "Various"
	}

	now := e.now().UTC()
	return &domain.CaseStudy{
		ID:            "cs-" + uuid.NewString(),
		Slug:          domain.UniqueSlug(title, e.catalog.HasSlug),
		Title:         title,
		URL:           sub.URL,
		Category:      category,
		Tags:          sub.MatchedKeywords,
		Description:   domain.TruncateRunes(description, domain.MaxDescriptionLen),
		DatePublished: now.Format("2006-01-02"),
		Source:        sub.Source,
		Format:        domain.Format(format),
		Company:       company,
		CreatedAt:     now.Format(time.RFC3339),
		Access:        e.access.Classify(sub.URL, sub.Source),
	}, nil
}

func pick(override, fallback string) string {
	if strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override)
	}
	return fallback
}
