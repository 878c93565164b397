package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/casefolio/casefolio/internal/catalog"
	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/logger"
)

type fakeRecordStore struct {
	saved  [][]*domain.CaseStudy
	failOn bool
}

func (f *fakeRecordStore) LoadRecords() ([]*domain.CaseStudy, error) { return nil, nil }

func (f *fakeRecordStore) SaveRecords(records []*domain.CaseStudy) error {
	if f.failOn {
		return errors.New("disk full")
	}
	f.saved = append(f.saved, records)
	return nil
}

type fakePendingStore struct {
	queue  *domain.PendingQueue
	saves  int
	failOn bool
}

func (f *fakePendingStore) LoadPending() (*domain.PendingQueue, error) {
	if f.queue == nil {
		return &domain.PendingQueue{}, nil
	}
	return f.queue, nil
}

func (f *fakePendingStore) SavePending(q *domain.PendingQueue) error {
	if f.failOn {
		return errors.New("disk full")
	}
	f.saves++
	return nil
}

func pendingSub(id string) *domain.PendingSubmission {
	return &domain.PendingSubmission{
		ID:                id,
		Title:             "How Acme Grew to $10M",
		URL:               "https://example.com/" + id,
		Description:       "A growth case study",
		SuggestedCategory: "growth-acquisition",
		Source:            "First Round Review",
		SourceType:        domain.SourceTypeRSS,
		Status:            domain.StatusPending,
		MatchScore:        45,
		MatchedKeywords:   []string{"case study", "growth"},
	}
}

func newTestEngine(t *testing.T, subs ...*domain.PendingSubmission) (*Engine, *fakeRecordStore, *fakePendingStore) {
	t.Helper()
	records := &fakeRecordStore{}
	pendings := &fakePendingStore{queue: &domain.PendingQueue{Submissions: subs}}
	e := NewEngine(
		catalog.New(),
		records,
		pendings,
		domain.DefaultAccessClassifier(),
		logger.New("error", false),
	)
	e.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return e, records, pendings
}

func TestApproveBuildsRecord(t *testing.T) {
	e, records, _ := newTestEngine(t, pendingSub("rss-1"))

	decision, err := e.Decide("rss-1", ActionApprove, Overrides{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	rec := decision.CaseStudy
	if rec == nil {
		t.Fatal("Decide(approve) returned no case study")
	}

	if rec.Slug != "how-acme-grew-to-10m" {
		t.Errorf("Slug = %q", rec.Slug)
	}
	if rec.Category != "growth-acquisition" {
		t.Errorf("Category = %q", rec.Category)
	}
	if rec.Format != domain.FormatArticle {
		t.Errorf("Format = %q, want article default", rec.Format)
	}
	if rec.Company != "Various" {
		t.Errorf("Company = %q, want Various default", rec.Company)
	}
	if rec.DatePublished != "2024-06-01" {
		t.Errorf("DatePublished = %q", rec.DatePublished)
	}
	if rec.Access != domain.AccessFree {
		t.Errorf("Access = %q, want free", rec.Access)
	}
	if len(rec.Tags) != 2 {
		t.Errorf("Tags = %v, want matched keywords", rec.Tags)
	}

	if e.catalog.Count() != 1 {
		t.Errorf("catalog count = %d, want exactly 1 new record", e.catalog.Count())
	}
	if len(records.saved) != 1 {
		t.Errorf("catalog persisted %d times, want 1", len(records.saved))
	}
}

func TestApproveAppliesOverrides(t *testing.T) {
	e, _, _ := newTestEngine(t, pendingSub("rss-1"))

	decision, err := e.Decide("rss-1", ActionApprove, Overrides{
		Title:    "Acme: The Real Story",
		Category: "product-launch",
		Company:  "Acme",
		Format:   "video",
	})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	rec := decision.CaseStudy
	if rec.Title != "Acme: The Real Story" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Category != "product-launch" {
		t.Errorf("Category = %q", rec.Category)
	}
	if rec.Company != "Acme" {
		t.Errorf("Company = %q", rec.Company)
	}
	if rec.Format != domain.FormatVideo {
		t.Errorf("Format = %q", rec.Format)
	}
}

func TestDecideIsTerminal(t *testing.T) {
	e, _, _ := newTestEngine(t, pendingSub("rss-1"))

	if _, err := e.Decide("rss-1", ActionApprove, Overrides{}); err != nil {
		t.Fatalf("first Decide() error = %v", err)
	}

	_, err := e.Decide("rss-1", ActionApprove, Overrides{})
	var stateErr *domain.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("second Decide() error = %v, want InvalidStateError", err)
	}
	if e.catalog.Count() != 1 {
		t.Errorf("catalog count = %d, re-decide must not add a record", e.catalog.Count())
	}
}

func TestRejectIsTerminal(t *testing.T) {
	e, _, _ := newTestEngine(t, pendingSub("rss-1"))

	if _, err := e.Decide("rss-1", ActionReject, Overrides{}); err != nil {
		t.Fatalf("Decide(reject) error = %v", err)
	}

	_, err := e.Decide("rss-1", ActionApprove, Overrides{})
	var stateErr *domain.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("Decide after reject error = %v, want InvalidStateError", err)
	}
	if e.catalog.Count() != 0 {
		t.Errorf("catalog count = %d, reject must not add records", e.catalog.Count())
	}
}

func TestDecideUnknownID(t *testing.T) {
	e, _, _ := newTestEngine(t)

	_, err := e.Decide("missing", ActionApprove, Overrides{})
	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Errorf("Decide() error = %v, want NotFoundError", err)
	}
}

func TestApproveSlugCollision(t *testing.T) {
	a := pendingSub("rss-1")
	b := pendingSub("rss-2")
	e, _, _ := newTestEngine(t, a, b)

	d1, err := e.Decide("rss-1", ActionApprove, Overrides{})
	if err != nil {
		t.Fatalf("Decide(rss-1) error = %v", err)
	}
	d2, err := e.Decide("rss-2", ActionApprove, Overrides{})
	if err != nil {
		t.Fatalf("Decide(rss-2) error = %v", err)
	}

	if d1.CaseStudy.Slug == d2.CaseStudy.Slug {
		t.Errorf("identical titles produced identical slugs %q", d1.CaseStudy.Slug)
	}
	if d2.CaseStudy.Slug != d1.CaseStudy.Slug+"-1" {
		t.Errorf("second slug = %q, want %q", d2.CaseStudy.Slug, d1.CaseStudy.Slug+"-1")
	}
}

func TestApproveRollsBackOnCatalogSaveFailure(t *testing.T) {
	e, records, _ := newTestEngine(t, pendingSub("rss-1"))
	records.failOn = true

	if _, err := e.Decide("rss-1", ActionApprove, Overrides{}); err == nil {
		t.Fatal("Decide() should fail when the catalog cannot be persisted")
	}

	if e.catalog.Count() != 0 {
		t.Errorf("catalog count = %d, want 0 after failed approval", e.catalog.Count())
	}
	pending := e.List(domain.StatusPending)
	if len(pending.Submissions) != 1 {
		t.Errorf("submission should stay pending after failed approval")
	}
}

func TestSubmitQueuesCommunitySubmission(t *testing.T) {
	e, _, pendings := newTestEngine(t)

	sub, err := e.Submit(SubmitRequest{
		Title:             "  My Growth Story  ",
		URL:               "https://example.com/story",
		SuggestedCategory: "growth-acquisition",
		Company:           "Acme",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if sub.Title != "My Growth Story" {
		t.Errorf("Title = %q, want trimmed", sub.Title)
	}
	if sub.SourceType != domain.SourceTypeCommunity {
		t.Errorf("SourceType = %q", sub.SourceType)
	}
	if sub.MatchScore != 0 {
		t.Errorf("MatchScore = %d, want 0 for community submissions", sub.MatchScore)
	}
	if sub.Status != domain.StatusPending {
		t.Errorf("Status = %q", sub.Status)
	}
	if pendings.saves != 1 {
		t.Errorf("queue persisted %d times, want 1", pendings.saves)
	}
}

func TestSubmitValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)

	tests := []struct {
		name string
		req  SubmitRequest
	}{
		{
			name: "missing title",
			req:  SubmitRequest{URL: "https://example.com/x"},
		},
		{
			name: "relative url",
			req:  SubmitRequest{Title: "T", URL: "/x"},
		},
		{
			name: "unknown category",
			req:  SubmitRequest{Title: "T", URL: "https://example.com/x", SuggestedCategory: "bogus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Submit(tt.req)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Submit() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestSubmitRejectsDuplicates(t *testing.T) {
	existing := pendingSub("rss-1")
	e, _, _ := newTestEngine(t, existing)

	_, err := e.Submit(SubmitRequest{
		Title: "Duplicate",
		URL:   "https://EXAMPLE.com/rss-1/",
	})
	var dupErr *domain.DuplicateError
	if !errors.As(err, &dupErr) {
		t.Errorf("Submit() error = %v, want DuplicateError for URL variant", err)
	}
}

func TestEnqueueStampsLastChecked(t *testing.T) {
	e, _, _ := newTestEngine(t)
	checkedAt := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

	if err := e.Enqueue(nil, checkedAt); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	q := e.List("")
	if q.LastChecked != "2024-06-02T08:00:00Z" {
		t.Errorf("LastChecked = %q", q.LastChecked)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	a := pendingSub("rss-1")
	b := pendingSub("rss-2")
	e, _, _ := newTestEngine(t, a, b)

	if _, err := e.Decide("rss-1", ActionReject, Overrides{}); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if got := len(e.List(domain.StatusPending).Submissions); got != 1 {
		t.Errorf("pending count = %d, want 1", got)
	}
	if got := len(e.List(domain.StatusRejected).Submissions); got != 1 {
		t.Errorf("rejected count = %d, want 1", got)
	}
	if got := len(e.List("").Submissions); got != 2 {
		t.Errorf("unfiltered count = %d, want 2", got)
	}
}
