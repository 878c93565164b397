package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/casefolio/casefolio/internal/catalog"
	"github.com/casefolio/casefolio/internal/domain"
	"github.com/casefolio/casefolio/internal/httpserver/deps"
	"github.com/casefolio/casefolio/internal/logger"
	"github.com/casefolio/casefolio/internal/moderation"
	"github.com/casefolio/casefolio/internal/store/file"
)

func testDeps(t *testing.T, records []*domain.CaseStudy) deps.Deps {
	t.Helper()
	dir := t.TempDir()

	cat := catalog.New()
	cat.Replace(records)

	log := logger.New("error", false)
	engine := moderation.NewEngine(
		cat,
		file.NewCaseStudyStore(filepath.Join(dir, "data.json")),
		file.NewPendingStore(filepath.Join(dir, "pending.json")),
		domain.DefaultAccessClassifier(),
		log,
	)

	return deps.Deps{
		Logger:       log,
		StartTime:    time.Now(),
		TimeNow:      time.Now,
		Catalog:      cat,
		Moderation:   engine,
		CheckTrigger: make(chan struct{}, 1),
	}
}

func catalogFixtures() []*domain.CaseStudy {
	return []*domain.CaseStudy{
		{ID: "cs-1", Slug: "how-airbnb-scaled", Title: "How Airbnb Scaled", URL: "https://x.com/a", Category: "growth-acquisition", Company: "Airbnb", Format: domain.FormatArticle, Tags: []string{"growth"}},
		{ID: "cs-2", Slug: "notion-pmf", Title: "Notion's Path to PMF", URL: "https://x.com/b", Category: "product-launch", Company: "Notion", Format: domain.FormatArticle, Tags: []string{"pmf"}},
		{ID: "cs-3", Slug: "spotify-retention", Title: "Spotify Retention Deep Dive", URL: "https://x.com/c", Category: "growth-acquisition", Company: "Spotify", Format: domain.FormatVideo, Tags: []string{"growth", "retention"}},
	}
}

func TestSearchHandler(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	req := httptest.NewRequest(http.MethodGet, "/search?q=airbnb", nil)
	rec := httptest.NewRecorder()
	Search(d)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count == 0 {
		t.Fatal("expected at least one result")
	}
	if resp.Results[0].Slug != "how-airbnb-scaled" {
		t.Errorf("top result = %q", resp.Results[0].Slug)
	}
}

func TestSearchHandlerAppliesLimit(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	req := httptest.NewRequest(http.MethodGet, "/search?q=growth&limit=1", nil)
	rec := httptest.NewRecorder()
	Search(d)(rec, req)

	var resp searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) > 1 {
		t.Errorf("results = %d, want at most 1", len(resp.Results))
	}
}

func TestListCaseStudiesFilters(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	req := httptest.NewRequest(http.MethodGet, "/case-studies?category=growth-acquisition&format=video", nil)
	rec := httptest.NewRecorder()
	ListCaseStudies(d)(rec, req)

	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].Slug != "spotify-retention" {
		t.Errorf("filtered results = %+v", resp.Results)
	}
}

func TestGetCaseStudyNotFound(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	r := chi.NewRouter()
	r.Get("/case-studies/{slug}", GetCaseStudy(d))

	req := httptest.NewRequest(http.MethodGet, "/case-studies/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetCaseStudyIncludesRelated(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	r := chi.NewRouter()
	r.Get("/case-studies/{slug}", GetCaseStudy(d))

	req := httptest.NewRequest(http.MethodGet, "/case-studies/how-airbnb-scaled", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp caseStudyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CaseStudy.ID != "cs-1" {
		t.Errorf("case study = %q", resp.CaseStudy.ID)
	}
	if len(resp.Related) == 0 {
		t.Error("expected related records for a shared category")
	}
}

func TestSubmitHandlerValidation(t *testing.T) {
	d := testDeps(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(`{"url":"https://x.com/a"}`))
	rec := httptest.NewRecorder()
	Submit(d)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing title", rec.Code)
	}
}

func TestSubmitThenDecideFlow(t *testing.T) {
	d := testDeps(t, nil)

	body := `{"title":"My Case Study","url":"https://example.com/mine","suggestedCategory":"product-launch"}`
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	Submit(d)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var submitted submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&submitted); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}

	decideBody := `{"id":"` + submitted.Submission.ID + `","action":"approve"}`
	req = httptest.NewRequest(http.MethodPost, "/admin/submissions/decide", strings.NewReader(decideBody))
	rec = httptest.NewRecorder()
	DecideSubmission(d)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("decide status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if d.Catalog.Count() != 1 {
		t.Errorf("catalog count = %d, want 1 after approval", d.Catalog.Count())
	}

	// Second decision on the same submission conflicts.
	req = httptest.NewRequest(http.MethodPost, "/admin/submissions/decide", strings.NewReader(decideBody))
	rec = httptest.NewRecorder()
	DecideSubmission(d)(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("re-decide status = %d, want 409", rec.Code)
	}
}

func TestCheckFeedsTrigger(t *testing.T) {
	d := testDeps(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/check-feeds", nil)
	rec := httptest.NewRecorder()
	CheckFeeds(d)(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("first trigger status = %d, want 202", rec.Code)
	}

	// Channel is full; a second trigger reports a check in progress.
	rec = httptest.NewRecorder()
	CheckFeeds(d)(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second trigger status = %d, want 429", rec.Code)
	}
}

func TestCategoriesHandler(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	rec := httptest.NewRecorder()
	Categories(d)(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	var resp categoriesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) != len(domain.Categories) {
		t.Errorf("categories = %d, want %d", len(resp.Categories), len(domain.Categories))
	}
	for _, cat := range resp.Categories {
		if cat.Slug == "growth-acquisition" && cat.Count != 2 {
			t.Errorf("growth-acquisition count = %d, want 2", cat.Count)
		}
	}
}

func TestCompaniesHandler(t *testing.T) {
	d := testDeps(t, catalogFixtures())

	rec := httptest.NewRecorder()
	Companies(d)(rec, httptest.NewRequest(http.MethodGet, "/companies", nil))

	var resp companiesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"Airbnb", "Notion", "Spotify"}
	if len(resp.Companies) != len(want) {
		t.Fatalf("companies = %v, want %v", resp.Companies, want)
	}
	for i := range want {
		if resp.Companies[i] != want[i] {
			t.Errorf("companies[%d] = %q, want %q", i, resp.Companies[i], want[i])
		}
	}
}
