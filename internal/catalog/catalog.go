// Package catalog holds the in-memory source of truth for published case
// studies. It replaces ad hoc module-global caches with an explicit handle
// that tests can seed with deterministic fixtures.
package catalog

import (
	"sort"
	"sync"
	"time"

	"github.com/casefolio/casefolio/internal/domain"
)

// Catalog provides mutex-guarded access to the record set. Records keep
// their load order; search relies on that order for stable ranking.
type Catalog struct {
	mu         sync.RWMutex
	records    []*domain.CaseStudy
	byID       map[string]*domain.CaseStudy
	bySlug     map[string]*domain.CaseStudy
	lastReload time.Time
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID:   make(map[string]*domain.CaseStudy),
		bySlug: make(map[string]*domain.CaseStudy),
	}
}

// Replace swaps in a full record set, typically from a fresh load.
func (c *Catalog) Replace(records []*domain.CaseStudy) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = make([]*domain.CaseStudy, 0, len(records))
	c.byID = make(map[string]*domain.CaseStudy, len(records))
	c.bySlug = make(map[string]*domain.CaseStudy, len(records))
	for _, rec := range records {
		c.records = append(c.records, rec)
		c.byID[rec.ID] = rec
		c.bySlug[rec.Slug] = rec
	}
	c.lastReload = time.Now()
}

// Append adds a single record, preserving load order.
func (c *Catalog) Append(rec *domain.CaseStudy) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
	c.byID[rec.ID] = rec
	c.bySlug[rec.Slug] = rec
}

// Invalidate drops all records, forcing callers to Replace before serving.
func (c *Catalog) Invalidate() {
	c.Replace(nil)
}

// All returns a copy of the record slice in load order. The records
// themselves are shared; treat them as read-only.
func (c *Catalog) All() []*domain.CaseStudy {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.CaseStudy, len(c.records))
	copy(out, c.records)
	return out
}

// ByID retrieves a record by id.
func (c *Catalog) ByID(id string) (*domain.CaseStudy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byID[id]
	return rec, ok
}

// BySlug retrieves a record by slug.
func (c *Catalog) BySlug(slug string) (*domain.CaseStudy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.bySlug[slug]
	return rec, ok
}

// HasSlug reports whether a slug is already taken.
func (c *Catalog) HasSlug(slug string) bool {
	_, ok := c.BySlug(slug)
	return ok
}

// Count returns the number of records.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// URLs returns every record URL, un-normalized.
func (c *Catalog) URLs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	urls := make([]string, 0, len(c.records))
	for _, rec := range c.records {
		urls = append(urls, rec.URL)
	}
	return urls
}

// Companies returns the sorted set of distinct company names.
func (c *Catalog) Companies() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool, len(c.records))
	companies := make([]string, 0, len(c.records))
	for _, rec := range c.records {
		if rec.Company == "" || seen[rec.Company] {
			continue
		}
		seen[rec.Company] = true
		companies = append(companies, rec.Company)
	}
	sort.Strings(companies)
	return companies
}

// CategoriesWithCounts returns the fixed category set with per-category
// record counts computed on read.
func (c *Catalog) CategoriesWithCounts() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[string]int, len(domain.Categories))
	for _, rec := range c.records {
		counts[rec.Category]++
	}

	out := make([]domain.Category, len(domain.Categories))
	for i, cat := range domain.Categories {
		cat.Count = counts[cat.Slug]
		out[i] = cat
	}
	return out
}

// Related returns up to limit records related to rec: same-category records
// first, then records sharing tags ordered by overlap, deduplicated.
func (c *Catalog) Related(rec *domain.CaseStudy, limit int) []*domain.CaseStudy {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sameCategory []*domain.CaseStudy
	type tagged struct {
		rec    *domain.CaseStudy
		shared int
	}
	var withTags []tagged

	recTags := make(map[string]bool, len(rec.Tags))
	for _, t := range rec.Tags {
		recTags[t] = true
	}

	for _, other := range c.records {
		if other.ID == rec.ID {
			continue
		}
		if other.Category == rec.Category {
			sameCategory = append(sameCategory, other)
		}
		shared := 0
		for _, t := range other.Tags {
			if recTags[t] {
				shared++
			}
		}
		if shared > 0 {
			withTags = append(withTags, tagged{rec: other, shared: shared})
		}
	}

	sort.SliceStable(withTags, func(i, j int) bool {
		return withTags[i].shared > withTags[j].shared
	})

	seen := make(map[string]bool, limit)
	out := make([]*domain.CaseStudy, 0, limit)
	appendUnique := func(r *domain.CaseStudy) {
		if len(out) < limit && !seen[r.ID] {
			seen[r.ID] = true
			out = append(out, r)
		}
	}
	for _, r := range sameCategory {
		appendUnique(r)
	}
	for _, t := range withTags {
		appendUnique(t.rec)
	}
	return out
}

// LastReload returns the timestamp of the last Replace.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
