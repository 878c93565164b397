// Package store defines the persistence contracts the service depends on.
// Implementations live in subpackages; consumers accept these interfaces so
// tests can swap in fakes.
package store

import "github.com/casefolio/casefolio/internal/domain"

// CatalogSource loads and persists the published record set.
type CatalogSource interface {
	LoadRecords() ([]*domain.CaseStudy, error)
	SaveRecords(records []*domain.CaseStudy) error
}

// PendingSource loads and persists the moderation queue.
type PendingSource interface {
	LoadPending() (*domain.PendingQueue, error)
	SavePending(q *domain.PendingQueue) error
}
