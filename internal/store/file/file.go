// Package file persists the catalog and pending queue as pretty-printed JSON
// files. Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/casefolio/casefolio/internal/domain"
)

// CaseStudyStore reads and writes the published record file.
type CaseStudyStore struct {
	path string
}

// NewCaseStudyStore creates a store backed by path.
func NewCaseStudyStore(path string) *CaseStudyStore {
	return &CaseStudyStore{path: path}
}

// LoadRecords returns the persisted record set. A missing or empty file is
// an empty catalog, not an error.
func (s *CaseStudyStore) LoadRecords() ([]*domain.CaseStudy, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []*domain.CaseStudy
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return records, nil
}

// SaveRecords persists the full record set atomically.
func (s *CaseStudyStore) SaveRecords(records []*domain.CaseStudy) error {
	if records == nil {
		records = []*domain.CaseStudy{}
	}
	return writeJSON(s.path, records)
}

// PendingStore reads and writes the moderation queue file.
type PendingStore struct {
	path string
}

// NewPendingStore creates a store backed by path.
func NewPendingStore(path string) *PendingStore {
	return &PendingStore{path: path}
}

// LoadPending returns the persisted queue. A missing or empty file is an
// empty queue, not an error.
func (s *PendingStore) LoadPending() (*domain.PendingQueue, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.PendingQueue{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return &domain.PendingQueue{}, nil
	}

	var q domain.PendingQueue
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &q, nil
}

// SavePending persists the queue atomically.
func (s *PendingStore) SavePending(q *domain.PendingQueue) error {
	if q.Submissions == nil {
		q.Submissions = []*domain.PendingSubmission{}
	}
	return writeJSON(s.path, q)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
