package domain

import "fmt"

// NotFoundError reports a missing record or submission.
type NotFoundError struct {
	Kind string // "case study", "submission", ...
	ID   string // offending id or slug
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ValidationError reports a field that failed validation before any
// mutation took place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateError reports a submission URL already present in the catalog or
// the pending queue. Kept distinct from ValidationError so callers can show
// a different message.
type DuplicateError struct {
	URL string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("url already submitted: %s", e.URL)
}

// InvalidStateError reports a moderation transition attempted on a
// submission that already left the pending state.
type InvalidStateError struct {
	ID     string
	Status Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("submission %q is already %s", e.ID, e.Status)
}
