package domain

// SourceType indicates how a submission entered the queue.
type SourceType string

const (
	SourceTypeRSS       SourceType = "rss"
	SourceTypeCommunity SourceType = "community"
)

// Status is the moderation state of a pending submission.
// StatusPending is the initial state; the other two are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status can no longer change.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// PendingSubmission is a candidate record awaiting moderation.
//
// MatchScore is the ingestion scorer's verdict; community submissions are
// fixed at 0. Once Status leaves pending it never changes again.
type PendingSubmission struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	URL               string     `json:"url"`
	Description       string     `json:"description"`
	SuggestedCategory string     `json:"suggestedCategory"`
	Source            string     `json:"source"`
	SourceType        SourceType `json:"sourceType"`
	SubmittedAt       string     `json:"submittedAt"`
	Status            Status     `json:"status"`
	MatchScore        int        `json:"matchScore"`
	MatchedKeywords   []string   `json:"matchedKeywords"`

	// Moderator-editable extras; empty unless supplied.
	Format         Format `json:"format,omitempty"`
	Company        string `json:"company,omitempty"`
	SubmitterEmail string `json:"submitterEmail,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// PendingQueue is the persisted shape of the moderation queue.
type PendingQueue struct {
	LastChecked string               `json:"lastChecked"`
	Submissions []*PendingSubmission `json:"submissions"`
}
