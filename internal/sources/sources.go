// Package sources describes the RSS feeds monitored for new case studies
// and loads operator overrides from YAML.
package sources

// Quality is the editorial tier of a source. High-tier sources earn a small
// scoring bonus during ingestion.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
)

// Source is one monitored feed.
type Source struct {
	Name       string   `yaml:"name" json:"name"`
	FeedURL    string   `yaml:"feedUrl" json:"feedUrl"`
	WebsiteURL string   `yaml:"websiteUrl" json:"websiteUrl"`
	Category   string   `yaml:"category" json:"category"`
	Quality    Quality  `yaml:"quality" json:"quality"`
	Keywords   []string `yaml:"keywords" json:"keywords"`
}
