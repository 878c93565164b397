package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader reads the monitored feed list. With an empty path it serves the
// built-in defaults.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath; pass "" to use DefaultSources.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// Load returns the configured sources. Every source needs a name and feed
// URL; quality defaults to medium when omitted.
func (l *Loader) Load() ([]Source, error) {
	if l.filePath == "" {
		return DefaultSources(), nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var cfg sourcesFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sources yaml: %w", err)
	}

	for i := range cfg.Sources {
		src := &cfg.Sources[i]
		if src.Name == "" {
			return nil, fmt.Errorf("source %d: name is required", i)
		}
		if src.FeedURL == "" {
			return nil, fmt.Errorf("source %q: feedUrl is required", src.Name)
		}
		switch src.Quality {
		case QualityHigh, QualityMedium:
		case "":
			src.Quality = QualityMedium
		default:
			return nil, fmt.Errorf("source %q: unknown quality %q", src.Name, src.Quality)
		}
	}
	return cfg.Sources, nil
}
