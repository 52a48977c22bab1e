package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/internalerr"
)

// BookEntry identifies one corpus book in the analysis configuration.
type BookEntry struct {
	ID     int64  `yaml:"id"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Analysis holds the fixed parameters of a report run.
type Analysis struct {
	BigramThreshold int64       `yaml:"bigram_threshold"`
	TopTerms        int         `yaml:"top_terms"`
	Books           []BookEntry `yaml:"books"`
	CustomStops     []string    `yaml:"custom_stops"`
}

// DefaultAnalysis returns the parameters used when no config file is given.
func DefaultAnalysis() Analysis {
	return Analysis{
		BigramThreshold: 10,
		TopTerms:        15,
	}
}

// LoadAnalysis loads analysis parameters from a YAML file. Zero values fall
// back to the defaults.
func LoadAnalysis(path string) (Analysis, error) {
	a := DefaultAnalysis()

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("parse config %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
	}

	if a.BigramThreshold <= 0 {
		a.BigramThreshold = 10
	}
	if a.TopTerms <= 0 {
		a.TopTerms = 15
	}

	return a, nil
}

// Stoplist represents an extra stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stoplist %s: %w", path, err)
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
	}

	return &sl, nil
}
