package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/nbforge/quickchart"
	"github.com/nbforge/quickchart/pkg/core"
)

// Config drives which sections a report contains. Column selectors are
// doublestar glob patterns matched against the dataset's column names,
// so "sales_*" selects every sales column.
type Config struct {
	Title        string          `yaml:"title"`
	ChartsPerRow int             `yaml:"charts_per_row"`
	Sections     []SectionConfig `yaml:"sections"`
}

// SectionConfig selects one section family plus its columns.
type SectionConfig struct {
	// Type is one of: histograms, values, categorical, heatmaps,
	// scatter, swarm.
	Type string `yaml:"type"`

	// Columns holds glob patterns for the single-column families.
	Columns []string `yaml:"columns"`

	// Pairs holds [x, y] column pairs for the pair-wise families.
	Pairs [][]string `yaml:"pairs"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// expandColumns matches the section's glob patterns against the
// dataframe's columns, preserving dataframe column order and dropping
// duplicates.
func (s SectionConfig) expandColumns(df quickchart.Dataframe) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, name := range df.Columns() {
		for _, pattern := range s.Columns {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("bad column pattern %q: %w", pattern, err)
			}
			if ok && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	if len(s.Columns) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("section %q: patterns %v: %w", s.Type, s.Columns, core.ErrEmptySelector)
	}
	return out, nil
}

func (s SectionConfig) columnPairs() ([][2]string, error) {
	out := make([][2]string, 0, len(s.Pairs))
	for _, p := range s.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("section %q: pair %v must have exactly two columns", s.Type, p)
		}
		out = append(out, [2]string{p[0], p[1]})
	}
	return out, nil
}
