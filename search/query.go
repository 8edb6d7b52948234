// Package search builds web-search query strings for discovering
// public profile URLs by role and location.
package search

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed universities.yaml
var embeddedUniversities []byte

// sydneyLocations are the location strings profiles in the Sydney area
// actually carry; a bare "Sydney" query misses most of them.
var sydneyLocations = []string{
	"Greater Sydney Area",
	"Sydney, Australia",
	"Sydney, NSW",
	"Sydney, New South Wales",
}

// Target describes one discovery search.
type Target struct {
	Role        string `yaml:"role"`
	Location    string `yaml:"location"`
	FilterByUni bool   `yaml:"filter_by_uni"`
	// Timeframe is a search-engine recency token: d, w, m, or y.
	Timeframe string `yaml:"timeframe"`
}

// Builder expands targets into site-restricted query strings.
type Builder struct {
	universities map[string][]string
}

// NewBuilder creates a Builder with the embedded university lists.
func NewBuilder() (*Builder, error) {
	var unis map[string][]string
	if err := yaml.Unmarshal(embeddedUniversities, &unis); err != nil {
		return nil, fmt.Errorf("parsing embedded university lists: %w", err)
	}
	return &Builder{universities: unis}, nil
}

// Query builds the search query string for a target.
func (b *Builder) Query(t Target) string {
	q := `site:linkedin.com/in/ ` + quote(t.Role) + " " + locationClause(t.Location)

	if t.FilterByUni {
		if unis := b.universitiesFor(t.Location); len(unis) > 0 {
			q += " " + orClause(unis)
		}
	}

	return q
}

// Queries builds query strings for a list of targets, skipping targets
// without a role.
func (b *Builder) Queries(targets []Target) []string {
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		if t.Role == "" {
			continue
		}
		out = append(out, b.Query(t))
	}
	return out
}

func (b *Builder) universitiesFor(location string) []string {
	key := strings.ToLower(strings.TrimSpace(location))
	if unis, ok := b.universities[key]; ok {
		return unis
	}
	return b.universities["default"]
}

func locationClause(location string) string {
	if strings.EqualFold(location, "sydney") {
		return orClause(sydneyLocations)
	}
	return quote(location)
}

func orClause(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "(" + strings.Join(quoted, " OR ") + ")"
}

func quote(s string) string {
	return `"` + s + `"`
}

// TimeframeOrDefault returns the target's recency token, defaulting to
// monthly and rejecting tokens the search backends don't accept.
func (t Target) TimeframeOrDefault() string {
	switch t.Timeframe {
	case "d", "w", "m", "y":
		return t.Timeframe
	default:
		return "m"
	}
}

// targetsFile is the on-disk shape of a targets YAML file.
type targetsFile struct {
	Targets []Target `yaml:"targets"`
}

// LoadTargets loads discovery targets from a YAML file.
func LoadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets file: %w", err)
	}

	var tf targetsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing targets YAML: %w", err)
	}
	return tf.Targets, nil
}
