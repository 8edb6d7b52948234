// Package format defines the interface for payload parser plugins.
package format

import (
	"io"

	"github.com/fastboardai/linkgraph/record"
)

// Format defines the interface that all payload format plugins implement.
type Format interface {
	// Name returns the format identifier (e.g., "voyager")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// ProfileParser is a format that materializes a full profile record
// from a payload.
type ProfileParser interface {
	Format

	// ParseProfile reads one payload and returns the materialized
	// profile.
	ParseProfile(r io.Reader, opts *ParseOptions) (*record.Profile, error)
}

// HitParser is a format that extracts lightweight search hits from a
// payload.
type HitParser interface {
	Format

	// ParseHits reads one payload and returns the deduplicated hits.
	ParseHits(r io.Reader) ([]record.SearchHit, error)
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// PublicIdentifier, when set, disambiguates which profile entity
	// is the subject in payloads that embed several (e.g., the
	// viewer's own profile alongside the searched target).
	PublicIdentifier string

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}
