package voyagersearch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fastboardai/linkgraph/graph"
	"github.com/fastboardai/linkgraph/record"
	"github.com/fastboardai/linkgraph/value"
)

type payload struct {
	Included []graph.Entity `json:"included"`
}

// ParseHits reads a normalized search payload and returns the profile
// hits it contains, deduplicated by URL in first-seen order.
//
// Hit entities are recognized by exposing both a navigation URL and a
// title; entries whose URL does not point at a profile are skipped, and
// query strings are stripped before deduplication.
func (f *Format) ParseHits(r io.Reader) ([]record.SearchHit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing payload JSON: %w", err)
	}

	seen := make(map[string]bool)
	hits := make([]record.SearchHit, 0)

	for _, e := range p.Included {
		navRaw, ok := e["navigationUrl"]
		if !ok {
			continue
		}
		if _, ok := e["title"]; !ok {
			continue
		}

		nav := value.Text(navRaw)
		if !strings.Contains(nav, "/in/") {
			continue
		}

		href, _, _ := strings.Cut(nav, "?")
		if href == "" || seen[href] {
			continue
		}
		seen[href] = true

		hits = append(hits, record.SearchHit{
			FullName:         textOf(e["title"]),
			Headline:         textOf(e["primarySubtitle"]),
			PublicIdentifier: record.PublicID(href),
			URL:              href,
		})
	}

	return hits, nil
}

// textOf extracts display text from the {"text": "..."} wrapper these
// payloads use, falling back to a plain string.
func textOf(v any) string {
	if m := value.Map(v); m != nil {
		return value.Text(m["text"])
	}
	return value.Text(v)
}
