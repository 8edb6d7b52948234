package record

import (
	"net/url"
	"strings"
)

const (
	siteDomain = "linkedin.com"
	pathMarker = "in"
)

// PublicID extracts the public identifier from a profile URL. Inputs
// that do not belong to the site (bare identifiers, foreign URLs) are
// returned unchanged; malformed URLs degrade to a best-effort substring.
// The function never fails.
func PublicID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.Contains(raw, siteDomain) {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	path := strings.Trim(u.Path, "/")
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if seg == pathMarker && i+1 < len(segs) && segs[i+1] != "" {
			return segs[i+1]
		}
	}
	return path
}

// ProfileURL builds the canonical profile URL for a public identifier.
// An empty identifier yields a degenerate but well-formed URL.
func ProfileURL(publicID string) string {
	return "https://www.linkedin.com/in/" + publicID + "/"
}
