// Package voyager provides a format plugin for normalized profile API
// payloads (entities keyed by URN in a flat "included" list,
// cross-referencing each other instead of nesting).
package voyager

import (
	"bytes"

	"github.com/fastboardai/linkgraph/format"
)

// Format implements the normalized profile payload format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format        = (*Format)(nil)
	_ format.ProfileParser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "voyager"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Normalized profile API JSON (dash identity decoration)"
}

// CanParse returns true if the input looks like a normalized profile
// payload.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '{' {
		return false
	}

	return bytes.Contains(peek, []byte(`"included"`)) &&
		bytes.Contains(peek, []byte("identity.profile.Profile"))
}

func init() {
	format.Register(&Format{})
}
