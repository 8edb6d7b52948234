// Package voyagersearch provides a format plugin for normalized search
// result payloads. Search payloads reuse the flat "included" entity
// collection but carry differently shaped entities than profile
// payloads, so hits are detected structurally rather than by type tag.
package voyagersearch

import (
	"bytes"

	"github.com/fastboardai/linkgraph/format"
)

// Format implements the normalized search payload format.
type Format struct{}

var (
	_ format.Format    = (*Format)(nil)
	_ format.HitParser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "voyager-search"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Normalized search result JSON (search cluster decoration)"
}

// CanParse returns true if the input looks like a normalized search
// payload.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '{' {
		return false
	}

	return bytes.Contains(peek, []byte(`"included"`)) &&
		bytes.Contains(peek, []byte(`"navigationUrl"`))
}

func init() {
	format.Register(&Format{})
}
