package format

import (
	"bytes"
	"fmt"
	"strings"
)

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetProfileParser retrieves a profile parser by name.
func (r *Registry) GetProfileParser(name string) (ProfileParser, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	p, ok := f.(ProfileParser)
	if !ok {
		return nil, fmt.Errorf("format %s does not produce profiles", name)
	}
	return p, nil
}

// GetHitParser retrieves a search-hit parser by name.
func (r *Registry) GetHitParser(name string) (HitParser, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	h, ok := f.(HitParser)
	if !ok {
		return nil, fmt.Errorf("format %s does not produce search hits", name)
	}
	return h, nil
}

// List returns all registered format names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	return names
}

// DetectFromContent attempts to detect a format from content alone.
func (r *Registry) DetectFromContent(peek []byte) (Format, error) {
	peek = bytes.TrimSpace(peek)

	for _, f := range r.formats {
		if f.CanParse(peek) {
			return f, nil
		}
	}

	return nil, fmt.Errorf("could not detect format from content")
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetProfileParser retrieves a profile parser from the default registry.
func GetProfileParser(name string) (ProfileParser, error) {
	return DefaultRegistry.GetProfileParser(name)
}

// GetHitParser retrieves a search-hit parser from the default registry.
func GetHitParser(name string) (HitParser, error) {
	return DefaultRegistry.GetHitParser(name)
}

// DetectFromContent detects a format using the default registry.
func DetectFromContent(peek []byte) (Format, error) {
	return DefaultRegistry.DetectFromContent(peek)
}
