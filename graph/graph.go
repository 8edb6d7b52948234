// Package graph indexes the flat entity collection of a normalized
// payload and resolves cross-entity references against it.
//
// Normalized payloads carry every entity once in a flat "included" list
// and wire entities together by identifier instead of nesting them.
// Reference-valued fields are named with a leading asterisk by
// convention ("*company"); the resolver treats that purely as part of
// the field name.
package graph

import "github.com/fastboardai/linkgraph/value"

// Entity is one record of a normalized payload: an open-ended mapping of
// field name to literal value, reference, or reference list. Entities
// are never mutated after decoding.
type Entity map[string]any

// URN returns the entity's unique identifier, or "" when it has none.
func (e Entity) URN() string {
	return value.Text(e["entityUrn"])
}

// TypeTag returns the entity's declared type, or "" when untyped.
func (e Entity) TypeTag() string {
	return value.Text(e["$type"])
}

// Text extracts a literal field as a string.
func (e Entity) Text(field string) string {
	return value.Text(e[field])
}

// Graph is the identifier-to-entity index built from one payload. It is
// built fresh per payload and read-only thereafter, so concurrent
// materializations over separate graphs need no locking.
type Graph map[string]Entity

// Build indexes entities by identifier. Entities without an identifier
// are skipped; on duplicates the last one wins, matching payload order.
// An empty collection yields an empty graph, never an error.
func Build(included []Entity) Graph {
	g := make(Graph, len(included))
	for _, e := range included {
		if urn := e.URN(); urn != "" {
			g[urn] = e
		}
	}
	return g
}

// Get looks up an entity by identifier.
func (g Graph) Get(urn string) (Entity, bool) {
	e, ok := g[urn]
	return e, ok
}

// Kind classifies the outcome of resolving a reference field.
type Kind int

const (
	// Absent means the field is missing, empty, or not a reference
	// that matched anything.
	Absent Kind = iota
	// One means a single reference resolved to an entity.
	One
	// Many means a reference list resolved; unmatched identifiers in
	// the list are silently dropped.
	Many
)

// Resolution is the tagged result of resolving a reference field.
type Resolution struct {
	Kind     Kind
	Entity   Entity   // set when Kind == One
	Entities []Entity // set when Kind == Many, in payload-list order
}

// Resolve resolves a named reference field on an entity. It is total:
// missing fields, empty values, unmatched identifiers, and non-reference
// shapes all come back as Absent rather than an error.
func (g Graph) Resolve(e Entity, field string) Resolution {
	raw, ok := e[field]
	if !ok || raw == nil {
		return Resolution{Kind: Absent}
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			return Resolution{Kind: Absent}
		}
		target, ok := g[v]
		if !ok {
			return Resolution{Kind: Absent}
		}
		return Resolution{Kind: One, Entity: target}
	case []any:
		if len(v) == 0 {
			return Resolution{Kind: Absent}
		}
		matched := make([]Entity, 0, len(v))
		for _, item := range v {
			if target, ok := g[value.Text(item)]; ok {
				matched = append(matched, target)
			}
		}
		return Resolution{Kind: Many, Entities: matched}
	default:
		// Literal scalar or structured value, not a reference.
		return Resolution{Kind: Absent}
	}
}

// ResolveOne resolves a single-valued reference field.
func (g Graph) ResolveOne(e Entity, field string) (Entity, bool) {
	res := g.Resolve(e, field)
	if res.Kind != One {
		return nil, false
	}
	return res.Entity, true
}

// ResolveMany resolves a reference field to an ordered entity list. A
// single reference comes back as a one-element list so containment-chain
// hops can treat every step uniformly.
func (g Graph) ResolveMany(e Entity, field string) []Entity {
	switch res := g.Resolve(e, field); res.Kind {
	case One:
		return []Entity{res.Entity}
	case Many:
		return res.Entities
	default:
		return nil
	}
}
