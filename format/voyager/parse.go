package voyager

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fastboardai/linkgraph/format"
	"github.com/fastboardai/linkgraph/graph"
	"github.com/fastboardai/linkgraph/record"
	"github.com/fastboardai/linkgraph/value"
)

// ErrProfileNotFound is returned when a payload contains no profile
// entity by any selection strategy. It is the only error materialization
// can produce once a payload decodes; callers processing a batch should
// catch it per payload and continue.
var ErrProfileNotFound = errors.New("no profile entity in payload")

// profileType is the type tag of profile entities in the payload.
const profileType = "com.linkedin.voyager.dash.identity.profile.Profile"

// Containment chains: the reference hops from the profile entity down
// to the leaf entities of each section. Collection entities expose
// their members through "*elements", so every hop resolves uniformly.
var (
	positionChain  = []string{"*profilePositionGroups", "*elements", "*profilePositionInPositionGroup", "*elements"}
	educationChain = []string{"*profileEducations", "*elements"}
)

type payload struct {
	Data     map[string]any `json:"data"`
	Included []graph.Entity `json:"included"`
}

// ParseProfile reads a normalized profile payload and returns the
// materialized profile record.
func (f *Format) ParseProfile(r io.Reader, opts *format.ParseOptions) (*record.Profile, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing payload JSON: %w", err)
	}

	g := graph.Build(p.Included)

	root, err := selectProfile(p, g, opts.PublicIdentifier)
	if err != nil {
		return nil, err
	}

	return materialize(root, g), nil
}

// selectProfile finds the entity that represents the profile being
// fetched. Payloads can embed several profile-tagged entities (the
// viewer's own profile travels alongside a searched target), so a
// supplied public identifier takes precedence over payload order.
// When no tagged entity exists it falls back to the payload's primary
// result pointer.
func selectProfile(p payload, g graph.Graph, publicID string) (graph.Entity, error) {
	var first graph.Entity
	for _, e := range p.Included {
		if e.TypeTag() != profileType {
			continue
		}
		if publicID != "" && e.Text("publicIdentifier") == publicID {
			return e, nil
		}
		if first == nil {
			first = e
		}
	}
	if first != nil {
		return first, nil
	}

	if elems, ok := p.Data["*elements"].([]any); ok && len(elems) > 0 {
		if e, ok := g.Get(value.Text(elems[0])); ok {
			return e, nil
		}
	}

	return nil, ErrProfileNotFound
}

// materialize assembles the nested profile record from the root entity
// and the reference graph. Every anomaly short of a missing root
// degrades to an absent field, an empty list, or a placeholder.
func materialize(root graph.Entity, g graph.Graph) *record.Profile {
	firstName := root.Text("firstName")
	lastName := root.Text("lastName")
	publicID := root.Text("publicIdentifier")

	prof := &record.Profile{
		URN:              root.URN(),
		FirstName:        firstName,
		LastName:         lastName,
		FullName:         strings.TrimSpace(firstName + " " + lastName),
		Headline:         root.Text("headline"),
		Summary:          root.Text("summary"),
		PublicIdentifier: publicID,
		LocationName:     root.Text("locationName"),
		Geo:              opaque(g, root, "*geo"),
		Industry:         opaque(g, root, "*industry"),
		URL:              record.ProfileURL(publicID),
		Positions:        []record.Position{},
		Educations:       []record.Education{},
	}

	for _, e := range walk(g, root, positionChain) {
		prof.Positions = append(prof.Positions, enrichPosition(e, g))
	}
	for _, e := range walk(g, root, educationChain) {
		prof.Educations = append(prof.Educations, enrichEducation(e, g))
	}

	prof.ConnectionDistance, prof.ConnectionDegree = connectionInfo(root, g)

	return prof
}

// walk traverses a containment chain from the root, resolving one
// reference hop per step and preserving payload-list order. A broken
// hop yields no leaves, never an error.
func walk(g graph.Graph, root graph.Entity, chain []string) []graph.Entity {
	frontier := []graph.Entity{root}
	for _, field := range chain {
		var next []graph.Entity
		for _, e := range frontier {
			next = append(next, g.ResolveMany(e, field)...)
		}
		if len(next) == 0 {
			return nil
		}
		frontier = next
	}
	return frontier
}

// enrichPosition builds a Position from its raw entity, preferring the
// resolved company entity over literals embedded in the position.
func enrichPosition(pos graph.Entity, g graph.Graph) record.Position {
	p := record.Position{
		Title:       value.TextOr(pos["title"], record.UnknownTitle),
		CompanyName: value.TextOr(pos["companyName"], record.UnknownCompany),
		CompanyURN:  pos.Text("companyUrn"),
		Location:    pos.Text("locationName"),
		DateRange:   record.DateRangeFromRaw(pos["dateRange"]),
		Description: pos.Text("description"),
		URN:         pos.URN(),
	}

	if company, ok := g.ResolveOne(pos, "*company"); ok {
		p.CompanyName = value.TextOr(company["name"], record.UnknownCompany)
		p.CompanyURN = company.URN()
	}

	return p
}

// enrichEducation builds an Education from its raw entity, preferring
// the resolved school entity over the embedded school name.
func enrichEducation(edu graph.Entity, g graph.Graph) record.Education {
	e := record.Education{
		SchoolName:   value.TextOr(edu["schoolName"], record.UnknownSchool),
		DegreeName:   edu.Text("degreeName"),
		FieldOfStudy: edu.Text("fieldOfStudy"),
		DateRange:    record.DateRangeFromRaw(edu["dateRange"]),
		URN:          edu.URN(),
	}

	if school, ok := g.ResolveOne(edu, "*school"); ok {
		e.SchoolName = value.TextOr(school["name"], record.UnknownSchool)
	}

	return e
}

// connectionInfo derives the viewer's relationship to the profile from
// the resolved relationship entity. The union container has appeared
// under two key names across payload versions; the first non-absent
// one wins. Malformed shapes degrade to absent.
func connectionInfo(root graph.Entity, g graph.Graph) (record.Distance, *int) {
	rel, ok := g.ResolveOne(root, "*memberRelationship")
	if !ok {
		return "", nil
	}

	union := value.Map(rel["memberRelationshipUnion"])
	if union == nil {
		union = value.Map(rel["memberRelationshipData"])
	}
	if union == nil {
		return "", nil
	}

	if _, ok := union["connection"]; ok {
		return record.Distance1, record.Distance1.Degree()
	}
	if nc := value.Map(union["noConnection"]); nc != nil {
		if d := record.Distance(value.Text(nc["memberDistance"])); d != "" {
			return d, d.Degree()
		}
		return "", nil
	}
	// Older payloads carry the distance token directly on the union.
	if d := record.Distance(value.Text(union["distance"])); d != "" {
		return d, d.Degree()
	}

	return "", nil
}

// opaque resolves a single reference and carries the target entity
// through as an untyped structure.
func opaque(g graph.Graph, e graph.Entity, field string) *structpb.Struct {
	target, ok := g.ResolveOne(e, field)
	if !ok {
		return nil
	}
	s, err := structpb.NewStruct(map[string]any(target))
	if err != nil {
		return nil
	}
	return s
}
