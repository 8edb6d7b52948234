// Package record defines the materialized records produced from
// normalized profile payloads, plus the helpers shared by their
// construction.
//
// Records own copies of everything extracted during materialization;
// no references back into the payload graph survive past it. Field
// names are stable snake_case for downstream consumers.
package record

import "google.golang.org/protobuf/types/known/structpb"

// Placeholder values substituted for required fields the payload omits.
const (
	UnknownTitle   = "Unknown Title"
	UnknownCompany = "Unknown Company"
	UnknownSchool  = "Unknown School"
)

// Date is a partial date. Either component may be absent independently;
// no calendar validation is performed.
type Date struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
}

// DateRange is a span of partial dates. An absent end means ongoing.
type DateRange struct {
	Start *Date `json:"start,omitempty"`
	End   *Date `json:"end,omitempty"`
}

// Position is one work experience entry.
type Position struct {
	Title       string     `json:"title"`
	CompanyName string     `json:"company_name"`
	CompanyURN  string     `json:"company_urn,omitempty"`
	Location    string     `json:"location,omitempty"`
	DateRange   *DateRange `json:"date_range,omitempty"`
	Description string     `json:"description,omitempty"`
	URN         string     `json:"urn,omitempty"`
}

// Education is one education entry.
type Education struct {
	SchoolName   string     `json:"school_name"`
	DegreeName   string     `json:"degree_name,omitempty"`
	FieldOfStudy string     `json:"field_of_study,omitempty"`
	DateRange    *DateRange `json:"date_range,omitempty"`
	URN          string     `json:"urn,omitempty"`
}

// Profile is the fully materialized profile record.
type Profile struct {
	URN                string           `json:"urn"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	FullName           string           `json:"full_name"`
	Headline           string           `json:"headline,omitempty"`
	Summary            string           `json:"summary,omitempty"`
	PublicIdentifier   string           `json:"public_identifier,omitempty"`
	LocationName       string           `json:"location_name,omitempty"`
	Geo                *structpb.Struct `json:"geo,omitempty"`
	Industry           *structpb.Struct `json:"industry,omitempty"`
	URL                string           `json:"url"`
	Positions          []Position       `json:"positions"`
	Educations         []Education      `json:"educations"`
	ConnectionDistance Distance         `json:"connection_distance,omitempty"`
	ConnectionDegree   *int             `json:"connection_degree,omitempty"`
}

// SearchHit is a lightweight profile reference extracted from a search
// payload.
type SearchHit struct {
	FullName         string `json:"full_name,omitempty"`
	Headline         string `json:"headline,omitempty"`
	PublicIdentifier string `json:"public_identifier,omitempty"`
	URL              string `json:"url"`
}
