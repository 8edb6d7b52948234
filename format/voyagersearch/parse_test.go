package voyagersearch

import (
	"strings"
	"testing"
)

const searchPayload = `{
	"included": [
		{
			"entityUrn": "urn:li:fsd_entityResultViewModel:1",
			"navigationUrl": "https://www.linkedin.com/in/ada?miniProfileUrn=urn%3Ali%3Afsd_profile%3AAAA",
			"title": {"text": "Ada Lovelace"},
			"primarySubtitle": {"text": "Engineer at Acme"}
		},
		{
			"entityUrn": "urn:li:fsd_entityResultViewModel:2",
			"navigationUrl": "https://www.linkedin.com/in/ada?origin=SEARCH",
			"title": {"text": "Ada Lovelace"},
			"primarySubtitle": {"text": "Engineer at Acme"}
		},
		{
			"entityUrn": "urn:li:fsd_entityResultViewModel:3",
			"navigationUrl": "https://www.linkedin.com/company/acme",
			"title": {"text": "Acme"}
		},
		{
			"entityUrn": "urn:li:fsd_lazyLoadedActions:4",
			"navigationUrl": "https://www.linkedin.com/in/grace-hopper"
		},
		{
			"entityUrn": "urn:li:fsd_entityResultViewModel:5",
			"navigationUrl": "https://www.linkedin.com/in/grace-hopper",
			"title": "Grace Hopper",
			"primarySubtitle": "Rear Admiral"
		},
		{
			"entityUrn": "urn:li:fsd_profile:AAA",
			"firstName": "Ada"
		}
	]
}`

func TestParseHits(t *testing.T) {
	f := &Format{}
	hits, err := f.ParseHits(strings.NewReader(searchPayload))
	if err != nil {
		t.Fatalf("ParseHits failed: %v", err)
	}

	// Entity 2 is a query-string duplicate of entity 1, entity 3 is not
	// a profile URL, and entity 4 has no title.
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}

	ada := hits[0]
	if ada.FullName != "Ada Lovelace" {
		t.Fatalf("full name = %q", ada.FullName)
	}
	if ada.Headline != "Engineer at Acme" {
		t.Fatalf("headline = %q", ada.Headline)
	}
	if ada.URL != "https://www.linkedin.com/in/ada" {
		t.Fatalf("url = %q, want query string stripped", ada.URL)
	}
	if ada.PublicIdentifier != "ada" {
		t.Fatalf("public identifier = %q", ada.PublicIdentifier)
	}

	// Plain-string title and subtitle are accepted alongside the
	// wrapped form.
	grace := hits[1]
	if grace.FullName != "Grace Hopper" || grace.Headline != "Rear Admiral" {
		t.Fatalf("hit = %+v", grace)
	}
	if grace.PublicIdentifier != "grace-hopper" {
		t.Fatalf("public identifier = %q", grace.PublicIdentifier)
	}
}

func TestParseHitsEmptyPayloads(t *testing.T) {
	f := &Format{}
	for _, payload := range []string{`{}`, `{"included": []}`} {
		hits, err := f.ParseHits(strings.NewReader(payload))
		if err != nil {
			t.Fatalf("ParseHits(%s) failed: %v", payload, err)
		}
		if len(hits) != 0 {
			t.Fatalf("ParseHits(%s) = %+v, want no hits", payload, hits)
		}
	}
}

func TestParseHitsBadJSON(t *testing.T) {
	f := &Format{}
	if _, err := f.ParseHits(strings.NewReader("not json")); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	if !f.CanParse([]byte(searchPayload)) {
		t.Fatal("expected CanParse to accept a search payload")
	}
	if f.CanParse([]byte(`{"included": []}`)) {
		t.Fatal("expected CanParse to reject a payload without hits")
	}
}
