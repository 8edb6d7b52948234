package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const profilePayload = `{
	"data": {},
	"included": [
		{
			"entityUrn": "urn:li:fsd_profile:AAA",
			"$type": "com.linkedin.voyager.dash.identity.profile.Profile",
			"firstName": "Ada",
			"lastName": "Lovelace",
			"publicIdentifier": "ada"
		}
	]
}`

const searchPayload = `{
	"included": [
		{
			"navigationUrl": "https://www.linkedin.com/in/ada?origin=SEARCH",
			"title": {"text": "Ada Lovelace"},
			"primarySubtitle": {"text": "Engineer"}
		}
	]
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return New(nil, nil).Routes()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	w := doRequest(t, h, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Fatalf("body = %v", body)
	}
	if body["store_active"] != false {
		t.Fatalf("store_active = %v, want false without a store", body["store_active"])
	}
}

func TestParseProfileEndpoint(t *testing.T) {
	h := newTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/api/parse/profile?public_id=ada", profilePayload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	prof, ok := body["profile"].(map[string]any)
	if !ok {
		t.Fatalf("body = %v", body)
	}
	if prof["public_identifier"] != "ada" {
		t.Fatalf("profile = %v", prof)
	}
	if prof["url"] != "https://www.linkedin.com/in/ada/" {
		t.Fatalf("url = %v", prof["url"])
	}
}

func TestParseProfileEndpointNotFound(t *testing.T) {
	h := newTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/api/parse/profile", `{"data": {}, "included": []}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestParseProfileEndpointBadJSON(t *testing.T) {
	h := newTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/api/parse/profile", "not json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if _, ok := decodeBody(t, w)["error"]; !ok {
		t.Fatalf("error body missing: %s", w.Body.String())
	}
}

func TestParseSearchEndpoint(t *testing.T) {
	h := newTestServer(t)

	w := doRequest(t, h, http.MethodPost, "/api/parse/search", searchPayload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	hits, ok := body["hits"].([]any)
	if !ok || len(hits) != 1 {
		t.Fatalf("hits = %v", body["hits"])
	}
	hit := hits[0].(map[string]any)
	if hit["public_identifier"] != "ada" {
		t.Fatalf("hit = %v", hit)
	}
}

func TestStoreEndpointsWithoutStore(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		method string
		target string
		body   string
	}{
		{method: http.MethodPost, target: "/api/hits", body: `{"query": "q", "hits": []}`},
		{method: http.MethodGet, target: "/api/hits"},
		{method: http.MethodGet, target: "/api/profiles"},
		{method: http.MethodGet, target: "/api/profiles/ada"},
	}

	for _, tt := range tests {
		w := doRequest(t, h, tt.method, tt.target, tt.body)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s: status = %d, want 503", tt.method, tt.target, w.Code)
		}
	}
}
