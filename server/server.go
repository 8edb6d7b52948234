// Package server exposes the payload parsers and the store over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fastboardai/linkgraph/format"
	"github.com/fastboardai/linkgraph/format/voyager"
	"github.com/fastboardai/linkgraph/record"
	"github.com/fastboardai/linkgraph/store"

	_ "github.com/fastboardai/linkgraph/format/voyagersearch"
)

// Server holds the HTTP handler dependencies. Store may be nil, in
// which case only the parse endpoints are available.
type Server struct {
	Log   *slog.Logger
	Store *store.Store
}

func New(log *slog.Logger, st *store.Store) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{Log: log, Store: st}
}

// Routes returns the router with all endpoints mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/parse/profile", s.handleParseProfile)
	r.Post("/api/parse/search", s.handleParseSearch)
	r.Post("/api/hits", s.handleSaveHits)
	r.Get("/api/hits", s.handleListHits)
	r.Get("/api/profiles", s.handleListProfiles)
	r.Get("/api/profiles/{publicID}", s.handleGetProfile)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "healthy",
		"store_active": s.Store != nil,
	})
}

// handleParseProfile materializes a profile from a raw payload posted
// as the request body. An optional public_id query parameter
// disambiguates payloads carrying several profile entities. When a
// store is configured the result is persisted as a side effect.
func (s *Server) handleParseProfile(w http.ResponseWriter, r *http.Request) {
	parser, err := format.GetProfileParser("voyager")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	opts := &format.ParseOptions{
		PublicIdentifier: r.URL.Query().Get("public_id"),
		SourceName:       "http",
	}

	prof, err := parser.ParseProfile(r.Body, opts)
	if errors.Is(err, voyager.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if s.Store != nil {
		if err := s.Store.SaveProfile(r.Context(), prof); err != nil {
			// Persistence is best-effort here; the parse result
			// still goes back to the caller.
			s.Log.Error("saving profile", "urn", prof.URN, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"profile": prof})
}

func (s *Server) handleParseSearch(w http.ResponseWriter, r *http.Request) {
	parser, err := format.GetHitParser("voyager-search")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	hits, err := parser.ParseHits(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"hits": hits})
}

// handleSaveHits persists a posted hit list, grouping it under a new
// harvest tagged with the originating query string.
func (s *Server) handleSaveHits(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	var body struct {
		Query string             `json:"query"`
		Hits  []record.SearchHit `json:"hits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	harvestID, err := s.Store.CreateHarvest(r.Context(), body.Query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	saved, err := s.Store.SaveHits(r.Context(), harvestID, body.Hits)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"harvest_id": harvestID,
		"saved":      saved,
	})
}

func (s *Server) handleListHits(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	hits, err := s.Store.ListHits(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hits": hits})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	profiles, err := s.Store.ListProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	prof, err := s.Store.GetProfile(r.Context(), chi.URLParam(r, "publicID"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": prof})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
