// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/smdrama/moviefetch/internal/metadata"
	"github.com/smdrama/moviefetch/internal/movie"
)

// maxBodyBytes caps request bodies; a resolve request is one URL.
const maxBodyBytes = 64 << 10

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	if log == nil {
		log = slog.Default()
	}
	if deps.Cache == "" {
		deps.Cache = "none"
	}
	return &Server{deps: deps, log: log.With("component", "api")}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/resolve", s.resolve)
	mux.HandleFunc("GET /api/v1/search", s.search)
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
	mux.HandleFunc("GET /metrics", s.requireMetrics(s.metrics))
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "INVALID_URL", "url is required")
		return
	}

	d, err := s.deps.Resolver.Resolve(r.Context(), req.URL)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resolveResponse{URL: req.URL, Details: d})
	case errors.Is(err, metadata.ErrInvalidURL):
		writeError(w, http.StatusBadRequest, "INVALID_URL", err.Error())
	case errors.Is(err, metadata.ErrNoData):
		writeError(w, http.StatusNotFound, "NO_DATA", "No metadata found for "+req.URL)
	default:
		s.log.Error("resolve failed", "url", req.URL, "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "RESOLVE_FAILED", err.Error())
	}
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "q is required")
		return
	}

	t := movie.TypeMovie
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := movie.ParseType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		t = parsed
	}

	results, err := s.deps.Resolver.Search(r.Context(), q, t)
	if err != nil {
		s.log.Error("search failed", "query", q, "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "SEARCH_FAILED", err.Error())
		return
	}

	resp := searchResponse{
		Query: q,
		Type:  string(t),
		Items: make([]searchResultResponse, len(results)),
		Total: len(results),
	}
	for i := range results {
		resp.Items[i] = searchResultResponse{
			Details: &results[i].Details,
			TMDBID:  results[i].TMDBID,
			Score:   results[i].Score,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	omdb, tmdb, asianwiki := s.deps.Resolver.Providers()
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: s.deps.Version,
		Providers: providersStatus{
			OMDb:      omdb,
			TMDB:      tmdb,
			AsianWiki: asianwiki,
		},
		Cache: s.deps.Cache,
	})
}

func (s *Server) metrics(w http.ResponseWriter, r *http.Request) {
	s.deps.Metrics.ServeHTTP(w, r)
}
