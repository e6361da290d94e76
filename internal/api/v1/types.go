// internal/api/v1/types.go
package v1

import "github.com/smdrama/moviefetch/internal/movie"

// resolveRequest is the body of POST /resolve.
type resolveRequest struct {
	URL string `json:"url"`
}

// resolveResponse wraps the record with the URL it came from.
type resolveResponse struct {
	URL     string         `json:"url"`
	Details *movie.Details `json:"details"`
}

// searchResultResponse is one entry of GET /search.
type searchResultResponse struct {
	Details *movie.Details `json:"details"`
	TMDBID  int64          `json:"tmdb_id,omitempty"`
	Score   float64        `json:"score"`
}

// searchResponse is the response for GET /search.
type searchResponse struct {
	Query string                 `json:"query"`
	Type  string                 `json:"type"`
	Items []searchResultResponse `json:"items"`
	Total int                    `json:"total"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version,omitempty"`
	Providers providersStatus `json:"providers"`
	Cache     string          `json:"cache"`
}

type providersStatus struct {
	OMDb      bool `json:"omdb"`
	TMDB      bool `json:"tmdb"`
	AsianWiki bool `json:"asianwiki"`
}
