package metadata

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks github.com/smdrama/moviefetch/internal/metadata OMDbAPI,TMDBAPI,AsianWikiAPI

import (
	"context"
	"time"

	"github.com/smdrama/moviefetch/internal/asianwiki"
	"github.com/smdrama/moviefetch/internal/tmdb"
	"github.com/smdrama/moviefetch/pkg/omdb"
)

// OMDbAPI is the rating service used for IMDb ids.
type OMDbAPI interface {
	Title(ctx context.Context, imdbID string) (*omdb.Title, error)
}

// TMDBAPI is the metadata service used for TMDB ids, trailers and title search.
type TMDBAPI interface {
	Details(ctx context.Context, kind tmdb.Kind, id int64) (*tmdb.Details, error)
	Videos(ctx context.Context, kind tmdb.Kind, id int64) ([]tmdb.Video, error)
	FindByIMDbID(ctx context.Context, imdbID string) (*tmdb.FindResult, error)
	ExternalIDs(ctx context.Context, kind tmdb.Kind, id int64) (*tmdb.ExternalIDs, error)
	Search(ctx context.Context, kind tmdb.Kind, query string) ([]tmdb.SearchResult, error)
}

// AsianWikiAPI fetches a profile for an AsianWiki page URL.
type AsianWikiAPI interface {
	Lookup(ctx context.Context, pageURL string) (*asianwiki.Page, error)
}

// Recorder observes resolution outcomes.
type Recorder interface {
	ObserveResolution(source, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveResolution(string, string, time.Duration) {}
