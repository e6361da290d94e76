// Package metadata resolves catalogue URLs into normalized movie records.
//
// A Resolver recognizes the provider behind a URL, calls the matching
// adapter (OMDb, TMDB, AsianWiki or the URL heuristic), runs best-effort
// enrichment and returns one movie.Details. Missing credentials switch the
// API adapters to fixture data when that is enabled.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/smdrama/moviefetch/internal/movie"
	"github.com/smdrama/moviefetch/internal/tmdb"
	"github.com/smdrama/moviefetch/pkg/source"
)

// Outcomes reported to the Recorder.
const (
	OutcomeResolved = "resolved"
	OutcomeEmpty    = "empty"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeCached   = "cached"
)

// searchLimit caps how many search candidates are expanded.
const searchLimit = 5

var (
	// ErrInvalidURL is wrapped by InvalidURLError.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrNoData means the URL was recognized but no provider had a record.
	ErrNoData = errors.New("no data for URL")
)

// InvalidURLError reports a URL that matches no known provider.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: provide an IMDb, TMDB, MyDramaList, HanCinema, AsianWiki or NamuWiki link", e.URL)
}

func (e *InvalidURLError) Unwrap() error { return ErrInvalidURL }

// Options configures a Resolver. A nil provider means no credential is
// configured for it.
type Options struct {
	OMDb      OMDbAPI
	TMDB      TMDBAPI
	AsianWiki AsianWikiAPI

	// Fixtures defaults to the built-in table.
	Fixtures *Fixtures
	// UseFixturesWhenUncredentialed serves fixture data from the OMDb and
	// TMDB adapters (and title search) when their client is nil.
	UseFixturesWhenUncredentialed bool

	// Cache stores resolved records for CacheTTL. Nil disables caching.
	Cache    Store
	CacheTTL time.Duration

	Metrics Recorder
	Logger  *slog.Logger
	// Now defaults to time.Now; the heuristic adapter takes its year from it.
	Now func() time.Time
}

// Resolver turns catalogue URLs into records.
type Resolver struct {
	omdb        OMDbAPI
	tmdb        TMDBAPI
	asianwiki   AsianWikiAPI
	fixtures    *Fixtures
	useFixtures bool
	cache       Store
	cacheTTL    time.Duration
	metrics     Recorder
	log         *slog.Logger
	now         func() time.Time
}

// New creates a Resolver.
func New(opts Options) *Resolver {
	r := &Resolver{
		omdb:        opts.OMDb,
		tmdb:        opts.TMDB,
		asianwiki:   opts.AsianWiki,
		fixtures:    opts.Fixtures,
		useFixtures: opts.UseFixturesWhenUncredentialed,
		cache:       opts.Cache,
		cacheTTL:    opts.CacheTTL,
		metrics:     opts.Metrics,
		now:         opts.Now,
	}
	if opts.Logger != nil {
		r.log = opts.Logger.With("component", "resolver")
	}
	if r.fixtures == nil {
		r.fixtures = DefaultFixtures()
	}
	if r.metrics == nil {
		r.metrics = nopRecorder{}
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.cacheTTL <= 0 {
		r.cacheTTL = 24 * time.Hour
	}
	return r
}

// Providers reports which live providers are configured.
func (r *Resolver) Providers() (hasOMDb, hasTMDB, hasAsianWiki bool) {
	return r.omdb != nil, r.tmdb != nil, r.asianwiki != nil
}

// Resolve recognizes rawURL and returns its record.
//
// Unrecognized URLs fail with *InvalidURLError before any network call. A
// recognized URL without data returns ErrNoData. Provider failures are
// absorbed; cancellation of ctx is returned as is.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*movie.Details, error) {
	start := time.Now()

	target, ok := source.Parse(rawURL)
	if !ok {
		r.metrics.ObserveResolution("unknown", OutcomeInvalid, time.Since(start))
		return nil, &InvalidURLError{URL: rawURL}
	}

	if d, ok := r.cached(ctx, target); ok {
		r.metrics.ObserveResolution(string(target.Source), OutcomeCached, time.Since(start))
		return d, nil
	}

	if r.log != nil {
		r.log.Debug("resolving", "source", target.Source, "id", target.ID)
	}

	d, err := r.dispatch(ctx, target)
	if err == nil && d != nil {
		d.Normalize()
		if vErr := d.Valid(); vErr != nil {
			err = fmt.Errorf("%s %s: %w", target.Source, target.ID, vErr)
		}
	}

	switch {
	case err != nil:
		r.metrics.ObserveResolution(string(target.Source), OutcomeFailed, time.Since(start))
		return nil, err
	case d == nil:
		r.metrics.ObserveResolution(string(target.Source), OutcomeEmpty, time.Since(start))
		return nil, ErrNoData
	}

	r.store(ctx, target, d)
	r.metrics.ObserveResolution(string(target.Source), OutcomeResolved, time.Since(start))
	return d, nil
}

func (r *Resolver) dispatch(ctx context.Context, target source.Target) (*movie.Details, error) {
	switch target.Source {
	case source.IMDb:
		return r.resolveIMDb(ctx, target.ID)
	case source.TMDBMovie:
		return r.resolveTMDB(ctx, target.ID, tmdb.KindMovie)
	case source.TMDBTV:
		return r.resolveTMDB(ctx, target.ID, tmdb.KindTV)
	default:
		return r.fetchHeuristic(ctx, target)
	}
}

func (r *Resolver) resolveIMDb(ctx context.Context, imdbID string) (*movie.Details, error) {
	d, err := r.fetchOMDb(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	if d != nil && r.tmdb != nil {
		err := r.attempt(ctx, "trailer backfill", func(ctx context.Context) error {
			url, err := r.TrailerByIMDbID(ctx, imdbID)
			if err != nil {
				return err
			}
			if url != "" {
				d.TrailerURL = url
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Live OMDb came back empty: the demo ids still resolve.
	if d == nil && r.useFixtures && r.fixtures.Known(imdbID) {
		if r.log != nil {
			r.log.Info("using fixture after empty provider response", "id", imdbID)
		}
		d = r.fixtures.Lookup(imdbID, movie.TypeMovie)
	}
	return d, nil
}

func (r *Resolver) resolveTMDB(ctx context.Context, id string, kind tmdb.Kind) (*movie.Details, error) {
	d, err := r.fetchTMDB(ctx, id, kind)
	if err != nil || d == nil {
		return d, err
	}
	if r.tmdb == nil || r.omdb == nil {
		return d, nil
	}

	err = r.attempt(ctx, "imdb rating backfill", func(ctx context.Context) error {
		rating, err := r.IMDbRatingFor(ctx, id, kind)
		if err != nil {
			return err
		}
		if rating != nil {
			d.IMDbRating = rating
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// SearchResult is one title search candidate.
type SearchResult struct {
	Details movie.Details `json:"details"`
	TMDBID  int64         `json:"tmdbId,omitempty"`
	// Score is the similarity of the candidate title to the query, 0..1.
	Score float64 `json:"score"`
}

// Search looks a free-text title up on TMDB and expands the first five
// candidates into full records, in TMDB's order. Without TMDB it returns
// two placeholder records when fixtures are enabled. Provider failures
// give an empty list.
func (r *Resolver) Search(ctx context.Context, title string, t movie.Type) ([]SearchResult, error) {
	if !t.Valid() {
		t = movie.TypeMovie
	}
	kind := typeKind(t)

	if r.tmdb == nil {
		if !r.useFixtures {
			return []SearchResult{}, nil
		}
		out := make([]SearchResult, 0, 2)
		for _, id := range []string{"search1", "search2"} {
			d := r.fixtures.Lookup(id, t)
			out = append(out, SearchResult{Details: *d, Score: source.Similarity(title, d.Title)})
		}
		return out, nil
	}

	candidates, err := r.tmdb.Search(ctx, kind, title)
	if err != nil {
		return []SearchResult{}, r.noData(ctx, "tmdb search", title, err)
	}
	if len(candidates) > searchLimit {
		candidates = candidates[:searchLimit]
	}

	out := make([]SearchResult, 0, len(candidates))
	for _, c := range candidates {
		d, err := r.expandTMDB(ctx, c.ID, kind)
		if err != nil {
			return []SearchResult{}, err
		}
		if d == nil {
			continue
		}
		d.Normalize()
		out = append(out, SearchResult{
			Details: *d,
			TMDBID:  c.ID,
			Score:   source.Similarity(title, d.Title),
		})
	}
	return out, nil
}

func (r *Resolver) cached(ctx context.Context, target source.Target) (*movie.Details, bool) {
	if r.cache == nil {
		return nil, false
	}
	data, ok := r.cache.Get(ctx, target.Key())
	if !ok {
		return nil, false
	}
	var d movie.Details
	if err := json.Unmarshal(data, &d); err != nil {
		if r.log != nil {
			r.log.Warn("failed to unmarshal cached record", "key", target.Key(), "error", err)
		}
		return nil, false
	}
	if r.log != nil {
		r.log.Debug("cache hit", "key", target.Key())
	}
	return &d, true
}

func (r *Resolver) store(ctx context.Context, target source.Target, d *movie.Details) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(d)
	if err != nil {
		if r.log != nil {
			r.log.Warn("failed to marshal record for cache", "key", target.Key(), "error", err)
		}
		return
	}
	if err := r.cache.Set(ctx, target.Key(), data, r.cacheTTL); err != nil && r.log != nil {
		r.log.Warn("failed to cache record", "key", target.Key(), "error", err)
	}
}
