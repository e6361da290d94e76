package metadata

import (
	"context"
	"strings"

	"github.com/smdrama/moviefetch/internal/movie"
	"github.com/smdrama/moviefetch/pkg/omdb"
)

// fromOMDb maps an OMDb title onto a record. Missing, N/A and unparseable
// values are left absent.
func fromOMDb(t *omdb.Title) *movie.Details {
	genre := t.Genres()
	d := &movie.Details{
		Title:       strings.TrimSpace(t.Title),
		Genre:       genre,
		Description: strings.TrimSpace(t.Plot),
		Type:        movie.TypeMovie,
		PosterURL:   t.PosterURL(),
		Tags:        movie.TagsFromGenre(genre),
	}
	if d.Description == omdb.NotAvailable {
		d.Description = ""
	}
	if y, ok := t.ReleaseYear(); ok {
		d.Year = movie.Int(y)
	}
	if v, ok := t.IMDbScore(); ok {
		d.IMDbRating = movie.Float(v)
	}
	if v, ok := t.RottenTomatoes(); ok {
		d.RottenTomatoesRating = movie.Int(v)
	}
	if v, ok := t.MetascoreValue(); ok {
		d.MetacriticRating = movie.Float(v)
	}
	if t.IsSeries() {
		d.Type = movie.TypeSeries
		if n, ok := t.Seasons(); ok {
			d.Seasons = movie.Int(n)
		}
	}
	return d
}

// fetchOMDb resolves an IMDb id. With no OMDb client configured it falls back
// to fixtures when allowed. Provider failures come back as (nil, nil).
func (r *Resolver) fetchOMDb(ctx context.Context, imdbID string) (*movie.Details, error) {
	if r.omdb == nil {
		if r.useFixtures {
			return r.fixtures.Lookup(imdbID, movie.TypeMovie), nil
		}
		return nil, nil
	}

	t, err := r.omdb.Title(ctx, imdbID)
	if err != nil {
		return nil, r.noData(ctx, "omdb", imdbID, err)
	}
	return fromOMDb(t), nil
}

// liveIMDbRating fetches only the IMDb rating. Fixtures never apply here.
func (r *Resolver) liveIMDbRating(ctx context.Context, imdbID string) (*float64, error) {
	if r.omdb == nil {
		return nil, nil
	}
	t, err := r.omdb.Title(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	if v, ok := t.IMDbScore(); ok {
		return movie.Float(v), nil
	}
	return nil, nil
}
