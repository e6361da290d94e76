package metadata

import (
	"context"
	"strconv"
	"strings"

	"github.com/smdrama/moviefetch/internal/movie"
	"github.com/smdrama/moviefetch/internal/tmdb"
)

// fromTMDB maps TMDB details and the selected trailer onto a record.
func fromTMDB(d *tmdb.Details, kind tmdb.Kind, trailer *tmdb.Video) *movie.Details {
	genre := d.GenreNames()
	out := &movie.Details{
		Title:       strings.TrimSpace(d.DisplayTitle()),
		Genre:       genre,
		Description: strings.TrimSpace(d.Overview),
		Type:        movie.TypeMovie,
		PosterURL:   d.PosterURL(tmdb.PosterSize),
		BackdropURL: d.BackdropURL(tmdb.BackdropSize),
		Tags:        movie.TagsFromGenre(genre),
	}
	if y, ok := d.Year(); ok {
		out.Year = movie.Int(y)
	}
	// An unrated title reports 0 with no votes.
	if d.VoteAverage > 0 || d.VoteCount > 0 {
		out.TMDBRating = movie.Float(d.VoteAverage)
	}
	if kind == tmdb.KindTV {
		out.Type = movie.TypeSeries
		if d.NumberOfSeasons > 0 {
			out.Seasons = movie.Int(d.NumberOfSeasons)
		}
	}
	if trailer != nil {
		out.TrailerURL = trailer.WatchURL()
	}
	return out
}

func kindType(kind tmdb.Kind) movie.Type {
	if kind == tmdb.KindTV {
		return movie.TypeSeries
	}
	return movie.TypeMovie
}

func typeKind(t movie.Type) tmdb.Kind {
	if t == movie.TypeSeries {
		return tmdb.KindTV
	}
	return tmdb.KindMovie
}

// fetchTMDB resolves a TMDB id with two calls: details, then videos.
// A failed videos call only costs the trailer.
func (r *Resolver) fetchTMDB(ctx context.Context, id string, kind tmdb.Kind) (*movie.Details, error) {
	if r.tmdb == nil {
		if r.useFixtures {
			return r.fixtures.Lookup(id, kindType(kind)), nil
		}
		return nil, nil
	}

	tmdbID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, r.noData(ctx, "tmdb", id, err)
	}
	return r.expandTMDB(ctx, tmdbID, kind)
}

func (r *Resolver) expandTMDB(ctx context.Context, id int64, kind tmdb.Kind) (*movie.Details, error) {
	key := strconv.FormatInt(id, 10)

	d, err := r.tmdb.Details(ctx, kind, id)
	if err != nil {
		return nil, r.noData(ctx, "tmdb", key, err)
	}

	var trailer *tmdb.Video
	videos, err := r.tmdb.Videos(ctx, kind, id)
	if err != nil {
		if err := r.noData(ctx, "tmdb videos", key, err); err != nil {
			return nil, err
		}
	} else {
		trailer = tmdb.SelectTrailer(videos)
	}
	return fromTMDB(d, kind, trailer), nil
}

// TrailerByIMDbID finds the TMDB entry for an IMDb id and returns its
// trailer URL, or "" when there is none.
func (r *Resolver) TrailerByIMDbID(ctx context.Context, imdbID string) (string, error) {
	if r.tmdb == nil {
		return "", nil
	}
	found, err := r.tmdb.FindByIMDbID(ctx, imdbID)
	if err != nil {
		return "", err
	}
	id, kind, ok := found.First()
	if !ok {
		return "", nil
	}
	videos, err := r.tmdb.Videos(ctx, kind, id)
	if err != nil {
		return "", err
	}
	if v := tmdb.SelectTrailer(videos); v != nil {
		return v.WatchURL(), nil
	}
	return "", nil
}

// IMDbRatingFor looks up the IMDb id of a TMDB entry and fetches its live
// IMDb rating. It returns nil when either side has nothing.
func (r *Resolver) IMDbRatingFor(ctx context.Context, id string, kind tmdb.Kind) (*float64, error) {
	if r.tmdb == nil {
		return nil, nil
	}
	tmdbID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, err
	}
	ids, err := r.tmdb.ExternalIDs(ctx, kind, tmdbID)
	if err != nil {
		return nil, err
	}
	if ids.IMDBID == "" {
		return nil, nil
	}
	return r.liveIMDbRating(ctx, ids.IMDBID)
}
