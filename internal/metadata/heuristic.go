package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smdrama/moviefetch/internal/asianwiki"
	"github.com/smdrama/moviefetch/internal/movie"
	"github.com/smdrama/moviefetch/internal/tmdb"
	"github.com/smdrama/moviefetch/pkg/source"
)

// baselineGenre is the fixed genre set for sites without an API.
var baselineGenre = map[source.Kind][]string{
	source.MyDramaList: {"Drama", "Romance"},
	source.HanCinema:   {"Drama", "Korean"},
	source.AsianWiki:   {"Drama", "Asian"},
	source.NamuWiki:    {"Drama", "Korean"},
}

// seriesCastThreshold: AsianWiki pages listing more cast than this are series.
const seriesCastThreshold = 5

// baseline builds the URL-derived record for a heuristic source.
func (r *Resolver) baseline(target source.Target) *movie.Details {
	title := source.CleanTitle(target.Title)
	if title == "" {
		title = source.Capitalize(strings.TrimSpace(target.ID))
	}
	genre := append([]string{}, baselineGenre[target.Source]...)
	if len(genre) == 0 {
		genre = []string{"Drama"}
	}
	return &movie.Details{
		Title:       title,
		Year:        movie.Int(r.now().Year()),
		Genre:       genre,
		Description: fmt.Sprintf("%s is a drama catalogued on %s.", title, target.Source.DisplayName()),
		Type:        movie.TypeSeries,
		Tags:        movie.TagsFromGenre(genre),
	}
}

// fetchHeuristic resolves a site without an API. It never reports a provider
// failure; only cancellation escapes.
func (r *Resolver) fetchHeuristic(ctx context.Context, target source.Target) (*movie.Details, error) {
	if target.Source == source.AsianWiki && r.asianwiki != nil {
		d, err := r.fetchAsianWiki(ctx, target)
		if err != nil {
			return nil, err
		}
		if d != nil {
			return d, nil
		}
	}

	d := r.baseline(target)
	if err := r.attempt(ctx, "title search", func(ctx context.Context) error {
		return r.enrichFromSearch(ctx, d)
	}); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Resolver) fetchAsianWiki(ctx context.Context, target source.Target) (*movie.Details, error) {
	page, err := r.asianwiki.Lookup(ctx, asianwiki.PageURL(target.ID))
	if err != nil {
		return nil, r.noData(ctx, "asianwiki", target.ID, err)
	}
	if strings.TrimSpace(page.Title) == "" {
		return nil, nil
	}
	return fromAsianWiki(page), nil
}

// fromAsianWiki maps a page profile onto a record. Tags are the actor names
// of the cast list ("Kim Soo-hyun as Baek Hyun-woo" -> "kim soo-hyun").
func fromAsianWiki(p *asianwiki.Page) *movie.Details {
	d := &movie.Details{
		Title:       strings.TrimSpace(p.Title),
		Genre:       append([]string{}, p.Genre...),
		Description: strings.TrimSpace(p.Synopsis),
		Type:        movie.TypeMovie,
		PosterURL:   p.Poster,
		BackdropURL: p.Backdrop,
		TrailerURL:  p.TrailerURL,
		Tags:        make([]string, 0, len(p.Cast)),
	}
	if p.Year > 0 {
		d.Year = movie.Int(p.Year)
	}
	if len(p.Cast) > seriesCastThreshold {
		d.Type = movie.TypeSeries
	}
	for _, c := range p.Cast {
		actor, _, _ := strings.Cut(c, " as ")
		if actor = strings.ToLower(strings.TrimSpace(actor)); actor != "" {
			d.Tags = append(d.Tags, actor)
		}
	}
	return d
}

var errNoCandidates = errors.New("no search candidates")

// enrichFromSearch overwrites d with the first TMDB tv candidate for its
// title, keeping the title and unioning genre and tags. Live TMDB only.
func (r *Resolver) enrichFromSearch(ctx context.Context, d *movie.Details) error {
	if r.tmdb == nil {
		return errSkipped
	}
	results, err := r.tmdb.Search(ctx, tmdb.KindTV, d.Title)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return errNoCandidates
	}

	top := results[0]
	if r.log != nil {
		score := source.Similarity(d.Title, top.DisplayTitle())
		r.log.Debug("heuristic match", "title", d.Title, "candidate", top.DisplayTitle(),
			"score", score, "confidence", source.Confidence(score).String())
	}

	candidate, err := r.expandTMDB(ctx, top.ID, tmdb.KindTV)
	if err != nil {
		return err
	}
	if candidate == nil {
		return errNoCandidates
	}

	title := d.Title
	genre := movie.Union(candidate.Genre, d.Genre)
	tags := movie.Union(candidate.Tags, d.Tags)
	*d = *candidate
	d.Title = title
	d.Genre = genre
	d.Tags = tags
	return nil
}
