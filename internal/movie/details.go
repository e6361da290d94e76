// Package movie defines the normalized record every provider adapter produces.
package movie

import (
	"fmt"
	"strings"
)

// Type classifies a record as a movie or a series.
type Type string

const (
	TypeMovie  Type = "movie"
	TypeSeries Type = "series"
)

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	return t == TypeMovie || t == TypeSeries
}

// ParseType maps loose user input ("tv", "show", "film") onto a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "film", "":
		return TypeMovie, nil
	case "series", "tv", "show":
		return TypeSeries, nil
	default:
		return "", fmt.Errorf("unknown type %q (want movie or series)", s)
	}
}

// Details is the normalized movie/series record.
// Optional numeric fields are nil when the provider did not supply a value;
// optional URLs are empty.
type Details struct {
	Title                string   `json:"title" yaml:"title"`
	Year                 *int     `json:"year,omitempty" yaml:"year,omitempty"`
	Genre                []string `json:"genre" yaml:"genre"`
	Description          string   `json:"description" yaml:"description"`
	IMDbRating           *float64 `json:"imdbRating,omitempty" yaml:"imdb_rating,omitempty"`
	TMDBRating           *float64 `json:"tmdbRating,omitempty" yaml:"tmdb_rating,omitempty"`
	RottenTomatoesRating *int     `json:"rottenTomatoesRating,omitempty" yaml:"rotten_tomatoes_rating,omitempty"`
	MetacriticRating     *float64 `json:"metacriticRating,omitempty" yaml:"metacritic_rating,omitempty"`
	Type                 Type     `json:"type" yaml:"type"`
	Seasons              *int     `json:"seasons,omitempty" yaml:"seasons,omitempty"`
	PosterURL            string   `json:"posterUrl,omitempty" yaml:"poster_url,omitempty"`
	BackdropURL          string   `json:"backdropUrl,omitempty" yaml:"backdrop_url,omitempty"`
	TrailerURL           string   `json:"trailerUrl,omitempty" yaml:"trailer_url,omitempty"`
	Tags                 []string `json:"tags" yaml:"tags"`
}

// Valid checks the record invariant: a non-empty title and a known type.
func (d *Details) Valid() error {
	if d == nil {
		return fmt.Errorf("nil record")
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("record has empty title")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("record has invalid type %q", d.Type)
	}
	return nil
}

// Clone returns a deep copy so callers can mutate the result freely.
func (d *Details) Clone() *Details {
	if d == nil {
		return nil
	}
	c := *d
	c.Year = cloneInt(d.Year)
	c.Seasons = cloneInt(d.Seasons)
	c.RottenTomatoesRating = cloneInt(d.RottenTomatoesRating)
	c.IMDbRating = cloneFloat(d.IMDbRating)
	c.TMDBRating = cloneFloat(d.TMDBRating)
	c.MetacriticRating = cloneFloat(d.MetacriticRating)
	c.Genre = append([]string{}, d.Genre...)
	c.Tags = append([]string{}, d.Tags...)
	return &c
}

// Normalize fills nil slices so the JSON shape stays stable.
func (d *Details) Normalize() {
	if d.Genre == nil {
		d.Genre = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.Type != TypeSeries {
		d.Seasons = nil
	}
}

// TagsFromGenre lower-cases a genre list into tags.
func TagsFromGenre(genre []string) []string {
	tags := make([]string, 0, len(genre))
	for _, g := range genre {
		if g = strings.TrimSpace(g); g != "" {
			tags = append(tags, strings.ToLower(g))
		}
	}
	return tags
}

// Union returns a followed by the entries of b not already present.
// Comparison is case-insensitive; the first spelling wins.
func Union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			key := strings.ToLower(strings.TrimSpace(s))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return Int(*p)
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}
