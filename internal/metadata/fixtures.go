package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smdrama/moviefetch/internal/movie"
)

// Demo ids with a fixed record.
const (
	DemoShawshank    = "tt0111161"
	DemoBreakingBad  = "tt0903747"
	placeholderTitle = "Sample Movie %s"
)

// Fixtures is the demo data used when no provider credential is configured.
// Lookups always return a fresh copy.
type Fixtures struct {
	records map[string]*movie.Details
}

func builtinFixtures() map[string]*movie.Details {
	return map[string]*movie.Details{
		DemoShawshank: {
			Title:       "The Shawshank Redemption",
			Year:        movie.Int(1994),
			Genre:       []string{"Drama"},
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			IMDbRating:  movie.Float(9.3),
			TMDBRating:  movie.Float(8.7),
			Type:        movie.TypeMovie,
			PosterURL:   "https://m.media-amazon.com/images/M/MV5BNDE3ODcxYzMtY2YzZC00NmNlLWJiNDMtZDViZWM2MzIxZDYwXkEyXkFqcGdeQXVyNjAwNDUxODI@._V1_SX300.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=NmzuHjWmXOc",
			BackdropURL: "https://image.tmdb.org/t/p/w1280/l6hQWH9eDksNJNiXWYRkWqikOdu.jpg",
			Tags:        []string{"drama", "crime", "hope"},
		},
		DemoBreakingBad: {
			Title:       "Breaking Bad",
			Year:        movie.Int(2008),
			Genre:       []string{"Crime", "Drama", "Thriller"},
			Description: "A chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine.",
			IMDbRating:  movie.Float(9.5),
			TMDBRating:  movie.Float(8.9),
			Type:        movie.TypeSeries,
			Seasons:     movie.Int(5),
			PosterURL:   "https://m.media-amazon.com/images/M/MV5BYmQ4YWMxYjUtNjZmYi00MDQ1LWFjMjMtNjA5ZDdiYjdiODU5XkEyXkFqcGdeQXVyMTMzNDExODE5._V1_SX300.jpg",
			TrailerURL:  "https://www.youtube.com/watch?v=HhesaQXLuRY",
			BackdropURL: "https://image.tmdb.org/t/p/w1280/iNOGKhqMEwQ2CZdnp67eKp6nIJ8.jpg",
			Tags:        []string{"crime", "drama", "thriller"},
		},
	}
}

// DefaultFixtures returns the built-in demo table.
func DefaultFixtures() *Fixtures {
	return &Fixtures{records: builtinFixtures()}
}

// LoadFixtures reads a YAML file of extra records keyed by id and layers it
// over the built-in table:
//
//	tt0068646:
//	  title: The Godfather
//	  year: 1972
//	  genre: [Crime, Drama]
//	  type: movie
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	f, err := ParseFixtures(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseFixtures parses YAML fixture records over the built-in table.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var extra map[string]*movie.Details
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	f := DefaultFixtures()
	for id, d := range extra {
		if d == nil {
			return nil, fmt.Errorf("fixture %q: empty record", id)
		}
		if d.Type == "" {
			d.Type = movie.TypeMovie
		}
		if err := d.Valid(); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", id, err)
		}
		d.Normalize()
		f.records[id] = d
	}
	return f, nil
}

// Known reports whether id has a fixed record.
func (f *Fixtures) Known(id string) bool {
	_, ok := f.records[id]
	return ok
}

// Len returns the number of fixed records.
func (f *Fixtures) Len() int {
	return len(f.records)
}

// Lookup returns the fixed record for id, or a generated placeholder of type t.
func (f *Fixtures) Lookup(id string, t movie.Type) *movie.Details {
	if d, ok := f.records[id]; ok {
		return d.Clone()
	}
	return placeholder(id, t)
}

func placeholder(id string, t movie.Type) *movie.Details {
	d := &movie.Details{
		Title:       fmt.Sprintf(placeholderTitle, id),
		Year:        movie.Int(2023),
		Genre:       []string{"Action", "Drama"},
		Description: "This is a sample movie description for testing purposes.",
		IMDbRating:  movie.Float(7.5),
		TMDBRating:  movie.Float(7.2),
		Type:        movie.TypeMovie,
		PosterURL:   "https://image.tmdb.org/t/p/w500/sample-poster.jpg",
		TrailerURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		BackdropURL: "https://image.tmdb.org/t/p/w1280/sample-backdrop.jpg",
		Tags:        []string{"action", "drama", "sample"},
	}
	if t == movie.TypeSeries {
		d.Type = movie.TypeSeries
		d.Seasons = movie.Int(3)
	}
	return d
}
