// Package omdb provides a client for the OMDb API (IMDb ratings, plots and posters).
package omdb

import (
	"regexp"
	"strconv"
	"strings"
)

// NotAvailable is OMDb's sentinel for a missing field value.
const NotAvailable = "N/A"

// Title is an OMDb title lookup response. OMDb encodes every field as a
// string; use the accessor methods to get typed values.
type Title struct {
	Response     string   `json:"Response"` // "True" or "False"
	Error        string   `json:"Error,omitempty"`
	Title        string   `json:"Title"`
	Year         string   `json:"Year"` // "1994" or "2008–2013"
	Rated        string   `json:"Rated"`
	Released     string   `json:"Released"`
	Runtime      string   `json:"Runtime"`
	Genre        string   `json:"Genre"` // "Crime, Drama"
	Director     string   `json:"Director"`
	Actors       string   `json:"Actors"`
	Plot         string   `json:"Plot"`
	Poster       string   `json:"Poster"`
	Ratings      []Rating `json:"Ratings"`
	Metascore    string   `json:"Metascore"`
	IMDbRating   string   `json:"imdbRating"`
	IMDbVotes    string   `json:"imdbVotes"`
	IMDbID       string   `json:"imdbID"`
	Type         string   `json:"Type"` // "movie", "series" or "episode"
	TotalSeasons string   `json:"totalSeasons,omitempty"`
}

// Rating is one entry of the Ratings array, e.g. {"Rotten Tomatoes", "91%"}.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Rating sources as OMDb names them.
const (
	SourceIMDb           = "Internet Movie Database"
	SourceRottenTomatoes = "Rotten Tomatoes"
	SourceMetacritic     = "Metacritic"
)

var (
	leadingDigits = regexp.MustCompile(`^\d+`)
	percentValue  = regexp.MustCompile(`(\d+)%`)
)

// Genres splits the comma-separated Genre field, preserving order.
func (t *Title) Genres() []string {
	if t.Genre == "" || t.Genre == NotAvailable {
		return []string{}
	}
	parts := strings.Split(t.Genre, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

// ReleaseYear parses the leading year of the Year field ("2008–2013" -> 2008).
func (t *Title) ReleaseYear() (int, bool) {
	return leadingInt(t.Year)
}

// Seasons parses totalSeasons.
func (t *Title) Seasons() (int, bool) {
	return leadingInt(t.TotalSeasons)
}

// IMDbScore parses imdbRating ("9.3").
func (t *Title) IMDbScore() (float64, bool) {
	return parseFloat(t.IMDbRating)
}

// MetascoreValue parses Metascore ("82").
func (t *Title) MetascoreValue() (float64, bool) {
	return parseFloat(t.Metascore)
}

// RottenTomatoes returns the percentage of the first Rotten Tomatoes rating.
func (t *Title) RottenTomatoes() (int, bool) {
	for _, r := range t.Ratings {
		if r.Source != SourceRottenTomatoes {
			continue
		}
		m := percentValue.FindStringSubmatch(r.Value)
		if m == nil {
			return 0, false
		}
		v, err := strconv.Atoi(m[1])
		return v, err == nil
	}
	return 0, false
}

// PosterURL returns the poster URL, or "" when OMDb reports N/A.
func (t *Title) PosterURL() string {
	if t.Poster == NotAvailable {
		return ""
	}
	return t.Poster
}

// IsSeries reports whether OMDb classifies the title as a series.
func (t *Title) IsSeries() bool {
	return t.Type == "series"
}

func leadingInt(s string) (int, bool) {
	m := leadingDigits.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	return v, err == nil
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NotAvailable {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
