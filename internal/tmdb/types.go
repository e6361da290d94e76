// Package tmdb provides a client for The Movie Database API.
package tmdb

import (
	"strconv"
	"strings"
)

// Image size paths used when building absolute image URLs.
const (
	imageBaseURL    = "https://image.tmdb.org/t/p/"
	PosterSize      = "w780"
	BackdropSize    = "original"
	youTubeWatchURL = "https://www.youtube.com/watch?v="
)

// Kind selects the movie or tv half of the API.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Details represents TMDB movie or tv metadata.
// Movies fill Title/ReleaseDate, tv shows fill Name/FirstAirDate.
type Details struct {
	ID              int64   `json:"id"`
	IMDBID          string  `json:"imdb_id,omitempty"` // e.g., "tt0133093", movies only
	Title           string  `json:"title,omitempty"`
	Name            string  `json:"name,omitempty"`
	Overview        string  `json:"overview"`
	ReleaseDate     string  `json:"release_date,omitempty"`   // "2024-03-01"
	FirstAirDate    string  `json:"first_air_date,omitempty"` // "2008-01-20"
	PosterPath      string  `json:"poster_path"`              // "/abc123.jpg"
	BackdropPath    string  `json:"backdrop_path"`
	VoteAverage     float64 `json:"vote_average"`
	VoteCount       int     `json:"vote_count"`
	Runtime         int     `json:"runtime,omitempty"` // minutes
	NumberOfSeasons int     `json:"number_of_seasons,omitempty"`
	Genres          []Genre `json:"genres"`
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DisplayTitle returns Title for movies and Name for tv shows.
func (d *Details) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// Year extracts the year from ReleaseDate, falling back to FirstAirDate.
func (d *Details) Year() (int, bool) {
	date := d.ReleaseDate
	if date == "" {
		date = d.FirstAirDate
	}
	return yearOf(date)
}

// GenreNames flattens Genres into names, preserving order.
func (d *Details) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (d *Details) PosterURL(size string) string {
	return imageURL(size, d.PosterPath)
}

// BackdropURL returns the full backdrop image URL.
// Size can be: w300, w780, w1280, original
func (d *Details) BackdropURL(size string) string {
	return imageURL(size, d.BackdropPath)
}

// Video is an entry of the /videos list.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"` // "YouTube", "Vimeo"
	Type     string `json:"type"` // "Trailer", "Teaser", "Featurette", ...
	Official bool   `json:"official"`
}

// WatchURL returns the YouTube watch URL for the video.
func (v *Video) WatchURL() string {
	return youTubeWatchURL + v.Key
}

func (v *Video) isYouTubeTrailer() bool {
	return v.Type == "Trailer" && v.Site == "YouTube" && v.Key != ""
}

// SelectTrailer picks the first official YouTube trailer, else the first
// YouTube trailer of any kind. It returns nil when there is none.
func SelectTrailer(videos []Video) *Video {
	for i := range videos {
		if videos[i].isYouTubeTrailer() && videos[i].Official {
			return &videos[i]
		}
	}
	for i := range videos {
		if videos[i].isYouTubeTrailer() {
			return &videos[i]
		}
	}
	return nil
}

// SearchResult is one hit of /search or /find.
type SearchResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// DisplayTitle returns Title for movies and Name for tv shows.
func (r *SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// FindResult is the /find response for an external id.
type FindResult struct {
	MovieResults []SearchResult `json:"movie_results"`
	TVResults    []SearchResult `json:"tv_results"`
}

// First returns the first movie match, else the first tv match.
func (f *FindResult) First() (int64, Kind, bool) {
	if len(f.MovieResults) > 0 {
		return f.MovieResults[0].ID, KindMovie, true
	}
	if len(f.TVResults) > 0 {
		return f.TVResults[0].ID, KindTV, true
	}
	return 0, "", false
}

// ExternalIDs is the /external_ids response.
type ExternalIDs struct {
	IMDBID string `json:"imdb_id"`
	TVDBID int64  `json:"tvdb_id"`
}

type videosResponse struct {
	Results []Video `json:"results"`
}

type searchResponse struct {
	Page    int            `json:"page"`
	Results []SearchResult `json:"results"`
}

func imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}

func yearOf(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
