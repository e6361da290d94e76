package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smdrama/moviefetch/internal/movie"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printDetails writes the record as an aligned key/value block. Absent
// values are shown as "-".
func printDetails(w io.Writer, d *movie.Details) {
	row := func(k, v string) {
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(w, "  %-16s %s\n", k+":", v)
	}

	fmt.Fprintf(w, "%s\n", d.Title)
	row("Type", string(d.Type))
	row("Year", intOrEmpty(d.Year))
	if d.Type == movie.TypeSeries {
		row("Seasons", intOrEmpty(d.Seasons))
	}
	row("Genre", strings.Join(d.Genre, ", "))
	row("IMDb", floatOrEmpty(d.IMDbRating))
	row("TMDB", floatOrEmpty(d.TMDBRating))
	if d.RottenTomatoesRating != nil {
		row("Rotten Tomatoes", strconv.Itoa(*d.RottenTomatoesRating)+"%")
	}
	row("Metacritic", floatOrEmpty(d.MetacriticRating))
	row("Poster", d.PosterURL)
	row("Trailer", d.TrailerURL)
	if d.BackdropURL != "" {
		row("Backdrop", d.BackdropURL)
	}
	row("Tags", strings.Join(d.Tags, ", "))
	if d.Description != "" {
		fmt.Fprintf(w, "\n%s\n", wrap(d.Description, 76, "  "))
	}
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// wrap breaks s into lines of at most width runes, each prefixed by indent.
func wrap(s string, width int, indent string) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, indent+line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, indent+line.String())
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max]) + "..."
	}
	return s
}
