// Package source recognizes catalogue URLs and cleans the titles derived from them.
package source

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies the provider a URL belongs to.
type Kind string

const (
	IMDb        Kind = "imdb"
	TMDBMovie   Kind = "tmdb_movie"
	TMDBTV      Kind = "tmdb_tv"
	MyDramaList Kind = "mydramalist"
	HanCinema   Kind = "hancinema"
	AsianWiki   Kind = "asianwiki"
	NamuWiki    Kind = "namuwiki"
)

// Heuristic reports whether the kind has no queryable API and must be
// resolved from the URL itself.
func (k Kind) Heuristic() bool {
	switch k {
	case MyDramaList, HanCinema, AsianWiki, NamuWiki:
		return true
	}
	return false
}

// DisplayName is the site name used in generated descriptions.
func (k Kind) DisplayName() string {
	switch k {
	case IMDb:
		return "IMDb"
	case TMDBMovie, TMDBTV:
		return "TMDB"
	case MyDramaList:
		return "MyDramaList"
	case HanCinema:
		return "HanCinema"
	case AsianWiki:
		return "AsianWiki"
	case NamuWiki:
		return "NamuWiki"
	}
	return string(k)
}

// Target is a recognized URL.
// Title is only set for heuristic kinds, where it is derived from the path.
type Target struct {
	Source Kind
	ID     string
	Title  string
}

// Key is a stable identifier for caching and logging, e.g. "imdb:tt0111161".
func (t Target) Key() string {
	return string(t.Source) + ":" + t.ID
}

type pattern struct {
	kind  Kind
	re    *regexp.Regexp
	title func(m []string) string
}

// Patterns are host-distinct, so the first match wins.
var patterns = []pattern{
	{kind: IMDb, re: regexp.MustCompile(`imdb\.com/title/(tt\d+)`)},
	{kind: TMDBMovie, re: regexp.MustCompile(`themoviedb\.org/movie/(\d+)`)},
	{kind: TMDBTV, re: regexp.MustCompile(`themoviedb\.org/tv/(\d+)`)},
	{
		kind: MyDramaList,
		re:   regexp.MustCompile(`mydramalist\.com/(\d+)-([^/?#]+)`),
		title: func(m []string) string {
			return strings.ReplaceAll(m[2], "-", " ")
		},
	},
	{
		kind:  HanCinema,
		re:    regexp.MustCompile(`hancinema\.net/([^?#]+)`),
		title: func(m []string) string { return hanCinemaTitle(m[1]) },
	},
	{
		kind:  AsianWiki,
		re:    regexp.MustCompile(`asianwiki\.com/([^?#]+)`),
		title: func(m []string) string { return spaceSeparators(m[1]) },
	},
	{
		kind:  NamuWiki,
		re:    regexp.MustCompile(`namu\.wiki/w/([^?#]+)`),
		title: func(m []string) string { return namuWikiTitle(m[1]) },
	},
}

// Parse classifies raw into a Target. It returns false when no known
// provider pattern matches; it never touches the network.
func Parse(raw string) (Target, bool) {
	raw = strings.TrimSpace(raw)
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		t := Target{Source: p.kind, ID: m[1]}
		if p.title != nil {
			t.Title = p.title(m)
		}
		return t, true
	}
	return Target{}, false
}

func spaceSeparators(s string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}

func hanCinemaTitle(path string) string {
	s := strings.TrimPrefix(path, "korean_drama_")
	s = strings.TrimPrefix(s, "korean_movie_")
	s = strings.TrimSuffix(s, ".php")
	return spaceSeparators(s)
}

func namuWikiTitle(path string) string {
	s := path
	if decoded, err := url.PathUnescape(path); err == nil {
		s = decoded
	}
	s = strings.ReplaceAll(s, "%20", " ")
	return norm.NFC.String(s)
}
