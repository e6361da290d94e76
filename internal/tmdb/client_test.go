package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTMDB creates a test server that routes by path and 404s everything else.
func mockTMDB(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		if handler, ok := handlers[r.URL.Path]; ok {
			handler(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("test: failed to encode JSON: " + err.Error())
	}
}

func TestClient_Details_Movie(t *testing.T) {
	server := mockTMDB(t, map[string]http.HandlerFunc{
		"/3/movie/550": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "en-US", r.URL.Query().Get("language"))
			writeJSON(w, Details{
				ID:          550,
				Title:       "Fight Club",
				Overview:    "A ticking-time-bomb insomniac...",
				ReleaseDate: "1999-10-15",
				PosterPath:  "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
				VoteAverage: 8.4,
				Runtime:     139,
				Genres:      []Genre{{ID: 18, Name: "Drama"}},
			})
		},
	})

	client := NewClient("test-key", WithBaseURL(server.URL))

	d, err := client.Details(context.Background(), KindMovie, 550)
	require.NoError(t, err)
	assert.Equal(t, int64(550), d.ID)
	assert.Equal(t, "Fight Club", d.DisplayTitle())
	year, ok := d.Year()
	require.True(t, ok)
	assert.Equal(t, 1999, year)
	assert.Equal(t, []string{"Drama"}, d.GenreNames())
	assert.Equal(t, "https://image.tmdb.org/t/p/w780/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg", d.PosterURL(PosterSize))
	assert.Empty(t, d.BackdropURL(BackdropSize))
}

func TestClient_Details_TV(t *testing.T) {
	server := mockTMDB(t, map[string]http.HandlerFunc{
		"/3/tv/1396": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, map[string]any{
				"id":                1396,
				"name":              "Breaking Bad",
				"first_air_date":    "2008-01-20",
				"number_of_seasons": 5,
				"backdrop_path":     "/tsRy63Mu5cu8etL1X7ZLyf7UP1M.jpg",
			})
		},
	})

	client := NewClient("test-key", WithBaseURL(server.URL))

	d, err := client.Details(context.Background(), KindTV, 1396)
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", d.DisplayTitle())
	year, ok := d.Year()
	require.True(t, ok)
	assert.Equal(t, 2008, year)
	assert.Equal(t, 5, d.NumberOfSeasons)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/tsRy63Mu5cu8etL1X7ZLyf7UP1M.jpg", d.BackdropURL(BackdropSize))
}

func TestClient_Details_NotFound(t *testing.T) {
	server := mockTMDB(t, nil)
	client := NewClient("test-key", WithBaseURL(server.URL))

	d, err := client.Details(context.Background(), KindMovie, 99999999)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))
	_, err := client.Videos(context.Background(), KindMovie, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_Videos(t *testing.T) {
	server := mockTMDB(t, map[string]http.HandlerFunc{
		"/3/tv/1396/videos": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, videosResponse{Results: []Video{
				{Key: "abc", Site: "YouTube", Type: "Teaser"},
				{Key: "HhesaQXLuRY", Site: "YouTube", Type: "Trailer", Official: true},
			}})
		},
	})

	client := NewClient("test-key", WithBaseURL(server.URL))

	videos, err := client.Videos(context.Background(), KindTV, 1396)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=HhesaQXLuRY", SelectTrailer(videos).WatchURL())
}

func TestClient_FindByIMDbID(t *testing.T) {
	server := mockTMDB(t, map[string]http.HandlerFunc{
		"/3/find/tt0903747": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "imdb_id", r.URL.Query().Get("external_source"))
			writeJSON(w, FindResult{TVResults: []SearchResult{{ID: 1396, Name: "Breaking Bad"}}})
		},
	})

	client := NewClient("test-key", WithBaseURL(server.URL))

	f, err := client.FindByIMDbID(context.Background(), "tt0903747")
	require.NoError(t, err)
	id, kind, ok := f.First()
	require.True(t, ok)
	assert.Equal(t, int64(1396), id)
	assert.Equal(t, KindTV, kind)
}

func TestClient_ExternalIDs(t *testing.T) {
	server := mockTMDB(t, map[string]http.HandlerFunc{
		"/3/movie/278/external_ids": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, ExternalIDs{IMDBID: "tt0111161"})
		},
	})

	client := NewClient("test-key", WithBaseURL(server.URL))

	ids, err := client.ExternalIDs(context.Background(), KindMovie, 278)
	require.NoError(t, err)
	assert.Equal(t, "tt0111161", ids.IMDBID)
}

func TestClient_Search(t *testing.T) {
	server := mockTMDB(t, map[string]http.HandlerFunc{
		"/3/search/tv": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Crash Landing On You", r.URL.Query().Get("query"))
			writeJSON(w, searchResponse{Page: 1, Results: []SearchResult{
				{ID: 94796, Name: "Crash Landing on You", FirstAirDate: "2019-12-14"},
			}})
		},
	})

	client := NewClient("test-key", WithBaseURL(server.URL))

	results, err := client.Search(context.Background(), KindTV, "Crash Landing On You")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Crash Landing on You", results[0].DisplayTitle())
}
