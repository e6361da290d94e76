package metadata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/smdrama/moviefetch/internal/asianwiki"
	"github.com/smdrama/moviefetch/internal/metadata/mocks"
	"github.com/smdrama/moviefetch/internal/movie"
	"github.com/smdrama/moviefetch/internal/tmdb"
	"github.com/smdrama/moviefetch/pkg/omdb"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

type recordedOutcome struct {
	source, outcome string
}

type fakeRecorder struct {
	mu   sync.Mutex
	seen []recordedOutcome
}

func (f *fakeRecorder) ObserveResolution(source, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, recordedOutcome{source, outcome})
}

func shawshankTitle() *omdb.Title {
	return &omdb.Title{
		Response:   "True",
		Title:      "The Shawshank Redemption",
		Year:       "1994",
		Genre:      "Drama",
		Plot:       "Two imprisoned men bond over a number of years.",
		Poster:     "https://m.media-amazon.com/images/poster.jpg",
		IMDbRating: "9.3",
		Metascore:  "82",
		Ratings: []omdb.Rating{
			{Source: omdb.SourceIMDb, Value: "9.3/10"},
			{Source: omdb.SourceRottenTomatoes, Value: "89%"},
		},
		Type: "movie",
	}
}

func TestResolve_InvalidURL_NoNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No EXPECT calls: any provider call fails the test.
	rec := &fakeRecorder{}
	r := New(Options{
		OMDb:    mocks.NewMockOMDbAPI(ctrl),
		TMDB:    mocks.NewMockTMDBAPI(ctrl),
		Metrics: rec,
		Logger:  testLogger(),
	})

	d, err := r.Resolve(context.Background(), "not a url at all")
	assert.Nil(t, d)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidURL)

	var invalid *InvalidURLError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "not a url at all", invalid.URL)
	assert.Equal(t, []recordedOutcome{{"unknown", OutcomeInvalid}}, rec.seen)
}

func TestResolve_IMDb_Uncredentialed_Fixture(t *testing.T) {
	r := New(Options{UseFixturesWhenUncredentialed: true, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0111161/")
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption", d.Title)
	require.NotNil(t, d.Year)
	assert.Equal(t, 1994, *d.Year)
	assert.Equal(t, []string{"Drama"}, d.Genre)
	require.NotNil(t, d.IMDbRating)
	assert.InDelta(t, 9.3, *d.IMDbRating, 0.001)
	assert.Equal(t, movie.TypeMovie, d.Type)
}

func TestResolve_IMDb_Fixture_Idempotent(t *testing.T) {
	r := New(Options{UseFixturesWhenUncredentialed: true})
	ctx := context.Background()

	first, err := r.Resolve(ctx, "https://www.imdb.com/title/tt0903747/")
	require.NoError(t, err)
	first.Title = "mutated"
	first.Genre[0] = "mutated"

	second, err := r.Resolve(ctx, "https://www.imdb.com/title/tt0903747/")
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", second.Title)
	assert.Equal(t, []string{"Crime", "Drama", "Thriller"}, second.Genre)
	require.NotNil(t, second.Seasons)
	assert.Equal(t, 5, *second.Seasons)
}

func TestResolve_IMDb_Uncredentialed_Placeholder(t *testing.T) {
	r := New(Options{UseFixturesWhenUncredentialed: true})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt1234567/")
	require.NoError(t, err)
	assert.Equal(t, "Sample Movie tt1234567", d.Title)
	assert.Equal(t, movie.TypeMovie, d.Type)
	assert.Nil(t, d.Seasons)
}

func TestResolve_IMDb_Uncredentialed_FixturesDisabled(t *testing.T) {
	rec := &fakeRecorder{}
	r := New(Options{Metrics: rec})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0111161/")
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, []recordedOutcome{{"imdb", OutcomeEmpty}}, rec.seen)
}

func TestResolve_IMDb_Live(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt0111161").Return(shawshankTitle(), nil)

	r := New(Options{OMDb: omdbAPI, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0111161/?ref_=nv")
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption", d.Title)
	assert.Equal(t, []string{"drama"}, d.Tags)
	require.NotNil(t, d.RottenTomatoesRating)
	assert.Equal(t, 89, *d.RottenTomatoesRating)
	require.NotNil(t, d.MetacriticRating)
	assert.InDelta(t, 82.0, *d.MetacriticRating, 0.001)
	assert.Equal(t, "https://m.media-amazon.com/images/poster.jpg", d.PosterURL)
	assert.Empty(t, d.TrailerURL, "no TMDB client, no trailer backfill")
}

func TestResolve_IMDb_NoRottenTomatoes_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	title := shawshankTitle()
	title.Ratings = []omdb.Rating{{Source: omdb.SourceIMDb, Value: "9.3/10"}}
	title.IMDbRating = omdb.NotAvailable
	title.Poster = omdb.NotAvailable

	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt0111161").Return(title, nil)

	r := New(Options{OMDb: omdbAPI})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0111161/")
	require.NoError(t, err)
	assert.Nil(t, d.RottenTomatoesRating)
	assert.Nil(t, d.IMDbRating, "N/A rating is absent, not zero")
	assert.Empty(t, d.PosterURL)
}

func TestResolve_IMDb_NotFound_IsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt7654321").
		Return(nil, omdb.ErrNotFound)

	r := New(Options{OMDb: omdbAPI, UseFixturesWhenUncredentialed: true, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt7654321/")
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestResolve_IMDb_LiveFailure_DemoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt0903747").
		Return(nil, errors.New("connection refused"))

	r := New(Options{OMDb: omdbAPI, UseFixturesWhenUncredentialed: true, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0903747/")
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", d.Title)
}

func TestResolve_IMDb_TrailerBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	omdbAPI.EXPECT().Title(gomock.Any(), "tt0111161").Return(shawshankTitle(), nil)
	gomock.InOrder(
		tmdbAPI.EXPECT().FindByIMDbID(gomock.Any(), "tt0111161").
			Return(&tmdb.FindResult{MovieResults: []tmdb.SearchResult{{ID: 278}}}, nil),
		tmdbAPI.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, int64(278)).
			Return([]tmdb.Video{
				{Key: "fan", Site: "YouTube", Type: "Trailer"},
				{Key: "NmzuHjWmXOc", Site: "YouTube", Type: "Trailer", Official: true},
			}, nil),
	)

	r := New(Options{OMDb: omdbAPI, TMDB: tmdbAPI, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0111161/")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=NmzuHjWmXOc", d.TrailerURL)
}

func TestResolve_IMDb_TrailerBackfillFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	omdbAPI.EXPECT().Title(gomock.Any(), "tt0111161").Return(shawshankTitle(), nil)
	tmdbAPI.EXPECT().FindByIMDbID(gomock.Any(), "tt0111161").
		Return(nil, errors.New("TMDB API error: 503 Service Unavailable"))

	r := New(Options{OMDb: omdbAPI, TMDB: tmdbAPI, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0111161/")
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption", d.Title)
	assert.Empty(t, d.TrailerURL)
}

func TestResolve_TMDBTV_Live_WithRatingBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	gomock.InOrder(
		tmdbAPI.EXPECT().Details(gomock.Any(), tmdb.KindTV, int64(1396)).
			Return(&tmdb.Details{
				ID:              1396,
				Name:            "Breaking Bad",
				Overview:        "A chemistry teacher...",
				FirstAirDate:    "2008-01-20",
				PosterPath:      "/poster.jpg",
				BackdropPath:    "/backdrop.jpg",
				VoteAverage:     8.9,
				VoteCount:       13000,
				NumberOfSeasons: 5,
				Genres:          []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 80, Name: "Crime"}},
			}, nil),
		tmdbAPI.EXPECT().Videos(gomock.Any(), tmdb.KindTV, int64(1396)).
			Return([]tmdb.Video{{Key: "HhesaQXLuRY", Site: "YouTube", Type: "Trailer"}}, nil),
		tmdbAPI.EXPECT().ExternalIDs(gomock.Any(), tmdb.KindTV, int64(1396)).
			Return(&tmdb.ExternalIDs{IMDBID: "tt0903747"}, nil),
		omdbAPI.EXPECT().Title(gomock.Any(), "tt0903747").
			Return(&omdb.Title{Response: "True", Title: "Breaking Bad", IMDbRating: "9.5"}, nil),
	)

	r := New(Options{OMDb: omdbAPI, TMDB: tmdbAPI, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.themoviedb.org/tv/1396-breaking-bad")
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", d.Title)
	assert.Equal(t, movie.TypeSeries, d.Type)
	require.NotNil(t, d.Seasons)
	assert.Equal(t, 5, *d.Seasons)
	require.NotNil(t, d.Year)
	assert.Equal(t, 2008, *d.Year)
	assert.Equal(t, []string{"Drama", "Crime"}, d.Genre)
	assert.Equal(t, []string{"drama", "crime"}, d.Tags)
	require.NotNil(t, d.TMDBRating)
	assert.InDelta(t, 8.9, *d.TMDBRating, 0.001)
	require.NotNil(t, d.IMDbRating)
	assert.InDelta(t, 9.5, *d.IMDbRating, 0.001)
	assert.Equal(t, "https://image.tmdb.org/t/p/w780/poster.jpg", d.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", d.BackdropURL)
	assert.Equal(t, "https://www.youtube.com/watch?v=HhesaQXLuRY", d.TrailerURL)
}

func TestResolve_TMDBMovie_NoTrailer_Unrated(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	tmdbAPI.EXPECT().Details(gomock.Any(), tmdb.KindMovie, int64(42)).
		Return(&tmdb.Details{ID: 42, Title: "Obscure Short", ReleaseDate: "2021-05-01"}, nil)
	tmdbAPI.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, int64(42)).
		Return([]tmdb.Video{{Key: "clip", Site: "YouTube", Type: "Clip"}}, nil)

	// No OMDb client: the rating backfill is skipped without calling ExternalIDs.
	r := New(Options{TMDB: tmdbAPI})

	d, err := r.Resolve(context.Background(), "https://www.themoviedb.org/movie/42")
	require.NoError(t, err)
	assert.Equal(t, movie.TypeMovie, d.Type)
	assert.Empty(t, d.TrailerURL)
	assert.Nil(t, d.TMDBRating, "0 average with 0 votes is unrated")
	assert.Nil(t, d.Seasons)
	assert.Equal(t, []string{}, d.Genre)
}

func TestResolve_TMDB_VideosFailureKeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	tmdbAPI.EXPECT().Details(gomock.Any(), tmdb.KindMovie, int64(550)).
		Return(&tmdb.Details{ID: 550, Title: "Fight Club", VoteAverage: 8.4, VoteCount: 30000}, nil)
	tmdbAPI.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, int64(550)).
		Return(nil, errors.New("decode response: unexpected EOF"))

	r := New(Options{TMDB: tmdbAPI, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://www.themoviedb.org/movie/550")
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", d.Title)
	assert.Empty(t, d.TrailerURL)
}

func TestResolve_TMDB_NotFound_IsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)
	tmdbAPI.EXPECT().Details(gomock.Any(), tmdb.KindMovie, int64(99999999)).
		Return(nil, tmdb.ErrNotFound)

	r := New(Options{TMDB: tmdbAPI, UseFixturesWhenUncredentialed: true})

	_, err := r.Resolve(context.Background(), "https://www.themoviedb.org/movie/99999999")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestResolve_TMDB_Uncredentialed_PlaceholderByKind(t *testing.T) {
	r := New(Options{UseFixturesWhenUncredentialed: true})

	d, err := r.Resolve(context.Background(), "https://www.themoviedb.org/tv/1396")
	require.NoError(t, err)
	assert.Equal(t, "Sample Movie 1396", d.Title)
	assert.Equal(t, movie.TypeSeries, d.Type)
	require.NotNil(t, d.Seasons)
	assert.Equal(t, 3, *d.Seasons)
}

func TestResolve_ContextCanceled_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	omdbAPI.EXPECT().Title(gomock.Any(), "tt0111161").
		DoAndReturn(func(ctx context.Context, _ string) (*omdb.Title, error) {
			cancel()
			return nil, ctx.Err()
		})

	rec := &fakeRecorder{}
	r := New(Options{OMDb: omdbAPI, UseFixturesWhenUncredentialed: true, Metrics: rec})

	d, err := r.Resolve(ctx, "https://www.imdb.com/title/tt0111161/")
	assert.Nil(t, d)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []recordedOutcome{{"imdb", OutcomeFailed}}, rec.seen)
}

func TestResolve_InvalidAdapterOutput_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt0000001").
		Return(&omdb.Title{Response: "True", Title: "  "}, nil)

	r := New(Options{OMDb: omdbAPI})

	_, err := r.Resolve(context.Background(), "https://www.imdb.com/title/tt0000001/")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "empty title")
}

func TestResolve_Heuristic_NoTMDB(t *testing.T) {
	r := New(Options{UseFixturesWhenUncredentialed: true, Now: fixedNow})

	d, err := r.Resolve(context.Background(), "https://mydramalist.com/12345-some-drama-title")
	require.NoError(t, err)
	assert.Equal(t, "Some Drama Title", d.Title)
	assert.Equal(t, movie.TypeSeries, d.Type)
	assert.Contains(t, d.Genre, "Drama")
	assert.Contains(t, d.Genre, "Romance")
	assert.Equal(t, []string{"drama", "romance"}, d.Tags)
	require.NotNil(t, d.Year)
	assert.Equal(t, 2025, *d.Year)
	assert.Equal(t, "Some Drama Title is a drama catalogued on MyDramaList.", d.Description)
}

func TestResolve_Heuristic_HanCinemaBaseline(t *testing.T) {
	r := New(Options{Now: fixedNow})

	d, err := r.Resolve(context.Background(), "https://www.hancinema.net/korean_drama_Crash_Landing_on_You.php")
	require.NoError(t, err)
	assert.Equal(t, "Crash Landing On You", d.Title)
	assert.Equal(t, []string{"Drama", "Korean"}, d.Genre)
}

func TestResolve_Heuristic_SearchEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	gomock.InOrder(
		tmdbAPI.EXPECT().Search(gomock.Any(), tmdb.KindTV, "Crash Landing On You").
			Return([]tmdb.SearchResult{{ID: 94796, Name: "Crash Landing on You"}, {ID: 1, Name: "Other"}}, nil),
		tmdbAPI.EXPECT().Details(gomock.Any(), tmdb.KindTV, int64(94796)).
			Return(&tmdb.Details{
				ID:              94796,
				Name:            "Crash Landing on You",
				Overview:        "A paragliding mishap drops a South Korean heiress in North Korea.",
				FirstAirDate:    "2019-12-14",
				VoteAverage:     8.7,
				VoteCount:       2000,
				NumberOfSeasons: 1,
				Genres:          []tmdb.Genre{{Name: "Comedy"}, {Name: "Drama"}},
			}, nil),
		tmdbAPI.EXPECT().Videos(gomock.Any(), tmdb.KindTV, int64(94796)).Return(nil, nil),
	)

	r := New(Options{TMDB: tmdbAPI, Now: fixedNow, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://mydramalist.com/34567-crash-landing-on-you")
	require.NoError(t, err)
	assert.Equal(t, "Crash Landing On You", d.Title, "heuristic title is kept")
	assert.Equal(t, "A paragliding mishap drops a South Korean heiress in North Korea.", d.Description)
	require.NotNil(t, d.Year)
	assert.Equal(t, 2019, *d.Year)
	assert.Equal(t, []string{"Comedy", "Drama", "Romance"}, d.Genre)
	assert.Equal(t, []string{"comedy", "drama", "romance"}, d.Tags)
	require.NotNil(t, d.TMDBRating)
	assert.InDelta(t, 8.7, *d.TMDBRating, 0.001)
}

func TestResolve_Heuristic_SearchFailureKeepsBaseline(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)
	tmdbAPI.EXPECT().Search(gomock.Any(), tmdb.KindTV, gomock.Any()).
		Return(nil, errors.New("execute request: timeout"))

	r := New(Options{TMDB: tmdbAPI, Now: fixedNow, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://namu.wiki/w/%EC%82%AC%EB%9E%91%EC%9D%98%20%EB%B6%88%EC%8B%9C%EC%B0%A9")
	require.NoError(t, err)
	assert.Equal(t, "사랑의 불시착", d.Title)
	assert.Equal(t, []string{"Drama", "Korean"}, d.Genre)
	assert.Equal(t, "사랑의 불시착 is a drama catalogued on NamuWiki.", d.Description)
}

func TestResolve_Heuristic_NoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)
	tmdbAPI.EXPECT().Search(gomock.Any(), tmdb.KindTV, "Unknown Show").Return(nil, nil)

	r := New(Options{TMDB: tmdbAPI, Now: fixedNow})

	d, err := r.Resolve(context.Background(), "https://asianwiki.com/Unknown_Show")
	require.NoError(t, err)
	assert.Equal(t, []string{"Drama", "Asian"}, d.Genre)
}

func TestResolve_AsianWiki_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	wiki := mocks.NewMockAsianWikiAPI(ctrl)
	wiki.EXPECT().Lookup(gomock.Any(), "https://asianwiki.com/Queen_of_Tears").
		Return(&asianwiki.Page{
			Title:    "Queen of Tears",
			Year:     2024,
			Genre:    []string{"Romance", "Comedy"},
			Synopsis: "Hong Hae-In is the queen of department stores.",
			Poster:   "https://asianwiki.com/images/Queen_of_Tears-p1.jpg",
			Cast: []string{
				"Kim Soo-Hyun as Baek Hyun-Woo",
				"Kim Ji-Won as Hong Hae-In",
				"Park Sung-Hoon as Yoon Eun-Sung",
				"Kwak Dong-Yeon as Hong Su-Cheol",
				"Lee Joo-Bin as Cheon Da-Hye",
				"Lee Mi-Sook as Mo Seul-Hee",
			},
		}, nil)

	r := New(Options{AsianWiki: wiki, Now: fixedNow})

	d, err := r.Resolve(context.Background(), "https://asianwiki.com/Queen_of_Tears")
	require.NoError(t, err)
	assert.Equal(t, "Queen of Tears", d.Title)
	assert.Equal(t, movie.TypeSeries, d.Type, "more than five cast entries")
	require.NotNil(t, d.Year)
	assert.Equal(t, 2024, *d.Year)
	assert.Equal(t, "kim soo-hyun", d.Tags[0])
	assert.Len(t, d.Tags, 6)
	assert.Equal(t, "https://asianwiki.com/images/Queen_of_Tears-p1.jpg", d.PosterURL)
}

func TestResolve_AsianWiki_FailureFallsBackToHeuristic(t *testing.T) {
	ctrl := gomock.NewController(t)
	wiki := mocks.NewMockAsianWikiAPI(ctrl)
	wiki.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, asianwiki.ErrNotFound)

	r := New(Options{AsianWiki: wiki, Now: fixedNow, Logger: testLogger()})

	d, err := r.Resolve(context.Background(), "https://asianwiki.com/Some_Film")
	require.NoError(t, err)
	assert.Equal(t, "Some Film", d.Title)
	assert.Equal(t, movie.TypeSeries, d.Type)
}

func TestResolve_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt0111161").Return(shawshankTitle(), nil).Times(1)

	rec := &fakeRecorder{}
	r := New(Options{OMDb: omdbAPI, Cache: NewMemCache(), CacheTTL: time.Hour, Metrics: rec})
	ctx := context.Background()

	first, err := r.Resolve(ctx, "https://www.imdb.com/title/tt0111161/")
	require.NoError(t, err)
	second, err := r.Resolve(ctx, "https://imdb.com/title/tt0111161/reviews")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []recordedOutcome{
		{"imdb", OutcomeResolved},
		{"imdb", OutcomeCached},
	}, rec.seen)
}

func TestResolve_EmptyNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	omdbAPI := mocks.NewMockOMDbAPI(ctrl)
	omdbAPI.EXPECT().Title(gomock.Any(), "tt7654321").Return(nil, omdb.ErrNotFound).Times(2)

	r := New(Options{OMDb: omdbAPI, Cache: NewMemCache()})
	ctx := context.Background()

	for range 2 {
		_, err := r.Resolve(ctx, "https://www.imdb.com/title/tt7654321/")
		assert.ErrorIs(t, err, ErrNoData)
	}
}

func TestSearch_Uncredentialed_Fixtures(t *testing.T) {
	r := New(Options{UseFixturesWhenUncredentialed: true})

	results, err := r.Search(context.Background(), "anything", movie.TypeSeries)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Sample Movie search1", results[0].Details.Title)
	assert.Equal(t, "Sample Movie search2", results[1].Details.Title)
	assert.Equal(t, movie.TypeSeries, results[0].Details.Type)
}

func TestSearch_Uncredentialed_NoFixtures(t *testing.T) {
	r := New(Options{})

	results, err := r.Search(context.Background(), "anything", movie.TypeMovie)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_Live_FirstFive(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)

	candidates := make([]tmdb.SearchResult, 0, 7)
	for i := int64(1); i <= 7; i++ {
		candidates = append(candidates, tmdb.SearchResult{ID: i, Title: "Alien"})
	}
	tmdbAPI.EXPECT().Search(gomock.Any(), tmdb.KindMovie, "Alien").Return(candidates, nil)
	tmdbAPI.EXPECT().Details(gomock.Any(), tmdb.KindMovie, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ tmdb.Kind, id int64) (*tmdb.Details, error) {
			if id == 3 {
				return nil, tmdb.ErrNotFound
			}
			return &tmdb.Details{ID: id, Title: "Alien"}, nil
		}).Times(5)
	tmdbAPI.EXPECT().Videos(gomock.Any(), tmdb.KindMovie, gomock.Any()).Return(nil, nil).Times(4)

	r := New(Options{TMDB: tmdbAPI, Logger: testLogger()})

	results, err := r.Search(context.Background(), "Alien", movie.TypeMovie)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, int64(1), results[0].TMDBID)
	assert.Equal(t, int64(5), results[3].TMDBID)
	assert.InDelta(t, 1.0, results[0].Score, 0.001)
}

func TestSearch_Live_Error_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmdbAPI := mocks.NewMockTMDBAPI(ctrl)
	tmdbAPI.EXPECT().Search(gomock.Any(), tmdb.KindTV, "x").Return(nil, tmdb.ErrUnauthorized)

	r := New(Options{TMDB: tmdbAPI, UseFixturesWhenUncredentialed: true})

	results, err := r.Search(context.Background(), "x", movie.TypeSeries)
	require.NoError(t, err)
	assert.Empty(t, results)
}
