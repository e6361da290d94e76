package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound     = errors.New("title not found")
	ErrUnauthorized = errors.New("unauthorized: invalid TMDB API key")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the response language (default en-US).
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: "en-US",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Details fetches movie or tv metadata by TMDB ID.
func (c *Client) Details(ctx context.Context, kind Kind, id int64) (*Details, error) {
	var d Details
	if err := c.get(ctx, fmt.Sprintf("/3/%s/%d", kind, id), c.langQuery(), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Videos lists trailers, teasers and clips for a title.
func (c *Client) Videos(ctx context.Context, kind Kind, id int64) ([]Video, error) {
	var resp videosResponse
	if err := c.get(ctx, fmt.Sprintf("/3/%s/%d/videos", kind, id), c.langQuery(), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// FindByIMDbID looks up TMDB titles by IMDb ID.
func (c *Client) FindByIMDbID(ctx context.Context, imdbID string) (*FindResult, error) {
	q := url.Values{}
	q.Set("external_source", "imdb_id")

	var f FindResult
	if err := c.get(ctx, "/3/find/"+url.PathEscape(imdbID), q, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ExternalIDs returns the ids other databases use for a title.
func (c *Client) ExternalIDs(ctx context.Context, kind Kind, id int64) (*ExternalIDs, error) {
	var ids ExternalIDs
	if err := c.get(ctx, fmt.Sprintf("/3/%s/%d/external_ids", kind, id), nil, &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}

// Search runs a free-text title search.
func (c *Client) Search(ctx context.Context, kind Kind, query string) ([]SearchResult, error) {
	q := c.langQuery()
	q.Set("query", query)

	var resp searchResponse
	if err := c.get(ctx, fmt.Sprintf("/3/search/%s", kind), q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) langQuery() url.Values {
	q := url.Values{}
	if c.language != "" {
		q.Set("language", c.language)
	}
	return q
}

// get performs a GET against path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	start := time.Now()

	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("tmdb request", "path", path, "duration_ms", time.Since(start).Milliseconds())
	}
	return nil
}
