package omdb

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

const defaultBaseURL = "https://www.omdbapi.com"

// Sentinel errors for OMDb API responses.
var (
	ErrNotFound     = errors.New("title not found")
	ErrUnauthorized = errors.New("unauthorized: invalid OMDb API key")
	ErrRateLimited  = errors.New("rate limited: daily request limit reached")
)

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
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

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "omdb")
	}
}

// New creates a new OMDb client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Title looks up a title by IMDb ID with the full plot.
// A "Response": "False" payload is reported as ErrNotFound.
func (c *Client) Title(ctx context.Context, imdbID string) (*Title, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("i", imdbID)
	q.Set("plot", "full")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	var title Title
	if err := json.NewDecoder(resp.Body).Decode(&title); err != nil {
		return nil, fmt.Errorf("decode title response: %w", err)
	}

	if title.Response == "False" {
		if c.log != nil {
			c.log.Debug("title not found", "imdb_id", imdbID, "error", title.Error)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, title.Error)
	}

	if c.log != nil {
		c.log.Debug("fetched title", "imdb_id", imdbID, "title", title.Title, "duration_ms", time.Since(start).Milliseconds())
	}

	return &title, nil
}

// checkResponse maps HTTP status codes onto sentinel errors.
func checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("OMDb API error: %s", resp.Status)
	}
}
