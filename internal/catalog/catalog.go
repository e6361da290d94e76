// Package catalog submits resolved records to the catalogue backend.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/smdrama/moviefetch/internal/movie"
)

const defaultBaseURL = "https://smdrama.onrender.com/api"

// ErrUnauthorized is returned for bad credentials or an expired token.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
	// Details holds per-field validation messages.
	Details []string
}

func (e *APIError) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg = "validation errors: " + strings.Join(e.Details, ", ")
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("catalog API error (%d): %s", e.Status, msg)
}

// Payload is the body of POST /admin/movies, shaped like the admin form.
type Payload struct {
	Title                string   `json:"title"`
	Type                 string   `json:"type"`
	Year                 int      `json:"year"`
	Genre                []string `json:"genre"`
	Description          string   `json:"description"`
	TelegramLink         string   `json:"telegramLink"`
	PosterURL            string   `json:"posterUrl,omitempty"`
	TrailerURL           string   `json:"trailerUrl,omitempty"`
	BackdropURL          string   `json:"backdropUrl,omitempty"`
	IMDbRating           float64  `json:"imdbRating"`
	TMDBRating           float64  `json:"tmdbRating"`
	RottenTomatoesRating int      `json:"rottenTomatoesRating"`
	MetacriticRating     float64  `json:"metacriticRating"`
	Seasons              int      `json:"seasons"`
	Tags                 []string `json:"tags"`
	IsFeatured           bool     `json:"isFeatured"`
}

// PayloadFrom fills the admin form from a resolved record. Absent ratings
// become 0, an absent year becomes now's year and absent seasons become 1.
// Tags are left empty: admins pick them from a fixed list.
func PayloadFrom(d *movie.Details, now time.Time) Payload {
	p := Payload{
		Title:       strings.TrimSpace(d.Title),
		Type:        string(d.Type),
		Year:        now.Year(),
		Genre:       append([]string{}, d.Genre...),
		Description: d.Description,
		PosterURL:   strings.TrimSpace(d.PosterURL),
		TrailerURL:  strings.TrimSpace(d.TrailerURL),
		BackdropURL: strings.TrimSpace(d.BackdropURL),
		Seasons:     1,
		Tags:        []string{},
	}
	if d.Year != nil {
		p.Year = *d.Year
	}
	if d.IMDbRating != nil {
		p.IMDbRating = *d.IMDbRating
	}
	if d.TMDBRating != nil {
		p.TMDBRating = *d.TMDBRating
	}
	if d.RottenTomatoesRating != nil {
		p.RottenTomatoesRating = *d.RottenTomatoesRating
	}
	if d.MetacriticRating != nil {
		p.MetacriticRating = *d.MetacriticRating
	}
	if d.Seasons != nil && *d.Seasons > 0 {
		p.Seasons = *d.Seasons
	}
	return p
}

// Client talks to the catalogue backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "catalog")
	}
}

// New creates a catalogue client. An empty baseURL uses the public backend.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w: no token in response", ErrUnauthorized)
	}
	return resp.Token, nil
}

// CreateMovie submits p and returns the new catalogue id, if the backend
// reports one.
func (c *Client) CreateMovie(ctx context.Context, token string, p Payload) (string, error) {
	var resp struct {
		ID    string `json:"_id"`
		Movie struct {
			ID string `json:"_id"`
		} `json:"movie"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/movies", token, p, &resp); err != nil {
		return "", fmt.Errorf("create movie: %w", err)
	}
	if resp.ID != "" {
		return resp.ID, nil
	}
	return resp.Movie.ID, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.log != nil {
		c.log.Debug("catalog request", "method", method, "path", path, "status", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads {"error": "..."} or {"details": [{"msg": "..."}]};
// non-JSON bodies are kept as a collapsed, truncated message.
func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{Status: resp.StatusCode}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details []struct {
			Msg string `json:"msg"`
		} `json:"details"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Error
		if apiErr.Message == "" {
			apiErr.Message = parsed.Message
		}
		for _, d := range parsed.Details {
			apiErr.Details = append(apiErr.Details, d.Msg)
		}
		return apiErr
	}

	msg := strings.Join(strings.Fields(string(body)), " ")
	if len(msg) > 1000 {
		msg = msg[:1000]
	}
	apiErr.Message = msg
	return apiErr
}
