// Package asianwiki fetches drama/movie profiles from AsianWiki, either through
// a JSON proxy endpoint or by scraping the page directly.
package asianwiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultSiteURL = "https://asianwiki.com"

// ErrNotFound is returned when the page does not exist or carries no title.
var ErrNotFound = errors.New("asianwiki page not found")

// Page is the profile data extracted from an AsianWiki page.
type Page struct {
	Title      string   `json:"title"`
	Year       int      `json:"year,omitempty"`
	Genre      []string `json:"genre"`
	Synopsis   string   `json:"synopsis"`
	Poster     string   `json:"poster,omitempty"`
	TrailerURL string   `json:"trailerUrl,omitempty"`
	Backdrop   string   `json:"backdrop,omitempty"`
	Cast       []string `json:"cast"`
	Episodes   int      `json:"episodes,omitempty"`
}

// PageURL builds the canonical page URL for a wiki path such as "Queen_of_Tears".
func PageURL(path string) string {
	return defaultSiteURL + "/" + strings.TrimLeft(path, "/")
}

// ProxyClient asks a backend proxy to fetch and parse the page.
// The proxy answers GET <endpoint>?url=<page url> with a JSON profile.
type ProxyClient struct {
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProxyClient creates a proxy client for endpoint.
func NewProxyClient(endpoint string, hc *http.Client, log *slog.Logger) *ProxyClient {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &ProxyClient{endpoint: endpoint, httpClient: hc, log: log.With("component", "asianwiki-proxy")}
}

// proxyPage mirrors the proxy payload, which is looser than Page: the year may
// be a string or a number and the poster comes under several names.
type proxyPage struct {
	Title       string    `json:"title"`
	Year        looseYear `json:"year"`
	Genre       []string  `json:"genre"`
	Synopsis    string    `json:"synopsis"`
	Description string    `json:"description"`
	Poster      string    `json:"poster"`
	Image       string    `json:"image"`
	Cover       string    `json:"cover"`
	TrailerURL  string    `json:"trailerUrl"`
	Backdrop    string    `json:"backdrop"`
	Cast        []string  `json:"cast"`
}

// Lookup fetches the profile for pageURL through the proxy.
func (c *ProxyClient) Lookup(ctx context.Context, pageURL string) (*Page, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse proxy endpoint: %w", err)
	}
	q := u.Query()
	q.Set("url", pageURL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asianwiki proxy error: %s", resp.Status)
	}

	var p proxyPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode proxy response: %w", err)
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrNotFound
	}

	page := &Page{
		Title:      strings.TrimSpace(p.Title),
		Genre:      p.Genre,
		Synopsis:   firstNonEmpty(p.Synopsis, p.Description),
		Poster:     firstNonEmpty(p.Poster, p.Image, p.Cover),
		TrailerURL: p.TrailerURL,
		Backdrop:   p.Backdrop,
		Cast:       p.Cast,
		Year:       int(p.Year),
	}

	c.log.Debug("proxy lookup", "url", pageURL, "title", page.Title)
	return page, nil
}

// looseYear accepts 2024, "2024" or "2024-2025"; anything else is zero.
type looseYear int

func (y *looseYear) UnmarshalJSON(b []byte) error {
	*y = looseYear(firstYear(strings.Trim(string(b), `"`)))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
