package asianwiki

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "moviefetch/1.0 (+https://github.com/smdrama/moviefetch)"

// maxPageBytes caps how much of a page is read; the profile sits near the top.
var maxPageBytes int64 = 4 << 20

var (
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	youTubeEmbedID = regexp.MustCompile(`youtube(?:-nocookie)?\.com/embed/([A-Za-z0-9_-]+)`)
)

// Scraper fetches AsianWiki pages and parses them with goquery.
type Scraper struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithSiteURL points the scraper at another host (for testing).
func WithSiteURL(u string) ScraperOption {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ScraperOption {
	return func(s *Scraper) {
		s.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) ScraperOption {
	return func(s *Scraper) {
		s.log = log.With("component", "asianwiki")
	}
}

// NewScraper creates a page scraper.
func NewScraper(opts ...ScraperOption) *Scraper {
	s := &Scraper{
		baseURL:    defaultSiteURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup fetches pageURL and parses the profile. Only the path of pageURL
// is used; the host is the scraper's site URL.
func (s *Scraper) Lookup(ctx context.Context, pageURL string) (*Page, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	target := s.baseURL + u.EscapedPath()

	html, err := s.fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	page, err := ParsePage(html, target)
	if err != nil {
		return nil, err
	}
	if s.log != nil {
		s.log.Debug("scraped page", "url", target, "title", page.Title, "cast", len(page.Cast))
	}
	return page, nil
}

func (s *Scraper) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asianwiki error: %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(b) == 0 {
		return nil, errors.New("empty response body")
	}
	return b, nil
}

// ParsePage extracts the profile from an AsianWiki page. pageURL resolves
// relative image links. It returns ErrNotFound when the page has no heading,
// which is what AsianWiki serves for missing articles.
func ParsePage(html []byte, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	content := doc.Find("#mw-content-text")
	if content.Length() == 0 {
		content = doc.Selection
	}

	title := normSpace(doc.Find("#firstHeading").First().Text())
	if title == "" {
		return nil, ErrNotFound
	}

	p := &Page{Title: title}

	profile := profileFields(content)
	if v := profile["genre"]; v != "" {
		p.Genre = splitList(v)
	}
	for _, key := range []string{"release date", "air date", "release"} {
		if y := firstYear(profile[key]); y > 0 {
			p.Year = y
			break
		}
	}
	if n, err := strconv.Atoi(firstNumber(profile["episodes"])); err == nil {
		p.Episodes = n
	}

	p.Synopsis = sectionText(content, "plot", "synopsis")

	if src, ok := content.Find(".thumbinner img, a.image img").First().Attr("src"); ok {
		p.Poster = resolveURL(pageURL, src)
	}

	content.Find("iframe").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if m := youTubeEmbedID.FindStringSubmatch(src); m != nil {
			p.TrailerURL = "https://www.youtube.com/watch?v=" + m[1]
			return false
		}
		return true
	})

	p.Cast = castList(content)
	return p, nil
}

// profileFields collects "<b>Label:</b> value" list items, keyed by the
// lower-cased label.
func profileFields(content *goquery.Selection) map[string]string {
	fields := make(map[string]string)
	content.Find("li").Each(func(_ int, s *goquery.Selection) {
		label := normSpace(s.Find("b").First().Text())
		if label == "" || !strings.HasSuffix(label, ":") {
			return
		}
		value := strings.TrimSpace(strings.TrimPrefix(normSpace(s.Text()), label))
		key := strings.ToLower(strings.TrimSuffix(label, ":"))
		if _, seen := fields[key]; !seen && value != "" {
			fields[key] = value
		}
	})
	return fields
}

// sectionText returns the paragraphs following the first h2 whose heading
// matches one of names.
func sectionText(content *goquery.Selection, names ...string) string {
	var text string
	content.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		heading := strings.ToLower(normSpace(h.Text()))
		for _, name := range names {
			if heading != name {
				continue
			}
			var parts []string
			h.NextUntil("h2").Filter("p").Each(func(_ int, p *goquery.Selection) {
				if t := normSpace(p.Text()); t != "" {
					parts = append(parts, t)
				}
			})
			text = strings.Join(parts, "\n\n")
			return false
		}
		return true
	})
	return text
}

// castList reads the cast gallery. Each entry is "<a>Actor</a><br>Role";
// the result uses the "Actor as Role" form.
func castList(content *goquery.Selection) []string {
	cast := make([]string, 0, 16)
	content.Find(".gallerytext").Each(func(_ int, s *goquery.Selection) {
		actor := normSpace(s.Find("a").First().Text())
		if actor == "" {
			return
		}
		role := strings.TrimSpace(strings.TrimPrefix(normSpace(s.Text()), actor))
		if role != "" {
			cast = append(cast, actor+" as "+role)
			return
		}
		cast = append(cast, actor)
	})
	return cast
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstYear(s string) int {
	m := yearPattern.FindString(s)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

func firstNumber(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r < '0' || r > '9' {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normSpace(s string) string { return strings.Join(strings.Fields(s), " ") }

func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	ru, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(ru).String()
}
