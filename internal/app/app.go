// Package app wires configuration into the resolver and its collaborators.
// Both the CLI and the daemon build their runtime through New.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	v1 "github.com/smdrama/moviefetch/internal/api/v1"
	"github.com/smdrama/moviefetch/internal/asianwiki"
	"github.com/smdrama/moviefetch/internal/catalog"
	"github.com/smdrama/moviefetch/internal/config"
	"github.com/smdrama/moviefetch/internal/metadata"
	"github.com/smdrama/moviefetch/internal/metrics"
	"github.com/smdrama/moviefetch/internal/migrations"
	"github.com/smdrama/moviefetch/internal/server"
	"github.com/smdrama/moviefetch/internal/tmdb"
	"github.com/smdrama/moviefetch/pkg/omdb"
)

// ErrNoCatalogCredentials is returned by Submit when [catalog] has no login.
var ErrNoCatalogCredentials = errors.New("catalog email and password are not configured")

// App holds the wired runtime.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Resolver *metadata.Resolver
	Metrics  *metrics.Metrics
	Catalog  *catalog.Client
	Version  string

	pruner server.Pruner
	db     *sql.DB
}

// New builds the resolver from cfg. Providers without credentials are left
// unset so the resolver falls back to fixtures or returns no data.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	a := &App{Config: cfg, Log: log, Metrics: metrics.New()}

	opts := metadata.Options{
		UseFixturesWhenUncredentialed: cfg.Fixtures.UseWhenUncredentialed,
		CacheTTL:                      cfg.Cache.TTL.Duration,
		Metrics:                       a.Metrics,
		Logger:                        log,
	}

	// Interfaces are assigned inside each branch so an unset provider stays
	// a nil interface rather than a typed nil pointer.
	if cfg.OMDb.APIKey != "" {
		omdbOpts := []omdb.Option{omdb.WithLogger(log)}
		if cfg.OMDb.BaseURL != "" {
			omdbOpts = append(omdbOpts, omdb.WithBaseURL(cfg.OMDb.BaseURL))
		}
		opts.OMDb = omdb.New(cfg.OMDb.APIKey, omdbOpts...)
	}
	if cfg.TMDB.APIKey != "" {
		tmdbOpts := []tmdb.Option{tmdb.WithLogger(log)}
		if cfg.TMDB.BaseURL != "" {
			tmdbOpts = append(tmdbOpts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
		}
		if cfg.TMDB.Language != "" {
			tmdbOpts = append(tmdbOpts, tmdb.WithLanguage(cfg.TMDB.Language))
		}
		opts.TMDB = tmdb.NewClient(cfg.TMDB.APIKey, tmdbOpts...)
	}
	switch cfg.AsianWiki.Mode {
	case "proxy":
		opts.AsianWiki = asianwiki.NewProxyClient(cfg.AsianWiki.ProxyURL, nil, log)
	case "scrape":
		opts.AsianWiki = asianwiki.NewScraper(asianwiki.WithLogger(log))
	}

	if cfg.Fixtures.Path != "" {
		f, err := metadata.LoadFixtures(cfg.Fixtures.Path)
		if err != nil {
			return nil, err
		}
		opts.Fixtures = f
	}

	switch cfg.Cache.Backend {
	case "memory":
		mc := metadata.NewMemCache()
		opts.Cache, a.pruner = mc, mc
	case "sqlite":
		db, err := openDB(ctx, cfg.Cache.Path)
		if err != nil {
			return nil, err
		}
		c := metadata.NewCache(db)
		opts.Cache, a.pruner, a.db = c, c, db
	}

	a.Resolver = metadata.New(opts)
	a.Metrics.SetProviders(a.Resolver.Providers())

	a.Catalog = catalog.New(cfg.Catalog.BaseURL, catalog.WithLogger(log))

	log.Debug("app wired",
		"omdb", opts.OMDb != nil,
		"tmdb", opts.TMDB != nil,
		"asianwiki", cfg.AsianWiki.Mode,
		"cache", cfg.Cache.Backend,
		"fixtures", cfg.Fixtures.UseWhenUncredentialed,
	)
	return a, nil
}

func openDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close releases the sqlite cache, if open.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Handler returns the HTTP API with request ids and request logging.
func (a *App) Handler() (http.Handler, error) {
	api, err := v1.New(v1.ServerDeps{
		Resolver: a.Resolver,
		Metrics:  a.Metrics.Handler(),
		Cache:    a.Config.Cache.Backend,
		Version:  a.Version,
	}, a.Log)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	return v1.WithRequestID(v1.LogRequests(mux, a.Log)), nil
}

// Serve runs the HTTP API and the cache pruner until ctx is canceled.
func (a *App) Serve(ctx context.Context) error {
	h, err := a.Handler()
	if err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	r := server.NewRunner(h, a.pruner, server.Config{Addr: addr}, a.Log.With("component", "server"))
	return r.Run(ctx)
}

// SubmitOptions are the admin-form fields that resolution doesn't supply.
type SubmitOptions struct {
	TelegramLink string
	Featured     bool
}

// Submit logs into the catalogue with the configured admin account and
// creates p. It returns the new catalogue id.
func (a *App) Submit(ctx context.Context, p catalog.Payload) (string, error) {
	if a.Config.Catalog.Email == "" || a.Config.Catalog.Password == "" {
		return "", ErrNoCatalogCredentials
	}
	token, err := a.Catalog.Login(ctx, a.Config.Catalog.Email, a.Config.Catalog.Password)
	if err != nil {
		return "", err
	}
	return a.Catalog.CreateMovie(ctx, token, p)
}

// Payload maps a resolved record to the catalogue form.
func (a *App) Payload(ctx context.Context, rawURL string, so SubmitOptions) (catalog.Payload, error) {
	d, err := a.Resolver.Resolve(ctx, rawURL)
	if err != nil {
		return catalog.Payload{}, err
	}
	p := catalog.PayloadFrom(d, time.Now())
	p.TelegramLink = so.TelegramLink
	p.IsFeatured = so.Featured
	return p, nil
}
