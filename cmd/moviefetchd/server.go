package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/smdrama/moviefetch/internal/app"
	"github.com/smdrama/moviefetch/internal/config"
	"github.com/smdrama/moviefetch/internal/logging"
)

// resolveConfig returns the config at path, the discovered one, or the
// defaults when none exists.
func resolveConfig(path string) (*config.Config, string, error) {
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}
	return cfg, path, nil
}

func runServer(configPath, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg, path, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	if path == "" {
		cfg.OMDb.APIKey = os.Getenv("OMDB_API_KEY")
		cfg.TMDB.APIKey = os.Getenv("TMDB_API_KEY")
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	a.Version = version

	hasOMDb, hasTMDB, hasAsianWiki := a.Resolver.Providers()
	logger.Info("starting moviefetchd",
		"version", version,
		"config", path,
		"addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		"omdb", hasOMDb,
		"tmdb", hasTMDB,
		"asianwiki", hasAsianWiki,
		"cache", cfg.Cache.Backend,
	)

	if err := a.Serve(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
