package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smdrama/moviefetch/internal/app"
	"github.com/smdrama/moviefetch/internal/config"
	"github.com/smdrama/moviefetch/internal/logging"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "moviefetch",
	Short: "Resolve movie and drama URLs into catalogue records",
	Long: `moviefetch - resolve movie and drama URLs into catalogue records

Accepts IMDb, TMDB, MyDramaList, HanCinema, AsianWiki and NamuWiki links.
Provider keys come from config.toml or the environment (OMDB_API_KEY,
TMDB_API_KEY); without them, demo fixtures are served.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before the config")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("moviefetch {{.Version}}\n")
}

// loadConfig loads --config, or the discovered file, or the defaults when
// nothing is found. A .env file is loaded first so ${VAR} references in the
// config can use it; existing environment variables win.
func loadConfig(stderr io.Writer) (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	path := configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			if errors.Is(err, config.ErrNotFound) {
				cfg := config.Default()
				applyEnvKeys(cfg)
				return cfg, nil
			}
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(stderr, "config %s:\n%s\n", path, configErr.Error())
			return nil, errors.New("configuration invalid (run 'moviefetch config test')")
		}
		return nil, err
	}
	return cfg, nil
}

// applyEnvKeys fills provider keys from the environment when running
// without a config file.
func applyEnvKeys(cfg *config.Config) {
	cfg.OMDb.APIKey = os.Getenv("OMDB_API_KEY")
	cfg.TMDB.APIKey = os.Getenv("TMDB_API_KEY")
	cfg.Catalog.Email = os.Getenv("CATALOG_EMAIL")
	cfg.Catalog.Password = os.Getenv("CATALOG_PASSWORD")
}

// newApp loads config, builds the logger and wires the resolver. The
// returned cleanup closes the cache and the log sink.
func newApp(ctx context.Context, cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	log, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}
	a.Version = version

	cleanup := func() {
		_ = a.Close()
		_ = logCloser.Close()
	}
	return a, cleanup, nil
}
