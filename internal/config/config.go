// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Log       LogConfig       `toml:"log"`
	OMDb      OMDbConfig      `toml:"omdb"`
	TMDB      TMDBConfig      `toml:"tmdb"`
	AsianWiki AsianWikiConfig `toml:"asianwiki"`
	Fixtures  FixturesConfig  `toml:"fixtures"`
	Cache     CacheConfig     `toml:"cache"`
	Catalog   CatalogConfig   `toml:"catalog"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LogConfig selects the slog handler. An empty File logs to stderr;
// otherwise the file is rotated by size.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb,omitempty"`
	MaxBackups int    `toml:"max_backups,omitempty"`
	MaxAgeDays int    `toml:"max_age_days,omitempty"`
}

type OMDbConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url,omitempty"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url,omitempty"`
	Language string `toml:"language,omitempty"`
}

// AsianWikiConfig enables AsianWiki pages for the heuristic adapter.
// Mode is "off", "proxy" (ProxyURL required) or "scrape".
type AsianWikiConfig struct {
	Mode     string `toml:"mode"`
	ProxyURL string `toml:"proxy_url,omitempty"`
}

type FixturesConfig struct {
	UseWhenUncredentialed bool   `toml:"use_when_uncredentialed"`
	Path                  string `toml:"path,omitempty"`
}

// CacheConfig selects the resolution cache. Backend is "none", "memory"
// or "sqlite".
type CacheConfig struct {
	Backend string   `toml:"backend"`
	TTL     Duration `toml:"ttl"`
	Path    string   `toml:"path,omitempty"`
}

type CatalogConfig struct {
	BaseURL  string `toml:"base_url,omitempty"`
	Email    string `toml:"email,omitempty"`
	Password string `toml:"password,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is found: no
// provider keys, demo fixtures on, no cache.
func Default() *Config {
	cfg := &Config{}
	cfg.Fixtures.UseWhenUncredentialed = true
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8485
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.AsianWiki.Mode == "" {
		c.AsianWiki.Mode = "off"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "none"
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 24 * time.Hour
	}
	if c.Cache.Backend == "sqlite" && c.Cache.Path == "" {
		c.Cache.Path = "./data/moviefetch.db"
	}
}

// Load reads, substitutes and validates the config at path. Unresolved
// environment variables and validation failures are returned together
// as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and substitutes the config at path without
// checking it. Used by `config test` to report every problem at once.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []MissingVar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	cfg := Config{}
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	if !md.IsDefined("fixtures", "use_when_uncredentialed") {
		cfg.Fixtures.UseWhenUncredentialed = true
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}
