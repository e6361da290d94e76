// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate_MinimalValid(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.Empty(t, errs, "expected no errors for empty config")
}

func TestValidate_Default(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 99999}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "verbose"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log.level"), "expected log.level error, got %v", errs)
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := &Config{Log: LogConfig{Format: "xml"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log.format"), "expected log.format error, got %v", errs)
}

func TestValidate_NegativeRotation(t *testing.T) {
	cfg := &Config{Log: LogConfig{File: "x.log", MaxBackups: -1}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "rotation"), "expected rotation error, got %v", errs)
}

func TestValidate_BadBaseURL(t *testing.T) {
	cfg := &Config{
		OMDb: OMDbConfig{BaseURL: "ftp://omdb"},
		TMDB: TMDBConfig{BaseURL: "not a url"},
	}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "omdb.base_url"), "expected omdb error, got %v", errs)
	assert.True(t, containsError(errs, "tmdb.base_url"), "expected tmdb error, got %v", errs)
}

func TestValidate_AsianWikiMode(t *testing.T) {
	cfg := &Config{AsianWiki: AsianWikiConfig{Mode: "crawl"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "asianwiki.mode"), "expected mode error, got %v", errs)
}

func TestValidate_AsianWikiProxyRequiresURL(t *testing.T) {
	cfg := &Config{AsianWiki: AsianWikiConfig{Mode: "proxy"}}
	errs := cfg.Validate()
	assert.True(t, containsErrorBoth(errs, "asianwiki.proxy_url", "required"), "expected proxy_url error, got %v", errs)

	cfg.AsianWiki.ProxyURL = "https://smdrama.onrender.com/api/asianwiki"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_CacheBackend(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Backend: "redis"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache.backend"), "expected cache.backend error, got %v", errs)
}

func TestValidate_CacheTTLNegative(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Backend: "memory", TTL: Duration{-time.Minute}}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache.ttl"), "expected cache.ttl error, got %v", errs)
}

func TestValidate_SQLiteNeedsPath(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Backend: "sqlite"}}
	errs := cfg.Validate()
	assert.True(t, containsErrorBoth(errs, "cache.path", "sqlite"), "expected cache.path error, got %v", errs)
}

func TestValidate_CatalogCredentialsTogether(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{Email: "admin@example.com"}}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "catalog"), "expected catalog error, got %v", errs)
}

// Helper functions to check for errors containing specific strings
func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func containsErrorBoth(errs []string, substr1, substr2 string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr1) && strings.Contains(e, substr2) {
			return true
		}
	}
	return false
}
