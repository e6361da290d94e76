// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

var validAsianWikiModes = map[string]bool{
	"off": true, "proxy": true, "scrape": true, "": true,
}

var validCacheBackends = map[string]bool{
	"none": true, "memory": true, "sqlite": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be text or json; got %q", c.Log.Format))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, "log: rotation limits must not be negative")
	}

	errs = append(errs, checkURL("omdb.base_url", c.OMDb.BaseURL)...)
	errs = append(errs, checkURL("tmdb.base_url", c.TMDB.BaseURL)...)
	errs = append(errs, checkURL("catalog.base_url", c.Catalog.BaseURL)...)

	if !validAsianWikiModes[c.AsianWiki.Mode] {
		errs = append(errs, fmt.Sprintf("asianwiki.mode: must be one of off, proxy, scrape; got %q", c.AsianWiki.Mode))
	}
	if c.AsianWiki.Mode == "proxy" {
		if c.AsianWiki.ProxyURL == "" {
			errs = append(errs, "asianwiki.proxy_url: required when mode is proxy")
		} else {
			errs = append(errs, checkURL("asianwiki.proxy_url", c.AsianWiki.ProxyURL)...)
		}
	}

	if !validCacheBackends[c.Cache.Backend] {
		errs = append(errs, fmt.Sprintf("cache.backend: must be one of none, memory, sqlite; got %q", c.Cache.Backend))
	}
	if c.Cache.TTL.Duration < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl: must not be negative, got %s", c.Cache.TTL))
	}
	if c.Cache.Backend == "sqlite" && c.Cache.Path == "" {
		errs = append(errs, "cache.path: required when backend is sqlite")
	}

	if (c.Catalog.Email == "") != (c.Catalog.Password == "") {
		errs = append(errs, "catalog: email and password must be set together")
	}

	return errs
}

func checkURL(field, raw string) []string {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []string{fmt.Sprintf("%s: must be an http(s) URL, got %q", field, raw)}
	}
	return nil
}
