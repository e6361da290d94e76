package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/smdrama/moviefetch/internal/metadata"
	"github.com/smdrama/moviefetch/internal/movie"
)

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks github.com/smdrama/moviefetch/internal/api/v1 Resolver

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Resolver turns catalogue URLs and titles into records.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (*movie.Details, error)
	Search(ctx context.Context, title string, t movie.Type) ([]metadata.SearchResult, error)
	Providers() (hasOMDb, hasTMDB, hasAsianWiki bool)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Resolver Resolver

	// Optional dependencies (nil if not configured)
	Metrics http.Handler // served on /metrics
	Cache   string       // cache backend name reported by /status
	Version string
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Resolver == nil {
		return errors.New("resolver is required")
	}
	return nil
}
