package metadata

import (
	"context"
	"errors"

	"github.com/smdrama/moviefetch/internal/asianwiki"
	"github.com/smdrama/moviefetch/internal/tmdb"
	"github.com/smdrama/moviefetch/pkg/omdb"
)

// errSkipped marks an enrichment that did not run because its provider is
// not configured.
var errSkipped = errors.New("provider not configured")

// attempt runs a best-effort step. Failures are logged and dropped; only
// cancellation of ctx is returned.
func (r *Resolver) attempt(ctx context.Context, name string, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if r.log != nil {
		switch {
		case errors.Is(err, errSkipped), errors.Is(err, errNoCandidates), isNotFound(err):
			r.log.Debug("enrichment skipped", "step", name, "reason", err)
		default:
			r.log.Warn("enrichment failed", "step", name, "error", err)
		}
	}
	return nil
}

// noData turns a primary adapter failure into "no data". Cancellation is
// the one error that escapes.
func (r *Resolver) noData(ctx context.Context, provider, id string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if r.log != nil {
		if isNotFound(err) {
			r.log.Debug("provider has no entry", "provider", provider, "id", id)
		} else {
			r.log.Warn("provider request failed", "provider", provider, "id", id, "error", err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, omdb.ErrNotFound) ||
		errors.Is(err, tmdb.ErrNotFound) ||
		errors.Is(err, asianwiki.ErrNotFound)
}
