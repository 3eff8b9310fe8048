package engine

import (
	"context"

	"github.com/skillsenselab/enginekit/errors"
	"github.com/skillsenselab/enginekit/resilience"
)

// ResolveWithRetry resolves a provider, re-attempting failed loads
// with backoff. Only errors the taxonomy marks retryable (missing
// artifact, link failure, start failure) are retried; configuration
// errors fail immediately. The loader's own semantics are unchanged:
// each attempt is an ordinary Resolve and a success is cached for the
// process lifetime.
func ResolveWithRetry(ctx context.Context, l *Loader, name string, cfg resilience.RetryConfig) (*Engine, error) {
	if cfg.RetryIf == nil {
		cfg.RetryIf = errors.IsRetryable
	}
	return resilience.Retry(ctx, cfg, func() (*Engine, error) {
		return l.Resolve(ctx, name)
	})
}
