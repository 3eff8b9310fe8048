// Package resilience provides retry with exponential backoff for
// operations that may be worth re-attempting, such as engine loads
// that failed on a missing artifact or a faulty start export.
//
// The loader itself never retries internally; callers opt in:
//
//	eng, err := engine.ResolveWithRetry(ctx, loader, "postgresql", resilience.DefaultRetryConfig())
package resilience
