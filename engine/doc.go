// Package engine implements the query-engine loader: it resolves a
// database provider name to a precompiled WebAssembly engine binary,
// links the binary against the provider's glue layer exactly once per
// process, and hands out the cached engine handle on every later call.
//
// The loading sequence per provider is fixed: read the artifact,
// compile it, instantiate it against the glue's host import namespace,
// bind the instance's export table back into the glue, then invoke the
// designated start export. Only after all five steps succeed does the
// provider become ready; any failure leaves it retryable.
//
//	loader, _ := engine.NewLoader(engine.Config{Root: "/opt/engines"}, engine.WithRegistry(reg))
//	eng, err := loader.Resolve(ctx, "postgresql")
package engine
