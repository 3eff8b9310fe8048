// Package enginekit loads provider-specific WebAssembly query engine
// binaries and exposes them as initialized engine handles.
//
// The typical entry point is New, which builds an engine.Loader wired
// with the glue layers for every supported provider family:
//
//	loader, err := enginekit.New(engine.Config{Root: "/opt/engines"})
//	if err != nil { ... }
//	eng, err := loader.Resolve(ctx, "postgres")
package enginekit

import (
	"context"

	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/engine/mysql"
	"github.com/skillsenselab/enginekit/engine/postgresql"
	"github.com/skillsenselab/enginekit/engine/sqlite"
	"github.com/skillsenselab/enginekit/engine/sqlserver"
	"github.com/skillsenselab/enginekit/provider"
)

// DefaultRegistry returns the glue registry covering every supported
// provider family.
func DefaultRegistry() engine.Registry {
	return engine.NewRegistry().
		With(provider.PostgreSQL, postgresql.New).
		With(provider.MySQL, mysql.New).
		With(provider.SQLite, sqlite.New).
		With(provider.SQLServer, sqlserver.New)
}

// New creates a loader backed by the default registry. Options may
// still override any loader dependency, including the registry.
func New(cfg engine.Config, opts ...engine.Option) (*engine.Loader, error) {
	merged := make([]engine.Option, 0, len(opts)+1)
	merged = append(merged, engine.WithRegistry(DefaultRegistry()))
	merged = append(merged, opts...)
	return engine.NewLoader(cfg, merged...)
}

// Resolve is a convenience for one-off resolution: it builds a default
// loader, resolves the provider, and leaves the loader to the caller
// via the returned handle's lifetime. Services resolving more than
// once should hold a Loader instead.
func Resolve(ctx context.Context, cfg engine.Config, name string) (*engine.Engine, error) {
	loader, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return loader.Resolve(ctx, name)
}
