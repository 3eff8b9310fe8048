// Package postgresql provides the glue layer for the PostgreSQL
// family engine binary. The family also serves CockroachDB, which
// speaks the same protocol and shares the same artifact.
package postgresql

import (
	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/provider"
)

// Namespace is the import namespace key the binary links against.
const Namespace = "query_engine_postgresql"

// Required exports beyond the start function.
var required = []string{"query", "version"}

type glue struct {
	*engine.BaseGlue
}

// New constructs a fresh glue for one load attempt.
func New() engine.Glue {
	log := logger.Get("engine.postgresql")
	return &glue{
		BaseGlue: engine.NewBaseGlue(provider.PostgreSQL, Namespace, engine.DefaultImports(log), required...),
	}
}
