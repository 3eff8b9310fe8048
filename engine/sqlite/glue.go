// Package sqlite provides the glue layer for the SQLite family engine
// binary.
package sqlite

import (
	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/provider"
)

// Namespace is the import namespace key the binary links against.
const Namespace = "query_engine_sqlite"

var required = []string{"query", "version"}

type glue struct {
	*engine.BaseGlue
}

// New constructs a fresh glue for one load attempt.
func New() engine.Glue {
	log := logger.Get("engine.sqlite")
	return &glue{
		BaseGlue: engine.NewBaseGlue(provider.SQLite, Namespace, engine.DefaultImports(log), required...),
	}
}
