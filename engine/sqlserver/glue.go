// Package sqlserver provides the glue layer for the SQL Server family
// engine binary.
package sqlserver

import (
	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/provider"
)

// Namespace is the import namespace key the binary links against.
const Namespace = "query_engine_sqlserver"

var required = []string{"query", "version"}

type glue struct {
	*engine.BaseGlue
}

// New constructs a fresh glue for one load attempt.
func New() engine.Glue {
	log := logger.Get("engine.sqlserver")
	return &glue{
		BaseGlue: engine.NewBaseGlue(provider.SQLServer, Namespace, engine.DefaultImports(log), required...),
	}
}
