// Package mysql provides the glue layer for the MySQL family engine
// binary. The family also serves MariaDB.
package mysql

import (
	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/provider"
)

// Namespace is the import namespace key the binary links against.
const Namespace = "query_engine_mysql"

var required = []string{"query", "version"}

type glue struct {
	*engine.BaseGlue
}

// New constructs a fresh glue for one load attempt.
func New() engine.Glue {
	log := logger.Get("engine.mysql")
	return &glue{
		BaseGlue: engine.NewBaseGlue(provider.MySQL, Namespace, engine.DefaultImports(log), required...),
	}
}
