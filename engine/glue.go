package engine

import (
	"fmt"

	"github.com/skillsenselab/enginekit/provider"
)

// Glue is the host-side half of an engine binary's ABI. It supplies
// the import namespace the binary links against, receives the binary's
// export table once instantiated, and owns the engine handle returned
// to callers.
type Glue interface {
	// Namespace is the import namespace key the binary expects.
	Namespace() string
	// Imports is the host function table the binary links against.
	Imports() map[string]HostFunc
	// BindExports stores the instantiated binary's export table.
	// It fails if a required export is missing.
	BindExports(exports ExportTable) error
	// Engine returns the glue's engine handle. The same pointer is
	// returned for the lifetime of the glue.
	Engine() *Engine
}

// GlueFactory constructs a fresh glue for one initialization attempt.
type GlueFactory func() Glue

// BaseGlue implements the bookkeeping shared by all family glues:
// namespace, host import table, required-export validation, and the
// engine handle. Family packages embed it and contribute their own
// import tables.
type BaseGlue struct {
	namespace string
	imports   map[string]HostFunc
	required  []string
	engine    *Engine
}

// NewBaseGlue creates the shared glue core for a family. The required
// list names exports the binary must provide; the start export is
// always required.
func NewBaseGlue(id provider.ID, namespace string, imports map[string]HostFunc, required ...string) *BaseGlue {
	return &BaseGlue{
		namespace: namespace,
		imports:   imports,
		required:  append([]string{StartFunction}, required...),
		engine:    newEngine(id),
	}
}

// Namespace returns the import namespace key.
func (g *BaseGlue) Namespace() string { return g.namespace }

// Imports returns the host function table.
func (g *BaseGlue) Imports() map[string]HostFunc { return g.imports }

// BindExports validates the required exports and binds the table into
// the engine handle.
func (g *BaseGlue) BindExports(exports ExportTable) error {
	for _, name := range g.required {
		if _, ok := exports.Function(name); !ok {
			return fmt.Errorf("glue %s: binary is missing required export %q", g.namespace, name)
		}
	}
	g.engine.bind(exports)
	return nil
}

// Engine returns the glue's engine handle.
func (g *BaseGlue) Engine() *Engine { return g.engine }
