package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillsenselab/enginekit/provider"
)

// Engine is the opaque handle a glue module hands out once its binary
// is linked and started. Its query surface is owned by the engine
// binary itself; the loader only guarantees the handle is fully
// initialized and stable for the process lifetime.
type Engine struct {
	provider   provider.ID
	instanceID string
	exports    ExportTable
}

func newEngine(id provider.ID) *Engine {
	return &Engine{
		provider:   id,
		instanceID: uuid.NewString(),
	}
}

// Provider returns the engine family this handle belongs to.
func (e *Engine) Provider() provider.ID { return e.provider }

// InstanceID returns the unique identifier assigned to this engine
// instance at bind time.
func (e *Engine) InstanceID() string { return e.instanceID }

// Bound reports whether the binary's export table has been bound.
func (e *Engine) Bound() bool { return e.exports != nil }

// Call invokes a raw export of the underlying engine module.
func (e *Engine) Call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	if e.exports == nil {
		return nil, fmt.Errorf("engine %s: exports not bound", e.provider)
	}
	fn, ok := e.exports.Function(name)
	if !ok {
		return nil, fmt.Errorf("engine %s: no export %q", e.provider, name)
	}
	return fn.Call(ctx, params...)
}

func (e *Engine) bind(exports ExportTable) {
	e.exports = exports
}
