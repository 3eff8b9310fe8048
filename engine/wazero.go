package engine

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// wazeroRuntime adapts a wazero runtime to the loader's Runtime
// interface. One wazero runtime hosts every provider's engine; host
// namespaces are keyed per glue so families never collide.
type wazeroRuntime struct {
	runtime wazero.Runtime
}

// NewWazeroRuntime creates the production runtime.
func NewWazeroRuntime(ctx context.Context) Runtime {
	cfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	return &wazeroRuntime{runtime: wazero.NewRuntimeWithConfig(ctx, cfg)}
}

func (r *wazeroRuntime) Compile(ctx context.Context, binary []byte) (CompiledModule, error) {
	compiled, err := r.runtime.CompileModule(ctx, binary)
	if err != nil {
		return nil, err
	}
	return &wazeroCompiled{runtime: r.runtime, compiled: compiled}, nil
}

func (r *wazeroRuntime) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

type wazeroCompiled struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

func (c *wazeroCompiled) Instantiate(ctx context.Context, glue Glue) (Instance, error) {
	ns := glue.Namespace()

	// A failed earlier attempt leaves the host namespace behind;
	// reuse it instead of instantiating a duplicate.
	if c.runtime.Module(ns) == nil {
		builder := c.runtime.NewHostModuleBuilder(ns)
		for name, fn := range glue.Imports() {
			builder = builder.NewFunctionBuilder().
				WithGoModuleFunction(goModuleFunc(fn.Fn), valueTypes(fn.Params), valueTypes(fn.Results)).
				Export(name)
		}
		if _, err := builder.Instantiate(ctx); err != nil {
			return nil, fmt.Errorf("instantiating host namespace %s: %w", ns, err)
		}
	}

	// Anonymous instance name so a retry after a failed start does not
	// collide in the runtime's module namespace.
	cfg := wazero.NewModuleConfig().WithName("").WithStartFunctions()
	mod, err := c.runtime.InstantiateModule(ctx, c.compiled, cfg)
	if err != nil {
		return nil, err
	}
	return &wazeroInstance{module: mod}, nil
}

type wazeroInstance struct {
	module api.Module
}

func (i *wazeroInstance) Exports() ExportTable {
	return &wazeroExports{module: i.module}
}

func (i *wazeroInstance) Close(ctx context.Context) error {
	return i.module.Close(ctx)
}

type wazeroExports struct {
	module api.Module
}

func (e *wazeroExports) Function(name string) (Function, bool) {
	fn := e.module.ExportedFunction(name)
	if fn == nil {
		return nil, false
	}
	return fn, true
}

// goModuleFunc bridges a glue host function into wazero's stack-machine
// calling convention, exposing the instance memory for pointer/length
// parameters.
func goModuleFunc(fn func(ctx context.Context, mem Memory, stack []uint64)) api.GoModuleFunction {
	return api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
		fn(ctx, mod.Memory(), stack)
	})
}

func valueTypes(types []ValueType) []api.ValueType {
	out := make([]api.ValueType, len(types))
	for i, t := range types {
		switch t {
		case ValueTypeI64:
			out[i] = api.ValueTypeI64
		case ValueTypeF32:
			out[i] = api.ValueTypeF32
		case ValueTypeF64:
			out[i] = api.ValueTypeF64
		default:
			out[i] = api.ValueTypeI32
		}
	}
	return out
}
