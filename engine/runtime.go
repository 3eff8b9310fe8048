package engine

import (
	"context"
	"os"
)

// StartFunction is the designated start export every engine binary must
// expose. It takes no parameters, returns nothing, and performs the
// engine's one-time setup.
const StartFunction = "init_engine"

// DefaultArtifactName is the file name of the engine binary inside each
// provider's artifact directory.
const DefaultArtifactName = "query_engine.wasm"

// ValueType identifies a WebAssembly core value type in a host
// function signature.
type ValueType byte

const (
	ValueTypeI32 ValueType = iota
	ValueTypeI64
	ValueTypeF32
	ValueTypeF64
)

// Memory is the linear memory of a module instance as seen by host
// functions.
type Memory interface {
	// Read reads count bytes at offset. The second result is false if
	// the range is out of bounds.
	Read(offset, count uint32) ([]byte, bool)
}

// HostFunc describes one host function in a glue import namespace.
// Fn follows the stack-machine convention: parameters arrive on the
// stack slice and results are written back in place.
type HostFunc struct {
	Params  []ValueType
	Results []ValueType
	Fn      func(ctx context.Context, mem Memory, stack []uint64)
}

// Function is a callable export of a module instance.
type Function interface {
	Call(ctx context.Context, params ...uint64) ([]uint64, error)
}

// ExportTable gives access to a module instance's exported functions.
type ExportTable interface {
	// Function returns the named export, or false if the instance does
	// not export it.
	Function(name string) (Function, bool)
}

// Instance is a linked, running engine module.
type Instance interface {
	Exports() ExportTable
	Close(ctx context.Context) error
}

// CompiledModule is a compiled engine binary, ready to instantiate.
type CompiledModule interface {
	// Instantiate links the module against the glue's host import
	// namespace and returns the live instance. The start export is NOT
	// invoked; the loader does that after binding exports.
	Instantiate(ctx context.Context, glue Glue) (Instance, error)
}

// Runtime compiles engine binaries into executable modules. The
// production implementation is backed by wazero; tests substitute a
// fake.
type Runtime interface {
	Compile(ctx context.Context, binary []byte) (CompiledModule, error)
	Close(ctx context.Context) error
}

// FS abstracts artifact access so tests can verify that unsupported
// providers trigger no filesystem traffic.
type FS interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// OSFileSystem implements FS against the real filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return b, nil
}
