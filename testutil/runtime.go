package testutil

import (
	"context"
	"sync"

	"github.com/skillsenselab/enginekit/engine"
)

// FakeFunction is a scriptable export for FakeExportTable.
type FakeFunction struct {
	mu      sync.Mutex
	Results []uint64
	Err     error
	calls   int
}

// Call returns the configured results or error and counts the invocation.
func (f *FakeFunction) Call(ctx context.Context, params ...uint64) ([]uint64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Results, nil
}

// Calls returns how often the function was invoked.
func (f *FakeFunction) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeExportTable is an in-memory export table.
type FakeExportTable struct {
	Funcs map[string]*FakeFunction
}

// NewFakeExportTable builds a table exporting the given names, each
// backed by a FakeFunction that succeeds with no results. The start
// export is always included.
func NewFakeExportTable(names ...string) *FakeExportTable {
	funcs := make(map[string]*FakeFunction, len(names)+1)
	funcs[engine.StartFunction] = &FakeFunction{}
	for _, name := range names {
		funcs[name] = &FakeFunction{}
	}
	return &FakeExportTable{Funcs: funcs}
}

// Function returns the named export.
func (t *FakeExportTable) Function(name string) (engine.Function, bool) {
	fn, ok := t.Funcs[name]
	if !ok {
		return nil, false
	}
	return fn, true
}

// Drop removes an export, simulating a binary that lacks it.
func (t *FakeExportTable) Drop(name string) *FakeExportTable {
	delete(t.Funcs, name)
	return t
}

// StartFunc returns the table's start export.
func (t *FakeExportTable) StartFunc() *FakeFunction {
	return t.Funcs[engine.StartFunction]
}

// FakeInstance is an in-memory module instance.
type FakeInstance struct {
	Table *FakeExportTable

	mu     sync.Mutex
	closed int
}

// Exports returns the instance's export table.
func (i *FakeInstance) Exports() engine.ExportTable { return i.Table }

// Close counts close calls so tests can assert failed instances are
// torn down.
func (i *FakeInstance) Close(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.closed++
	return nil
}

// Closed returns how often Close was called.
func (i *FakeInstance) Closed() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.closed
}

// FakeCompiled is an in-memory compiled module.
type FakeCompiled struct {
	rt     *FakeRuntime
	Binary []byte
}

// Instantiate builds a FakeInstance from the runtime's scripted table,
// or fails when the runtime is configured to.
func (c *FakeCompiled) Instantiate(ctx context.Context, glue engine.Glue) (engine.Instance, error) {
	c.rt.mu.Lock()
	c.rt.instantiations++
	err := c.rt.InstantiateErr
	table := c.rt.NextTable
	c.rt.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if table == nil {
		table = NewFakeExportTable()
	}
	inst := &FakeInstance{Table: table}
	c.rt.mu.Lock()
	c.rt.instances = append(c.rt.instances, inst)
	c.rt.mu.Unlock()
	return inst, nil
}

// FakeRuntime implements engine.Runtime entirely in memory. Error
// fields make the corresponding stage fail; clearing them lets a retry
// succeed.
type FakeRuntime struct {
	mu sync.Mutex

	CompileErr     error
	InstantiateErr error
	// NextTable is the export table handed to the next instantiation.
	// Nil means a fresh table with just the start export.
	NextTable *FakeExportTable

	compiles       int
	instantiations int
	instances      []*FakeInstance
	closed         bool
}

// NewFakeRuntime creates a runtime whose loads succeed.
func NewFakeRuntime() *FakeRuntime {
	return &FakeRuntime{}
}

// Compile counts the call and returns a FakeCompiled, or the configured
// compile error.
func (r *FakeRuntime) Compile(ctx context.Context, binary []byte) (engine.CompiledModule, error) {
	r.mu.Lock()
	r.compiles++
	err := r.CompileErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &FakeCompiled{rt: r, Binary: binary}, nil
}

// Close marks the runtime closed.
func (r *FakeRuntime) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Compiles returns the number of Compile calls.
func (r *FakeRuntime) Compiles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.compiles
}

// Instantiations returns the number of instantiation attempts.
func (r *FakeRuntime) Instantiations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instantiations
}

// Instances returns every instance the runtime produced, in order.
func (r *FakeRuntime) Instances() []*FakeInstance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*FakeInstance, len(r.instances))
	copy(out, r.instances)
	return out
}

// IsClosed reports whether Close was called.
func (r *FakeRuntime) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// FailStart configures the next instantiation's start export to fail
// with err.
func (r *FakeRuntime) FailStart(err error) {
	table := NewFakeExportTable()
	table.StartFunc().Err = err
	r.mu.Lock()
	r.NextTable = table
	r.mu.Unlock()
}
