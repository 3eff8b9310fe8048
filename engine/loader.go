package engine

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillsenselab/enginekit/errors"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/observability"
	"github.com/skillsenselab/enginekit/provider"
)

// cell tracks one provider's engine through its lifecycle. The cell
// mutex is held for the whole initialization, so concurrent requests
// for the same provider serialize and late arrivals observe the cached
// result instead of racing a second load.
type cell struct {
	mu      chan struct{} // acquired by send, released by receive
	state   State
	engine  *Engine
	lastErr error

	// snap mirrors state for lock-free reads. A state query must not
	// wait on mu: a Resolve returning the cached handle holds the lock
	// for a moment, and the query would misreport a ready engine as
	// loading.
	snap atomic.Value
}

func newCell() *cell {
	c := &cell{mu: make(chan struct{}, 1)}
	c.setState(StateUnresolved)
	return c
}

// setState records a lifecycle transition. Callers hold the cell lock,
// or own the cell exclusively as in newCell.
func (c *cell) setState(s State) {
	c.state = s
	c.snap.Store(s)
}

// lock acquires the cell, honoring context cancellation while waiting
// on another goroutine's in-flight initialization.
func (c *cell) lock(ctx context.Context) error {
	select {
	case c.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *cell) unlock() { <-c.mu }

// Loader resolves provider names to initialized engine handles. It is
// safe for concurrent use; each provider's engine is loaded at most
// once per process.
type Loader struct {
	cfg      Config
	registry Registry
	runtime  Runtime
	fs       FS
	log      *logger.Logger
	metrics  *observability.Metrics

	cellsMu sync.Mutex
	cells   map[provider.ID]*cell
}

// Option customizes a Loader.
type Option func(*Loader)

// WithRegistry sets the glue registry. A loader without a registry can
// resolve nothing.
func WithRegistry(r Registry) Option {
	return func(l *Loader) { l.registry = r }
}

// WithRuntime overrides the wazero-backed default runtime.
func WithRuntime(rt Runtime) Option {
	return func(l *Loader) { l.runtime = rt }
}

// WithFS overrides artifact access, typically for tests.
func WithFS(fs FS) Option {
	return func(l *Loader) { l.fs = fs }
}

// WithLogger sets the loader's logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// WithMetrics enables load metric recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// NewLoader creates a loader for the given configuration.
func NewLoader(cfg Config, opts ...Option) (*Loader, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Loader{
		cfg:   cfg,
		fs:    OSFileSystem{},
		log:   logger.Get("engine.loader"),
		cells: make(map[provider.ID]*cell),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = NewRegistry()
	}
	return l, nil
}

// ArtifactPath returns the on-disk location of a family's engine binary.
func (l *Loader) ArtifactPath(id provider.ID) string {
	return filepath.Join(l.cfg.Root, id.Dir(), l.cfg.ArtifactName)
}

// Resolve maps a provider name to its engine handle, loading and
// starting the engine binary on the first call for that provider.
// Every later call returns the identical handle. Unsupported names
// fail with a CONFIGURATION error before any filesystem access.
func (l *Loader) Resolve(ctx context.Context, name string) (*Engine, error) {
	id, err := provider.Normalize(name)
	if err != nil {
		return nil, err
	}

	c := l.cell(id)
	if err := c.lock(ctx); err != nil {
		return nil, err
	}
	defer c.unlock()

	if c.state == StateReady {
		return c.engine, nil
	}
	return l.initialize(ctx, id, c)
}

// State returns the lifecycle state of a provider name. Unsupported
// names report StateUnresolved. State never blocks on an in-flight
// load; it reads the last committed transition.
func (l *Loader) State(name string) State {
	id, err := provider.Normalize(name)
	if err != nil {
		return StateUnresolved
	}
	l.cellsMu.Lock()
	c, ok := l.cells[id]
	l.cellsMu.Unlock()
	if !ok {
		return StateUnresolved
	}
	return c.snap.Load().(State)
}

// States returns a snapshot of every touched provider's state.
func (l *Loader) States() map[provider.ID]State {
	l.cellsMu.Lock()
	ids := make([]provider.ID, 0, len(l.cells))
	for id := range l.cells {
		ids = append(ids, id)
	}
	l.cellsMu.Unlock()

	out := make(map[provider.ID]State, len(ids))
	for _, id := range ids {
		out[id] = l.State(string(id))
	}
	return out
}

// Close releases the underlying runtime. Engines held by callers
// become unusable; Close is intended for process shutdown only.
func (l *Loader) Close(ctx context.Context) error {
	l.cellsMu.Lock()
	rt := l.runtime
	l.runtime = nil
	l.cellsMu.Unlock()
	if rt == nil {
		return nil
	}
	return rt.Close(ctx)
}

func (l *Loader) cell(id provider.ID) *cell {
	l.cellsMu.Lock()
	defer l.cellsMu.Unlock()

	c, ok := l.cells[id]
	if !ok {
		c = newCell()
		l.cells[id] = c
	}
	return c
}

// ensureRuntime lazily constructs the wazero runtime so loaders that
// only ever reject unsupported providers never pay for one.
func (l *Loader) ensureRuntime(ctx context.Context) Runtime {
	l.cellsMu.Lock()
	defer l.cellsMu.Unlock()
	if l.runtime == nil {
		l.runtime = NewWazeroRuntime(ctx)
	}
	return l.runtime
}

// initialize runs the load sequence for one provider with its cell
// locked: read, compile, instantiate, bind exports, start, mark ready.
func (l *Loader) initialize(ctx context.Context, id provider.ID, c *cell) (*Engine, error) {
	c.setState(StateLoading)
	start := time.Now()

	ctx, span := observability.StartSpan(ctx, "engine.load")
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrProvider, string(id))

	eng, err := l.load(ctx, id)
	elapsed := time.Since(start)
	if err != nil {
		c.setState(StateFailed)
		c.lastErr = err
		observability.SetSpanError(ctx, err)
		if l.metrics != nil {
			l.metrics.RecordLoadError(ctx, string(id), errorStage(err))
			l.metrics.RecordLoad(ctx, string(id), "error", elapsed)
		}
		l.log.Error("engine load failed", logger.Fields(
			logger.FieldProvider, string(id),
			logger.FieldError, err.Error(),
			logger.FieldDuration, elapsed.Milliseconds(),
		))
		return nil, err
	}

	c.setState(StateReady)
	c.engine = eng
	c.lastErr = nil
	if l.metrics != nil {
		l.metrics.RecordLoad(ctx, string(id), "ok", elapsed)
	}
	l.log.Info("engine ready", logger.Fields(
		logger.FieldProvider, string(id),
		logger.FieldInstance, eng.InstanceID(),
		logger.FieldDuration, elapsed.Milliseconds(),
	))
	return eng, nil
}

func (l *Loader) load(ctx context.Context, id provider.ID) (*Engine, error) {
	factory, ok := l.registry.Lookup(id)
	if !ok {
		return nil, errors.Internal(nil).WithDetail("reason", "no glue registered for family").WithDetail("provider", string(id))
	}
	glue := factory()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.ArtifactPath(id)
	if !l.fs.Exists(path) {
		return nil, errors.ArtifactNotFound(string(id), path)
	}
	binary, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ArtifactNotFound(string(id), path)
		}
		return nil, errors.Internal(err).WithDetail("path", path)
	}

	rt := l.ensureRuntime(ctx)
	compiled, err := rt.Compile(ctx, binary)
	if err != nil {
		return nil, errors.ModuleLink(string(id), err).WithDetail("stage", "compile")
	}

	instance, err := compiled.Instantiate(ctx, glue)
	if err != nil {
		return nil, errors.ModuleLink(string(id), err).WithDetail("stage", "instantiate")
	}

	exports := instance.Exports()
	if err := glue.BindExports(exports); err != nil {
		_ = instance.Close(ctx)
		return nil, errors.ModuleLink(string(id), err).WithDetail("stage", "bind")
	}

	startFn, ok := exports.Function(StartFunction)
	if !ok {
		_ = instance.Close(ctx)
		return nil, errors.ModuleLink(string(id), nil).WithDetail("stage", "start").WithDetail("missing_export", StartFunction)
	}
	if _, err := startFn.Call(ctx); err != nil {
		_ = instance.Close(ctx)
		return nil, errors.ModuleInit(string(id), err)
	}

	return glue.Engine(), nil
}

func errorStage(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		if stage, ok := appErr.Details["stage"].(string); ok {
			return stage
		}
		return string(appErr.Code)
	}
	return "unknown"
}
