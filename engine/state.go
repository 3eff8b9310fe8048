package engine

// State is the lifecycle state of one provider's engine.
type State string

const (
	// StateUnresolved means no load has been attempted yet.
	StateUnresolved State = "unresolved"
	// StateLoading means an initialization is in flight.
	StateLoading State = "loading"
	// StateReady means the engine is linked, started, and cached.
	// Ready is terminal; the engine is never reloaded or evicted.
	StateReady State = "ready"
	// StateFailed means the last load attempt failed. Failed is not
	// terminal; a later Resolve re-attempts the load.
	StateFailed State = "failed"
)
