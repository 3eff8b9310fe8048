package logger

import "sync"

// Named loggers, so every loader subsystem (engine.loader, the family
// glues, the lifecycle component) logs under a stable component tag
// without threading a *Logger through each constructor.
var (
	namedMu sync.RWMutex
	named   = make(map[string]*Logger)
)

// Register stores a named logger, replacing any previous registration.
// Tests register a silenced logger under the names the code under test
// asks for.
func Register(name string, l *Logger) {
	namedMu.Lock()
	defer namedMu.Unlock()
	named[name] = l
}

// Get returns the logger registered under name. Unregistered names get
// the global logger tagged with name as its component, so callers never
// receive nil even before Init runs.
func Get(name string) *Logger {
	namedMu.RLock()
	l, ok := named[name]
	namedMu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}
