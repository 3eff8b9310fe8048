package engine

import (
	"sort"

	"github.com/skillsenselab/enginekit/provider"
)

// Registry is the static mapping from engine family to glue factory.
// The supported families are a closed set, so the registry is built
// once at wiring time and never mutated afterwards; the loader only
// reads it.
type Registry map[provider.ID]GlueFactory

// NewRegistry builds a registry from family/factory pairs.
func NewRegistry() Registry {
	return make(Registry)
}

// With adds a factory for a family and returns the registry for
// chaining during wiring.
func (r Registry) With(id provider.ID, factory GlueFactory) Registry {
	r[id] = factory
	return r
}

// Lookup returns the glue factory for a family.
func (r Registry) Lookup(id provider.ID) (GlueFactory, bool) {
	factory, ok := r[id]
	return factory, ok
}

// Families returns the registered families in sorted order.
func (r Registry) Families() []provider.ID {
	ids := make([]provider.ID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
