package engine

import (
	"context"

	"github.com/skillsenselab/enginekit/component"
	"github.com/skillsenselab/enginekit/logger"
)

// ComponentName is the loader's registration name in a component registry.
const ComponentName = "engine-loader"

// Component wraps a Loader in the component lifecycle so applications
// can preload engines at startup and surface per-provider state in
// health checks.
type Component struct {
	loader *Loader
	log    *logger.Logger
}

// NewComponent creates the lifecycle component for a loader.
func NewComponent(loader *Loader) *Component {
	return &Component{
		loader: loader,
		log:    logger.Get(ComponentName),
	}
}

// Loader returns the wrapped loader.
func (c *Component) Loader() *Loader { return c.loader }

// Name returns the component registration name.
func (c *Component) Name() string { return ComponentName }

// Start resolves every preload provider. Engines that are not listed
// stay lazy and load on first use.
func (c *Component) Start(ctx context.Context) error {
	for _, name := range c.loader.cfg.Preload {
		if _, err := c.loader.Resolve(ctx, name); err != nil {
			return err
		}
		c.log.Debug("engine preloaded", logger.Fields(logger.FieldProvider, name))
	}
	return nil
}

// Stop releases the loader's runtime.
func (c *Component) Stop(ctx context.Context) error {
	return c.loader.Close(ctx)
}

// Health reports per-provider engine states. Any failed provider
// degrades the component; failures are retryable so the component is
// never reported unhealthy outright.
func (c *Component) Health(ctx context.Context) component.Health {
	states := c.loader.States()

	health := component.Health{
		Name:    ComponentName,
		Status:  component.StatusHealthy,
		Details: make(map[string]string, len(states)),
	}
	for id, state := range states {
		health.Details[string(id)] = string(state)
		if state == StateFailed {
			health.Status = component.StatusDegraded
			health.Message = "one or more engines failed to load"
		}
	}
	return health
}
