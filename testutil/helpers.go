package testutil

import (
	"context"
	"testing"

	"github.com/skillsenselab/enginekit/component"
)

// CleanupFunc stops a component started by Setup.
type CleanupFunc func() error

// Setup starts a component and returns a cleanup function, typically
// called with defer.
func Setup(c component.Component) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), c)
}

// SetupWithContext starts a component with a custom context.
func SetupWithContext(ctx context.Context, c component.Component) (CleanupFunc, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}
	return func() error {
		return c.Stop(ctx)
	}, nil
}

// THelper integrates component lifecycle with testing.T cleanup.
type THelper struct {
	t   *testing.T
	ctx context.Context
}

// T wraps a testing.T so started components are stopped automatically
// when the test ends.
//
//	testutil.T(t).Setup(engineComponent)
func T(t *testing.T) *THelper {
	return &THelper{
		t:   t,
		ctx: context.Background(),
	}
}

// WithContext sets a custom context for the helper.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Setup starts a component and registers its stop with t.Cleanup.
func (h *THelper) Setup(c component.Component) {
	h.t.Helper()
	if err := c.Start(h.ctx); err != nil {
		h.t.Fatalf("failed to start component %s: %v", c.Name(), err)
	}
	h.t.Cleanup(func() {
		if err := c.Stop(h.ctx); err != nil {
			h.t.Errorf("failed to stop component %s: %v", c.Name(), err)
		}
	})
}
