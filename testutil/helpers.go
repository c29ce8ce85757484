package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// CleanupFunc stops a component started by Setup.
type CleanupFunc func() error

// Setup starts a test component and returns a cleanup function to defer.
func Setup(component TestComponent) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), component)
}

// SetupWithContext starts a test component with a custom context.
func SetupWithContext(ctx context.Context, component TestComponent) (CleanupFunc, error) {
	if err := component.Start(ctx); err != nil {
		return nil, err
	}
	return func() error { return component.Stop(ctx) }, nil
}

// Teardown stops a test component. Inverse of Setup, provided for symmetry.
func Teardown(component TestComponent) error {
	return TeardownWithContext(context.Background(), component)
}

// TeardownWithContext stops a test component with a custom context.
func TeardownWithContext(ctx context.Context, component TestComponent) error {
	return component.Stop(ctx)
}

// ResetComponent resets a test component to its initial state.
func ResetComponent(component TestComponent) error {
	return component.Reset(context.Background())
}

// UniqueServiceName returns a service name that is unique across test runs.
// Useful when tests share a live registry and leftover registrations from a
// previous run would otherwise collide with instance ID allocation.
func UniqueServiceName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// THelper integrates testutil with the testing package.
type THelper struct {
	t   *testing.T
	ctx context.Context
}

// T wraps a testing.T so components started through the helper are stopped
// automatically when the test ends.
func T(t *testing.T) *THelper {
	return &THelper{t: t, ctx: context.Background()}
}

// WithContext sets a custom context for the helper.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Setup starts a component and registers cleanup with testing.T.
func (h *THelper) Setup(component TestComponent) {
	h.t.Helper()
	if err := component.Start(h.ctx); err != nil {
		h.t.Fatalf("failed to start component %s: %v", component.Name(), err)
	}
	h.t.Cleanup(func() {
		if err := component.Stop(h.ctx); err != nil {
			h.t.Errorf("failed to stop component %s: %v", component.Name(), err)
		}
	})
}

// Reset resets a component to its initial state.
func (h *THelper) Reset(component TestComponent) {
	h.t.Helper()
	if err := component.Reset(h.ctx); err != nil {
		h.t.Fatalf("failed to reset component %s: %v", component.Name(), err)
	}
}

// Snapshot captures the current state of a component.
func (h *THelper) Snapshot(component TestComponent) interface{} {
	h.t.Helper()
	snapshot, err := component.Snapshot(h.ctx)
	if err != nil {
		h.t.Fatalf("failed to snapshot component %s: %v", component.Name(), err)
	}
	return snapshot
}

// Restore returns a component to a previously captured state.
func (h *THelper) Restore(component TestComponent, snapshot interface{}) {
	h.t.Helper()
	if err := component.Restore(h.ctx, snapshot); err != nil {
		h.t.Fatalf("failed to restore component %s: %v", component.Name(), err)
	}
}
