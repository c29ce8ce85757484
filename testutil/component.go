package testutil

import (
	"context"

	"github.com/kynelab/regkit/component"
)

// TestComponent extends component.Component with testing-specific lifecycle
// methods. Test components participate in the component registry like any
// other component and additionally support Reset/Snapshot/Restore for test
// isolation.
type TestComponent interface {
	component.Component

	// Reset restores the component to its initial state, typically called
	// between test cases.
	Reset(ctx context.Context) error

	// Snapshot captures the current state. The returned value can be passed
	// to Restore to return to this state.
	Snapshot(ctx context.Context) (interface{}, error)

	// Restore returns the component to a state captured by Snapshot.
	Restore(ctx context.Context, snapshot interface{}) error
}
