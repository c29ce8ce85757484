// Package testutil provides testing infrastructure for regkit components.
//
// It extends the component lifecycle pattern with testing-specific
// capabilities: setup with automatic cleanup, state reset between test
// cases, and snapshot/restore for tests that mutate a shared catalog.
//
// Basic usage with automatic cleanup:
//
//	func TestMyFeature(t *testing.T) {
//	    testutil.T(t).Setup(registryComponent)
//	    // component is stopped when the test ends
//	}
//
// Manual cleanup:
//
//	cleanup, err := testutil.Setup(registryComponent)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer cleanup()
//
// Managing multiple components:
//
//	manager := testutil.NewManager(ctx)
//	manager.Add(registryComponent)
//	manager.StartAll()
//	defer manager.Cleanup()
//
// All Manager operations are safe for concurrent use. Individual
// TestComponent implementations are responsible for their own locking.
package testutil
