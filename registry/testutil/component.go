// Package testutil provides an in-memory registry test component. It
// implements component.Component, testutil.TestComponent, and
// registry.Client, so tests can wire it anywhere a registry backend is
// expected and reset or snapshot the catalog between cases.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/kynelab/regkit/component"
	"github.com/kynelab/regkit/registry"
	"github.com/kynelab/regkit/testutil"
)

// Instance describes one catalog entry managed by the test component.
type Instance struct {
	ID       string
	Name     string
	Address  string
	Port     int
	Protocol string
	Statuses []string
}

// Component is an in-memory registry backend for tests.
type Component struct {
	mu        sync.RWMutex
	instances map[string]Instance // keyed by instance ID
	started   bool
}

var _ component.Component = (*Component)(nil)
var _ testutil.TestComponent = (*Component)(nil)
var _ registry.Client = (*Component)(nil)

// NewComponent creates an empty in-memory registry test component.
func NewComponent() *Component {
	return &Component{instances: make(map[string]Instance)}
}

// AddInstance seeds a catalog entry. Callable before or after Start. An
// instance with no statuses reports no checks and is treated as healthy by
// discovery.
func (c *Component) AddInstance(inst Instance) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if inst.ID == "" {
		inst.ID = fmt.Sprintf("%s-%s-%d", inst.Name, inst.Address, inst.Port)
	}
	c.instances[inst.ID] = inst
}

// SetStatuses replaces the check statuses for an instance.
func (c *Component) SetStatuses(instanceID string, statuses ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inst, ok := c.instances[instanceID]
	if !ok {
		return
	}
	inst.Statuses = statuses
	c.instances[instanceID] = inst
}

// Remove deletes an instance from the catalog.
func (c *Component) Remove(instanceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, instanceID)
}

// InstanceIDs returns the IDs of all catalog entries, in no particular order.
func (c *Component) InstanceIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.instances))
	for id := range c.instances {
		ids = append(ids, id)
	}
	return ids
}

// --- component.Component ---

func (c *Component) Name() string { return "registry-test" }

func (c *Component) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return fmt.Errorf("component already started")
	}
	c.started = true
	return nil
}

func (c *Component) Stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = false
	return nil
}

func (c *Component) Health(_ context.Context) component.Health {
	c.mu.RLock()
	defer c.mu.RUnlock()
	status := component.StatusHealthy
	message := fmt.Sprintf("%d instances", len(c.instances))
	if !c.started {
		status = component.StatusUnhealthy
		message = "not started"
	}
	return component.Health{Name: c.Name(), Status: status, Message: message}
}

// --- testutil.TestComponent ---

// Reset clears the catalog.
func (c *Component) Reset(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[string]Instance)
	return nil
}

// Snapshot captures the current catalog.
func (c *Component) Snapshot(_ context.Context) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := make(map[string]Instance, len(c.instances))
	for id, inst := range c.instances {
		snap[id] = inst
	}
	return snap, nil
}

// Restore replaces the catalog with a snapshot taken by Snapshot.
func (c *Component) Restore(_ context.Context, snapshot interface{}) error {
	snap, ok := snapshot.(map[string]Instance)
	if !ok {
		return fmt.Errorf("invalid snapshot type %T", snapshot)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[string]Instance, len(snap))
	for id, inst := range snap {
		c.instances[id] = inst
	}
	return nil
}

// --- registry.Client ---

// HealthRecords returns the catalog entries for serviceName with their
// check results. The baseURI argument is ignored.
func (c *Component) HealthRecords(_ context.Context, _, serviceName string) ([]registry.HealthRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]registry.HealthRecord, 0)
	for _, inst := range c.instances {
		if inst.Name != serviceName {
			continue
		}
		checks := make([]registry.CheckResult, 0, len(inst.Statuses))
		for _, s := range inst.Statuses {
			checks = append(checks, registry.CheckResult{Status: s})
		}
		records = append(records, registry.HealthRecord{
			Service: c.entry(inst),
			Checks:  checks,
		})
	}
	return records, nil
}

// Services returns the full catalog keyed by instance ID.
func (c *Component) Services(_ context.Context, _ string) (map[string]registry.ServiceEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]registry.ServiceEntry, len(c.instances))
	for id, inst := range c.instances {
		out[id] = c.entry(inst)
	}
	return out, nil
}

// Register stores the registration with a passing check.
func (c *Component) Register(_ context.Context, _ string, reg *registry.Registration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	inst := Instance{
		ID:      reg.ID,
		Name:    reg.Name,
		Address: reg.Address,
		Port:    reg.Port,
	}
	if reg.Meta != nil {
		inst.Protocol = reg.Meta[registry.MetaProtocol]
	}
	if reg.Check != nil {
		inst.Statuses = []string{registry.StatusPassing}
	}
	c.instances[inst.ID] = inst
	return nil
}

func (c *Component) entry(inst Instance) registry.ServiceEntry {
	entry := registry.ServiceEntry{
		ID:      inst.ID,
		Service: inst.Name,
		Address: inst.Address,
		Port:    inst.Port,
	}
	if inst.Protocol != "" {
		entry.Meta = map[string]string{registry.MetaProtocol: inst.Protocol}
	}
	return entry
}
