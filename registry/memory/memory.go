// Package memory provides an in-memory registry backend for development and
// tests. The catalog lives in process memory; baseURI arguments are ignored
// since there is only one registry to address.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/kynelab/regkit/logger"
	"github.com/kynelab/regkit/registry"
)

// SeedEndpoint describes a pre-populated service instance.
type SeedEndpoint struct {
	Name     string `yaml:"name" mapstructure:"name"`
	Address  string `yaml:"address" mapstructure:"address"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Protocol string `yaml:"protocol" mapstructure:"protocol"`
	Healthy  bool   `yaml:"healthy" mapstructure:"healthy"`
}

// Config holds memory-backend configuration.
type Config struct {
	// Endpoints pre-populates the catalog.
	Endpoints []SeedEndpoint `yaml:"endpoints" mapstructure:"endpoints"`
}

// Provider implements registry.Client with an in-memory catalog.
type Provider struct {
	mu      sync.RWMutex
	entries map[string]registry.ServiceEntry // keyed by instance ID
	checks  map[string][]registry.CheckResult
}

func init() {
	registry.RegisterProviderFactory("memory", func(_ registry.Config, providerCfg any, _ *logger.Logger) (registry.Client, error) {
		cfg, _ := providerCfg.(*Config)
		if cfg == nil {
			cfg = &Config{}
		}
		return NewProvider(cfg.Endpoints), nil
	})
}

// NewProvider creates a Provider pre-populated with the given endpoints.
// Seeded instances get IDs of the form "<name>-<address>-<port>".
func NewProvider(endpoints []SeedEndpoint) *Provider {
	p := &Provider{
		entries: make(map[string]registry.ServiceEntry),
		checks:  make(map[string][]registry.CheckResult),
	}
	for _, ep := range endpoints {
		id := fmt.Sprintf("%s-%s-%d", ep.Name, ep.Address, ep.Port)
		entry := registry.ServiceEntry{
			ID:      id,
			Service: ep.Name,
			Address: ep.Address,
			Port:    ep.Port,
		}
		if ep.Protocol != "" {
			entry.Meta = map[string]string{registry.MetaProtocol: ep.Protocol}
		}
		p.entries[id] = entry

		status := registry.StatusPassing
		if !ep.Healthy {
			status = "critical"
		}
		p.checks[id] = []registry.CheckResult{{Status: status}}
	}
	return p
}

// HealthRecords returns the catalog entries registered under serviceName
// paired with their check results.
func (p *Provider) HealthRecords(_ context.Context, _ string, serviceName string) ([]registry.HealthRecord, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	records := make([]registry.HealthRecord, 0)
	for id, entry := range p.entries {
		if entry.Service != serviceName {
			continue
		}
		records = append(records, registry.HealthRecord{
			Service: entry,
			Checks:  append([]registry.CheckResult(nil), p.checks[id]...),
		})
	}
	return records, nil
}

// Services returns a copy of the full catalog keyed by instance ID.
func (p *Provider) Services(_ context.Context, _ string) (map[string]registry.ServiceEntry, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]registry.ServiceEntry, len(p.entries))
	for id, entry := range p.entries {
		out[id] = entry
	}
	return out, nil
}

// Register stores the registration. Instances registered at runtime report a
// passing check when the registration carried one, and no checks otherwise.
func (p *Provider) Register(_ context.Context, _ string, reg *registry.Registration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	meta := make(map[string]string, len(reg.Meta))
	for k, v := range reg.Meta {
		meta[k] = v
	}
	p.entries[reg.ID] = registry.ServiceEntry{
		ID:      reg.ID,
		Service: reg.Name,
		Address: reg.Address,
		Port:    reg.Port,
		Meta:    meta,
	}
	if reg.Check != nil {
		p.checks[reg.ID] = []registry.CheckResult{{Status: registry.StatusPassing}}
	} else {
		delete(p.checks, reg.ID)
	}
	return nil
}

// SetCheckStatus overrides the check results for an instance. Test helper.
func (p *Provider) SetCheckStatus(instanceID string, statuses ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	checks := make([]registry.CheckResult, 0, len(statuses))
	for _, s := range statuses {
		checks = append(checks, registry.CheckResult{Status: s})
	}
	p.checks[instanceID] = checks
}

// Remove deletes an instance from the catalog. Test helper.
func (p *Provider) Remove(instanceID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, instanceID)
	delete(p.checks, instanceID)
}

// Compile-time check.
var _ registry.Client = (*Provider)(nil)
