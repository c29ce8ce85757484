// Package consul implements the registry.Client transport on HashiCorp
// Consul's agent HTTP API.
package consul

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/hashicorp/consul/api"

	"github.com/kynelab/regkit/logger"
	"github.com/kynelab/regkit/registry"
)

// Provider implements registry.Client using Consul. Because the driver
// addresses registries by base URI per call, the provider keeps one
// api.Client per distinct base URI.
type Provider struct {
	cfg Config
	log *logger.Logger

	mu      sync.Mutex
	clients map[string]*api.Client
}

func init() {
	registry.RegisterProviderFactory("consul", func(_ registry.Config, providerCfg any, log *logger.Logger) (registry.Client, error) {
		cfg, _ := providerCfg.(*Config)
		if cfg == nil {
			cfg = &Config{}
		}
		return NewProvider(*cfg, log)
	})
}

// NewProvider creates a Provider from the given Config.
func NewProvider(cfg Config, log *logger.Logger) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("consul config: %w", err)
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Provider{
		cfg:     cfg,
		log:     log.WithComponent("consul"),
		clients: make(map[string]*api.Client),
	}, nil
}

// HealthRecords returns the current health records for serviceName.
func (p *Provider) HealthRecords(ctx context.Context, baseURI, serviceName string) ([]registry.HealthRecord, error) {
	client, err := p.client(baseURI)
	if err != nil {
		return nil, err
	}

	opts := (&api.QueryOptions{WaitTime: p.cfg.WaitTime}).WithContext(ctx)
	entries, _, err := client.Health().Service(serviceName, "", false, opts)
	if err != nil {
		return nil, fmt.Errorf("consul health %q: %w", serviceName, err)
	}

	records := make([]registry.HealthRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, healthRecord(e))
	}
	return records, nil
}

// Services returns the agent's full service catalog keyed by instance ID.
func (p *Provider) Services(ctx context.Context, baseURI string) (map[string]registry.ServiceEntry, error) {
	client, err := p.client(baseURI)
	if err != nil {
		return nil, err
	}

	opts := (&api.QueryOptions{}).WithContext(ctx)
	services, err := client.Agent().ServicesWithFilterOpts("", opts)
	if err != nil {
		return nil, fmt.Errorf("consul services: %w", err)
	}

	entries := make(map[string]registry.ServiceEntry, len(services))
	for id, svc := range services {
		entries[id] = serviceEntry(svc)
	}
	return entries, nil
}

// Register submits a register-or-update for the given instance.
func (p *Provider) Register(ctx context.Context, baseURI string, reg *registry.Registration) error {
	client, err := p.client(baseURI)
	if err != nil {
		return err
	}

	svc := &api.AgentServiceRegistration{
		ID:      reg.ID,
		Name:    reg.Name,
		Address: reg.Address,
		Port:    reg.Port,
		Meta:    reg.Meta,
	}
	if reg.Check != nil {
		svc.Check = &api.AgentServiceCheck{
			HTTP:                           reg.Check.HTTP,
			TCP:                            reg.Check.TCP,
			Interval:                       reg.Check.Interval,
			DeregisterCriticalServiceAfter: reg.Check.DeregisterCriticalServiceAfter,
		}
	}

	opts := api.ServiceRegisterOpts{}.WithContext(ctx)
	if err := client.Agent().ServiceRegisterOpts(svc, opts); err != nil {
		return fmt.Errorf("consul register %q: %w", reg.Name, err)
	}
	return nil
}

// client returns the api.Client for baseURI, creating it on first use.
// An empty baseURI addresses the configured default agent.
func (p *Provider) client(baseURI string) (*api.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[baseURI]; ok {
		return client, nil
	}

	apiCfg := api.DefaultConfig()
	apiCfg.Address = p.cfg.Address
	apiCfg.Scheme = p.cfg.Scheme
	apiCfg.Token = p.cfg.Token
	if p.cfg.Datacenter != "" {
		apiCfg.Datacenter = p.cfg.Datacenter
	}
	if tls := p.cfg.TLS; tls != nil && tls.Enabled {
		apiCfg.TLSConfig = api.TLSConfig{
			Address:            tls.ServerName,
			CAFile:             tls.CACert,
			CertFile:           tls.ClientCert,
			KeyFile:            tls.ClientKey,
			InsecureSkipVerify: tls.InsecureSkipVerify,
		}
	}

	if baseURI != "" {
		u, err := url.Parse(baseURI)
		if err != nil {
			return nil, fmt.Errorf("consul base uri %q: %w", baseURI, err)
		}
		if u.Host != "" {
			apiCfg.Address = u.Host
		}
		if u.Scheme != "" {
			apiCfg.Scheme = u.Scheme
		}
	}

	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("consul client: %w", err)
	}
	p.clients[baseURI] = client
	return client, nil
}

func healthRecord(e *api.ServiceEntry) registry.HealthRecord {
	checks := make([]registry.CheckResult, 0, len(e.Checks))
	for _, chk := range e.Checks {
		checks = append(checks, registry.CheckResult{Status: chk.Status})
	}
	return registry.HealthRecord{
		Service: registry.ServiceEntry{
			ID:      e.Service.ID,
			Service: e.Service.Service,
			Address: e.Service.Address,
			Port:    e.Service.Port,
			Meta:    e.Service.Meta,
		},
		Checks: checks,
	}
}

func serviceEntry(svc *api.AgentService) registry.ServiceEntry {
	return registry.ServiceEntry{
		ID:      svc.ID,
		Service: svc.Service,
		Address: svc.Address,
		Port:    svc.Port,
		Meta:    svc.Meta,
	}
}

// Compile-time check.
var _ registry.Client = (*Provider)(nil)
