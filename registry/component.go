package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/kynelab/regkit/component"
	"github.com/kynelab/regkit/logger"
)

// ProviderFactory creates a backend Client from a Config. providerCfg holds
// provider-specific configuration (e.g., *consul.Config); providers
// type-assert it to their own config type.
type ProviderFactory func(cfg Config, providerCfg any, log *logger.Logger) (Client, error)

var (
	factoriesMu       sync.RWMutex
	providerFactories = make(map[string]ProviderFactory)
)

// RegisterProviderFactory registers a backend factory for the given provider
// name. Backend packages call this from an init function to make themselves
// available to the Component.
func RegisterProviderFactory(name string, f ProviderFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	providerFactories[name] = f
}

func providerFactory(name string) (ProviderFactory, bool) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	f, ok := providerFactories[name]
	return f, ok
}

// Component wraps a Driver and implements component.Component for lifecycle
// management. Start resolves the configured backend and, when registration
// settings are present, advertises the local instance exactly once.
type Component struct {
	driver      *Driver
	cfg         Config
	providerCfg any
	log         *logger.Logger
	opts        []DriverOption
}

// NewComponent creates a registry Component for use with the component
// registry. providerCfg holds provider-specific configuration.
func NewComponent(cfg Config, providerCfg any, log *logger.Logger, opts ...DriverOption) *Component {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Component{
		cfg:         cfg,
		providerCfg: providerCfg,
		log:         log.WithComponent("registry"),
		opts:        opts,
	}
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// Name returns the component name.
func (c *Component) Name() string { return "registry" }

// Driver returns the underlying Driver, or nil if not started.
func (c *Component) Driver() *Driver { return c.driver }

// Start resolves the configured provider, builds the driver, and performs
// self-registration when configured.
func (c *Component) Start(ctx context.Context) error {
	c.cfg.ApplyDefaults()
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("registry config: %w", err)
	}

	provider := c.cfg.Provider
	if !c.cfg.Enabled {
		provider = "memory"
	}

	f, ok := providerFactory(provider)
	if !ok {
		return fmt.Errorf("unsupported registry provider %q (not registered)", provider)
	}

	client, err := f(c.cfg, c.providerCfg, c.log)
	if err != nil {
		return fmt.Errorf("registry start: %w", err)
	}
	c.driver = NewDriver(client, c.cfg, c.log, c.opts...)

	if reg := c.cfg.Registration; c.cfg.Enabled && reg.ServiceName != "" {
		meta := ServiceMetadata{Protocol: reg.Protocol, ID: reg.ServiceID}
		if !c.driver.IsRegistered(ctx, reg.ServiceName, reg.ServiceAddress, reg.ServicePort, meta) {
			c.driver.Register(ctx, reg.ServiceName, reg.ServiceAddress, reg.ServicePort, meta)
		}
	}

	c.log.Info("registry component started", logger.Fields("provider", provider))
	return nil
}

// Stop releases nothing: the registration cache lives for the process, and
// backends hold no connections that outlive their HTTP clients.
func (c *Component) Stop(ctx context.Context) error {
	c.log.Info("registry component stopping")
	return nil
}

// Health reports whether the driver is wired to a backend.
func (c *Component) Health(ctx context.Context) component.Health {
	if c.driver == nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "registry not initialized",
		}
	}
	if !c.cfg.Enabled {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusHealthy,
			Message: "disabled (memory)",
		}
	}
	if reg := c.cfg.Registration; reg.ServiceName != "" && c.driver.Cache().Len() == 0 {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusDegraded,
			Message: "no registrations recorded",
		}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe returns summary info for the startup display.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "Service Registry",
		Type:    "registry",
		Details: fmt.Sprintf("provider=%s base_uri=%s", c.cfg.Provider, c.cfg.BaseURI),
		Port:    c.cfg.Registration.ServicePort,
	}
}
