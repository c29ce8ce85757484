package registry

import (
	"fmt"
	"time"

	"github.com/kynelab/regkit/validation"
)

// CheckConfig holds the registry-managed health-check settings applied to
// every registration that carries a check.
type CheckConfig struct {
	// Interval is how often the registry probes the instance.
	Interval string `yaml:"interval" mapstructure:"interval"`

	// DeregisterCriticalServiceAfter removes the instance after being
	// critical for this duration.
	DeregisterCriticalServiceAfter string `yaml:"deregister_critical_service_after" mapstructure:"deregister_critical_service_after"`
}

// RegistrationConfig describes the local instance the component advertises on
// Start. Left empty, the component performs no self-registration.
type RegistrationConfig struct {
	ServiceName    string `yaml:"service_name" mapstructure:"service_name"`
	ServiceID      string `yaml:"service_id" mapstructure:"service_id"`
	ServiceAddress string `yaml:"service_address" mapstructure:"service_address"`
	ServicePort    int    `yaml:"service_port" mapstructure:"service_port"`
	Protocol       string `yaml:"protocol" mapstructure:"protocol"`
}

// Config holds driver configuration.
type Config struct {
	// Enabled controls whether the registry component is active.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Provider selects the backend, e.g. "consul" or "memory". The name must
	// match a registered provider factory.
	Provider string `yaml:"provider" mapstructure:"provider"`

	// BaseURI is the default registry address used by Register and
	// IsRegistered. DiscoverNodes takes an explicit base URI per call.
	BaseURI string `yaml:"base_uri" mapstructure:"base_uri"`

	// Check holds health-check settings.
	Check CheckConfig `yaml:"check" mapstructure:"check"`

	// Registration describes the local instance to advertise on Start.
	Registration RegistrationConfig `yaml:"registration" mapstructure:"registration"`
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Provider == "" {
		c.Provider = "memory"
	}
	if c.Check.Interval == "" {
		c.Check.Interval = "1s"
	}
	if c.Check.DeregisterCriticalServiceAfter == "" {
		c.Check.DeregisterCriticalServiceAfter = "90m"
	}
}

// Validate checks that required fields are present and consistent.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if _, err := time.ParseDuration(c.Check.Interval); err != nil {
		return fmt.Errorf("registry.check.interval: %w", err)
	}
	if _, err := time.ParseDuration(c.Check.DeregisterCriticalServiceAfter); err != nil {
		return fmt.Errorf("registry.check.deregister_critical_service_after: %w", err)
	}
	if c.Registration.ServiceName != "" && c.Registration.ServicePort <= 0 {
		return fmt.Errorf("registry.registration.service_port must be > 0 when self-registration is configured")
	}
	return nil
}
