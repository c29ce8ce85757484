package consul

import (
	"fmt"
	"time"
)

// Config holds Consul connection settings.
type Config struct {
	// Address is the Consul agent address (default: localhost:8500).
	Address string `yaml:"address" mapstructure:"address" validate:"omitempty,hostname_port"`

	// Scheme is the URI scheme (http/https).
	Scheme string `yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`

	// Datacenter to use.
	Datacenter string `yaml:"datacenter" mapstructure:"datacenter"`

	// Token is the ACL token for authentication.
	Token string `yaml:"token" mapstructure:"token"`

	// WaitTime limits how long a blocking query is held open.
	WaitTime time.Duration `yaml:"wait_time" mapstructure:"wait_time"`

	// TLS configuration.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// TLSConfig holds TLS configuration for Consul connections.
type TLSConfig struct {
	// Enabled toggles TLS.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// CACert is the path to the CA certificate.
	CACert string `yaml:"ca_cert" mapstructure:"ca_cert"`

	// ClientCert is the path to the client certificate.
	ClientCert string `yaml:"client_cert" mapstructure:"client_cert"`

	// ClientKey is the path to the client key.
	ClientKey string `yaml:"client_key" mapstructure:"client_key"`

	// InsecureSkipVerify skips TLS verification (not recommended for production).
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`

	// ServerName is the server name for TLS verification.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

// ApplyDefaults sets sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Address == "" {
		c.Address = "localhost:8500"
	}
	if c.Scheme == "" {
		c.Scheme = "http"
	}
}

// Validate checks if the Consul configuration is valid.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("consul address is required")
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("consul scheme must be 'http' or 'https', got '%s'", c.Scheme)
	}
	if c.TLS != nil && c.TLS.Enabled && c.Scheme != "https" {
		return fmt.Errorf("TLS enabled but scheme is not https")
	}
	return nil
}
