package registry

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Provider != "memory" {
		t.Errorf("Provider = %q, want memory", cfg.Provider)
	}
	if cfg.Check.Interval != "1s" {
		t.Errorf("Interval = %q, want 1s", cfg.Check.Interval)
	}
	if cfg.Check.DeregisterCriticalServiceAfter != "90m" {
		t.Errorf("DeregisterCriticalServiceAfter = %q, want 90m", cfg.Check.DeregisterCriticalServiceAfter)
	}
}

func TestConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Provider: "consul",
		Check:    CheckConfig{Interval: "5s", DeregisterCriticalServiceAfter: "1h"},
	}
	cfg.ApplyDefaults()

	if cfg.Provider != "consul" || cfg.Check.Interval != "5s" || cfg.Check.DeregisterCriticalServiceAfter != "1h" {
		t.Errorf("defaults overwrote explicit values: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := Config{Enabled: true}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad interval",
			mutate:  func(c *Config) { c.Check.Interval = "soon" },
			wantErr: true,
		},
		{
			name:    "bad deregister window",
			mutate:  func(c *Config) { c.Check.DeregisterCriticalServiceAfter = "forever" },
			wantErr: true,
		},
		{
			name: "self-registration without port",
			mutate: func(c *Config) {
				c.Registration.ServiceName = "order-service"
				c.Registration.ServicePort = 0
			},
			wantErr: true,
		},
		{
			name: "complete self-registration",
			mutate: func(c *Config) {
				c.Registration = RegistrationConfig{
					ServiceName:    "order-service",
					ServiceAddress: "10.0.0.5",
					ServicePort:    9000,
					Protocol:       "jsonrpc-http",
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_SkippedWhenDisabled(t *testing.T) {
	cfg := Config{Enabled: false, Provider: "etcd", Check: CheckConfig{Interval: "soon"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled config should not be validated, got %v", err)
	}
}
