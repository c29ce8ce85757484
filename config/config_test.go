package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"DEBUG", []string{"debug"}},
		{"CHECK_INTERVAL", []string{"check_interval", "check.interval"}},
		{
			"REGISTRY_CHECK_INTERVAL",
			[]string{
				"registry_check_interval",
				"registry.check.interval",
				"registry.check_interval",
				"registry.check.interval",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := envKeyVariants(tc.in)
			for _, want := range tc.want {
				found := false
				for _, g := range got {
					if g == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("envKeyVariants(%q) = %v, missing %q", tc.in, got, want)
				}
			}
		})
	}
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Registry struct {
		BaseURI string `mapstructure:"base_uri"`
		Check   struct {
			Interval string `mapstructure:"interval"`
		} `mapstructure:"check"`
	} `mapstructure:"registry"`
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`
name: order-service
environment: production
registry:
  base_uri: http://127.0.0.1:8500
  check:
    interval: 5s
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	if err := LoadConfig("order-service", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Name != "order-service" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Registry.BaseURI != "http://127.0.0.1:8500" {
		t.Errorf("BaseURI = %q", cfg.Registry.BaseURI)
	}
	if cfg.Registry.Check.Interval != "5s" {
		t.Errorf("Check.Interval = %q", cfg.Registry.Check.Interval)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("registry:\n  base_uri: http://file:8500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REGKIT_REGISTRY_BASE_URI", "http://env:8500")

	var cfg testConfig
	if err := LoadConfig("order-service", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Registry.BaseURI != "http://env:8500" {
		t.Errorf("BaseURI = %q, want env value", cfg.Registry.BaseURI)
	}
}

func TestServiceConfig_Validate(t *testing.T) {
	cfg := ServiceConfig{Name: "svc"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cfg = ServiceConfig{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing name")
	}

	cfg = ServiceConfig{Name: "svc", Environment: "qa"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown environment")
	}
}
