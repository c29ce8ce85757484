package consul

import (
	"testing"

	"github.com/hashicorp/consul/api"

	"github.com/kynelab/regkit/registry"
)

func TestHealthRecord_Mapping(t *testing.T) {
	entry := &api.ServiceEntry{
		Service: &api.AgentService{
			ID:      "order-service-0",
			Service: "order-service",
			Address: "10.0.0.5",
			Port:    9000,
			Meta:    map[string]string{"protocol": "jsonrpc-http"},
		},
		Checks: api.HealthChecks{
			{Status: api.HealthPassing},
			{Status: api.HealthCritical},
		},
	}

	rec := healthRecord(entry)
	if rec.Service.ID != "order-service-0" || rec.Service.Port != 9000 {
		t.Errorf("service mapping = %+v", rec.Service)
	}
	if p, ok := rec.Service.Protocol(); !ok || p != "jsonrpc-http" {
		t.Errorf("protocol = %q, ok = %v", p, ok)
	}
	if len(rec.Checks) != 2 {
		t.Fatalf("checks = %d, want 2", len(rec.Checks))
	}
	if rec.Checks[0].Status != registry.StatusPassing {
		t.Errorf("first check status = %q", rec.Checks[0].Status)
	}
	if rec.Checks[1].Status != "critical" {
		t.Errorf("second check status = %q", rec.Checks[1].Status)
	}
}

func TestServiceEntry_Mapping(t *testing.T) {
	svc := &api.AgentService{
		ID:      "x-7",
		Service: "x",
		Address: "10.1.1.1",
		Port:    8080,
	}
	entry := serviceEntry(svc)
	if entry.ID != "x-7" || entry.Service != "x" || entry.Address != "10.1.1.1" || entry.Port != 8080 {
		t.Errorf("entry = %+v", entry)
	}
	if _, ok := entry.Protocol(); ok {
		t.Error("entry without meta should report no protocol tag")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", func() Config { c := Config{}; c.ApplyDefaults(); return c }(), false},
		{"bad scheme", Config{Address: "localhost:8500", Scheme: "ftp"}, true},
		{"tls without https", Config{Address: "localhost:8500", Scheme: "http", TLS: &TLSConfig{Enabled: true}}, true},
		{"tls with https", Config{Address: "localhost:8500", Scheme: "https", TLS: &TLSConfig{Enabled: true}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestProvider_ClientPerBaseURI(t *testing.T) {
	p, err := NewProvider(Config{}, nil)
	if err != nil {
		t.Fatalf("NewProvider() failed: %v", err)
	}

	a, err := p.client("http://10.0.0.1:8500")
	if err != nil {
		t.Fatalf("client() failed: %v", err)
	}
	b, err := p.client("http://10.0.0.2:8500")
	if err != nil {
		t.Fatalf("client() failed: %v", err)
	}
	if a == b {
		t.Error("distinct base URIs should get distinct clients")
	}

	again, err := p.client("http://10.0.0.1:8500")
	if err != nil {
		t.Fatalf("client() failed: %v", err)
	}
	if a != again {
		t.Error("same base URI should reuse the cached client")
	}
}

func TestProvider_ClientBadBaseURI(t *testing.T) {
	p, err := NewProvider(Config{}, nil)
	if err != nil {
		t.Fatalf("NewProvider() failed: %v", err)
	}
	if _, err := p.client("://not-a-uri"); err == nil {
		t.Error("expected error for malformed base URI")
	}
}
