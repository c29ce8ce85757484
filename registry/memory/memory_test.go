package memory

import (
	"context"
	"testing"

	"github.com/kynelab/regkit/registry"
)

func seedProvider() *Provider {
	return NewProvider([]SeedEndpoint{
		{Name: "order-service", Address: "10.0.0.1", Port: 9000, Protocol: "jsonrpc-http", Healthy: true},
		{Name: "order-service", Address: "10.0.0.2", Port: 9000, Protocol: "jsonrpc-http", Healthy: false},
		{Name: "billing", Address: "10.0.0.3", Port: 9100, Protocol: "jsonrpc", Healthy: true},
	})
}

func TestProvider_HealthRecords(t *testing.T) {
	p := seedProvider()

	records, err := p.HealthRecords(context.Background(), "", "order-service")
	if err != nil {
		t.Fatalf("HealthRecords() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	statuses := map[string]string{}
	for _, rec := range records {
		statuses[rec.Service.Address] = rec.Checks[0].Status
	}
	if statuses["10.0.0.1"] != registry.StatusPassing {
		t.Errorf("10.0.0.1 status = %q, want passing", statuses["10.0.0.1"])
	}
	if statuses["10.0.0.2"] != "critical" {
		t.Errorf("10.0.0.2 status = %q, want critical", statuses["10.0.0.2"])
	}
}

func TestProvider_HealthRecords_UnknownService(t *testing.T) {
	records, err := seedProvider().HealthRecords(context.Background(), "", "missing")
	if err != nil {
		t.Fatalf("HealthRecords() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
}

func TestProvider_Services(t *testing.T) {
	entries, err := seedProvider().Services(context.Background(), "")
	if err != nil {
		t.Fatalf("Services() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	entry, ok := entries["order-service-10.0.0.1-9000"]
	if !ok {
		t.Fatalf("seeded instance missing from catalog: %v", entries)
	}
	if p, _ := entry.Protocol(); p != "jsonrpc-http" {
		t.Errorf("protocol = %q", p)
	}
}

func TestProvider_Register(t *testing.T) {
	p := NewProvider(nil)

	err := p.Register(context.Background(), "", &registry.Registration{
		Name:    "order-service",
		ID:      "order-service-0",
		Address: "10.0.0.5",
		Port:    9000,
		Meta:    map[string]string{registry.MetaProtocol: "jsonrpc-http"},
		Check:   &registry.CheckDefinition{HTTP: "http://10.0.0.5:9000/", Interval: "1s"},
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	records, err := p.HealthRecords(context.Background(), "", "order-service")
	if err != nil {
		t.Fatalf("HealthRecords() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if len(records[0].Checks) != 1 || records[0].Checks[0].Status != registry.StatusPassing {
		t.Errorf("checks = %v, want one passing check", records[0].Checks)
	}
}

func TestProvider_Register_WithoutCheck(t *testing.T) {
	p := NewProvider(nil)
	p.Register(context.Background(), "", &registry.Registration{
		Name: "svc", ID: "svc-0", Address: "10.0.0.5", Port: 9000,
	})

	records, _ := p.HealthRecords(context.Background(), "", "svc")
	if len(records) != 1 || len(records[0].Checks) != 0 {
		t.Errorf("records = %+v, want one record with no checks", records)
	}
}

func TestProvider_SetCheckStatusAndRemove(t *testing.T) {
	p := seedProvider()

	p.SetCheckStatus("order-service-10.0.0.1-9000", "warning")
	records, _ := p.HealthRecords(context.Background(), "", "order-service")
	found := false
	for _, rec := range records {
		if rec.Service.Address == "10.0.0.1" {
			found = true
			if rec.Checks[0].Status != "warning" {
				t.Errorf("status = %q, want warning", rec.Checks[0].Status)
			}
		}
	}
	if !found {
		t.Fatal("instance disappeared after SetCheckStatus")
	}

	p.Remove("order-service-10.0.0.1-9000")
	entries, _ := p.Services(context.Background(), "")
	if _, ok := entries["order-service-10.0.0.1-9000"]; ok {
		t.Error("instance still listed after Remove")
	}
}
