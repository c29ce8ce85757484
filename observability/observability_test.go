package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetrics(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() failed: %v", err)
	}

	// Instruments from the noop provider accept records without panicking.
	ctx := context.Background()
	metrics.RecordOperation(ctx, "order-service", "registry.register", "ok", 10*time.Millisecond)
	metrics.RecordError(ctx, "TRANSPORT_FAILURE", "registry.register")
	metrics.RecordDiscoveredNodes(ctx, "order-service", 3)
}

func TestDefaultConfigs(t *testing.T) {
	mc := DefaultMeterConfig("svc")
	if mc.ServiceName != "svc" || mc.Endpoint == "" {
		t.Errorf("DefaultMeterConfig() = %+v", mc)
	}

	tc := DefaultTracerConfig("svc")
	if tc.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v, want 1.0", tc.SampleRate)
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "registry.test")
	if span == nil {
		t.Fatal("StartSpan returned nil span")
	}
	span.End()
	_ = ctx
}
