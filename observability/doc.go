// Package observability provides OpenTelemetry tracing and metrics for regkit.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("order-service"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("order-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("regkit"))
//	metrics.RecordOperation(ctx, "order-service", "registry.register", "ok", elapsed)
package observability
