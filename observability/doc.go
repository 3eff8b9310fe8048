// Package observability provides OpenTelemetry tracing and metrics
// integration for the engine loader.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("enginekit"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "engine.load")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("enginekit"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("enginekit"))
//	metrics.RecordLoad(ctx, "postgresql", "ok", duration)
package observability
