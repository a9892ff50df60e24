package common

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	metric2 "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// InitInstrumentation setups otel.
// With an empty exporterEndpoint only the custom meters are created, on top of the global no-op provider.
func InitInstrumentation(serviceName, serviceVersion, serviceEnvironment, exporterEndpoint string) (func(ctx context.Context), error) {

	if exporterEndpoint == "" {
		if err := createCustomMeters(serviceName, serviceVersion, serviceEnvironment); err != nil {
			return nil, fmt.Errorf("failed to create custom meters: %w", err)
		}
		return func(context.Context) {}, nil
	}

	res := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
		semconv.DeploymentEnvironmentName(serviceEnvironment),
	)

	// Metric exporter
	metricExporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(exporterEndpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	// Metric periodic reader
	metricPeriodicReader := metric.NewPeriodicReader(metricExporter, metric.WithInterval(30*time.Second))

	// Metric provider
	metricsProvider := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metricPeriodicReader),
	)

	// Register metric provider
	otel.SetMeterProvider(metricsProvider)

	err = createCustomMeters(serviceName, serviceVersion, serviceEnvironment)
	if err != nil {
		_ = metricsProvider.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create custom meters: %w", err)
	}

	// Trace exporter
	traceExporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(exporterEndpoint),
	)
	if err != nil {
		_ = metricsProvider.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	// Trace provider
	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)

	// Register trace provider
	otel.SetTracerProvider(traceProvider)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) {
		_ = metricsProvider.Shutdown(ctx)
		_ = traceProvider.Shutdown(ctx)
	}, nil
}

// CatalogOperationsTotalIncr increases in 1 a metric for tracking menu operations and their outcome.
// It is a no-op until InitInstrumentation runs.
var CatalogOperationsTotalIncr = func(ctx context.Context, operation, result string) {}

// RegistryPersistTotalIncr increases in 1 a metric for tracking registry loads and saves.
// It is a no-op until InitInstrumentation runs.
var RegistryPersistTotalIncr = func(ctx context.Context, op, backend, result string) {}

func createCustomMeters(serviceName, serviceVersion, serviceEnvironment string) error {
	meter := otel.Meter(serviceName)
	commonAttributes := []attribute.KeyValue{
		attribute.String(string(semconv.DeploymentEnvironmentNameKey), serviceEnvironment),
		attribute.String(string(semconv.ServiceVersionKey), serviceVersion),
	}

	catalogOperationsTotal, err := meter.Int64Counter("catalog_operations_total")
	if err != nil {
		return fmt.Errorf("failed to create custom meter: %w", err)
	}
	CatalogOperationsTotalIncr = func(ctx context.Context, operation, result string) {
		catalogOperationsTotal.Add(ctx, 1, metric2.WithAttributes(append(commonAttributes,
			attribute.String("operation", operation),
			attribute.String("result", result),
		)...))
	}

	registryPersistTotal, err := meter.Int64Counter("registry_persist_total")
	if err != nil {
		return fmt.Errorf("failed to create custom meter: %w", err)
	}
	RegistryPersistTotalIncr = func(ctx context.Context, op, backend, result string) {
		registryPersistTotal.Add(ctx, 1, metric2.WithAttributes(append(commonAttributes,
			attribute.String("op", op),
			attribute.String("backend", backend),
			attribute.String("result", result),
		)...))
	}

	return nil
}
