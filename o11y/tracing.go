package o11y

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	otelSDKTrace "go.opentelemetry.io/otel/sdk/trace"
)

// tracerProvider builds the SDK tracer provider. Without an OTLP URL spans are still created, so trace and span IDs
// appear in log lines, but nothing is exported.
func tracerProvider(ctx context.Context, cfg Configurator) (*otelSDKTrace.TracerProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName())),
	)
	if err != nil {
		return nil, fmt.Errorf("could not build trace resource: %w", err)
	}

	opts := []otelSDKTrace.TracerProviderOption{
		otelSDKTrace.WithResource(res),
	}

	if cfg.OtelURL() != "" {
		client := otlptracehttp.NewClient(otlptracehttp.WithEndpointURL(cfg.OtelURL()))

		exporter, err := otlptrace.New(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("could not create OTLP trace exporter for %s: %w", cfg.OtelURL(), err)
		}

		opts = append(opts, otelSDKTrace.WithBatcher(exporter))
	}

	tp := otelSDKTrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
