// Package observability configures OpenTelemetry tracing for the process.
package observability

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracing installs the global tracer provider for the given exporter
// and returns a shutdown function that flushes pending spans.
// "none" leaves the default no-op provider in place.
func InitTracing(ctx context.Context, serviceName, exporter string) (func(context.Context) error, error) {
	return initTracing(ctx, serviceName, exporter, os.Stdout)
}

func initTracing(ctx context.Context, serviceName, exporter string, w io.Writer) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch exporter {
	case "", "none":
		return noop, nil
	case "stdout":
	default:
		return nil, fmt.Errorf("unsupported tracing exporter: %s", exporter)
	}

	spanExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(spanExporter),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
