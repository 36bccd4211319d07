// Package telemetry installs an OpenTelemetry tracer provider that exports
// driver spans over OTLP/HTTP.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used by the CLI.
const TracerName = "mosstui"

// Provider owns the SDK tracer provider. A nil *Provider is valid and
// disabled.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup creates an OTLP exporter for endpoint and registers it as the global
// tracer provider. Returns nil when endpoint is empty (disabled).
func Setup(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local collectors; make configurable
	)
	if err != nil {
		return nil, err
	}

	if serviceName == "" {
		serviceName = TracerName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider}, nil
}

// Tracer returns the CLI tracer; the global no-op tracer when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return otel.Tracer(TracerName)
	}
	return p.provider.Tracer(TracerName)
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil
}

// Shutdown flushes and closes the exporter
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
