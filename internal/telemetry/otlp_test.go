package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if p != nil || p.Enabled() {
		t.Error("provider should be disabled without an endpoint")
	}
	if p.Tracer() == nil {
		t.Error("disabled provider should still hand out a tracer")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on disabled provider: %v", err)
	}
}

func TestSetup_RegistersGlobalProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	p, err := Setup(context.Background(), "localhost:4318", "test-service")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !p.Enabled() {
		t.Fatal("provider should be enabled")
	}

	_, span := p.Tracer().Start(context.Background(), "probe")
	if !span.SpanContext().IsValid() {
		t.Error("SDK tracer should produce valid span contexts")
	}
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// Nothing listens on the endpoint; only make sure shutdown returns.
	_ = p.Shutdown(ctx)
}
