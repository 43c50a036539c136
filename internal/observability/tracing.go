package observability

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
)

func noopShutdown(context.Context) error { return nil }

// SetupTracing installs an OTLP/gRPC trace exporter when an endpoint is
// configured. The returned func flushes and shuts the provider down.
func SetupTracing(ctx context.Context, endpoint, service, environment string) func(context.Context) error {
	if endpoint == "" {
		return noopShutdown
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
		return noopShutdown
	}

	res := resource.NewSchemaless(
		semconv.ServiceName(service),
		semconv.DeploymentEnvironment(environment),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	log.Printf("tracing enabled endpoint=%s", endpoint)
	return provider.Shutdown
}
