package main

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/plebishub/plebisadmin/internal/config"
	"github.com/plebishub/plebisadmin/internal/errors"
)

// setupTracing installs a global OTLP/HTTP tracer provider when an endpoint
// is configured. The returned function flushes and stops it.
func setupTracing(ctx context.Context, cfg config.TracingConfig) (func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(trimScheme(cfg.Endpoint))}
	if insecureExport(cfg) {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.New("E402").Wrap(err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider.Shutdown, nil
}

// insecureExport reports whether spans go over plain HTTP.
func insecureExport(cfg config.TracingConfig) bool {
	return cfg.Insecure || strings.HasPrefix(cfg.Endpoint, "http://")
}

// trimScheme turns "http://host:4318" into "host:4318"; WithEndpoint wants
// host and port only.
func trimScheme(endpoint string) string {
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(endpoint, scheme) {
			return strings.TrimSuffix(strings.TrimPrefix(endpoint, scheme), "/")
		}
	}
	return endpoint
}
