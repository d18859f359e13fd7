// Package telemetry sets up OpenTelemetry tracing for the console.
package telemetry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/maxviazov/gym-console/internal/config"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs the global tracer provider and propagators. With tracing
// disabled only the W3C propagators are installed so trace headers still flow
// to the backend.
func Init(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (ShutdownFunc, error) {
	l := logger.With().Str("module", "telemetry").Str("component", "tracing").Logger()
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	tc := cfg.Tracing
	if !tc.Enabled {
		l.Info().Bool("tracing_enabled", false).Msg("Tracing configured")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.App.Name),
			attribute.String("service.version", cfg.App.Version),
		),
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newExporter(ctx, tc)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(tc.SampleRatio))),
	)
	otel.SetTracerProvider(tp)

	l.Info().
		Bool("tracing_enabled", true).
		Str("otlp_protocol", tc.Protocol).
		Str("otlp_endpoint", tc.Endpoint).
		Float64("sample_ratio", tc.SampleRatio).
		Msg("Tracing configured")
	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, tc config.TracingConfig) (*otlptrace.Exporter, error) {
	switch tc.Protocol {
	case "grpc":
		var opts []otlptracegrpc.Option
		if tc.Endpoint != "" {
			opts = append(opts, otlptracegrpc.WithEndpoint(tc.Endpoint))
		}
		if tc.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		return otlptracegrpc.New(ctx, opts...)
	case "http/protobuf":
		var opts []otlptracehttp.Option
		if tc.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(tc.Endpoint))
		}
		if tc.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %q", tc.Protocol)
	}
}
