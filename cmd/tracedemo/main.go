// tracedemo continues a trace that began outside the process and
// emits trace-correlated JSON log lines to stdout while exporting the
// spans themselves through the OpenTelemetry SDK.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonline"
	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
	"github.com/nicmue/tracing-stable-trace-id-example/spanreg"
	"github.com/nicmue/tracing-stable-trace-id-example/tracectx"
)

var (
	endpoint  string
	useStdout bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "tracedemo",
		Short:        "emit trace-correlated JSON log lines while continuing a remote trace",
		RunE:         run,
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "localhost:4318", "OTLP/HTTP span collector endpoint")
	cmd.Flags().BoolVar(&useStdout, "stdout", false, "export spans to stdout instead of OTLP")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	exporter, err := newExporter(ctx)
	if err != nil {
		return err
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("tracing-stable-trace-id-example"),
		)),
	)
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()
	otel.SetTracerProvider(provider)

	registry := spanreg.New(spanreg.WithTracer(provider.Tracer("tracedemo")))
	formatter := jsonline.New(registry)
	log := formatter.Logger("tracedemo", os.Stdout)

	remote := tracectx.RemoteTraceContext{
		TraceInfo: tracectx.TraceInfo{
			TraceID: "9d96f6d506048d33796d850a09797e55",
			SpanID:  "0db1818f6e5514ee",
		},
		TraceFlags: 0,
	}
	ctx, err = tracectx.ContextWithRemoteParent(ctx, remote)
	if err != nil {
		return err
	}

	ctx, span := registry.Start(ctx, "main one", nil)
	defer span.End()
	if err := log.Info(ctx, "main one"); err != nil {
		return err
	}
	if err := nested(ctx, registry, log); err != nil {
		return err
	}
	return work(ctx, registry, log)
}

func nested(ctx context.Context, registry *spanreg.Registry, log *jsonline.Logger) error {
	ctx, span := registry.Start(ctx, "nested", nil)
	defer span.End()
	return log.Info(ctx, "nested function")
}

func work(ctx context.Context, registry *spanreg.Registry, log *jsonline.Logger) error {
	ctx, span := registry.Start(ctx, "work", jsonutil.Fields{
		{Key: "batch", Value: 7},
	})
	defer span.End()
	return log.Info(ctx, "working", jsonutil.Field{Key: "items", Value: 3})
}

func newExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if useStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
}
