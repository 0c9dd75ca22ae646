package spanreg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
	"github.com/nicmue/tracing-stable-trace-id-example/spanreg"
)

func TestStartFreezesFields(t *testing.T) {
	registry := spanreg.New()
	_, h := registry.Start(context.Background(), "query", jsonutil.Fields{
		{Key: "a", Value: 1},
		{Key: "table", Value: "users"},
	})
	assert.Equal(t, `{"a":1,"table":"users"}`, string(h.FieldBlob()))
	assert.Equal(t, "query", h.Name())
}

func TestStartNoFields(t *testing.T) {
	registry := spanreg.New()
	_, h := registry.Start(context.Background(), "empty", nil)
	assert.Equal(t, `{}`, string(h.FieldBlob()))
}

func TestCurrent(t *testing.T) {
	registry := spanreg.New()
	_, ok := registry.Current(context.Background())
	assert.False(t, ok)

	ctx, h := registry.Start(context.Background(), "outer", nil)
	got, ok := registry.Current(ctx)
	require.True(t, ok)
	assert.Same(t, spanreg.Span(h), got)
}

func TestNestingInheritsTraceID(t *testing.T) {
	registry := spanreg.New()
	ctx, outer := registry.Start(context.Background(), "outer", nil)
	_, inner := registry.Start(ctx, "inner", nil)

	assert.True(t, outer.SpanContext().TraceID().IsValid())
	assert.Equal(t, outer.SpanContext().TraceID(), inner.SpanContext().TraceID())
	assert.NotEqual(t, outer.SpanContext().SpanID(), inner.SpanContext().SpanID())
}

func TestRootSpansGetDistinctTraces(t *testing.T) {
	registry := spanreg.New()
	_, a := registry.Start(context.Background(), "a", nil)
	_, b := registry.Start(context.Background(), "b", nil)
	assert.NotEqual(t, a.SpanContext().TraceID(), b.SpanContext().TraceID())
}

func TestRemoteParentContinuesTrace(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("9d96f6d506048d33796d850a09797e55")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0db1818f6e5514ee")
	require.NoError(t, err)
	remote := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
		Remote:  true,
	})
	ctx := trace.ContextWithRemoteSpanContext(context.Background(), remote)

	registry := spanreg.New()
	_, h := registry.Start(ctx, "continued", nil)
	assert.Equal(t, traceID, h.SpanContext().TraceID())
	assert.NotEqual(t, spanID, h.SpanContext().SpanID())
}

func TestExportSpanIDWithoutTracer(t *testing.T) {
	registry := spanreg.New()
	_, h := registry.Start(context.Background(), "local", nil)
	assert.False(t, h.ExportSpanID().IsValid())
	h.End() // no export half, must not panic
}

func TestTracerMirrorsSpans(t *testing.T) {
	provider := sdktrace.NewTracerProvider()
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()
	registry := spanreg.New(spanreg.WithTracer(provider.Tracer("test")))

	ctx, h := registry.Start(context.Background(), "exported", nil)
	defer h.End()

	exported := trace.SpanFromContext(ctx).SpanContext()
	assert.True(t, h.ExportSpanID().IsValid())
	assert.Equal(t, exported.SpanID(), h.ExportSpanID())
	// root spans adopt the export pipeline's trace id
	assert.Equal(t, exported.TraceID(), h.SpanContext().TraceID())
	// the registry's own span id is assigned independently
	assert.NotEqual(t, exported.SpanID(), h.SpanContext().SpanID())
}
