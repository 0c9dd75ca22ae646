// Package spanreg tracks live spans.  The registry is addressed
// through context.Context: starting a span derives its trace
// association from whatever the context already carries (an enclosing
// registry span, a remote span context, or nothing) and returns a new
// context holding the span.  The formatter reads spans back through
// the narrow Lookup capability and never touches the registry's
// internals.
package spanreg

import (
	"context"
	"crypto/rand"

	"go.opentelemetry.io/otel/trace"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
)

// Span is the read-only view of one live span.
type Span interface {
	// Name is the name given at span start.
	Name() string
	// FieldBlob is the span's field set as JSON object text, frozen
	// once at span start.
	FieldBlob() []byte
	// SpanContext is the runtime's trace/span association, derived
	// from parent linkage.
	SpanContext() trace.SpanContext
	// ExportSpanID is the span id assigned by the export pipeline,
	// or zero if the span is not exported.
	ExportSpanID() trace.SpanID
}

// Lookup resolves the active span for a context.
type Lookup interface {
	Current(ctx context.Context) (Span, bool)
}

type Registry struct {
	tracer trace.Tracer
}

var _ Lookup = &Registry{}

type Option func(*Registry)

// WithTracer mirrors every registry span into the given tracer so
// that completed spans reach the export pipeline.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Registry) {
		r.tracer = tracer
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type contextKey struct{}

// Start begins a span and returns a context carrying it.  The field
// set is serialized once, here; later formatting reads the frozen
// record and never re-serializes live values.
func (r *Registry) Start(ctx context.Context, name string, fields jsonutil.Fields) (context.Context, *SpanHandle) {
	parent := parentSpanContext(ctx)

	var exportSpan trace.Span
	if r.tracer != nil {
		ctx, exportSpan = r.tracer.Start(ctx, name)
	}

	cfg := trace.SpanContextConfig{
		SpanID: newSpanID(),
	}
	switch {
	case parent.TraceID().IsValid():
		cfg.TraceID = parent.TraceID()
		cfg.TraceFlags = parent.TraceFlags()
		cfg.TraceState = parent.TraceState()
	case exportSpan != nil && exportSpan.SpanContext().TraceID().IsValid():
		// root span: adopt the export pipeline's trace id so the
		// two sources never diverge on the trace half
		cfg.TraceID = exportSpan.SpanContext().TraceID()
		cfg.TraceFlags = exportSpan.SpanContext().TraceFlags()
	default:
		cfg.TraceID = newTraceID()
	}

	h := &SpanHandle{
		name:       name,
		blob:       freezeFields(fields),
		sc:         trace.NewSpanContext(cfg),
		exportSpan: exportSpan,
	}
	return context.WithValue(ctx, contextKey{}, h), h
}

// Current returns the innermost registry span on the context, if any.
func (r *Registry) Current(ctx context.Context) (Span, bool) {
	h, ok := ctx.Value(contextKey{}).(*SpanHandle)
	if !ok {
		return nil, false
	}
	return h, true
}

// parentSpanContext prefers the enclosing registry span; failing
// that, whatever span context the context carries (which is how a
// remote parent attaches).
func parentSpanContext(ctx context.Context) trace.SpanContext {
	if h, ok := ctx.Value(contextKey{}).(*SpanHandle); ok {
		return h.sc
	}
	return trace.SpanContextFromContext(ctx)
}

func freezeFields(fields jsonutil.Fields) []byte {
	var b jsonutil.JBuilder
	fields.AppendObject(&b)
	return b.B
}

func newSpanID() trace.SpanID {
	var id trace.SpanID
	for !id.IsValid() {
		_, _ = rand.Read(id[:])
	}
	return id
}

func newTraceID() trace.TraceID {
	var id trace.TraceID
	for !id.IsValid() {
		_, _ = rand.Read(id[:])
	}
	return id
}
