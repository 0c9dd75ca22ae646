// Package tracectx models the trace identifiers that tie log lines to
// distributed traces and propagates trace contexts that were started
// outside this process.
package tracectx

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
)

// TraceInfo identifies one span within one distributed trace.  Both
// identifiers are lowercase hex: 32 characters for the trace id and 16
// for the span id.
type TraceInfo struct {
	TraceID string `json:"traceId"`
	SpanID  string `json:"spanId"`
}

// RemoteTraceContext is a trace context received from outside the
// process, either from an inbound header or from literal
// configuration.  Its JSON form is flat:
//
//	{"traceId":"<32 hex>","spanId":"<16 hex>","traceFlags":0}
type RemoteTraceContext struct {
	TraceInfo
	TraceFlags uint8 `json:"traceFlags"`
}

// SpanContext converts the remote context into a span context marked
// as remote.  It fails if either identifier is not valid hex of the
// expected length.
func (rtc RemoteTraceContext) SpanContext() (trace.SpanContext, error) {
	traceID, err := trace.TraceIDFromHex(rtc.TraceID)
	if err != nil {
		return trace.SpanContext{}, errors.Wrapf(err, "remote trace context trace id '%s'", rtc.TraceID)
	}
	spanID, err := trace.SpanIDFromHex(rtc.SpanID)
	if err != nil {
		return trace.SpanContext{}, errors.Wrapf(err, "remote trace context span id '%s'", rtc.SpanID)
	}
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.TraceFlags(rtc.TraceFlags),
		Remote:     true,
	}), nil
}

// ContextWithRemoteParent returns a context whose spans will be
// created as children of the remote span, continuing the trace that
// began in another process.  The remote context must be validated
// before any span can be rooted in it.
func ContextWithRemoteParent(ctx context.Context, rtc RemoteTraceContext) (context.Context, error) {
	sc, err := rtc.SpanContext()
	if err != nil {
		return nil, err
	}
	return trace.ContextWithRemoteSpanContext(ctx, sc), nil
}

// NewTraceInfo extracts the identifiers from a span context.  An
// all-zero trace id means "no trace": it reports false and nothing
// should be emitted.
func NewTraceInfo(sc trace.SpanContext) (TraceInfo, bool) {
	if !sc.TraceID().IsValid() {
		return TraceInfo{}, false
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}, true
}

// Resolve produces the identifiers to emit for a live span.  The span
// context is the runtime's association, derived from parent linkage.
// If the export subsystem assigned its own span id, that id refers to
// the span that will actually reach the tracing backend, so it
// replaces the span-id half.  The trace id is never replaced.
func Resolve(sc trace.SpanContext, exportID trace.SpanID) (TraceInfo, bool) {
	info, ok := NewTraceInfo(sc)
	if !ok {
		return TraceInfo{}, false
	}
	if exportID.IsValid() {
		info.SpanID = exportID.String()
	}
	return info, true
}
