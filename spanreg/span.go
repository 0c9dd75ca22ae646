package spanreg

import (
	"go.opentelemetry.io/otel/trace"
)

// SpanHandle is the registry's record of one live span.
type SpanHandle struct {
	name       string
	blob       []byte
	sc         trace.SpanContext
	exportSpan trace.Span
}

var _ Span = &SpanHandle{}

func (h *SpanHandle) Name() string { return h.name }

func (h *SpanHandle) FieldBlob() []byte { return h.blob }

func (h *SpanHandle) SpanContext() trace.SpanContext { return h.sc }

func (h *SpanHandle) ExportSpanID() trace.SpanID {
	if h.exportSpan == nil {
		return trace.SpanID{}
	}
	return h.exportSpan.SpanContext().SpanID()
}

// End completes the exported half of the span.  The registry's own
// record carries no end time; it exists to serve lookups while the
// span is live.
func (h *SpanHandle) End() {
	if h.exportSpan != nil {
		h.exportSpan.End()
	}
}
