package jsonline

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
	"github.com/nicmue/tracing-stable-trace-id-example/tracectx"
)

// Format writes the event as one JSON object followed by a newline.
// The key order is fixed: timestamp, level, fields, target, then, when
// a span is active, span, span_id, trace_id.  Downstream tooling
// matches on that prefix order.
//
// The line is built fully in memory and handed to the sink in a single
// write: either the whole line reaches the sink or the call fails and
// nothing of the line counts as written.  Failures of the optional
// span and trace entries never fail the call (outside of
// WithStrictSpanFields); the entries are omitted and the rest of the
// record still goes out.
func (f *Formatter) Format(ctx context.Context, event Event, sink io.StringWriter) error {
	b := f.builder()
	defer f.release(b)

	b.AppendByte('{') // }
	b.AddSafeKey("timestamp")
	b.B = f.timeFormatter(b.B, f.now())
	b.AddSafeKey("level")
	b.AddSafeString(event.Level.String())
	b.AddSafeKey("fields")
	event.Fields.AppendObject(b)
	b.AddSafeKey("target")
	b.AddString(event.Target)

	if span, ok := f.lookup.Current(ctx); ok {
		mark := len(b.B)
		b.AddSafeKey("span")
		if err := f.appendSpanFields(b, span); err != nil {
			if f.strict {
				return errors.Wrapf(err, "span '%s' had malformed fields", span.Name())
			}
			b.B = b.B[:mark]
		}
		if info, ok := tracectx.Resolve(span.SpanContext(), span.ExportSpanID()); ok {
			b.AddSafeKey("span_id")
			b.AddSafeString(info.SpanID)
			b.AddSafeKey("trace_id")
			b.AddSafeString(info.TraceID)
		}
	}
	// {
	b.AppendBytes([]byte{'}', '\n'})

	if _, err := jsonutil.NewTextWriter(sink).Write(b.B); err != nil {
		return errors.Wrap(err, "write log line")
	}
	return nil
}
