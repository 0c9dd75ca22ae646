/*
jsonline formats log events as line-delimited JSON with distributed
tracing correlation baked into each line.

A line with no active span looks like:

	{"timestamp":"2024-05-12T09:31:02.4182+00:00","level":"INFO","fields":{"message":"listening"},"target":"server"}

Inside a span, the line additionally carries the span's frozen field
record, its name, and the identifiers that join the line to the
distributed trace:

	{"timestamp":"...","level":"INFO","fields":{"message":"hit"},"target":"server",
	 "span":{"user":"alice","name":"handle request"},
	 "span_id":"0db1818f6e5514ee","trace_id":"9d96f6d506048d33796d850a09797e55"}

The span_id is the one the export pipeline will ship to the tracing
backend when the span has one, so the line joins cleanly against the
exported trace.  A span whose trace id is all zeros contributes no
span_id/trace_id entries at all.
*/
package jsonline
