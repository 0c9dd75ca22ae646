package jsonline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
	"github.com/nicmue/tracing-stable-trace-id-example/lognum"
	"github.com/nicmue/tracing-stable-trace-id-example/spanreg"
)

const (
	maxBufferToKeep = 1024 * 10
	minBuffer       = 1024
)

type Option func(*Formatter)

// TimeFormatter is the function signature for custom time formatters
// if anything other than the default RFC 3339 numeric-offset format
// is desired.  The value must be appended to the byte slice (which
// must be returned).
//
// The slice may not be safely accessed outside of the duration of the
// call.  The only acceptable operation on the slice is to append.
type TimeFormatter func(b []byte, t time.Time) []byte

// timestamps carry a numeric offset ("+00:00", never "Z") so lines
// compare byte-for-byte with writers that format UTC that way
const timestampLayout = "2006-01-02T15:04:05.999999999-07:00"

// Event is one log event.  The formatter only reads it, once, during
// the Format call.  The message is conventionally one of the Fields,
// not a separate member.
type Event struct {
	Level  lognum.Level
	Target string
	Fields jsonutil.Fields
}

type Formatter struct {
	lookup        spanreg.Lookup
	id            uuid.UUID
	strict        bool
	fastKeys      bool
	timeFormatter TimeFormatter
	now           func() time.Time
	builderPool   sync.Pool // filled with *jsonutil.JBuilder
}

func New(lookup spanreg.Lookup, opts ...Option) *Formatter {
	f := &Formatter{
		lookup:        lookup,
		id:            uuid.New(),
		timeFormatter: defaultTimeFormatter,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) ID() string { return f.id.String() }

// WithStrictSpanFields turns malformed stored span fields into a
// formatting error instead of a field_error diagnostic entry.  Meant
// for development configurations that want to catch upstream recorder
// bugs early; production configurations leave it off.
func WithStrictSpanFields(b bool) Option {
	return func(f *Formatter) {
		f.strict = b
	}
}

// WithFastKeys skips escape-checking of event field keys.
func WithFastKeys(b bool) Option {
	return func(f *Formatter) {
		f.fastKeys = b
	}
}

func WithTimeFormatter(formatter TimeFormatter) Option {
	return func(f *Formatter) {
		f.timeFormatter = formatter
	}
}

// WithClock overrides the wall clock read at format time.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

func defaultTimeFormatter(b []byte, t time.Time) []byte {
	b = append(b, '"')
	b = t.AppendFormat(b, timestampLayout)
	b = append(b, '"')
	return b
}

func (f *Formatter) builder() *jsonutil.JBuilder {
	if bRaw := f.builderPool.Get(); bRaw != nil {
		b := bRaw.(*jsonutil.JBuilder)
		b.Reset()
		return b
	}
	return &jsonutil.JBuilder{
		B:        make([]byte, 0, minBuffer),
		FastKeys: f.fastKeys,
	}
}

func (f *Formatter) release(b *jsonutil.JBuilder) {
	if len(b.B) > maxBufferToKeep {
		return
	}
	f.builderPool.Put(b)
}
