package jsonline

import (
	"context"
	"io"
	"sync"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
	"github.com/nicmue/tracing-stable-trace-id-example/lognum"
)

// Logger binds a formatter to a target and a sink.  Writes to the
// sink are serialized: once a line starts going out, the whole line
// goes out before the next one starts.
type Logger struct {
	formatter *Formatter
	target    string
	sink      io.StringWriter
	mu        sync.Mutex
}

func (f *Formatter) Logger(target string, sink io.StringWriter) *Logger {
	return &Logger{
		formatter: f,
		target:    target,
		sink:      sink,
	}
}

func (l *Logger) log(ctx context.Context, level lognum.Level, msg string, fields []jsonutil.Field) error {
	all := make(jsonutil.Fields, 0, len(fields)+1)
	all = append(all, jsonutil.Field{Key: "message", Value: msg})
	all = append(all, fields...)
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formatter.Format(ctx, Event{
		Level:  level,
		Target: l.target,
		Fields: all,
	}, l.sink)
}

func (l *Logger) Trace(ctx context.Context, msg string, fields ...jsonutil.Field) error {
	return l.log(ctx, lognum.TraceLevel, msg, fields)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...jsonutil.Field) error {
	return l.log(ctx, lognum.DebugLevel, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...jsonutil.Field) error {
	return l.log(ctx, lognum.InfoLevel, msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...jsonutil.Field) error {
	return l.log(ctx, lognum.WarnLevel, msg, fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...jsonutil.Field) error {
	return l.log(ctx, lognum.ErrorLevel, msg, fields)
}
