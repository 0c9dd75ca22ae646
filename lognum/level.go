// Package lognum provides the severity level constants shared across
// this module.
package lognum

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Level int32

const (
	// Open Telemetry puts tracing as lower level than debugging.
	// https://github.com/open-telemetry/opentelemetry-proto/blob/main/opentelemetry/proto/logs/v1/logs.proto
	// The numbers below follow that mapping.
	TraceLevel Level = 1
	DebugLevel Level = 5
	InfoLevel  Level = 9
	WarnLevel  Level = 13
	ErrorLevel Level = 17
)

const MaxLevel = ErrorLevel

// String returns the short uppercase name that gets serialized into
// log lines ("INFO", "ERROR", etc).
func (level Level) String() string {
	switch level {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return strconv.Itoa(int(level))
	}
}

// LevelString is the inverse of String.  It is case-insensitive.
func LevelString(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return 0, errors.Errorf("'%s' does not belong to Level values", s)
	}
}
