package tracectx

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// "traceparent" header
// Example: 00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01
func FromTraceParentHeader(h string) (RemoteTraceContext, error) {
	splits := strings.SplitN(h, "-", 5)
	if len(splits) != 4 {
		return RemoteTraceContext{}, errors.Errorf("invalid traceparent header '%s'", h)
	}
	flags, err := strconv.ParseUint(splits[3], 16, 8)
	if err != nil {
		return RemoteTraceContext{}, errors.Wrapf(err, "invalid traceparent flags '%s'", splits[3])
	}
	rtc := RemoteTraceContext{
		TraceInfo: TraceInfo{
			TraceID: splits[1],
			SpanID:  splits[2],
		},
		TraceFlags: uint8(flags),
	}
	if _, err := rtc.SpanContext(); err != nil {
		return RemoteTraceContext{}, err
	}
	return rtc, nil
}

// https://github.com/openzipkin/b3-propagation
// b3: traceid-spanid-sampled-parentspanid
// The sampled and parentspanid segments are optional.  A bare "0" or
// "1" header carries only a sampling decision and has no identifiers
// to continue from.
func FromB3Header(h string) (RemoteTraceContext, error) {
	switch h {
	case "0", "1":
		return RemoteTraceContext{}, errors.Errorf("b3 header '%s' has no trace identifiers", h)
	}
	splits := strings.SplitN(h, "-", 5)
	if len(splits) < 2 || len(splits) > 4 {
		return RemoteTraceContext{}, errors.Errorf("invalid b3 header '%s'", h)
	}
	rtc := RemoteTraceContext{
		TraceInfo: TraceInfo{
			TraceID: splits[0],
			SpanID:  splits[1],
		},
	}
	if len(splits) >= 3 {
		switch splits[2] {
		case "1", "d":
			rtc.TraceFlags = 1
		case "0":
			// not sampled
		default:
			return RemoteTraceContext{}, errors.Errorf("invalid b3 sampled field '%s'", splits[2])
		}
	}
	if _, err := rtc.SpanContext(); err != nil {
		return RemoteTraceContext{}, err
	}
	return rtc, nil
}
