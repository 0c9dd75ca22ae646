package jsonline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonline"
	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
)

func TestLoggerInfo(t *testing.T) {
	f := jsonline.New(fakeLookup{}, jsonline.WithClock(fixedClock))
	var sb strings.Builder
	log := f.Logger("server", &sb)

	require.NoError(t, log.Info(context.Background(), "listening", jsonutil.Field{Key: "port", Value: 8080}))
	assert.Equal(t,
		`{"timestamp":"2024-05-12T09:31:02+00:00","level":"INFO","fields":{"message":"listening","port":8080},"target":"server"}`+"\n",
		sb.String())
}

func TestLoggerLevels(t *testing.T) {
	f := jsonline.New(fakeLookup{}, jsonline.WithClock(fixedClock))
	var sb strings.Builder
	log := f.Logger("server", &sb)

	require.NoError(t, log.Trace(context.Background(), "t"))
	require.NoError(t, log.Debug(context.Background(), "d"))
	require.NoError(t, log.Warn(context.Background(), "w"))
	require.NoError(t, log.Error(context.Background(), "e"))

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"level":"TRACE"`)
	assert.Contains(t, lines[1], `"level":"DEBUG"`)
	assert.Contains(t, lines[2], `"level":"WARN"`)
	assert.Contains(t, lines[3], `"level":"ERROR"`)
}

func TestLoggerSinkFailure(t *testing.T) {
	f := jsonline.New(fakeLookup{})
	log := f.Logger("server", failingSink{})
	assert.Error(t, log.Info(context.Background(), "nope"))
}
