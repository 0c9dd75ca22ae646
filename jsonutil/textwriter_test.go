package jsonutil_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicmue/tracing-stable-trace-id-example/jsonutil"
)

type failingSink struct{}

func (failingSink) WriteString(string) (int, error) {
	return 0, errors.New("sink closed")
}

func TestTextWriterPassesThrough(t *testing.T) {
	var sb strings.Builder
	w := jsonutil.NewTextWriter(&sb)
	n, err := w.Write([]byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, `{"ok":true}`, sb.String())
}

func TestTextWriterRejectsInvalidUTF8(t *testing.T) {
	var sb strings.Builder
	w := jsonutil.NewTextWriter(&sb)
	_, err := w.Write([]byte{'"', 0xff, '"'})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
	assert.Zero(t, sb.Len())
}

func TestTextWriterWrapsSinkError(t *testing.T) {
	w := jsonutil.NewTextWriter(failingSink{})
	_, err := w.Write([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
}
