package jsonutil

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TextWriter bridges byte-oriented JSON encoding onto a text sink.
// Writes that are not valid UTF-8 are rejected before the sink sees
// them.
type TextWriter struct {
	sink io.StringWriter
}

var _ io.Writer = &TextWriter{}

func NewTextWriter(sink io.StringWriter) *TextWriter {
	return &TextWriter{sink: sink}
}

func (w *TextWriter) Write(buf []byte) (int, error) {
	if !utf8.Valid(buf) {
		return 0, errors.New("jsonutil.TextWriter output is not valid UTF-8")
	}
	n, err := w.sink.WriteString(string(buf))
	if err != nil {
		return n, errors.Wrap(err, "jsonutil.TextWriter sink")
	}
	return n, nil
}
