package serde

import (
	"bytes"
	"io"
)

// Sink is an append-only byte consumer. A visitor owns exactly one Sink for
// the duration of one serialization pass; any write may fail, and a failure
// is fatal to the pass that owns the sink.
type Sink interface {
	// Write appends p to the sink.
	Write(p []byte) error

	// WriteString appends s to the sink.
	WriteString(s string) error
}

// BufferSink is an in-memory growable Sink. Its writes never fail.
// The zero value is ready to use.
type BufferSink struct {
	buf bytes.Buffer
}

// NewBufferSink returns a BufferSink with a small preallocated buffer.
func NewBufferSink() *BufferSink {
	s := &BufferSink{}
	s.buf.Grow(1024)
	return s
}

// Write appends p to the buffer.
func (s *BufferSink) Write(p []byte) error {
	s.buf.Write(p)
	return nil
}

// WriteString appends str to the buffer.
func (s *BufferSink) WriteString(str string) error {
	s.buf.WriteString(str)
	return nil
}

// Bytes returns the accumulated bytes. The slice aliases the sink's buffer;
// it is valid until the next write.
func (s *BufferSink) Bytes() []byte {
	return s.buf.Bytes()
}

// Len returns the number of accumulated bytes.
func (s *BufferSink) Len() int {
	return s.buf.Len()
}

// WriterSink adapts an io.Writer into a Sink for streaming output.
// A short write surfaces as io.ErrShortWrite.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write forwards p to the underlying writer.
func (s *WriterSink) Write(p []byte) error {
	n, err := s.w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// WriteString forwards str to the underlying writer.
func (s *WriterSink) WriteString(str string) error {
	if sw, ok := s.w.(io.StringWriter); ok {
		n, err := sw.WriteString(str)
		if err != nil {
			return err
		}
		if n < len(str) {
			return io.ErrShortWrite
		}
		return nil
	}
	return s.Write([]byte(str))
}
