package review

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/step"
)

// Sink receives the confirmed record. The record is a private copy.
type Sink interface {
	Submit(rec step.Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(rec step.Record) error

// Submit calls f(rec).
func (f SinkFunc) Submit(rec step.Record) error {
	return f(rec)
}

// LogSink writes the record to a logger with the password masked.
type LogSink struct {
	Log *logger.Logger
}

// Submit logs rec at info level.
func (s LogSink) Submit(rec step.Record) error {
	data, err := Encode(rec, FormatJSON, true)
	if err != nil {
		return err
	}
	l := s.Log
	if l == nil {
		l = logger.Default
	}
	l.Info("Submitted record (%d fields): %s", rec.Len(), bytes.TrimSpace(data))
	return nil
}

// WriterSink encodes the record to W.
type WriterSink struct {
	W      io.Writer
	Format Format
}

// Submit writes rec to the underlying writer.
func (s WriterSink) Submit(rec step.Record) error {
	data, err := Encode(rec, s.Format, false)
	if err != nil {
		return err
	}
	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Tee delivers to every sink in order, stopping at the first error. A retry
// after a failure starts again from the first sink, so the sinks ahead of
// the one that failed see the record twice. Put a sink that must not repeat
// its side effect last.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(rec step.Record) error {
		for _, s := range sinks {
			if err := s.Submit(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
