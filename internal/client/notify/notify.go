// Package notify delivers user-facing success/failure/progress signals,
// the terminal counterpart of toast notifications. Server-provided error
// messages must pass through unmodified.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives user-facing notifications.
type Sink interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// WriterSink prints notifications to w, one per line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Success(msg string) { s.print("✓", msg) }
func (s *WriterSink) Error(msg string)   { s.print("✗", msg) }
func (s *WriterSink) Info(msg string)    { s.print("·", msg) }

func (s *WriterSink) print(mark, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s\n", mark, msg)
}

// SpySink records notifications for assertions in tests.
type SpySink struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
	Infos     []string
}

func (s *SpySink) Success(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Successes = append(s.Successes, msg)
}

func (s *SpySink) Error(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors = append(s.Errors, msg)
}

func (s *SpySink) Info(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Infos = append(s.Infos, msg)
}
