package stepper

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// options collects the adjustable parts of New.
type options struct {
	writer io.Writer
	quiet  bool
}

// defaultOptions returns the configuration New starts from:
// write to stdout, not quiet.
func defaultOptions() options {
	return options{writer: os.Stdout}
}

// Option customizes New.
type Option func(*options)

// WithWriter redirects flushed step lines to w instead of stdout.
// Panics if w is nil.
func WithWriter(w io.Writer) Option {
	if w == nil {
		panic("stepper: writer must not be nil")
	}
	return func(o *options) {
		o.writer = w
	}
}

// Quiet discards all output. Steps are still collected and readable
// through Steps and String, only Flush becomes a no-op.
func Quiet() Option {
	return func(o *options) {
		o.quiet = true
	}
}

// Stepper accumulates calculation fragments and writes them as one
// space-joined line per flush. The zero value is not usable; construct
// with New.
type Stepper struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
	steps []string
}

// New returns a Stepper configured by opts.
func New(opts ...Option) *Stepper {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stepper{w: cfg.writer, quiet: cfg.quiet}
}

// Step appends one fragment to the pending line.
func (s *Stepper) Step(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, text)
}

// Stepf appends one fmt.Sprintf-formatted fragment to the pending line.
func (s *Stepper) Stepf(format string, args ...any) {
	s.Step(fmt.Sprintf(format, args...))
}

// Steps returns a copy of the pending fragments in append order.
func (s *Stepper) Steps() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.steps))
	copy(out, s.steps)
	return out
}

// String returns the pending fragments joined by single spaces, without
// flushing them.
func (s *Stepper) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.steps, " ")
}

// Flush writes the pending fragments as one newline-terminated line and
// clears the buffer. Flushing an empty or quiet stepper writes nothing.
func (s *Stepper) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.steps) == 0 {
		return nil
	}
	line := strings.Join(s.steps, " ")
	s.steps = s.steps[:0]
	if s.quiet {
		return nil
	}
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("stepper: flush: %w", err)
	}
	return nil
}

// Close flushes the pending line. It exists so a stepper can be handed
// to defer at the top of a calculation.
func (s *Stepper) Close() error {
	return s.Flush()
}
