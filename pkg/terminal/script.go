package terminal

import (
	"context"
	"strings"
	"time"
)

// Script is an in-memory terminal. Input comes from a fixed queue of lines;
// output and delays are recorded instead of performed.
type Script struct {
	inputs []string

	Lines  []string
	Delays []time.Duration
	Reads  int
}

// NewScript creates a script that answers reads with the given lines in order.
// Once the lines run out, every read reports no input.
func NewScript(lines ...string) *Script {
	return &Script{inputs: append([]string(nil), lines...)}
}

// Feed queues more input lines.
func (s *Script) Feed(lines ...string) {
	s.inputs = append(s.inputs, lines...)
}

// PrintLine records text.
func (s *Script) PrintLine(ctx context.Context, text string) {
	s.Lines = append(s.Lines, text)
}

// ReadLine pops the next queued line.
func (s *Script) ReadLine(ctx context.Context) (string, bool) {
	s.Reads++
	if len(s.inputs) == 0 {
		return "", false
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, true
}

// Sleep records d without blocking.
func (s *Script) Sleep(ctx context.Context, d time.Duration) {
	s.Delays = append(s.Delays, d)
}

// Pending reports how many input lines have not been consumed.
func (s *Script) Pending() int {
	return len(s.inputs)
}

// Output returns everything printed so far, one line per entry.
func (s *Script) Output() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return strings.Join(s.Lines, "\n") + "\n"
}

// Reset clears recorded output and delays but keeps queued input.
func (s *Script) Reset() {
	s.Lines = nil
	s.Delays = nil
	s.Reads = 0
}
