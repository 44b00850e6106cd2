package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ContentRenderer transforms text before it is printed (e.g. Markdown to ANSI).
type ContentRenderer func(string) (string, error)

// DefaultInputMarker is printed before every read.
const DefaultInputMarker = "> "

// Console implements ports.Terminal on top of a reader and a writer.
type Console struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	marker   string
	maxInput int
	logger   *slog.Logger
	sleep    func(time.Duration)
}

// ConsoleOption defines configuration for Console.
type ConsoleOption func(*Console)

// WithRenderer configures the content renderer.
func WithRenderer(renderer ContentRenderer) ConsoleOption {
	return func(c *Console) {
		c.Renderer = renderer
	}
}

// WithInputMarker replaces the "> " marker shown before reading. Use "" to disable it.
func WithInputMarker(marker string) ConsoleOption {
	return func(c *Console) {
		c.marker = marker
	}
}

// WithMaxInputSize bounds the size of a line in bytes. Longer lines are
// discarded. Non-positive values disable the check.
func WithMaxInputSize(n int) ConsoleOption {
	return func(c *Console) {
		c.maxInput = n
	}
}

// WithLogger configures the logger used to report discarded input.
func WithLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithSleeper replaces time.Sleep.
func WithSleeper(sleep func(time.Duration)) ConsoleOption {
	return func(c *Console) {
		c.sleep = sleep
	}
}

// NewConsole creates a console for standard text IO.
// A nil reader means os.Stdin, a nil writer means os.Stdout.
func NewConsole(r io.Reader, w io.Writer, opts ...ConsoleOption) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		Reader:   bufio.NewReader(r),
		Writer:   w,
		marker:   DefaultInputMarker,
		maxInput: MaxInputSizeFromEnv(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PrintLine writes text followed by a newline, rendering it first when a
// renderer is configured. A failing renderer falls back to the raw text.
func (c *Console) PrintLine(ctx context.Context, text string) {
	output := text
	if c.Renderer != nil {
		if rendered, err := c.Renderer(text); err == nil {
			output = strings.TrimSpace(rendered)
		}
	}
	fmt.Fprintln(c.Writer, output)
}

// ReadLine reads one line. A final line without a trailing newline is still
// returned; ok is false only when nothing could be read.
func (c *Console) ReadLine(ctx context.Context) (string, bool) {
	if c.marker != "" {
		fmt.Fprint(c.Writer, c.marker)
	}

	text, err := c.Reader.ReadString('\n')
	if text == "" && err != nil {
		if err != io.EOF {
			c.logger.Debug("input read failed", "err", err)
		}
		return "", false
	}

	clean, err := SanitizeInput(strings.TrimSpace(text), c.maxInput)
	if err != nil {
		c.logger.Warn("input discarded", "err", err)
		return "", true
	}
	return clean, true
}

// Sleep blocks for d. Non-positive durations return immediately.
func (c *Console) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	c.sleep(d)
}
