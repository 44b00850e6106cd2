package ports

import (
	"context"
	"time"
)

// Output is the sink for everything the core displays.
type Output interface {
	PrintLine(ctx context.Context, text string)
}

// Input is the source of raw user input.
type Input interface {
	// ReadLine blocks until a line is available. ok is false when the input
	// is exhausted or cannot be read; callers treat that as an empty line.
	ReadLine(ctx context.Context) (line string, ok bool)
}

// Delayer suspends the calling goroutine. It is a blocking wait, not a timer.
type Delayer interface {
	Sleep(ctx context.Context, d time.Duration)
}

// Terminal groups the collaborators a session needs.
type Terminal interface {
	Output
	Input
	Delayer
}
